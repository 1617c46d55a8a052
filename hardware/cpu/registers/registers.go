// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package registers

import "fmt"

// Registers is the register file of the CPU.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F Flags

	PC uint16
	SP uint16
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The registers have the values left by the boot ROM.
func NewRegisters() *Registers {
	r := &Registers{}
	r.Reset()
	return r
}

// Reset the registers to the values left by the boot ROM.
func (r *Registers) Reset() {
	r.A = 0x01
	r.B = 0x00
	r.C = 0x13
	r.D = 0x00
	r.E = 0xd8
	r.H = 0x01
	r.L = 0x4d
	r.F.Reset()
	r.PC = 0x0100
	r.SP = 0xfffe
}

func (r *Registers) String() string {
	return fmt.Sprintf("A=%02x F=%s BC=%04x DE=%04x HL=%04x PC=%04x SP=%04x",
		r.A, r.F, r.BC(), r.DE(), r.HL(), r.PC, r.SP)
}

func pair(hi uint8, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// BC returns the B and C registers as a 16 bit value.
func (r *Registers) BC() uint16 {
	return pair(r.B, r.C)
}

// SetBC sets the B and C registers from a 16 bit value.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// DE returns the D and E registers as a 16 bit value.
func (r *Registers) DE() uint16 {
	return pair(r.D, r.E)
}

// SetDE sets the D and E registers from a 16 bit value.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// HL returns the H and L registers as a 16 bit value.
func (r *Registers) HL() uint16 {
	return pair(r.H, r.L)
}

// SetHL sets the H and L registers from a 16 bit value.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// AF returns the A register and the flags as a 16 bit value.
func (r *Registers) AF() uint16 {
	return pair(r.A, r.F.Value())
}

// SetAF sets the A register and the flags from a 16 bit value. The lower four
// bits of the flags value are lost.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F.FromValue(uint8(v))
}
