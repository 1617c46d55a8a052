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

package bus

// Sentinel error patterns. Use with curated.Errorf() and curated.Is().
const (
	// AddressError is used when no device, or no area of a device, is
	// responsible for the address. The value is the offending address.
	AddressError = "invalid address (%#04x)"

	// OperationError is used when the address is known but the operation is
	// not permitted there. Values are a short description of the operation
	// and the address.
	OperationError = "invalid operation: %s (%#04x)"
)

// Device defines the operations for anything that occupies part of the
// address space.
//
// Contains() should be cheap and side effect free. It is used during
// construction of the composed memory to detect overlapping devices, and by
// the composed memory to route each access.
type Device interface {
	Contains(address uint16) bool
	Read(address uint16) (uint8, error)
	ReadWord(address uint16) (uint16, error)
	Write(address uint16, data uint8) error
	WriteWord(address uint16, data uint16) error
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
//
// Peek must never change the state of the emulation. Poke writes through the
// normal write path so a poke to a bank controller register has the same
// effect as a write by the CPU.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// Reader is the subset of Device required by ReadWordBytes().
type Reader interface {
	Read(address uint16) (uint8, error)
}

// Writer is the subset of Device required by WriteWordBytes().
type Writer interface {
	Write(address uint16, data uint8) error
}

// ReadWordBytes reads the low byte from address and the high byte from
// address+1 and combines them into a word. The address wraps at the top of
// the address space.
func ReadWordBytes(d Reader, address uint16) (uint16, error) {
	lo, err := d.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := d.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// WriteWordBytes writes the low byte of data to address and then the high
// byte to address+1. If the first write fails then the second write is not
// attempted.
//
// The writes are not atomic. If the second write fails the effect of the
// first write remains. For example, a word write to the last bank controller
// register of a cartridge changes the register and then fails on the address
// that follows it.
func WriteWordBytes(d Writer, address uint16, data uint16) error {
	if err := d.Write(address, uint8(data)); err != nil {
		return err
	}
	return d.Write(address+1, uint8(data>>8))
}
