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

package mapper

import (
	"fmt"
	"math/rand"
)

// CartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped to individual addresses.
//
// Functions with an address argument receive the full 16 bit address. The
// address is not normalised because the DMG cartridge areas are not mirrored.
type CartMapper interface {
	ID() string

	// Contains returns true if the address is handled by the mapper. It must
	// not change the state of the cartridge
	Contains(addr uint16) bool

	// Read the byte at the address. The current bank state decides which byte
	// of ROM or RAM is returned. A read never changes the bank state
	Read(addr uint16) (uint8, error)

	// Write the byte to the address. For bank switching mappers a write to ROM
	// space is a write to a control register
	Write(addr uint16, data uint8) error

	// reset volatile areas of the cartridge. the bank state returns to the
	// power-on state and RAM is cleared. if the randSrc argument is not nil
	// then RAM is filled with random values instead
	Reset(randSrc *rand.Rand)

	NumBanks() int
	GetBank(addr uint16) BankInfo
}

// BankController is implemented by mappers with write-only bank switching
// registers. The values are the result of the registers, not the registers
// themselves.
type BankController interface {
	EffectiveROMBank() int
	EffectiveRAMBank() int
	RAMEnabled() bool
}

// CartRAMbus is implemented for cartridge mappers that have an addressable RAM
// area.
//
// Note that for convenience, some mappers will implement this interface but
// have no RAM for the specific cartridge. In these case GetRAM() will return
// nil.
type CartRAMbus interface {
	GetRAM() []CartRAM

	// Update the value at the index of the specified RAM bank. Note that this
	// is not the address; it refers to the Data array as returned by GetRAM()
	PutRAM(bank int, idx int, data uint8)
}

// CartRAM represents a single bank of RAM in the cartridge. The Data field is
// a copy of the actual bytes in the cartridge RAM.
type CartRAM struct {
	Label  string
	Origin uint16
	Data   []uint8
	Mapped bool
}

// BankInfo is used to identify a cartridge bank. In some instance a bank can
// be identified by it's bank number only. In other contexts more detail is
// required and so BankInfo is used instead.
type BankInfo struct {
	Number int

	// is cartridge bank writable
	IsRAM bool

	// if the address used to generate the BankInfo is not a cartridge address
	NonCart bool
}

func (b BankInfo) String() string {
	if b.NonCart {
		return "-"
	}
	if b.IsRAM {
		return fmt.Sprintf("%dR", b.Number)
	}
	return fmt.Sprintf("%d", b.Number)
}
