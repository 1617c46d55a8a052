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

package cartridge

import (
	"fmt"
	"math/rand"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
)

// The MBC1 has four write-only registers, each occupying an 8k slice of the
// ROM area:
//
//	0000-1fff	RAM enable. 0x0a in the lower nibble enables RAM, anything
//			else disables it
//	2000-3fff	ROM bank, lower 5 bits. a value of zero is stored as one
//	4000-5fff	bank select, 2 bits. the upper ROM bank bits in ROM mode
//			or the RAM bank in RAM mode
//	6000-7fff	banking mode. bit 0 selects ROM mode (0) or RAM mode (1)
//
// Reads of 0000-3fff always come from bank zero. Reads of 4000-7fff come from
// the effective ROM bank. The effective bank wraps around the number of 16k
// banks in the image.
//
// RAM at a000-bfff is only accessible when enabled. Disabled RAM reads as the
// open bus value and writes to it are ignored. A RAM bank beyond the size of
// the RAM behaves as disabled RAM. RAM smaller than a single 8k bank is
// mirrored within bank zero.

type bankingMode int

const (
	romMode bankingMode = iota
	ramMode
)

func (m bankingMode) String() string {
	if m == ramMode {
		return "RAM mode"
	}
	return "ROM mode"
}

// the register values of the MBC1. none of these values can be read directly
// by the CPU
type mbc1State struct {
	ramEnabled bool
	mode       bankingMode
	romBankLow uint8
	bankSelect uint8
}

func (s *mbc1State) reset() {
	s.ramEnabled = false
	s.mode = romMode
	s.romBankLow = 1
	s.bankSelect = 0
}

type mbc1 struct {
	mappingID   string
	description string

	prefs *preferences.Preferences

	data     []uint8
	numBanks int

	ram   []uint8
	state mbc1State
}

func newMBC1(prefs *preferences.Preferences, data []uint8, ramSize int) (mapper.CartMapper, error) {
	cart := &mbc1{
		mappingID:   "MBC1",
		description: "bank controller 1",
		prefs:       prefs,
		data:        data,
		numBanks:    len(data) / memorymap.ROMBankSize,
	}

	if cart.numBanks < 1 {
		cart.numBanks = 1
	}

	if ramSize > 0 {
		cart.ram = make([]uint8, ramSize)
	}

	cart.state.reset()

	return cart, nil
}

func (cart *mbc1) String() string {
	s := fmt.Sprintf("%s [%s] ROM bank: %d", cart.mappingID, cart.description, cart.EffectiveROMBank())
	if cart.ram != nil {
		s = fmt.Sprintf("%s RAM bank: %d", s, cart.EffectiveRAMBank())
		if !cart.state.ramEnabled {
			s = fmt.Sprintf("%s (disabled)", s)
		}
	}
	return fmt.Sprintf("%s %s", s, cart.state.mode)
}

// ID implements the mapper.CartMapper interface.
func (cart *mbc1) ID() string {
	return cart.mappingID
}

// Contains implements the mapper.CartMapper interface.
func (cart *mbc1) Contains(addr uint16) bool {
	return addr <= memorymap.MemtopROMX || (addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM)
}

// EffectiveROMBank implements the mapper.BankController interface.
func (cart *mbc1) EffectiveROMBank() int {
	bank := int(cart.state.romBankLow)
	if cart.state.mode == romMode {
		bank |= int(cart.state.bankSelect) << 5
	}
	return bank % cart.numBanks
}

// EffectiveRAMBank implements the mapper.BankController interface.
func (cart *mbc1) EffectiveRAMBank() int {
	if cart.state.mode == ramMode {
		return int(cart.state.bankSelect)
	}
	return 0
}

// RAMEnabled implements the mapper.BankController interface.
func (cart *mbc1) RAMEnabled() bool {
	return cart.state.ramEnabled
}

// ramIdx returns the index into the ram array for a cartridge RAM address.
// returns false if RAM is not accessible.
func (cart *mbc1) ramIdx(addr uint16) (int, bool) {
	if !cart.state.ramEnabled || len(cart.ram) == 0 {
		return 0, false
	}

	base := cart.EffectiveRAMBank() * memorymap.RAMBankSize
	if base >= len(cart.ram) {
		return 0, false
	}

	// only possible for RAM smaller than a bank
	idx := base + int(addr-memorymap.OriginCartRAM)
	if idx >= len(cart.ram) {
		idx %= len(cart.ram)
	}

	return idx, true
}

// Read implements the mapper.CartMapper interface.
func (cart *mbc1) Read(addr uint16) (uint8, error) {
	var idx int

	switch {
	case addr <= memorymap.MemtopROM0:
		idx = int(addr)
	case addr <= memorymap.MemtopROMX:
		idx = cart.EffectiveROMBank()*memorymap.ROMBankSize + int(addr-memorymap.OriginROMX)
	case addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM:
		if idx, ok := cart.ramIdx(addr); ok {
			return cart.ram[idx], nil
		}
		return cart.prefs.OpenBusValue(), nil
	default:
		return 0, curated.Errorf(bus.AddressError, addr)
	}

	// an image that isn't a whole number of banks
	if idx >= len(cart.data) {
		return cart.prefs.OpenBusValue(), nil
	}

	return cart.data[idx], nil
}

// Write implements the mapper.CartMapper interface.
func (cart *mbc1) Write(addr uint16, data uint8) error {
	switch {
	case addr <= 0x1fff:
		cart.state.ramEnabled = data&0x0f == 0x0a
	case addr <= 0x3fff:
		cart.state.romBankLow = data & 0x1f
		if cart.state.romBankLow == 0 {
			cart.state.romBankLow = 1
		}
	case addr <= 0x5fff:
		cart.state.bankSelect = data & 0x03
	case addr <= 0x7fff:
		cart.state.mode = bankingMode(data & 0x01)
	case addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM:
		if idx, ok := cart.ramIdx(addr); ok {
			cart.ram[idx] = data
		}
	default:
		return curated.Errorf(bus.AddressError, addr)
	}

	return nil
}

// Reset implements the mapper.CartMapper interface.
func (cart *mbc1) Reset(randSrc *rand.Rand) {
	cart.state.reset()
	for i := range cart.ram {
		if randSrc != nil {
			cart.ram[i] = uint8(randSrc.Intn(0x100))
		} else {
			cart.ram[i] = 0
		}
	}
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *mbc1) NumBanks() int {
	return cart.numBanks
}

// GetBank implements the mapper.CartMapper interface.
func (cart *mbc1) GetBank(addr uint16) mapper.BankInfo {
	switch {
	case addr <= memorymap.MemtopROM0:
		return mapper.BankInfo{Number: 0}
	case addr <= memorymap.MemtopROMX:
		return mapper.BankInfo{Number: cart.EffectiveROMBank()}
	case addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM:
		return mapper.BankInfo{Number: cart.EffectiveRAMBank(), IsRAM: true}
	}
	return mapper.BankInfo{NonCart: true}
}

// GetRAM implements the mapper.CartRAMbus interface.
func (cart *mbc1) GetRAM() []mapper.CartRAM {
	if cart.ram == nil {
		return nil
	}

	size := memorymap.RAMBankSize
	if len(cart.ram) < size {
		size = len(cart.ram)
	}

	r := make([]mapper.CartRAM, 0, len(cart.ram)/size)
	for i := 0; i*size < len(cart.ram); i++ {
		c := mapper.CartRAM{
			Label:  fmt.Sprintf("RAM bank %d", i),
			Origin: memorymap.OriginCartRAM,
			Data:   make([]uint8, size),
			Mapped: cart.state.ramEnabled && cart.EffectiveRAMBank() == i,
		}
		copy(c.Data, cart.ram[i*size:])
		r = append(r, c)
	}

	return r
}

// PutRAM implements the mapper.CartRAMbus interface.
func (cart *mbc1) PutRAM(bank int, idx int, data uint8) {
	size := memorymap.RAMBankSize
	if len(cart.ram) < size {
		size = len(cart.ram)
	}
	if idx < 0 || idx >= size {
		return
	}
	i := bank*size + idx
	if i >= 0 && i < len(cart.ram) {
		cart.ram[i] = data
	}
}
