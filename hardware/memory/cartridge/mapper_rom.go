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

// rom implements the mapper.CartMapper interface for cartridges with no bank
// controller. The first 32k of the image is fixed in the address range
// 0x0000 to 0x7fff.
//
// Header codes 0x08 and 0x09 indicate a ROM only cartridge with RAM. The RAM
// is always enabled and appears at 0xa000. RAM smaller than 8k is mirrored
// across the area.
type rom struct {
	mappingID   string
	description string

	prefs *preferences.Preferences

	data []uint8
	ram  []uint8
}

func newROM(prefs *preferences.Preferences, data []uint8, ramSize int) (mapper.CartMapper, error) {
	cart := &rom{
		mappingID:   "ROM",
		description: "no bank controller",
		prefs:       prefs,
		data:        data,
	}

	if ramSize > 0 {
		cart.ram = make([]uint8, ramSize)
	}

	return cart, nil
}

func (cart *rom) String() string {
	if cart.ram == nil {
		return fmt.Sprintf("%s [%s]", cart.mappingID, cart.description)
	}
	return fmt.Sprintf("%s [%s] RAM: %dK", cart.mappingID, cart.description, len(cart.ram)/1024)
}

// ID implements the mapper.CartMapper interface.
func (cart *rom) ID() string {
	return cart.mappingID
}

// Contains implements the mapper.CartMapper interface.
func (cart *rom) Contains(addr uint16) bool {
	if addr <= memorymap.MemtopROMX {
		return true
	}
	return cart.ram != nil && addr >= memorymap.OriginCartRAM && addr <= memorymap.MemtopCartRAM
}

// Read implements the mapper.CartMapper interface.
func (cart *rom) Read(addr uint16) (uint8, error) {
	if addr <= memorymap.MemtopROMX {
		// images shorter than 32k leave the remainder of the area undriven
		if int(addr) >= len(cart.data) {
			return cart.prefs.OpenBusValue(), nil
		}
		return cart.data[addr], nil
	}

	if cart.Contains(addr) {
		return cart.ram[int(addr-memorymap.OriginCartRAM)%len(cart.ram)], nil
	}

	return 0, curated.Errorf(bus.AddressError, addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *rom) Write(addr uint16, data uint8) error {
	if addr <= memorymap.MemtopROMX {
		return curated.Errorf(bus.OperationError, "write to ROM", addr)
	}

	if cart.Contains(addr) {
		cart.ram[int(addr-memorymap.OriginCartRAM)%len(cart.ram)] = data
		return nil
	}

	return curated.Errorf(bus.AddressError, addr)
}

// Reset implements the mapper.CartMapper interface.
func (cart *rom) Reset(randSrc *rand.Rand) {
	for i := range cart.ram {
		if randSrc != nil {
			cart.ram[i] = uint8(randSrc.Intn(0x100))
		} else {
			cart.ram[i] = 0
		}
	}
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *rom) NumBanks() int {
	return 2
}

// GetBank implements the mapper.CartMapper interface.
func (cart *rom) GetBank(addr uint16) mapper.BankInfo {
	switch {
	case addr <= memorymap.MemtopROM0:
		return mapper.BankInfo{Number: 0}
	case addr <= memorymap.MemtopROMX:
		return mapper.BankInfo{Number: 1}
	case cart.Contains(addr):
		return mapper.BankInfo{Number: 0, IsRAM: true}
	}
	return mapper.BankInfo{NonCart: true}
}

// GetRAM implements the mapper.CartRAMbus interface.
func (cart *rom) GetRAM() []mapper.CartRAM {
	if cart.ram == nil {
		return nil
	}

	r := make([]mapper.CartRAM, 1)
	r[0] = mapper.CartRAM{
		Label:  "RAM",
		Origin: memorymap.OriginCartRAM,
		Data:   make([]uint8, len(cart.ram)),
		Mapped: true,
	}
	copy(r[0].Data, cart.ram)

	return r
}

// PutRAM implements the mapper.CartRAMbus interface.
func (cart *rom) PutRAM(_ int, idx int, data uint8) {
	if idx >= 0 && idx < len(cart.ram) {
		cart.ram[idx] = data
	}
}
