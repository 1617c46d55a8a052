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

package console

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// InternalMemory is the memory inside the console: two banks of work RAM,
// high RAM and the interrupt flag and interrupt enable registers. Addresses
// claimed by the I/O register block are delegated to it before any other
// consideration.
//
// Word access must fall entirely within one of the RAM areas. Word access of
// the interrupt registers is not supported.
type InternalMemory struct {
	IO *IORegisters

	areas []*ram

	interruptFlag   uint8
	interruptEnable uint8
}

// NewInternalMemory is the preferred method of initialisation for the
// InternalMemory type. Memory is zeroed.
func NewInternalMemory(io *IORegisters) *InternalMemory {
	return &InternalMemory{
		IO: io,
		areas: []*ram{
			newRAM("WRAM0", memorymap.OriginWRAM0, memorymap.MemtopWRAM0),
			newRAM("WRAMX", memorymap.OriginWRAMX, memorymap.MemtopWRAMX),
			newRAM("HRAM", memorymap.OriginHRAM, memorymap.MemtopHRAM),
		},
	}
}

func (mem *InternalMemory) String() string {
	s := strings.Builder{}
	for _, a := range mem.areas {
		s.WriteString(a.String())
		s.WriteString("\n")
	}
	s.WriteString(fmt.Sprintf("IF=%02x IE=%02x\n", mem.interruptFlag, mem.interruptEnable))
	s.WriteString(mem.IO.Timer.String())
	return s.String()
}

// Reset clears all memory and registers. If randSrc is not nil then memory is
// filled with random values instead. The interrupt registers are always
// cleared.
func (mem *InternalMemory) Reset(randSrc *rand.Rand) {
	for _, a := range mem.areas {
		a.reset(randSrc)
	}
	mem.interruptFlag = 0
	mem.interruptEnable = 0
	mem.IO.Reset(randSrc)
}

// area returns the RAM area that contains the address. returns nil if the
// address is not in any RAM area.
func (mem *InternalMemory) area(address uint16) *ram {
	for _, a := range mem.areas {
		if a.contains(address) {
			return a
		}
	}
	return nil
}

// Contains implements the bus.Device interface.
func (mem *InternalMemory) Contains(address uint16) bool {
	if mem.IO.Contains(address) {
		return true
	}
	if address == addresses.IF || address == addresses.IE {
		return true
	}
	return mem.area(address) != nil
}

// Read implements the bus.Device interface.
func (mem *InternalMemory) Read(address uint16) (uint8, error) {
	if mem.IO.Contains(address) {
		return mem.IO.Read(address)
	}

	switch address {
	case addresses.IF:
		return mem.interruptFlag, nil
	case addresses.IE:
		return mem.interruptEnable, nil
	}

	if a := mem.area(address); a != nil {
		return a.read(address), nil
	}

	return 0, curated.Errorf(bus.AddressError, address)
}

// Write implements the bus.Device interface.
func (mem *InternalMemory) Write(address uint16, data uint8) error {
	if mem.IO.Contains(address) {
		return mem.IO.Write(address, data)
	}

	switch address {
	case addresses.IF:
		mem.interruptFlag = data
		return nil
	case addresses.IE:
		mem.interruptEnable = data
		return nil
	}

	if a := mem.area(address); a != nil {
		a.write(address, data)
		return nil
	}

	return curated.Errorf(bus.AddressError, address)
}

// ReadWord implements the bus.Device interface.
func (mem *InternalMemory) ReadWord(address uint16) (uint16, error) {
	if mem.IO.Contains(address) {
		return mem.IO.ReadWord(address)
	}

	a := mem.area(address)
	if a == nil || !a.contains(address+1) {
		return 0, curated.Errorf(bus.AddressError, address)
	}

	return uint16(a.read(address+1))<<8 | uint16(a.read(address)), nil
}

// WriteWord implements the bus.Device interface.
func (mem *InternalMemory) WriteWord(address uint16, data uint16) error {
	if mem.IO.Contains(address) {
		return mem.IO.WriteWord(address, data)
	}

	a := mem.area(address)
	if a == nil || !a.contains(address+1) {
		return curated.Errorf(bus.AddressError, address)
	}

	a.write(address, uint8(data))
	a.write(address+1, uint8(data>>8))

	return nil
}
