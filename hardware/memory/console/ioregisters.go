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
	"math/rand"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// IORegisters is storage for the named hardware registers in the I/O area.
// Addresses in the area that are not named are not claimed. The interrupt
// flag register is named but it is owned by InternalMemory and is not
// claimed either.
//
// The registers are simple storage. The peripherals that would give meaning
// to the values are not emulated. The exception is the timer control
// register which is delegated to the Timer.
type IORegisters struct {
	Timer *Timer

	regs [memorymap.MemtopIO - memorymap.OriginIO + 1]uint8
}

// NewIORegisters is the preferred method of initialisation for the
// IORegisters type.
func NewIORegisters(timer *Timer) *IORegisters {
	return &IORegisters{
		Timer: timer,
	}
}

// Reset all registers to zero, or to random values if randSrc is not nil.
func (io *IORegisters) Reset(randSrc *rand.Rand) {
	for i := range io.regs {
		if randSrc != nil {
			io.regs[i] = uint8(randSrc.Intn(0x100))
		} else {
			io.regs[i] = 0
		}
	}
	io.Timer.Reset()
}

// Contains implements the bus.Device interface.
func (io *IORegisters) Contains(address uint16) bool {
	if io.Timer.Contains(address) {
		return true
	}
	if !memorymap.IsArea(address, memorymap.IO) {
		return false
	}
	return address != addresses.IF && addresses.Name(address) != ""
}

// Read implements the bus.Device interface.
func (io *IORegisters) Read(address uint16) (uint8, error) {
	if io.Timer.Contains(address) {
		return io.Timer.Read(address)
	}
	if !io.Contains(address) {
		return 0, curated.Errorf(bus.AddressError, address)
	}
	return io.regs[address-memorymap.OriginIO], nil
}

// Write implements the bus.Device interface.
func (io *IORegisters) Write(address uint16, data uint8) error {
	if io.Timer.Contains(address) {
		return io.Timer.Write(address, data)
	}
	if !io.Contains(address) {
		return curated.Errorf(bus.AddressError, address)
	}
	io.regs[address-memorymap.OriginIO] = data
	return nil
}

// ReadWord implements the bus.Device interface. A word that touches the timer
// register is delegated to the timer, which will reject it.
func (io *IORegisters) ReadWord(address uint16) (uint16, error) {
	if io.Timer.Contains(address) || io.Timer.Contains(address+1) {
		return io.Timer.ReadWord(address)
	}
	return bus.ReadWordBytes(io, address)
}

// WriteWord implements the bus.Device interface. A word that touches the
// timer register is delegated to the timer, which will reject it.
func (io *IORegisters) WriteWord(address uint16, data uint16) error {
	if io.Timer.Contains(address) || io.Timer.Contains(address+1) {
		return io.Timer.WriteWord(address, data)
	}
	return bus.WriteWordBytes(io, address, data)
}
