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

package memory

import (
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/logger"
)

// OverlapError is returned by NewBus() when two devices claim the same
// address. Values are the address and the names of the two devices.
const OverlapError = "address %#04x claimed by both %s and %s"

// Unmapped is the owner name of an address that is claimed by no device.
const Unmapped = "unmapped"

// Named associates a bus.Device with a name. The name is used in error
// messages and in the memory map summary.
type Named struct {
	Name   string
	Device bus.Device
}

// Bus dispatches accesses to a list of devices. Devices are consulted in the
// order they were given to NewBus().
type Bus struct {
	devices []Named
}

// NewBus is the preferred method of initialisation for the Bus type. Every
// address in the address space is checked and no two devices may claim the
// same address.
func NewBus(devices ...Named) (*Bus, error) {
	for a := uint32(0); a <= uint32(memorymap.Memtop); a++ {
		owner := ""
		for _, d := range devices {
			if d.Device.Contains(uint16(a)) {
				if owner != "" {
					return nil, curated.Errorf(OverlapError, uint16(a), owner, d.Name)
				}
				owner = d.Name
			}
		}
	}

	names := make([]string, 0, len(devices))
	for _, d := range devices {
		names = append(names, d.Name)
	}
	logger.Logf(logger.Allow, "memory", "bus composed of %s", strings.Join(names, ", "))

	return &Bus{devices: devices}, nil
}

func (b *Bus) String() string {
	return memorymap.SummaryFunc(b.Owner)
}

// find returns the device that claims the address.
func (b *Bus) find(address uint16) (bus.Device, bool) {
	for _, d := range b.devices {
		if d.Device.Contains(address) {
			return d.Device, true
		}
	}
	return nil, false
}

// Owner returns the name of the device that claims the address. Returns
// Unmapped if no device claims the address.
func (b *Bus) Owner(address uint16) string {
	for _, d := range b.devices {
		if d.Device.Contains(address) {
			return d.Name
		}
	}
	return Unmapped
}

// Contains implements the bus.Device interface.
func (b *Bus) Contains(address uint16) bool {
	_, ok := b.find(address)
	return ok
}

// Read implements the bus.Device interface.
func (b *Bus) Read(address uint16) (uint8, error) {
	d, ok := b.find(address)
	if !ok {
		return 0, curated.Errorf(bus.AddressError, address)
	}
	return d.Read(address)
}

// ReadWord implements the bus.Device interface. The word is handled by the
// device that claims the low byte.
func (b *Bus) ReadWord(address uint16) (uint16, error) {
	d, ok := b.find(address)
	if !ok {
		return 0, curated.Errorf(bus.AddressError, address)
	}
	return d.ReadWord(address)
}

// Write implements the bus.Device interface.
func (b *Bus) Write(address uint16, data uint8) error {
	d, ok := b.find(address)
	if !ok {
		return curated.Errorf(bus.AddressError, address)
	}
	return d.Write(address, data)
}

// WriteWord implements the bus.Device interface. The word is handled by the
// device that claims the low byte.
func (b *Bus) WriteWord(address uint16, data uint16) error {
	d, ok := b.find(address)
	if !ok {
		return curated.Errorf(bus.AddressError, address)
	}
	return d.WriteWord(address, data)
}

// Peek implements the bus.DebuggerBus interface. None of the devices change
// state on a read so Peek is the same as Read.
func (b *Bus) Peek(address uint16) (uint8, error) {
	return b.Read(address)
}

// Poke implements the bus.DebuggerBus interface.
func (b *Bus) Poke(address uint16, value uint8) error {
	return b.Write(address, value)
}
