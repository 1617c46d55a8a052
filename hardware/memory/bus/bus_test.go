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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/test"
)

// flat is a simple device covering the addresses [origin, origin+len(data)).
type flat struct {
	origin uint16
	data   []uint8
	writes []uint16
}

func (f *flat) Contains(address uint16) bool {
	return address >= f.origin && int(address-f.origin) < len(f.data)
}

func (f *flat) Read(address uint16) (uint8, error) {
	if !f.Contains(address) {
		return 0, curated.Errorf(bus.AddressError, address)
	}
	return f.data[address-f.origin], nil
}

func (f *flat) ReadWord(address uint16) (uint16, error) {
	return bus.ReadWordBytes(f, address)
}

func (f *flat) Write(address uint16, data uint8) error {
	if !f.Contains(address) {
		return curated.Errorf(bus.AddressError, address)
	}
	f.writes = append(f.writes, address)
	f.data[address-f.origin] = data
	return nil
}

func (f *flat) WriteWord(address uint16, data uint16) error {
	return bus.WriteWordBytes(f, address, data)
}

func TestWordDecomposition(t *testing.T) {
	f := &flat{origin: 0x100, data: make([]uint8, 4)}
	test.ExpectImplements(t, f, (bus.Device)(nil))

	test.ExpectSuccess(t, f.WriteWord(0x100, 0xbeef))
	test.ExpectEquality(t, f.data[0], 0xef)
	test.ExpectEquality(t, f.data[1], 0xbe)

	// low byte is written first
	test.ExpectEquality(t, len(f.writes), 2)
	test.ExpectEquality(t, f.writes[0], 0x100)
	test.ExpectEquality(t, f.writes[1], 0x101)

	w, err := f.ReadWord(0x100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0xbeef)
}

func TestWordOutOfRange(t *testing.T) {
	f := &flat{origin: 0x100, data: make([]uint8, 4)}

	// high byte falls outside the device
	_, err := f.ReadWord(0x103)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressError))

	// the low byte is written before the high byte fails
	err = f.WriteWord(0x103, 0x1234)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressError))
	test.ExpectEquality(t, f.data[3], 0x34)

	// low byte failure prevents the high byte write
	f.writes = f.writes[:0]
	err = f.WriteWord(0x0ff, 0x1234)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(f.writes), 0)
}

func TestErrorMessages(t *testing.T) {
	err := curated.Errorf(bus.AddressError, uint16(0xfea0))
	test.ExpectEquality(t, err.Error(), "invalid address (0xfea0)")

	err = curated.Errorf(bus.OperationError, "write to ROM", uint16(0x0100))
	test.ExpectEquality(t, err.Error(), "invalid operation: write to ROM (0x0100)")
}
