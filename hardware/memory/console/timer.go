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

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
)

// Timer is the timer control register (TAC). It is a single register device
// and word access is not supported.
//
// The value of the register is held verbatim. The ClockSelect() and Enabled()
// functions decode the value for consumers of the register.
type Timer struct {
	tac uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

func (tmr *Timer) String() string {
	if tmr.Enabled() {
		return fmt.Sprintf("TAC=%02x (%dHz)", tmr.tac, tmr.ClockSelect())
	}
	return fmt.Sprintf("TAC=%02x (stopped)", tmr.tac)
}

// frequencies for each value of the clock select bits
var clockSelect = [4]int{4096, 262144, 65536, 16384}

// ClockSelect returns the frequency in Hz selected by the lower two bits of
// the register.
func (tmr *Timer) ClockSelect() int {
	return clockSelect[tmr.tac&0x03]
}

// Enabled returns true if bit 2 of the register is set.
func (tmr *Timer) Enabled() bool {
	return tmr.tac&0x04 == 0x04
}

// Reset the register to zero.
func (tmr *Timer) Reset() {
	tmr.tac = 0
}

// Contains implements the bus.Device interface.
func (tmr *Timer) Contains(address uint16) bool {
	return address == addresses.TAC
}

// Read implements the bus.Device interface.
func (tmr *Timer) Read(address uint16) (uint8, error) {
	if address != addresses.TAC {
		return 0, curated.Errorf(bus.AddressError, address)
	}
	return tmr.tac, nil
}

// Write implements the bus.Device interface.
func (tmr *Timer) Write(address uint16, data uint8) error {
	if address != addresses.TAC {
		return curated.Errorf(bus.AddressError, address)
	}
	tmr.tac = data
	return nil
}

// ReadWord implements the bus.Device interface. Word access is not supported.
func (tmr *Timer) ReadWord(address uint16) (uint16, error) {
	return 0, curated.Errorf(bus.OperationError, "word read of timer register", address)
}

// WriteWord implements the bus.Device interface. Word access is not supported.
func (tmr *Timer) WriteWord(address uint16, _ uint16) error {
	return curated.Errorf(bus.OperationError, "word write of timer register", address)
}
