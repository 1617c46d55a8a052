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

import (
	"strings"
)

// Flags is the special purpose register that stores the flags of the CPU.
type Flags struct {
	Zero      bool
	Negative  bool
	HalfCarry bool
	Carry     bool
}

// Label returns the canonical name for the flags register.
func (fl Flags) Label() string {
	return "F"
}

func (fl Flags) String() string {
	s := strings.Builder{}

	if fl.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if fl.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if fl.HalfCarry {
		s.WriteRune('H')
	} else {
		s.WriteRune('h')
	}
	if fl.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset flags to initial state.
func (fl *Flags) Reset() {
	fl.FromValue(0)
}

// Value converts the Flags struct into the F register value. The lower four
// bits are always zero.
func (fl Flags) Value() uint8 {
	var v uint8

	if fl.Zero {
		v |= 0x80
	}
	if fl.Negative {
		v |= 0x40
	}
	if fl.HalfCarry {
		v |= 0x20
	}
	if fl.Carry {
		v |= 0x10
	}

	return v
}

// FromValue converts an 8 bit value (taken from the stack, for example) to
// the Flags struct receiver. The lower four bits are ignored.
func (fl *Flags) FromValue(v uint8) {
	fl.Zero = v&0x80 == 0x80
	fl.Negative = v&0x40 == 0x40
	fl.HalfCarry = v&0x20 == 0x20
	fl.Carry = v&0x10 == 0x10
}
