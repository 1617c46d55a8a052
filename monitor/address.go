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

package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
)

// addressInfo contains everything useful to know about an address. The
// String() function provides a normalised presentation of that information.
type addressInfo struct {
	address      uint16
	addressLabel string
	owner        string
	bank         string

	// the value at the address, if it has been seen. the boolean value
	// indicates whether value is valid or not
	value     uint16
	valueSeen bool
	word      bool
}

func (inf addressInfo) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x", inf.address))
	if inf.addressLabel != "" {
		s.WriteString(fmt.Sprintf(" (%s)", inf.addressLabel))
	}
	if inf.owner != "" {
		s.WriteString(fmt.Sprintf(" :: %s", inf.owner))
	}
	if inf.bank != "" {
		s.WriteString(fmt.Sprintf(" [bank %s]", inf.bank))
	}
	if inf.valueSeen {
		if inf.word {
			s.WriteString(fmt.Sprintf(" -> %#04x", inf.value))
		} else {
			s.WriteString(fmt.Sprintf(" -> %#02x", inf.value))
		}
	}
	return s.String()
}

// parseAddress allows addressing by register name in addition to numerically.
func parseAddress(s string) (uint16, error) {
	if a, ok := addresses.Lookup(s); ok {
		return a, nil
	}
	v, err := parseNumber(s, 16)
	if err != nil {
		return 0, curated.Errorf("monitor: %v", fmt.Sprintf("unrecognised address (%s)", s))
	}
	return uint16(v), nil
}

// parseValue parses a numeric value of the specified bit size.
func parseValue(s string, bits int) (uint16, error) {
	v, err := parseNumber(s, bits)
	if err != nil {
		return 0, curated.Errorf("monitor: %v", fmt.Sprintf("value not valid for %d bits (%s)", bits, s))
	}
	return uint16(v), nil
}

func parseNumber(s string, bits int) (uint64, error) {
	if strings.HasPrefix(s, "$") {
		return strconv.ParseUint(s[1:], 16, bits)
	}
	return strconv.ParseUint(s, 0, bits)
}
