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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	return SummaryFunc(func(a uint16) string {
		return MapAddress(a).String()
	})
}

// SummaryFunc is like Summary() but the name of each address is decided by the
// supplied function. Contiguous addresses with the same name are collapsed
// into a single line.
func SummaryFunc(name func(uint16) string) string {
	s := strings.Builder{}

	sa := uint16(0)
	current := name(sa)

	// loop variable is wider than uint16 to avoid overflow at Memtop
	for a := uint32(1); a <= uint32(Memtop); a++ {
		n := name(uint16(a))
		if n != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current))
			current = n
			sa = uint16(a)
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, Memtop, current))

	return s.String()
}
