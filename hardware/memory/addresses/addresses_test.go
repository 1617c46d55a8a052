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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestNames(t *testing.T) {
	test.ExpectEquality(t, addresses.Name(0xff07), "TAC")
	test.ExpectEquality(t, addresses.Name(addresses.IF), "IF")
	test.ExpectEquality(t, addresses.Name(addresses.IE), "IE")
	test.ExpectEquality(t, addresses.Name(0xff03), "")
	test.ExpectEquality(t, addresses.Name(0xc000), "")
}

func TestLookup(t *testing.T) {
	a, ok := addresses.Lookup("tac")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, addresses.TAC)

	a, ok = addresses.Lookup(" LCDC ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, 0xff40)

	_, ok = addresses.Lookup("VSYNC")
	test.ExpectFailure(t, ok)
}

func TestCanonicalIsReverse(t *testing.T) {
	test.ExpectEquality(t, len(addresses.Canonical), len(addresses.CanonicalSymbols))
	for a, n := range addresses.CanonicalSymbols {
		test.ExpectEquality(t, addresses.Canonical[n], a)
	}
}
