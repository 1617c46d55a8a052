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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/test"
)

func TestHelp(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-help"}, strings.NewReader(""), out), exitOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "INFO"))
}

func TestParseError(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, strings.NewReader(""), out), exitParseError)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error: "))
}

func TestCartridgeRequired(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"info"}, strings.NewReader(""), out), exitModeError)
	test.ExpectEquality(t, out.String(), "* error in INFO mode: cartridge required for INFO mode\n")
}

func TestTooManyArguments(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"peek", "a.gb", "b.gb"}, strings.NewReader(""), out), exitModeError)
	test.ExpectEquality(t, out.String(), "* error in PEEK mode: too many arguments for PEEK mode\n")
}

func TestVersion(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"version"}, strings.NewReader(""), out), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "GopherDMG "))
}
