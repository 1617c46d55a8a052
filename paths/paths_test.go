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

package paths_test

import (
	"regexp"
	"testing"

	"github.com/jetsetilly/gopherdmg/paths"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestPaths(t *testing.T) {
	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherdmg/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherdmg/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherdmg/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherdmg")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "SUPER GAME")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_SUPER_GAME_\d{8}_\d{6}$`).MatchString(fn))

	fn = paths.UniqueFilename("memviz", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_\d{8}_\d{6}$`).MatchString(fn))
}
