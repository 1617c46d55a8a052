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

// Package terminal is a thin wrapper for "github.com/pkg/term/termios". It
// answers whether a file is connected to a terminal and provides a way of
// discarding pending terminal input.
//
// The monitor uses it to decide whether to print a prompt before reading each
// command.
package terminal

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// IsInteractive returns true if the file is connected to a terminal. The test
// is whether the terminal attributes of the file can be retrieved.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// Flush discards any input that has been received by the terminal but not
// yet read. Returns an error if the file is not a terminal.
func Flush(f *os.File) error {
	return termios.Tcflush(f.Fd(), termios.TCIFLUSH)
}
