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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are first given to NewArgs() and then parsed with Parse(). After
// parsing, non-flag arguments can be retrieved with RemainingArgs() or
// GetArg():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "PEEK", "MONITOR")
//	log := md.AddBool("log", false, "echo log to stdout")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a command line argument that puts the program into a different
// mode of operation, each with its own set of flags. After a call to Parse()
// the Mode() function returns the selected mode. The first sub-mode given to
// AddSubModes() is the default mode, selected when the first non-flag argument
// is not a recognised mode. Comparisons of mode names are case insensitive.
//
// Calling NewMode() after a successful Parse() starts a new set of flags for
// the arguments remaining after the mode selector.
package modalflag
