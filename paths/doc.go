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

// Package paths contains functions to prepare paths to GopherDMG resources.
//
// The ResourcePath() function returns the path of a resource file (for
// example, the preferences file) in the resource directory. In development
// builds the resource directory is ".gopherdmg" in the current directory. In
// release builds (build tag "release") it is the "gopherdmg" directory in the
// user's config directory, as returned by os.UserConfigDir(). The release
// version creates the directory if it does not exist.
//
// The UniqueFilename() function creates a filename, based on the current
// time, for files produced by the program (eg. memviz output).
package paths
