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

// Package addresses contains the canonical names of the DMG hardware
// registers in the 0xff00 to 0xffff range. The names are used by the I/O
// register block to decide which addresses it is responsible for and by the
// monitor so that the user can refer to a register by name.
//
// In addition to the canonical map, there is a sparse array Names created from
// the map at run time. The array is used by the emulator for speed purposes -
// accessing a map although very convenient, is noticeably slower than
// accessing a sparse array.
package addresses
