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

// Package cartridge fully implements loading and mapping of cartridge memory.
//
// The cartridge image is read with the cartridgeloader package. The header of
// the image is parsed by ParseHeader() and the banking kind in the header
// decides which mapper is used. Currently supported banking kinds are:
//
//	ROM only		header codes 0x00, 0x08, 0x09
//	MBC1			header codes 0x01, 0x02, 0x03
//
// Any other banking kind causes the load to fail with the UnsupportedBanking
// error.
//
// The Cartridge type is the front end for the mapper and implements the
// bus.Device and bus.DebuggerBus interfaces.
package cartridge
