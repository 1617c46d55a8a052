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

// Package monitor is a simple line based interface to the memory of the
// emulated DMG. It allows the user to peek and poke memory through the
// composed memory, exactly as the CPU would see it, and to inspect the
// register file and the state of the cartridge.
//
// Commands are not case sensitive. Addresses and values can be given in
// hexadecimal with the 0x or $ prefix, in decimal, or for addresses, as the
// canonical name of a hardware register.
//
//	PEEK address [count]
//	PEEKW address
//	POKE address value
//	POKEW address value
//	BANK
//	REGS
//	MAP
//	CART
//	LOG [count]
//	HELP
//	QUIT
//
// Errors from the memory are printed and the monitor continues.
package monitor
