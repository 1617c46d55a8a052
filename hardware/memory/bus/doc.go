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

// Package bus defines the access contract shared by every addressable part of
// the memory system: the cartridge, the internal memory, the I/O register
// block and the composed memory itself.
//
// Addresses are 16 bit. Data is either a byte or a 16 bit little-endian word.
// A word at address A is made up of the byte at A (the low byte) and the byte
// at A+1 (the high byte). Devices that have no special word behaviour should
// use the ReadWordBytes() and WriteWordBytes() helpers, which decompose the
// word operation into two byte operations.
//
// Errors returned by a device should be created with the AddressError or
// OperationError patterns so that callers can classify them with
// curated.Is() and curated.Has().
//
// The DebuggerBus is for the exclusive use of debuggers and tools like the
// monitor. It is not used by the main emulation.
package bus
