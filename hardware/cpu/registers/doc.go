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

// Package registers implements the register file of the DMG CPU: the eight
// bit registers A, B, C, D, E, H and L, the flags register, the program
// counter and the stack pointer.
//
// The registers B and C, D and E, and H and L are also accessible as 16 bit
// pairs. The pairs are not separate storage. Setting a pair sets both of the
// eight bit registers and reading a pair combines the two registers, with the
// first named register as the high byte:
//
//	r.SetHL(0xbeef)
//	r.H == 0xbe
//	r.L == 0xef
//
// The flags register is a struct of bool values. Flags.Value() and
// Flags.FromValue() convert to and from the conventional bit layout of the F
// register.
//
// Instruction semantics are not part of the package.
package registers
