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

// Package console implements the memory that is internal to the console: work
// RAM, high RAM, the interrupt registers and the memory mapped I/O registers,
// including the timer control register.
//
// The InternalMemory type is the device that is attached to the composed
// memory. It delegates the I/O register area to the IORegisters type which in
// turn delegates the timer control register to the Timer type. Delegation
// always takes priority.
package console
