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

// Package memory implements the composed address space of the DMG. Every
// access from the CPU goes through the composed memory which routes the
// access to the device that claims the address.
//
//	                               DEBUGGER / MONITOR
//
//	                                      |
//	                                debugger bus
//	                                      |
//	                                      \/
//
//	    CPU ---- bus.Device ---- MEMORY ---*---- Cartridge (ROM/MBC1)
//	                                       |
//	                                        ---- Internal memory
//	                                                  |
//	                                                   ---- I/O registers
//	                                                              |
//	                                                               ---- Timer
//
// The asterisk is the dispatch point. The cartridge is consulted first and
// then the internal memory. The internal memory delegates the I/O register
// area before considering its own areas, and the I/O register block delegates
// the timer control register.
//
// No two devices may claim the same address. This is checked when the memory
// is composed and the composition fails with OverlapError if the rule is
// broken.
//
// Addresses that are claimed by no device cause an AddressError from the bus
// package. There are gaps in the address space (VRAM, OAM, the echo area and
// the unusable area) because the devices that would fill them are not
// emulated.
package memory
