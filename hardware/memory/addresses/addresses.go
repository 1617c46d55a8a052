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

package addresses

import (
	"fmt"
	"strings"
)

// Interrupt registers. These live alongside the I/O registers but are owned
// by the internal memory rather than the I/O register block.
const (
	IF = uint16(0xff0f)
	IE = uint16(0xffff)
)

// TAC is the timer control register.
const TAC = uint16(0xff07)

// CanonicalSymbols lists all the named hardware register addresses along with
// the canonical names for those addresses.
var CanonicalSymbols = map[uint16]string{
	// joypad and serial
	0xff00: "P1",
	0xff01: "SB",
	0xff02: "SC",

	// timer
	0xff04: "DIV",
	0xff05: "TIMA",
	0xff06: "TMA",
	0xff07: "TAC",

	// interrupt flag
	0xff0f: "IF",

	// sound
	0xff10: "NR10",
	0xff11: "NR11",
	0xff12: "NR12",
	0xff13: "NR13",
	0xff14: "NR14",
	0xff16: "NR21",
	0xff17: "NR22",
	0xff18: "NR23",
	0xff19: "NR24",
	0xff1a: "NR30",
	0xff1b: "NR31",
	0xff1c: "NR32",
	0xff1d: "NR33",
	0xff1e: "NR34",
	0xff20: "NR41",
	0xff21: "NR42",
	0xff22: "NR43",
	0xff23: "NR44",
	0xff24: "NR50",
	0xff25: "NR51",
	0xff26: "NR52",

	// wave pattern ram
	0xff30: "WAVE0",
	0xff31: "WAVE1",
	0xff32: "WAVE2",
	0xff33: "WAVE3",
	0xff34: "WAVE4",
	0xff35: "WAVE5",
	0xff36: "WAVE6",
	0xff37: "WAVE7",
	0xff38: "WAVE8",
	0xff39: "WAVE9",
	0xff3a: "WAVEA",
	0xff3b: "WAVEB",
	0xff3c: "WAVEC",
	0xff3d: "WAVED",
	0xff3e: "WAVEE",
	0xff3f: "WAVEF",

	// lcd
	0xff40: "LCDC",
	0xff41: "STAT",
	0xff42: "SCY",
	0xff43: "SCX",
	0xff44: "LY",
	0xff45: "LYC",
	0xff46: "DMA",
	0xff47: "BGP",
	0xff48: "OBP0",
	0xff49: "OBP1",
	0xff4a: "WY",
	0xff4b: "WX",

	// boot rom disable
	0xff50: "BOOT",

	// interrupt enable
	0xffff: "IE",
}

// Names is a sparse array containing the canonical labels for the addresses
// 0xff00 to 0xffff, indexed by the low byte of the address. If the address is
// not named then the entry is the empty string.
var Names []string

// Canonical maps register names to addresses. It is the reverse of the
// CanonicalSymbols map.
var Canonical map[string]uint16

// this init() function create the Names array and Canonical map using the
// CanonicalSymbols map as a source
func init() {
	Names = make([]string, 0x100)
	Canonical = make(map[string]uint16, len(CanonicalSymbols))
	for k, v := range CanonicalSymbols {
		if k < 0xff00 {
			panic(fmt.Sprintf("addresses: register %s is outside of the register area", v))
		}
		Names[k&0xff] = v
		Canonical[v] = k
	}
}

// Name returns the canonical name for the address, or the empty string if the
// address is not a named register.
func Name(address uint16) string {
	if address < 0xff00 {
		return ""
	}
	return Names[address&0xff]
}

// Lookup returns the address of a named register. The name is not case
// sensitive.
func Lookup(name string) (uint16, bool) {
	a, ok := Canonical[strings.ToUpper(strings.TrimSpace(name))]
	return a, ok
}
