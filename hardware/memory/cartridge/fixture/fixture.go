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

// Package fixture creates cartridge images for use in tests. The images have
// a valid header and a marker byte at the start of every 16k bank so that the
// currently mapped bank can be identified by reading from the start of the
// bank area.
package fixture

// Spec describes the cartridge image to create.
type Spec struct {
	Title string

	// banking kind header code. eg. 0x00 for ROM only, 0x01 for MBC1
	Kind uint8

	// number of 16k ROM banks. the image will be exactly this size. values
	// less than 1 are treated as 2
	Banks int

	// RAM size header code
	RAMCode uint8

	// the header checksum is correct unless BadChecksum is true
	BadChecksum bool
}

// BankMarker returns the value written to the first byte of the bank. The
// marker for bank zero is not written because it overlaps the restart
// vectors. Markers are distinct for the first 255 banks.
func BankMarker(bank int) uint8 {
	return uint8(bank) ^ 0xa5
}

// Image creates a cartridge image according to the Spec.
func Image(s Spec) []uint8 {
	banks := s.Banks
	if banks < 1 {
		banks = 2
	}

	data := make([]uint8, banks*0x4000)

	for b := 1; b < banks; b++ {
		data[b*0x4000] = BankMarker(b)
	}

	// something to find at the start of bank zero
	data[0x0000] = 0x3c
	data[0x0001] = 0xc9

	// entry point: nop; jp 0x0150
	data[0x0100] = 0x00
	data[0x0101] = 0xc3
	data[0x0102] = 0x50
	data[0x0103] = 0x01

	copy(data[0x134:0x144], s.Title)
	data[0x147] = s.Kind

	// ROM size code. the declared size matches the image if the number of
	// banks is a power of two
	code := uint8(0)
	for (0x8000 << code) < len(data) {
		code++
	}
	data[0x148] = code
	data[0x149] = s.RAMCode

	var x uint8
	for _, b := range data[0x134:0x14d] {
		x = x - b - 1
	}
	if s.BadChecksum {
		x++
	}
	data[0x14d] = x

	return data
}
