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

package cartridge

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopherdmg/curated"
)

// HeaderError is the pattern used for all errors caused by a malformed
// cartridge header.
const HeaderError = "cartridge header: %v"

// offsets of the header fields in the cartridge image.
const (
	headerTitle       = 0x134
	headerTitleEnd    = 0x144
	headerBanking     = 0x147
	headerROMSize     = 0x148
	headerRAMSize     = 0x149
	headerChecksum    = 0x14d
	headerChecksumEnd = headerChecksum - 1

	// HeaderLen is the minimum length of a cartridge image
	HeaderLen = 0x150
)

// Banking identifies the family of the bank controller in the cartridge.
type Banking int

// List of Banking values.
const (
	BankingNone Banking = iota
	BankingMBC1
	BankingUnsupported
)

// BankingKind is the bank controller as declared by the cartridge header. The
// header code is preserved so that an unsupported kind can be reported.
type BankingKind struct {
	Banking Banking
	Code    uint8
}

func (k BankingKind) String() string {
	switch k.Banking {
	case BankingNone:
		return "NONE"
	case BankingMBC1:
		return "MBC1"
	}
	return fmt.Sprintf("UNSUPPORTED(%#02x)", k.Code)
}

func decodeBanking(code uint8) BankingKind {
	switch code {
	case 0x00, 0x08, 0x09:
		return BankingKind{Banking: BankingNone, Code: code}
	case 0x01, 0x02, 0x03:
		return BankingKind{Banking: BankingMBC1, Code: code}
	}
	return BankingKind{Banking: BankingUnsupported, Code: code}
}

// RAM sizes in bytes indexed by the header RAM size code.
var ramSizes = []int{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// largest known ROM size code. codes above this have no meaning
const maxROMSizeCode = 0x08

// Header is the static information in the cartridge image. It is a value
// type and is never changed after parsing.
type Header struct {
	// the title field truncated at the first zero byte
	Title string

	Banking BankingKind

	// the ROM size declared by the header. zero if the code is unknown.
	// the declared size is for information only; the actual size of the ROM is
	// the size of the image
	ROMSizeCode uint8
	ROMSize     int

	RAMSizeCode uint8
	RAMSize     int

	// header checksum as found in the image and whether it agrees with the
	// checksum computed from the other header bytes
	Checksum      uint8
	ChecksumValid bool
}

func (h Header) String() string {
	return fmt.Sprintf("%q %s ROM=%dK RAM=%dK", h.Title, h.Banking, h.ROMSize/1024, h.RAMSize/1024)
}

// ParseHeader decodes the header from a cartridge image. The image must be at
// least HeaderLen bytes long.
//
// An unrecognised banking kind is not an error. It is up to the caller to
// decide what to do with BankingUnsupported.
func ParseHeader(data []uint8) (Header, error) {
	if len(data) < HeaderLen {
		return Header{}, curated.Errorf(HeaderError, fmt.Sprintf("image too short (%d bytes)", len(data)))
	}

	var h Header

	title := data[headerTitle:headerTitleEnd]
	for i, b := range title {
		if b == 0x00 {
			title = title[:i]
			break
		}
	}
	if !utf8.Valid(title) {
		return Header{}, curated.Errorf(HeaderError, "title is not valid text")
	}
	h.Title = string(title)
	for _, r := range h.Title {
		if unicode.IsControl(r) {
			return Header{}, curated.Errorf(HeaderError, "title is not valid text")
		}
	}

	h.Banking = decodeBanking(data[headerBanking])

	h.ROMSizeCode = data[headerROMSize]
	if h.ROMSizeCode <= maxROMSizeCode {
		h.ROMSize = (32 * 1024) << h.ROMSizeCode
	}

	h.RAMSizeCode = data[headerRAMSize]
	if int(h.RAMSizeCode) >= len(ramSizes) {
		return Header{}, curated.Errorf(HeaderError, fmt.Sprintf("unknown RAM size code (%#02x)", h.RAMSizeCode))
	}
	h.RAMSize = ramSizes[h.RAMSizeCode]

	h.Checksum = data[headerChecksum]
	h.ChecksumValid = HeaderChecksum(data) == h.Checksum

	return h, nil
}

// HeaderChecksum computes the header checksum over the bytes 0x134 to 0x14c.
// The data must be at least HeaderLen bytes long.
func HeaderChecksum(data []uint8) uint8 {
	var x uint8
	for _, b := range data[headerTitle : headerChecksumEnd+1] {
		x = x - b - 1
	}
	return x
}
