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

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/logger"
)

// UnsupportedBanking is returned by NewCartridge() when the header specifies
// a bank controller that is not emulated.
const UnsupportedBanking = "unsupported banking kind (%s)"

// Cartridge defines the information and operations for a DMG cartridge.
type Cartridge struct {
	prefs *preferences.Preferences

	Filename string
	Hash     string

	header Header

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.CartMapper
}

// Sentinel filename and hash for an ejected cartridge.
const (
	ejectedName = "ejected"
	ejectedHash = "nohash"
)

// NewEjectedCartridge returns a cartridge that claims no addresses. It is
// used when there is no cartridge attached.
func NewEjectedCartridge(prefs *preferences.Preferences) *Cartridge {
	return &Cartridge{
		prefs:    prefs,
		Filename: ejectedName,
		Hash:     ejectedHash,
		mapper:   newEjected(),
	}
}

// NewCartridge loads the cartridge data and creates a cartridge with the
// mapper specified by the cartridge header. No cartridge is returned if there
// is an error.
func NewCartridge(prefs *preferences.Preferences, cartload cartridgeloader.Loader) (*Cartridge, error) {
	// the loader may have been prepared with data already
	if !cartload.HasLoaded() {
		err := cartload.Load()
		if err != nil {
			return nil, err
		}
	}

	hdr, err := ParseHeader(cartload.Data)
	if err != nil {
		return nil, err
	}

	if !hdr.ChecksumValid {
		if prefs.RejectBadChecksum.Get().(bool) {
			return nil, curated.Errorf(HeaderError, "checksum mismatch")
		}
		logger.Logf(logger.Allow, "cartridge", "header checksum mismatch (%#02x != %#02x)", hdr.Checksum, HeaderChecksum(cartload.Data))
	}

	if hdr.ROMSize != 0 && hdr.ROMSize != len(cartload.Data) {
		logger.Logf(logger.Allow, "cartridge", "header declares %d bytes of ROM but image is %d bytes", hdr.ROMSize, len(cartload.Data))
	}

	cart := &Cartridge{
		prefs:    prefs,
		Filename: cartload.Filename,
		Hash:     cartload.Hash,
		header:   hdr,
	}

	switch hdr.Banking.Banking {
	case BankingNone:
		cart.mapper, err = newROM(prefs, cartload.Data, hdr.RAMSize)
	case BankingMBC1:
		cart.mapper, err = newMBC1(prefs, cartload.Data, hdr.RAMSize)
	default:
		return nil, curated.Errorf(UnsupportedBanking, hdr.Banking)
	}
	if err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}

	logger.Logf(logger.Allow, "cartridge", "attached %s", cart)
	if cart.Hash != "" {
		logger.Logf(logger.Allow, "cartridge", "hash %s", cart.Hash)
	}

	return cart, nil
}

// Load reads the cartridge image at path and creates a cartridge for it. The
// hardware preferences are read from the default preferences file.
func Load(path string) (*Cartridge, error) {
	prefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}
	return NewCartridge(prefs, cartridgeloader.NewLoader(path))
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return ejectedName
	}
	return fmt.Sprintf("%s (%s)", cart.header, cart.mapper)
}

// Summary returns brief information about the cartridge. Two lines: first line
// is the path to the cartridge and the second line is information about the
// mapper, including bank information.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// Title returns the title of the cartridge as found in the header.
func (cart *Cartridge) Title() string {
	return cart.header.Title
}

// Header returns a copy of the cartridge header.
func (cart *Cartridge) Header() Header {
	return cart.header
}

// ID returns the mapper ID.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.Hash == ejectedHash
}

// Reset volatile areas of the cartridge. The bank controller returns to the
// power-on state. RAM is cleared or randomised depending on the RandomState
// preference.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset(cart.prefs.RandomSource())
}

// Contains implements the bus.Device interface.
func (cart *Cartridge) Contains(addr uint16) bool {
	return cart.mapper.Contains(addr)
}

// Read implements the bus.Device interface.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.Read(addr)
}

// ReadWord implements the bus.Device interface.
func (cart *Cartridge) ReadWord(addr uint16) (uint16, error) {
	return bus.ReadWordBytes(cart, addr)
}

// Write implements the bus.Device interface.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.Write(addr, data)
}

// WriteWord implements the bus.Device interface. For bank switching cartridges
// the word is two control writes, low byte first.
func (cart *Cartridge) WriteWord(addr uint16, data uint16) error {
	return bus.WriteWordBytes(cart, addr, data)
}

// Peek implements the bus.DebuggerBus interface.
func (cart *Cartridge) Peek(addr uint16) (uint8, error) {
	return cart.mapper.Read(addr)
}

// Poke implements the bus.DebuggerBus interface.
func (cart *Cartridge) Poke(addr uint16, data uint8) error {
	return cart.mapper.Write(addr, data)
}

// NumBanks returns the number of ROM banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// GetBank returns the current bank information for the specified address.
func (cart *Cartridge) GetBank(addr uint16) mapper.BankInfo {
	return cart.mapper.GetBank(addr)
}

// GetBankController returns the bank controller of the cartridge. Returns
// false if the cartridge has no bank controller.
func (cart *Cartridge) GetBankController() (mapper.BankController, bool) {
	bc, ok := cart.mapper.(mapper.BankController)
	return bc, ok
}

// GetRAM returns a copy of the cartridge RAM. Returns nil if the cartridge
// has no RAM.
func (cart *Cartridge) GetRAM() []mapper.CartRAM {
	if r, ok := cart.mapper.(mapper.CartRAMbus); ok {
		return r.GetRAM()
	}
	return nil
}

// PutRAM changes a single byte of cartridge RAM. The idx argument is an index
// into the Data field of the CartRAM bank returned by GetRAM().
func (cart *Cartridge) PutRAM(bank int, idx int, data uint8) {
	if r, ok := cart.mapper.(mapper.CartRAMbus); ok {
		r.PutRAM(bank, idx, data)
	}
}
