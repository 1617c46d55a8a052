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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge/fixture"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/test"
)

func newTestMBC1(t *testing.T, banks int, ramSize int) *mbc1 {
	t.Helper()
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	m, err := newMBC1(prefs, fixture.Image(fixture.Spec{Kind: 0x01, Banks: banks}), ramSize)
	test.DemandSuccess(t, err)
	return m.(*mbc1)
}

func TestMBC1PowerOn(t *testing.T) {
	cart := newTestMBC1(t, 4, 0x2000)
	test.ExpectFailure(t, cart.state.ramEnabled)
	test.ExpectEquality(t, cart.state.mode, romMode)
	test.ExpectEquality(t, cart.state.romBankLow, 1)
	test.ExpectEquality(t, cart.state.bankSelect, 0)
	test.ExpectEquality(t, cart.EffectiveROMBank(), 1)
	test.ExpectEquality(t, cart.EffectiveRAMBank(), 0)
}

func TestMBC1ZeroBank(t *testing.T) {
	cart := newTestMBC1(t, 4, 0)

	test.ExpectSuccess(t, cart.Write(0x2000, 0x01))
	test.ExpectSuccess(t, cart.Write(0x2000, 0x00))
	test.ExpectEquality(t, cart.EffectiveROMBank(), 1)

	// only the lower 5 bits are considered
	test.ExpectSuccess(t, cart.Write(0x2000, 0x20))
	test.ExpectEquality(t, cart.state.romBankLow, 1)
	test.ExpectSuccess(t, cart.Write(0x3fff, 0xe2))
	test.ExpectEquality(t, cart.state.romBankLow, 2)
}

func TestMBC1Modes(t *testing.T) {
	cart := newTestMBC1(t, 128, 0x8000)

	test.ExpectSuccess(t, cart.Write(0x2000, 0x05))
	test.ExpectSuccess(t, cart.Write(0x6000, 0x01))
	test.ExpectSuccess(t, cart.Write(0x4000, 0x01))
	test.ExpectEquality(t, cart.EffectiveROMBank(), 5)
	test.ExpectEquality(t, cart.EffectiveRAMBank(), 1)

	// in ROM mode the bank select register provides the upper bits of the
	// ROM bank and the RAM bank is zero
	test.ExpectSuccess(t, cart.Write(0x6000, 0x00))
	test.ExpectEquality(t, cart.EffectiveROMBank(), 0x25)
	test.ExpectEquality(t, cart.EffectiveRAMBank(), 0)

	v, err := cart.Read(0x4000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, fixture.BankMarker(0x25))

	// only bit zero of the mode register matters
	test.ExpectSuccess(t, cart.Write(0x7fff, 0xfe))
	test.ExpectEquality(t, cart.state.mode, romMode)
	test.ExpectSuccess(t, cart.Write(0x7fff, 0xff))
	test.ExpectEquality(t, cart.state.mode, ramMode)

	// only the lower two bits of the bank select register matter
	test.ExpectSuccess(t, cart.Write(0x5fff, 0xfe))
	test.ExpectEquality(t, cart.state.bankSelect, 0x02)
}

func TestMBC1BankWrap(t *testing.T) {
	// four banks in the image
	cart := newTestMBC1(t, 4, 0)

	test.ExpectSuccess(t, cart.Write(0x2000, 0x06))
	test.ExpectEquality(t, cart.EffectiveROMBank(), 2)
	v, err := cart.Read(0x4000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, fixture.BankMarker(2))

	// bank select bits are also masked by the size of the image
	test.ExpectSuccess(t, cart.Write(0x2000, 0x01))
	test.ExpectSuccess(t, cart.Write(0x4000, 0x03))
	test.ExpectEquality(t, cart.EffectiveROMBank(), 1)
}

func TestMBC1ROMReads(t *testing.T) {
	cart := newTestMBC1(t, 8, 0)
	data := cart.data

	for b := 1; b < 8; b++ {
		test.ExpectSuccess(t, cart.Write(0x2000, uint8(b)))
		for _, a := range []uint16{0x4000, 0x4001, 0x5555, 0x7fff} {
			v, err := cart.Read(a)
			test.ExpectSuccess(t, err)
			test.ExpectEquality(t, v, data[b*0x4000+int(a-0x4000)], b, a)
		}

		// bank zero area is unaffected
		v, err := cart.Read(0x0001)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, data[1])
	}
}

func TestMBC1RAMGating(t *testing.T) {
	cart := newTestMBC1(t, 4, 0x2000)

	// disabled RAM ignores writes and reads as the open bus value
	test.ExpectSuccess(t, cart.Write(0xa000, 0x42))
	test.ExpectEquality(t, cart.ram[0], 0x00)
	v, err := cart.Read(0xa000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)

	test.ExpectSuccess(t, cart.Write(0x0000, 0x0a))
	test.ExpectSuccess(t, cart.RAMEnabled())
	test.ExpectSuccess(t, cart.Write(0xa000, 0x42))
	v, err = cart.Read(0xa000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x42)

	// the upper nibble is ignored
	test.ExpectSuccess(t, cart.Write(0x1fff, 0xfa))
	test.ExpectSuccess(t, cart.RAMEnabled())

	// any other value disables RAM
	test.ExpectSuccess(t, cart.Write(0x0000, 0x0b))
	test.ExpectFailure(t, cart.RAMEnabled())
	v, err = cart.Read(0xa000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)

	// open bus value is a preference
	test.ExpectSuccess(t, cart.prefs.OpenBus.Set(0x00))
	v, err = cart.Read(0xa000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)
}

func TestMBC1NoRAM(t *testing.T) {
	cart := newTestMBC1(t, 4, 0)
	test.ExpectSuccess(t, cart.Write(0x0000, 0x0a))
	test.ExpectSuccess(t, cart.Contains(0xa000))
	test.ExpectSuccess(t, cart.Write(0xa000, 0x42))
	v, err := cart.Read(0xa000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)
	test.ExpectSuccess(t, cart.GetRAM() == nil)
}

func TestMBC1RAMBanks(t *testing.T) {
	cart := newTestMBC1(t, 4, 0x8000)
	test.ExpectSuccess(t, cart.Write(0x0000, 0x0a))
	test.ExpectSuccess(t, cart.Write(0x6000, 0x01))

	for b := 0; b < 4; b++ {
		test.ExpectSuccess(t, cart.Write(0x4000, uint8(b)))
		test.ExpectSuccess(t, cart.Write(0xa123, uint8(0x10+b)))
	}

	for b := 0; b < 4; b++ {
		test.ExpectEquality(t, cart.ram[b*0x2000+0x123], uint8(0x10+b))
	}

	// RAM bank is zero in ROM mode
	test.ExpectSuccess(t, cart.Write(0x6000, 0x00))
	v, err := cart.Read(0xa123)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x10)
}

func TestMBC1RAMOutOfRange(t *testing.T) {
	// a single bank of RAM. selecting a bank beyond it behaves as disabled RAM
	cart := newTestMBC1(t, 4, 0x2000)
	test.ExpectSuccess(t, cart.Write(0x0000, 0x0a))
	test.ExpectSuccess(t, cart.Write(0xa000, 0x11))

	test.ExpectSuccess(t, cart.Write(0x6000, 0x01))
	test.ExpectSuccess(t, cart.Write(0x4000, 0x01))
	v, err := cart.Read(0xa000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)

	test.ExpectSuccess(t, cart.Write(0xa000, 0x99))
	test.ExpectEquality(t, cart.ram[0], 0x11)

	// bank zero is still reachable
	test.ExpectSuccess(t, cart.Write(0x4000, 0x00))
	v, err = cart.Read(0xa000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x11)

	// four banks of RAM. the highest bank select is in range
	cart = newTestMBC1(t, 4, 0x8000)
	test.ExpectSuccess(t, cart.Write(0x0000, 0x0a))
	test.ExpectSuccess(t, cart.Write(0x6000, 0x01))
	test.ExpectSuccess(t, cart.Write(0x4000, 0x03))
	test.ExpectSuccess(t, cart.Write(0xbfff, 0x55))
	test.ExpectEquality(t, cart.ram[0x7fff], 0x55)
}

func TestMBC1SmallRAM(t *testing.T) {
	// 2k of RAM is mirrored within bank zero
	cart := newTestMBC1(t, 4, 0x800)
	test.ExpectSuccess(t, cart.Write(0x0000, 0x0a))
	test.ExpectSuccess(t, cart.Write(0xa801, 0x77))
	test.ExpectEquality(t, cart.ram[1], 0x77)
	v, err := cart.Read(0xb001)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x77)

	// but not into other banks
	test.ExpectSuccess(t, cart.Write(0x6000, 0x01))
	test.ExpectSuccess(t, cart.Write(0x4000, 0x01))
	v, err = cart.Read(0xa001)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)
}

func TestMBC1WordRoundTrip(t *testing.T) {
	cart := newTestMBC1(t, 4, 0x2000)
	test.ExpectSuccess(t, cart.Write(0x0000, 0x0a))

	c := &Cartridge{prefs: cart.prefs, mapper: cart}
	test.ExpectSuccess(t, c.WriteWord(0xbffe, 0xcafe))
	w, err := c.ReadWord(0xbffe)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, 0xcafe)
}

func TestMBC1WordWriteBoundary(t *testing.T) {
	cart := newTestMBC1(t, 4, 0x2000)
	c := &Cartridge{prefs: cart.prefs, mapper: cart}

	// the low byte reaches the mode register before the high byte fails
	err := c.WriteWord(0x7fff, 0xff01)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressError))
	test.ExpectEquality(t, cart.state.mode, ramMode)
}

func TestMBC1InvalidAddress(t *testing.T) {
	cart := newTestMBC1(t, 4, 0x2000)
	test.ExpectFailure(t, cart.Contains(0x8000))
	test.ExpectFailure(t, cart.Contains(0xc000))
	test.ExpectFailure(t, cart.Write(0x8000, 0x00))
	_, err := cart.Read(0xc000)
	test.ExpectFailure(t, err)
}

func TestMBC1Reset(t *testing.T) {
	cart := newTestMBC1(t, 4, 0x2000)
	test.ExpectSuccess(t, cart.Write(0x0000, 0x0a))
	test.ExpectSuccess(t, cart.Write(0x2000, 0x03))
	test.ExpectSuccess(t, cart.Write(0x6000, 0x01))

	cart.prefs.Reseed(1)
	cart.Reset(cart.prefs.RandSrc)
	test.ExpectEquality(t, cart.state, mbc1State{romBankLow: 1})

	zeroes := 0
	for _, v := range cart.ram {
		if v == 0 {
			zeroes++
		}
	}
	test.ExpectInequality(t, zeroes, len(cart.ram))

	cart.Reset(nil)
	for _, v := range cart.ram {
		test.DemandEquality(t, v, 0)
	}
}
