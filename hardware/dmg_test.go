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

package hardware_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge/fixture"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/test"
)

func newDMG(t *testing.T) *hardware.DMG {
	t.Helper()
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	dmg, err := hardware.NewDMG(prefs)
	test.DemandSuccess(t, err)
	return dmg
}

func TestNoCartridge(t *testing.T) {
	dmg := newDMG(t)
	test.ExpectSuccess(t, dmg.Mem.Cart.IsEjected())

	_, err := dmg.Mem.Read(0x0100)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressError))

	test.ExpectSuccess(t, dmg.Mem.Write(0xc000, 0x42))
	v, err := dmg.Mem.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x42)
}

func TestAttachCartridge(t *testing.T) {
	dmg := newDMG(t)

	test.ExpectSuccess(t, dmg.Mem.Write(0xc000, 0x42))
	dmg.Regs.PC = 0x1234

	data := fixture.Image(fixture.Spec{Title: "ATTACH", Kind: 0x01, Banks: 4})
	err := dmg.AttachCartridge(cartridgeloader.Loader{Filename: "attach.gb", Data: data})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dmg.Mem.Cart.Title(), "ATTACH")

	// attachment resets the DMG
	test.ExpectEquality(t, dmg.Regs.PC, 0x0100)
	v, err := dmg.Mem.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)

	v, err = dmg.Mem.Read(0x0100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, data[0x0100])
}

func TestAttachFailure(t *testing.T) {
	dmg := newDMG(t)

	data := fixture.Image(fixture.Spec{Title: "FIRST", Kind: 0x00})
	test.DemandSuccess(t, dmg.AttachCartridge(cartridgeloader.Loader{Filename: "first.gb", Data: data}))
	test.ExpectSuccess(t, dmg.Mem.Write(0xc000, 0x42))

	mem := dmg.Mem

	data = fixture.Image(fixture.Spec{Title: "SECOND", Kind: 0x19})
	err := dmg.AttachCartridge(cartridgeloader.Loader{Filename: "second.gb", Data: data})
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedBanking))

	// the DMG is unchanged
	test.ExpectSuccess(t, dmg.Mem == mem)
	test.ExpectEquality(t, dmg.Mem.Cart.Title(), "FIRST")
	v, err := dmg.Mem.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x42)
}

func TestReset(t *testing.T) {
	dmg := newDMG(t)

	data := fixture.Image(fixture.Spec{Kind: 0x01, Banks: 4, RAMCode: 0x02})
	test.DemandSuccess(t, dmg.AttachCartridge(cartridgeloader.Loader{Filename: "reset.gb", Data: data}))

	test.ExpectSuccess(t, dmg.Mem.Write(0x2000, 0x02))
	test.ExpectSuccess(t, dmg.Mem.Write(0xffff, 0x01))
	dmg.Regs.SetHL(0x0000)

	dmg.Reset()

	bc, ok := dmg.Mem.Cart.GetBankController()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, bc.EffectiveROMBank(), 1)
	test.ExpectEquality(t, dmg.Regs.HL(), 0x014d)
	v, err := dmg.Mem.Read(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)
}
