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

package hardware

import (
	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/memory/console"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/logger"
)

// DMG struct is the main container for the emulated components of the DMG.
type DMG struct {
	Prefs *preferences.Preferences

	Mem  *memory.Memory
	Regs *registers.Registers
}

// NewDMG creates a new DMG with no cartridge attached. The internal memory is
// reset according to the preferences.
func NewDMG(prefs *preferences.Preferences) (*DMG, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	internal := console.NewInternalMemory(console.NewIORegisters(console.NewTimer()))

	mem, err := memory.NewMemory(cartridge.NewEjectedCartridge(prefs), internal)
	if err != nil {
		return nil, err
	}

	dmg := &DMG{
		Prefs: prefs,
		Mem:   mem,
		Regs:  registers.NewRegisters(),
	}

	dmg.Mem.Internal.Reset(dmg.Prefs.RandomSource())

	return dmg, nil
}

// AttachCartridge loads a cartridge and composes the memory with it. If there
// is an error the DMG is unchanged. A successful attachment resets the DMG.
func (dmg *DMG) AttachCartridge(cartload cartridgeloader.Loader) error {
	cart, err := cartridge.NewCartridge(dmg.Prefs, cartload)
	if err != nil {
		return err
	}

	mem, err := memory.NewMemory(cart, dmg.Mem.Internal)
	if err != nil {
		return err
	}

	dmg.Mem = mem
	dmg.Reset()

	logger.Logf(logger.Allow, "dmg", "attached %s", cartload.ShortName())

	return nil
}

// Reset the registers, internal memory and the cartridge to the power-on
// state.
func (dmg *DMG) Reset() {
	randSrc := dmg.Prefs.RandomSource()
	dmg.Regs.Reset()
	dmg.Mem.Internal.Reset(randSrc)
	dmg.Mem.Cart.Reset()
}
