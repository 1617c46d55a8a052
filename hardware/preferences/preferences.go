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

package preferences

import (
	"math/rand"
	"time"

	"github.com/jetsetilly/gopherdmg/paths"
	"github.com/jetsetilly/gopherdmg/prefs"
)

// OpenBusDefault is the value read from addresses that nothing is driving.
// Disabled cartridge RAM for example.
const OpenBusDefault = 0xff

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the value returned by reads of disabled or absent cartridge RAM
	OpenBus prefs.Int

	// initialise hardware to unknown state after reset
	RandomState prefs.Bool

	// seed for RandSrc. zero means seed with the current time
	Seed prefs.Int

	// a cartridge with a bad header checksum is rejected rather than just
	// logged
	RejectBadChecksum prefs.Bool

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file. A missing file is
// not an error.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit path
// for the preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	// the random number generator is reseeded whenever the seed changes and
	// whenever random state is switched on. a fixed seed therefore gives the
	// same power-on state every time
	p.Seed.SetHookPost(func(v prefs.Value) error {
		p.Reseed(int64(v.(int)))
		return nil
	})
	p.RandomState.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			p.Reseed(int64(p.Seed.Get().(int)))
		}
		return nil
	})

	p.OpenBus.SetRange(0x00, 0xff)
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.openbus", &p.OpenBus)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randomState", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randomSeed", &p.Seed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.rejectBadChecksum", &p.RejectBadChecksum)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.OpenBus.Set(OpenBusDefault)
	_ = p.RandomState.Set(false)
	_ = p.Seed.Set(0)
	_ = p.RejectBadChecksum.Set(false)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// OpenBusValue returns the current open bus value as a byte.
func (p *Preferences) OpenBusValue() uint8 {
	return uint8(p.OpenBus.Get().(int))
}

// RandomSource returns the random number source that should be used when
// resetting volatile memory. Returns nil if the RandomState preference is
// false, indicating that memory should be zeroed.
func (p *Preferences) RandomSource() *rand.Rand {
	if p.RandomState.Get().(bool) {
		return p.RandSrc
	}
	return nil
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
