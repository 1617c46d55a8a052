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
	"math/rand"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge/mapper"
)

// ejected implements the mapper.CartMapper interface. It is the mapper used
// when no cartridge is attached. It claims no addresses.
type ejected struct {
}

func newEjected() *ejected {
	return &ejected{}
}

func (cart *ejected) String() string {
	return "ejected"
}

// ID implements the mapper.CartMapper interface.
func (cart *ejected) ID() string {
	return "-"
}

// Contains implements the mapper.CartMapper interface.
func (cart *ejected) Contains(_ uint16) bool {
	return false
}

// Read implements the mapper.CartMapper interface.
func (cart *ejected) Read(addr uint16) (uint8, error) {
	return 0, curated.Errorf(bus.AddressError, addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *ejected) Write(addr uint16, _ uint8) error {
	return curated.Errorf(bus.AddressError, addr)
}

// Reset implements the mapper.CartMapper interface.
func (cart *ejected) Reset(_ *rand.Rand) {
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *ejected) NumBanks() int {
	return 0
}

// GetBank implements the mapper.CartMapper interface.
func (cart *ejected) GetBank(_ uint16) mapper.BankInfo {
	return mapper.BankInfo{NonCart: true}
}
