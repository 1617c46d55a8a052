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

package memory

import (
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/memory/console"
)

// Memory is the composed address space of the DMG. The cartridge is
// consulted first and then the internal memory.
type Memory struct {
	*Bus

	Cart     *cartridge.Cartridge
	Internal *console.InternalMemory
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(cart *cartridge.Cartridge, internal *console.InternalMemory) (*Memory, error) {
	b, err := NewBus(
		Named{Name: "cartridge", Device: cart},
		Named{Name: "internal", Device: internal},
	)
	if err != nil {
		return nil, err
	}

	return &Memory{
		Bus:      b,
		Cart:     cart,
		Internal: internal,
	}, nil
}
