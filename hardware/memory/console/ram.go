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

package console

import (
	"fmt"
	"math/rand"
)

// ram is a contiguous area of read/write memory.
type ram struct {
	label  string
	origin uint16
	memtop uint16
	memory []uint8
}

func newRAM(label string, origin uint16, memtop uint16) *ram {
	r := &ram{
		label:  label,
		origin: origin,
		memtop: memtop,
	}

	// allocate the minimal amount of memory
	r.memory = make([]uint8, memtop-origin+1)

	return r
}

func (r *ram) String() string {
	return fmt.Sprintf("%s %04x -> %04x", r.label, r.origin, r.memtop)
}

func (r *ram) contains(address uint16) bool {
	return address >= r.origin && address <= r.memtop
}

func (r *ram) read(address uint16) uint8 {
	return r.memory[address-r.origin]
}

func (r *ram) write(address uint16, data uint8) {
	r.memory[address-r.origin] = data
}

func (r *ram) reset(randSrc *rand.Rand) {
	for i := range r.memory {
		if randSrc != nil {
			r.memory[i] = uint8(randSrc.Intn(0x100))
		} else {
			r.memory[i] = 0
		}
	}
}
