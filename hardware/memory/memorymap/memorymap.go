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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM0:
		return "ROM0"
	case ROMX:
		return "ROMX"
	case VRAM:
		return "VRAM"
	case CartRAM:
		return "CartRAM"
	case WRAM0:
		return "WRAM0"
	case WRAMX:
		return "WRAMX"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case IE:
		return "IE"
	}

	return "undefined"
}

// The different memory areas of the DMG.
const (
	Undefined Area = iota
	ROM0
	ROMX
	VRAM
	CartRAM
	WRAM0
	WRAMX
	Echo
	OAM
	Unusable
	IO
	HRAM
	IE
)

// The origin and memory top for each area of memory.
const (
	OriginROM0     = uint16(0x0000)
	MemtopROM0     = uint16(0x3fff)
	OriginROMX     = uint16(0x4000)
	MemtopROMX     = uint16(0x7fff)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginCartRAM  = uint16(0xa000)
	MemtopCartRAM  = uint16(0xbfff)
	OriginWRAM0    = uint16(0xc000)
	MemtopWRAM0    = uint16(0xcfff)
	OriginWRAMX    = uint16(0xd000)
	MemtopWRAMX    = uint16(0xdfff)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginHRAM     = uint16(0xff80)
	MemtopHRAM     = uint16(0xfffe)
	AddressIE      = uint16(0xffff)
)

// Memtop is the top most address of memory in the DMG.
//
// Be extra careful when looping up to Memtop because it is at the very edge of
// uint16. Limit detection must consider the overflow condition.
const Memtop = uint16(0xffff)

// The interrupt flag register sits inside the IO area but is not part of the
// IO register block.
const AddressIF = uint16(0xff0f)

// Bank sizes.
const (
	ROMBankSize = 0x4000
	RAMBankSize = 0x2000
)

// MapAddress returns the area of memory the address falls within. Every
// address falls within exactly one area.
func MapAddress(address uint16) Area {
	// note that the order of these filters is important
	switch {
	case address <= MemtopROM0:
		return ROM0
	case address <= MemtopROMX:
		return ROMX
	case address <= MemtopVRAM:
		return VRAM
	case address <= MemtopCartRAM:
		return CartRAM
	case address <= MemtopWRAM0:
		return WRAM0
	case address <= MemtopWRAMX:
		return WRAMX
	case address <= MemtopEcho:
		return Echo
	case address <= MemtopOAM:
		return OAM
	case address <= MemtopUnusable:
		return Unusable
	case address <= MemtopIO:
		return IO
	case address <= MemtopHRAM:
		return HRAM
	}
	return IE
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address uint16, area Area) bool {
	return MapAddress(address) == area
}

// IsCartridge returns true if the address is served by the cartridge. ROM and
// cartridge RAM both count.
func IsCartridge(address uint16) bool {
	a := MapAddress(address)
	return a == ROM0 || a == ROMX || a == CartRAM
}
