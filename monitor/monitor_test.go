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

package monitor_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge/fixture"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/monitor"
	"github.com/jetsetilly/gopherdmg/test"
)

func newDMG(t *testing.T) *hardware.DMG {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	dmg, err := hardware.NewDMG(prefs)
	test.DemandSuccess(t, err)

	data := fixture.Image(fixture.Spec{Title: "MONITOR", Kind: 0x03, Banks: 4, RAMCode: 0x02})
	test.DemandSuccess(t, dmg.AttachCartridge(cartridgeloader.Loader{Filename: "monitor.gb", Data: data}))

	return dmg
}

func run(t *testing.T, dmg *hardware.DMG, script string) string {
	t.Helper()
	out := &test.CompareWriter{}
	mon := monitor.NewMonitor(dmg, strings.NewReader(script), out)
	test.ExpectSuccess(t, mon.Run())
	return out.String()
}

func TestPeekPoke(t *testing.T) {
	dmg := newDMG(t)

	out := run(t, dmg, "poke 0xc000 0x42\npeek $c000\n")
	test.ExpectEquality(t, out, "0xc000 :: internal\n0xc000 :: internal -> 0x42\n")

	out = run(t, dmg, "PEEK 0xc000 2\n")
	test.ExpectEquality(t, out, "0xc000 :: internal -> 0x42\n0xc001 :: internal -> 0x00\n")

	out = run(t, dmg, "pokew 0xc010 0xbeef\npeekw 0xc010\n")
	test.ExpectEquality(t, out, "0xc010 :: internal\n0xc010 :: internal -> 0xbeef\n")
}

func TestRegisterNames(t *testing.T) {
	dmg := newDMG(t)

	out := run(t, dmg, "poke ie 0x1f\npeek IE\n")
	test.ExpectEquality(t, out, "0xffff (IE) :: internal\n0xffff (IE) :: internal -> 0x1f\n")

	test.ExpectSuccess(t, dmg.Mem.Internal.IO.Timer.Enabled() == false)
	run(t, dmg, "poke tac 4\n")
	test.ExpectSuccess(t, dmg.Mem.Internal.IO.Timer.Enabled())
}

func TestBankSwitching(t *testing.T) {
	dmg := newDMG(t)

	out := run(t, dmg, "bank\n")
	test.ExpectEquality(t, out, "ROM bank: 1 of 4\nRAM bank: 0 (disabled)\n")

	out = run(t, dmg, "poke 0x2000 3\npoke 0x0000 0x0a\nbank\npeek 0x4000\n")
	test.ExpectEquality(t, out, "0x2000 :: cartridge [bank 0]\n"+
		"0x0000 :: cartridge [bank 0]\n"+
		"ROM bank: 3 of 4\n"+
		"RAM bank: 0 (enabled)\n"+
		"0x4000 :: cartridge [bank 3] -> 0x"+hex(fixture.BankMarker(3))+"\n")

	out = run(t, dmg, "peek 0xa000\n")
	test.ExpectEquality(t, out, "0xa000 :: cartridge [bank 0R] -> 0x00\n")
}

func hex(v uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0x0f]})
}

func TestErrors(t *testing.T) {
	dmg := newDMG(t)

	out := run(t, dmg, "peek 0xfea0\n")
	test.ExpectEquality(t, out, "* invalid address (0xfea0)\n")

	out = run(t, dmg, "pokew 0xff07 0\n")
	test.ExpectEquality(t, out, "* invalid operation: word write of timer register (0xff07)\n")

	out = run(t, dmg, "poke 0xc000 0x100\n")
	test.ExpectEquality(t, out, "* monitor: value not valid for 8 bits (0x100)\n")

	out = run(t, dmg, "peek nowhere\n")
	test.ExpectEquality(t, out, "* monitor: unrecognised address (nowhere)\n")

	out = run(t, dmg, "frobnicate\n")
	test.ExpectEquality(t, out, "* monitor: unrecognised command (frobnicate)\n")

	out = run(t, dmg, "poke 0xc000\n")
	test.ExpectEquality(t, out, "* monitor: wrong number of arguments for POKE\n")
}

func TestQuit(t *testing.T) {
	dmg := newDMG(t)

	// commands after QUIT are not executed
	out := run(t, dmg, "quit\npoke 0xc000 1\n")
	test.ExpectEquality(t, out, "")

	v, err := dmg.Mem.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)
}

func TestPrompt(t *testing.T) {
	dmg := newDMG(t)

	out := &test.CompareWriter{}
	mon := monitor.NewMonitor(dmg, strings.NewReader("\nquit\n"), out)
	mon.Prompting = true
	test.ExpectSuccess(t, mon.Run())
	test.ExpectEquality(t, out.String(), monitor.Prompt+monitor.Prompt)
}

func TestInfo(t *testing.T) {
	dmg := newDMG(t)

	out := run(t, dmg, "regs\n")
	test.ExpectEquality(t, out, "A=01 F=znhc BC=0013 DE=00d8 HL=014d PC=0100 SP=fffe\n")

	out = run(t, dmg, "map\n")
	test.ExpectEquality(t, out, dmg.Mem.String())

	out = run(t, dmg, "cart\n")
	test.ExpectSuccess(t, strings.HasPrefix(out, "filename: monitor.gb\ntitle: MONITOR\nbanking: MBC1\nROM: 4 banks\nRAM: 8192 bytes\nchecksum: "))
	test.ExpectSuccess(t, strings.Contains(out, "(ok)"))

	out = run(t, dmg, "help\n")
	test.ExpectSuccess(t, strings.Contains(out, "PEEK address [count]\n"))
}

func TestLog(t *testing.T) {
	dmg := newDMG(t)

	// attaching the cartridge will have added entries to the log
	out := run(t, dmg, "log 1\n")
	test.ExpectSuccess(t, strings.Contains(out, "dmg: attached monitor"))

	out = run(t, dmg, "log clear\nlog\nlog 5\n")
	test.ExpectEquality(t, out, "log is empty\nlog is empty\n")

	out = run(t, dmg, "log -1\n")
	test.ExpectEquality(t, out, "* monitor: not a count (-1)\n")
}
