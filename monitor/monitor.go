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

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Prompt is printed before each command when prompting is on.
const Prompt = "> "

// maximum number of bytes that can be shown by a single PEEK command
const maxPeek = 0x100

// Monitor reads commands from an io.Reader and writes the results to an
// io.Writer.
type Monitor struct {
	dmg *hardware.DMG
	in  *bufio.Scanner
	out io.Writer

	// print a prompt before reading each command. useful when the input is an
	// interactive terminal
	Prompting bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(dmg *hardware.DMG, in io.Reader, out io.Writer) *Monitor {
	return &Monitor{
		dmg: dmg,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run reads and executes commands until the QUIT command or the end of the
// input. Errors from individual commands are printed and do not end the loop.
func (mon *Monitor) Run() error {
	for {
		if mon.Prompting {
			fmt.Fprint(mon.out, Prompt)
		}

		if !mon.in.Scan() {
			if err := mon.in.Err(); err != nil {
				return curated.Errorf("monitor: %v", err)
			}
			return nil
		}

		quit, err := mon.Execute(mon.in.Text())
		if err != nil {
			fmt.Fprintf(mon.out, "* %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Execute a single command. Returns true if the command was QUIT.
func (mon *Monitor) Execute(input string) (bool, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return false, nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch cmd {
	case "QUIT":
		return true, nil
	case "HELP":
		mon.help()
		return false, nil
	case "PEEK":
		return false, mon.peek(args)
	case "PEEKW":
		return false, mon.peekWord(args)
	case "POKE":
		return false, mon.poke(args)
	case "POKEW":
		return false, mon.pokeWord(args)
	case "BANK":
		return false, mon.bank()
	case "REGS":
		fmt.Fprintln(mon.out, mon.dmg.Regs)
		return false, nil
	case "MAP":
		fmt.Fprint(mon.out, mon.dmg.Mem)
		return false, nil
	case "CART":
		return false, mon.cart()
	case "LOG":
		return false, mon.log(args)
	}

	return false, curated.Errorf("monitor: %v", fmt.Sprintf("unrecognised command (%s)", tokens[0]))
}

// expectArgs returns an error if the number of arguments is not in range.
func expectArgs(cmd string, args []string, min int, max int) error {
	if len(args) < min || len(args) > max {
		return curated.Errorf("monitor: %v", fmt.Sprintf("wrong number of arguments for %s", cmd))
	}
	return nil
}

func (mon *Monitor) info(address uint16) addressInfo {
	ai := addressInfo{
		address:      address,
		addressLabel: addresses.Name(address),
		owner:        mon.dmg.Mem.Owner(address),
	}
	if memorymap.IsCartridge(address) && mon.dmg.Mem.Cart.Contains(address) {
		ai.bank = mon.dmg.Mem.Cart.GetBank(address).String()
	}
	return ai
}

func (mon *Monitor) peek(args []string) error {
	if err := expectArgs("PEEK", args, 1, 2); err != nil {
		return err
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	count := 1
	if len(args) == 2 {
		c, err := strconv.Atoi(args[1])
		if err != nil || c < 1 || c > maxPeek {
			return curated.Errorf("monitor: %v", fmt.Sprintf("count must be between 1 and %d", maxPeek))
		}
		count = c
	}

	for i := 0; i < count; i++ {
		a := address + uint16(i)
		v, err := mon.dmg.Mem.Peek(a)
		if err != nil {
			return err
		}
		ai := mon.info(a)
		ai.value = uint16(v)
		ai.valueSeen = true
		fmt.Fprintln(mon.out, ai)
	}

	return nil
}

func (mon *Monitor) peekWord(args []string) error {
	if err := expectArgs("PEEKW", args, 1, 1); err != nil {
		return err
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	v, err := mon.dmg.Mem.ReadWord(address)
	if err != nil {
		return err
	}

	ai := mon.info(address)
	ai.value = v
	ai.valueSeen = true
	ai.word = true
	fmt.Fprintln(mon.out, ai)

	return nil
}

func (mon *Monitor) poke(args []string) error {
	if err := expectArgs("POKE", args, 2, 2); err != nil {
		return err
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	v, err := parseValue(args[1], 8)
	if err != nil {
		return err
	}

	err = mon.dmg.Mem.Poke(address, uint8(v))
	if err != nil {
		return err
	}

	fmt.Fprintln(mon.out, mon.info(address))

	return nil
}

func (mon *Monitor) pokeWord(args []string) error {
	if err := expectArgs("POKEW", args, 2, 2); err != nil {
		return err
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	v, err := parseValue(args[1], 16)
	if err != nil {
		return err
	}

	err = mon.dmg.Mem.WriteWord(address, v)
	if err != nil {
		return err
	}

	fmt.Fprintln(mon.out, mon.info(address))

	return nil
}

func (mon *Monitor) bank() error {
	cart := mon.dmg.Mem.Cart
	if cart.IsEjected() {
		return curated.Errorf("monitor: %v", "no cartridge attached")
	}

	bc, ok := cart.GetBankController()
	if !ok {
		fmt.Fprintf(mon.out, "%s: no bank controller\n", cart.ID())
		return nil
	}

	fmt.Fprintf(mon.out, "ROM bank: %d of %d\n", bc.EffectiveROMBank(), cart.NumBanks())
	fmt.Fprintf(mon.out, "RAM bank: %d", bc.EffectiveRAMBank())
	if bc.RAMEnabled() {
		fmt.Fprintln(mon.out, " (enabled)")
	} else {
		fmt.Fprintln(mon.out, " (disabled)")
	}

	return nil
}

func (mon *Monitor) cart() error {
	cart := mon.dmg.Mem.Cart
	if cart.IsEjected() {
		return curated.Errorf("monitor: %v", "no cartridge attached")
	}

	hdr := cart.Header()
	fmt.Fprintf(mon.out, "filename: %s\n", cart.Filename)
	fmt.Fprintf(mon.out, "title: %s\n", hdr.Title)
	fmt.Fprintf(mon.out, "banking: %s\n", hdr.Banking)
	fmt.Fprintf(mon.out, "ROM: %d banks\n", cart.NumBanks())
	fmt.Fprintf(mon.out, "RAM: %d bytes\n", hdr.RAMSize)
	fmt.Fprintf(mon.out, "checksum: %#02x", hdr.Checksum)
	if hdr.ChecksumValid {
		fmt.Fprintln(mon.out, " (ok)")
	} else {
		fmt.Fprintln(mon.out, " (bad)")
	}
	if cart.Hash != "" {
		fmt.Fprintf(mon.out, "hash: %s\n", cart.Hash)
	}

	return nil
}

func (mon *Monitor) log(args []string) error {
	if err := expectArgs("LOG", args, 0, 1); err != nil {
		return err
	}

	if len(args) == 1 && strings.ToUpper(args[0]) == "CLEAR" {
		logger.Clear()
		return nil
	}

	n := -1
	if len(args) == 1 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return curated.Errorf("monitor: %v", fmt.Sprintf("not a count (%s)", args[0]))
		}
	}

	if logger.Len() == 0 {
		fmt.Fprintln(mon.out, "log is empty")
		return nil
	}

	if n < 0 {
		logger.Write(mon.out)
	} else {
		logger.Tail(mon.out, n)
	}

	return nil
}

func (mon *Monitor) help() {
	fmt.Fprintln(mon.out, "PEEK address [count]")
	fmt.Fprintln(mon.out, "PEEKW address")
	fmt.Fprintln(mon.out, "POKE address value")
	fmt.Fprintln(mon.out, "POKEW address value")
	fmt.Fprintln(mon.out, "BANK")
	fmt.Fprintln(mon.out, "REGS")
	fmt.Fprintln(mon.out, "MAP")
	fmt.Fprintln(mon.out, "CART")
	fmt.Fprintln(mon.out, "LOG [count|CLEAR]")
	fmt.Fprintln(mon.out, "HELP")
	fmt.Fprintln(mon.out, "QUIT")
}
