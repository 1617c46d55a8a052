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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/modalflag"
	"github.com/jetsetilly/gopherdmg/monitor"
	"github.com/jetsetilly/gopherdmg/paths"
	"github.com/jetsetilly/gopherdmg/prefs"
	"github.com/jetsetilly/gopherdmg/statsview"
	"github.com/jetsetilly/gopherdmg/terminal"
	"github.com/jetsetilly/gopherdmg/version"
)

// exit values returned by launch()
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch parses the command line and runs the selected mode. the return value
// is suitable for os.Exit()
func launch(args []string, in io.Reader, out io.Writer) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("INFO", "PEEK", "MONITOR", "VERSION")

	log := md.AddBool("log", false, "echo log to stdout")
	cmdPrefs := md.AddString("prefs", "", "preferences for this session (key::value;key::value)")
	viz := md.AddBool("memviz", false, "write graphviz description of the DMG to the working directory")
	stats := md.AddBool("statsview", false, "launch statsview server (if available)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(out, "* error: %v\n", err)
		return exitParseError
	}

	if *log {
		logger.SetEcho(out)
	} else {
		logger.SetEcho(nil)
	}

	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(out)
		} else {
			fmt.Fprintln(out, "! statsview not available in this build")
		}
	}

	switch md.Mode() {
	case "INFO":
		err = info(md, out, *viz)

	case "PEEK":
		err = peek(md, out, *viz)

	case "MONITOR":
		err = runMonitor(md, in, out, *viz)

	case "VERSION":
		fmt.Fprintln(out, version.String())
	}

	if err != nil {
		fmt.Fprintf(out, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// create a DMG and attach the cartridge named on the command line. a DMG
// without a cartridge is returned if no cartridge has been specified and the
// mode allows it
func prepareDMG(md *modalflag.Modes, viz bool, requireCart bool) (*hardware.DMG, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		if requireCart {
			return nil, fmt.Errorf("cartridge required for %s mode", md)
		}
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	dmg, err := hardware.NewDMG(nil)
	if err != nil {
		return nil, err
	}

	if len(md.RemainingArgs()) == 1 {
		if !cartridgeloader.IsCartridgeFile(md.GetArg(0)) {
			logger.Logf(logger.Allow, "dmg", "unrecognised file extension: %s", md.GetArg(0))
		}
		err = dmg.AttachCartridge(cartridgeloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return nil, err
		}
	}

	if viz {
		f, err := os.Create(fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", dmg.Mem.Cart.Title())))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		memviz.Map(f, dmg)
	}

	return dmg, nil
}

// execute a list of monitor commands with the output directed to out
func script(dmg *hardware.DMG, out io.Writer, commands ...string) error {
	mon := monitor.NewMonitor(dmg, strings.NewReader(strings.Join(commands, "\n")), out)
	return mon.Run()
}

func info(md *modalflag.Modes, out io.Writer, viz bool) error {
	md.NewMode()

	mapOnly := md.AddBool("map", false, "only show the memory map")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dmg, err := prepareDMG(md, viz, true)
	if err != nil {
		return err
	}

	if *mapOnly {
		return script(dmg, out, "MAP")
	}

	return script(dmg, out, "CART", "MAP")
}

func peek(md *modalflag.Modes, out io.Writer, viz bool) error {
	md.NewMode()

	from := md.AddString("from", "0x0100", "address or register name to peek from")
	count := md.AddInt("count", 16, "number of bytes to peek")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dmg, err := prepareDMG(md, viz, false)
	if err != nil {
		return err
	}

	// run through the monitor directly so that an error is returned to the
	// caller rather than printed
	mon := monitor.NewMonitor(dmg, strings.NewReader(""), out)
	_, err = mon.Execute(fmt.Sprintf("PEEK %s %d", *from, *count))
	return err
}

func runMonitor(md *modalflag.Modes, in io.Reader, out io.Writer, viz bool) error {
	md.NewMode()

	prompt := md.AddBool("prompt", false, "always show the prompt")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dmg, err := prepareDMG(md, viz, false)
	if err != nil {
		return err
	}

	mon := monitor.NewMonitor(dmg, in, out)
	mon.Prompting = *prompt

	if f, ok := in.(*os.File); ok && terminal.IsInteractive(f) {
		mon.Prompting = true

		// discard anything typed while the cartridge was loading
		err = terminal.Flush(f)
		if err != nil {
			logger.Log(logger.Allow, "monitor", err)
		}
	}

	return mon.Run()
}
