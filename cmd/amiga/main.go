// This file is part of vamiga.
//
// vamiga is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vamiga is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vamiga.  If not, see <https://www.gnu.org/licenses/>.

// Command amiga is the reference headless CLI: it powers on an Amiga,
// puts the controlling terminal into raw mode via internal/hostconsole,
// and maps a handful of keys onto the EmulatorLoop, standing in for the
// GUI message queue spec.md §6 places out of scope. It supplies a
// m68k.TestCore rather than a real 68000 decoder, since instruction decode
// is out of scope for this core (spec.md §1) — the loop still exercises
// the full timing/bus/chip stack, just without meaningful CPU-driven
// register writes.
package main

import (
	"fmt"
	"os"

	"github.com/amiga-go/vamiga/hardware"
	"github.com/amiga-go/vamiga/internal/hostconsole"
	"github.com/amiga-go/vamiga/m68k"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "amiga:", err)
		os.Exit(1)
	}
}

func run() error {
	a := hardware.NewAmiga(func(bus m68k.Bus) m68k.Core {
		return m68k.NewTestCore(bus)
	})

	if err := a.PowerOn(); err != nil {
		return fmt.Errorf("power on: %w", err)
	}
	defer a.PowerOff()

	console, err := hostconsole.Open(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("opening console: %w", err)
	}
	defer console.Close()

	fmt.Fprintln(os.Stdout, "\r\nvamiga reference CLI — space: pause/resume, w: warp, r: reset, q: quit\r")

	if err := a.Run(); err != nil {
		return fmt.Errorf("starting run loop: %w", err)
	}

	for {
		key, err := console.ReadKey()
		if err != nil {
			return fmt.Errorf("reading console: %w", err)
		}

		switch key {
		case hostconsole.KeyQuit, hostconsole.KeyInterrupt:
			a.Pause()
			return nil
		case hostconsole.KeyPause:
			if a.IsRunning() {
				a.Pause()
			} else {
				_ = a.Run()
			}
		case hostconsole.KeyWarp:
			a.SetWarp(!a.IsWarp())
		case hostconsole.KeyReset:
			_ = a.Reset()
		case hostconsole.KeySuspend:
			_ = hostconsole.SuspendProcess()
		}

		for msg := a.GetMessage(); msg != hardware.MsgNone; msg = a.GetMessage() {
			fmt.Fprintf(os.Stdout, "\r\n[%s]\r\n", msg)
		}
	}
}
