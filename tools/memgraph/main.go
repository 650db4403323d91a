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

// Command memgraph dumps a running Amiga's memory map and chip
// cross-reference arena as a Graphviz-ready struct graph, for debugging
// address-decoder regressions. It powers on a fresh instance with a
// TestCore (no real 68000 decode is in scope) purely to get a populated
// memory.Map/Agnus/Denise/Paula/CIA graph to walk; it does not run any
// emulation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/amiga-go/vamiga/config"
	"github.com/amiga-go/vamiga/hardware"
	"github.com/amiga-go/vamiga/m68k"
)

func main() {
	out := flag.String("o", "", "write dot output to this file instead of stdout")
	chipRAM := flag.Int("chip-ram", 512, "Chip RAM size in KB (256 or 512)")
	flag.Parse()

	a := hardware.NewAmiga(func(bus m68k.Bus) m68k.Core {
		return m68k.NewTestCore(bus)
	})

	if ok, err := a.Configure(config.CHIP_RAM, *chipRAM); !ok || err != nil {
		fmt.Fprintf(os.Stderr, "memgraph: configuring chip RAM: %v\n", err)
		os.Exit(1)
	}
	if err := a.PowerOn(); err != nil {
		fmt.Fprintf(os.Stderr, "memgraph: power on: %v\n", err)
		os.Exit(1)
	}
	defer a.PowerOff()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "memgraph: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, a)
}
