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

//go:build statsview
// +build statsview

package runtimestats

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/amiga-go/vamiga/logger"
)

const Address = "localhost:12600"
const url = "/debug/statsview"

// PacingSample is one EmulatorLoop pacing observation: the frame counter,
// the signed wall-clock drift synchronizeTiming last measured, and whether
// warp mode is currently active.
type PacingSample struct {
	Frame uint64
	Drift time.Duration
	Warp  bool
}

// Launch starts the statsview HTTP server and, if source is non-nil, a
// goroutine that logs a PacingSample every second. source is typically a
// closure over a live *hardware.Amiga's Info()/warp state; passing nil
// disables pacing logging and leaves only the generic runtime charts.
func Launch(output io.Writer, source func() PacingSample) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	if source != nil {
		go func() {
			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			for range ticker.C {
				s := source()
				logger.Logf(logger.Allow, "PACE", "frame %d drift %v warp %v", s.Frame, s.Drift, s.Warp)
			}
		}()
	}

	output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", Address, url)))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
