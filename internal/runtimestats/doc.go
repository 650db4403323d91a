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

// Package runtimestats is an optional package, built only when the
// statsview build tag is present, that serves the usual Go runtime charts
// (goroutines, heap, GC pauses) and, given a pacing source, logs an
// EmulatorLoop's pacing counters (frame count, wall-clock drift, warp state)
// through the central logger once a second. The pacing counters are not
// shown on the charts.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview";
// this package layers a func() PacingSample callback on top so a caller can
// wire in its own EmulatorLoop.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// and standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
package runtimestats
