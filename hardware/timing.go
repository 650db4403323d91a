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

package hardware

import (
	"time"

	"github.com/amiga-go/vamiga/internal/clock"
)

// masterClockFrequency is the Amiga's ~28 MHz-class master oscillator rate
// in Hz, per spec.md §3/§4.9. synchronizeTiming converts a delta of master
// cycles into nanoseconds against this constant.
const masterClockFrequency = 28_375_160

// driftTolerance is the amount of wall-clock drift synchronizeTiming
// tolerates before giving up on catching up and simply restarting the
// timer base, per spec.md §4.9 ("200 ms").
const driftTolerance = 200 * time.Millisecond

// timing holds the wall-clock pacing state synchronizeTiming needs:
// restartTimer's (timeBase, clockBase) pair.
type timing struct {
	timeBase  time.Time
	clockBase clock.Cycle
}

// restartTimer re-anchors wall-clock pacing to the current instant and
// master-clock position, per Amiga.cpp's restartTimer().
func (a *Amiga) restartTimer() {
	a.timing.timeBase = time.Now()
	a.timing.clockBase = a.agn.Clock()
}

// SetWarp enables or disables warp mode: end-of-frame pacing is skipped
// entirely while warp is on, and Paula's audio volume ramps down/up across
// the transition (spec.md §4.7).
func (a *Amiga) SetWarp(on bool) {
	a.mu.Lock()
	a.warp = on
	a.mu.Unlock()

	if a.pla != nil {
		a.pla.SetWarp(on)
	}
	if on {
		a.messages.push(MsgWarpOn)
	} else {
		a.restartTimer()
		a.messages.push(MsgWarpOff)
	}
}

// IsWarp reports whether warp mode is currently active, for a host thread
// (e.g. a pacing display) that wants to show it without racing the worker.
func (a *Amiga) IsWarp() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.warp
}

// synchronizeTiming paces the worker against wall-clock time, called once
// per frame (spec.md §4.9). Warp mode skips sleeping entirely.
func (a *Amiga) synchronizeTiming() {
	a.mu.Lock()
	warp := a.warp
	a.mu.Unlock()
	if warp {
		return
	}

	now := time.Now()
	clockDelta := a.agn.Clock() - a.timing.clockBase
	elapsed := time.Duration(int64(clockDelta) * int64(time.Second) / masterClockFrequency)
	target := a.timing.timeBase.Add(elapsed)

	if now.After(target) {
		if now.Sub(target) > driftTolerance {
			a.restartTimer()
		}
		return
	}

	if target.Sub(now) > driftTolerance {
		a.restartTimer()
		return
	}

	time.Sleep(target.Sub(now))
}
