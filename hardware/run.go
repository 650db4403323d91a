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
	"github.com/amiga-go/vamiga/curated"
	"github.com/amiga-go/vamiga/internal/clock"
	"github.com/amiga-go/vamiga/logger"
	"github.com/amiga-go/vamiga/paula"
)

// ciaCycle is the master-cycle length of one CIA Phi2 tick (spec.md §3).
const ciaCycle = clock.Cycle(40)

// Run spawns the worker goroutine, per spec.md §4.9's "run: Paused ->
// Running (spawn worker)" transition. A no-op if already Running.
func (a *Amiga) Run() error {
	a.mu.Lock()
	if a.state == Off {
		a.mu.Unlock()
		return curated.Errorf(curated.NotReady, "cannot run a powered-off Amiga")
	}
	if a.state == Running {
		a.mu.Unlock()
		return nil
	}
	a.state = Running
	a.stopped = make(chan struct{})
	a.mu.Unlock()

	a.restartTimer()
	a.clearCtrl(ctrlStop)
	a.messages.push(MsgRun)

	go a.runLoop()
	return nil
}

// Pause stops the worker and waits for it to actually exit, per spec.md
// §4.9's "pause: Running -> Paused (stop worker)" and §5's cancellation
// rule (set STOP, join).
func (a *Amiga) Pause() {
	a.mu.Lock()
	if a.state != Running {
		a.mu.Unlock()
		return
	}
	stopped := a.stopped
	a.mu.Unlock()

	a.setCtrl(ctrlStop)
	<-stopped
}

// suspend/resume form the reentrant counter spec.md §4.9/§5 describes: each
// suspend pauses the worker (if running), a matching resume restarts it
// only once the counter returns to zero.
func (a *Amiga) Suspend() {
	a.mu.Lock()
	running := a.state == Running
	counter := a.suspendCounter
	a.mu.Unlock()

	logger.Logf(logger.Allow, "LOOP", "suspending (%d)", counter)
	if counter == 0 && !running {
		return
	}

	a.Pause()

	a.mu.Lock()
	a.suspendCounter++
	a.mu.Unlock()
}

func (a *Amiga) Resume() {
	a.mu.Lock()
	counter := a.suspendCounter
	a.mu.Unlock()

	logger.Logf(logger.Allow, "LOOP", "resuming (%d)", counter)
	if counter == 0 {
		return
	}

	a.mu.Lock()
	a.suspendCounter--
	remaining := a.suspendCounter
	a.mu.Unlock()

	if remaining == 0 {
		_ = a.Run()
	}
}

// runLoop is the worker body described by spec.md §4.9: execute one CPU
// instruction, advance Agnus (and everything it drives) up to the same
// master-cycle position, then act on any pending control flags.
func (a *Amiga) runLoop() {
	defer func() {
		a.mu.Lock()
		a.state = Paused
		a.mu.Unlock()
		a.messages.push(MsgPause)
		close(a.stopped)
	}()

	for {
		cycles := a.cpu.ExecuteInstruction()
		target := a.agn.Clock() + clock.Cycle(cycles)
		a.agn.ExecuteUntil(target)

		a.tickCIAs()
		a.serviceLineBoundary()

		if level := a.pla.Level(); level > 0 {
			a.cpu.SetIRQ(level)
		}

		if !a.testCtrl(ctrlTracing | ctrlBreakpoints | ctrlSnapshot | ctrlInspect | ctrlStop) {
			continue
		}

		if a.testCtrl(ctrlSnapshot) {
			a.TakeSnapshot()
			a.clearCtrl(ctrlSnapshot)
		}
		if a.testCtrl(ctrlInspect) {
			a.mu.Lock()
			_ = a.info()
			a.mu.Unlock()
			a.clearCtrl(ctrlInspect)
		}
		if a.testCtrl(ctrlTracing) {
			logger.Logf(logger.Allow, "LOOP", "clock=%#x", a.agn.Clock())
		}
		if a.testCtrl(ctrlBreakpoints) {
			// spec.md §1 places breakpoint management outside this core's
			// scope (external debugger collaborator); nothing to check here.
		}
		if a.testCtrl(ctrlStop) {
			return
		}
	}
}

// tickCIAs advances both CIAs' Phi2 timers by however many whole CIA
// cycles have elapsed since the last tick, then routes a pending IRQ line
// into Paula's interrupt controller (CIA-A -> PORTS, CIA-B -> EXTER, per
// spec.md §4.8).
func (a *Amiga) tickCIAs() {
	cur := a.agn.Clock()
	for a.lastCIATick+ciaCycle <= cur {
		a.ciaA.TickPhi2()
		a.ciaB.TickPhi2()
		a.lastCIATick += ciaCycle
	}
	if a.ciaA.IRQPending() {
		a.pla.Raise(paula.IntPORTS)
	}
	if a.ciaB.IRQPending() {
		a.pla.Raise(paula.IntEXTER)
	}
}

// serviceLineBoundary detects rasterline and frame wraparound from Agnus's
// beam position and performs the per-line/per-frame work that belongs at
// those edges: TOD ticks (HSYNC for CIA-B, VBL for CIA-A), the Denise line
// render, and end-of-frame wall-clock pacing.
func (a *Amiga) serviceLineBoundary() {
	v := a.agn.BeamV()
	if v != a.lastBeamV {
		a.lastBeamV = v
		a.ciaB.TickTOD()
		a.renderLine(v)
	}

	frame := a.agn.Frame()
	if frame != a.lastFrame {
		a.lastFrame = frame
		a.ciaA.TickTOD()
		a.display.SwapBuffers(true)
		a.synchronizeTiming()
		if ticker, ok := a.rtc.(rtcTicker); ok {
			ticker.Tick()
		}
	}
}

// rtcTicker is implemented by *rtc.Clock, not by the noRTC stub: a fitted
// clock module advances once per displayed frame, an absent one has nothing
// to tick.
type rtcTicker interface {
	Tick()
}
