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

import "github.com/amiga-go/vamiga/internal/clock"

// Step runs exactly one CPU instruction synchronously (the caller's
// goroutine, not the worker) and advances every chip driven off Agnus's
// clock up to the same master-cycle position. Callers must ensure the
// Amiga is Paused; Step does not itself suspend a running worker.
func (a *Amiga) Step() {
	cycles := a.cpu.ExecuteInstruction()
	target := a.agn.Clock() + clock.Cycle(cycles)
	a.agn.ExecuteUntil(target)
	a.tickCIAs()
	a.serviceLineBoundary()
	if level := a.pla.Level(); level > 0 {
		a.cpu.SetIRQ(level)
	}
}

// StepInto executes a single instruction while Paused, per spec.md §6's
// debugger boundary (Amiga.cpp's stepInto(): a no-op while already
// Running).
func (a *Amiga) StepInto() {
	if a.IsRunning() {
		return
	}
	a.Step()
}

// StepOver executes a single instruction, the same as StepInto. Real
// hardware's stepOver distinguishes a subroutine call (run until the
// instruction after it) from a plain step, which requires decoding the
// instruction stream to find the return address; the external 68000 core
// this module treats as opaque (spec.md §1/§6) exposes no such boundary, so
// StepOver is a documented simplification rather than a true step-over.
func (a *Amiga) StepOver() {
	if a.IsRunning() {
		return
	}
	a.Step()
}
