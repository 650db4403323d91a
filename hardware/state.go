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

// State is the Amiga's coarse power/run condition, per spec.md §4.9's
// {Off, Paused, Running} state machine.
type State int

const (
	Off State = iota
	Paused
	Running
)

func (s State) String() string {
	switch s {
	case Off:
		return "Off"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	}
	return "Unknown"
}

// runLoopCtrl is a bitfield of cooperative signals the host thread sets or
// clears to influence the next iteration of the worker loop; the worker
// only ever inspects it at the top of an iteration (spec.md §5's
// suspension-point rule).
type runLoopCtrl uint32

const (
	ctrlTracing runLoopCtrl = 1 << iota
	ctrlBreakpoints
	ctrlSnapshot
	ctrlInspect
	ctrlStop
)
