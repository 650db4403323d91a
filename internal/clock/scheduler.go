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

package clock

import "math"

// Cycle counts master-oscillator ticks (28 MHz class). One DMA cycle is 8
// master cycles, one CPU cycle is 4, one CIA cycle is 40.
type Cycle int64

const (
	DMACycle Cycle = 8
	CPUCycle Cycle = 4
	CIACycle Cycle = 40
)

// Never is the trigger cycle of a cancelled slot: +∞, so it is never the
// soonest-due slot and executeUntil skips it without a presence check.
const Never Cycle = math.MaxInt64

// Slot names the fixed event slots spec.md's scheduler multiplexes. Every
// slot is an independent entry that ExecuteUntil services on its own: SEC
// does not gate CIAA, CIAB, KBD or any other slot, and nothing in this
// module schedules REG (custom-register writes take effect at once).
type Slot int

const (
	REG Slot = iota
	CIAA
	CIAB
	BPL
	DAS
	COP
	BLT
	SEC
	VBL
	IRQ
	KBD
	TXD
	RXD
	POT
	DSK
	INS
	numSlots
)

func (s Slot) String() string {
	names := [numSlots]string{
		"REG", "CIAA", "CIAB", "BPL", "DAS", "COP", "BLT", "SEC",
		"VBL", "IRQ", "KBD", "TXD", "RXD", "POT", "DSK", "INS",
	}
	if s < 0 || s >= numSlots {
		return "UNKNOWN"
	}
	return names[s]
}

// Handler is called when its slot becomes due. It receives the id and data
// the slot was scheduled with and may reschedule itself (or any other slot)
// before returning.
type Handler func(id int, data int64)

type event struct {
	triggerCycle Cycle
	id           int
	data         int64
	handler      Handler
}

// Scheduler is the master event scheduler: one Cycle counter and a fixed
// array of named slots, each holding at most one pending event.
type Scheduler struct {
	clock Cycle
	slots [numSlots]event
}

// NewScheduler returns a Scheduler with every slot cancelled and the clock
// at zero.
func NewScheduler() *Scheduler {
	s := &Scheduler{}
	for i := range s.slots {
		s.slots[i].triggerCycle = Never
	}
	return s
}

// Clock returns the current master cycle.
func (s *Scheduler) Clock() Cycle {
	return s.clock
}

// SetClock overwrites the master cycle counter directly, without servicing
// any slot. Snapshot restore uses this to put the clock back where it was
// captured; armed slots keep whatever trigger cycle they already hold; a
// restore always happens with the worker suspended, so they are serviced
// against the restored clock on the next ExecuteUntil exactly as if time
// had not passed.
func (s *Scheduler) SetClock(c Cycle) {
	s.clock = c
}

// ScheduleAbs arms slot to fire at the given absolute cycle.
func (s *Scheduler) ScheduleAbs(slot Slot, cycle Cycle, id int, data int64, handler Handler) {
	s.slots[slot] = event{triggerCycle: cycle, id: id, data: data, handler: handler}
}

// ScheduleRel arms slot to fire delta cycles after the current clock.
func (s *Scheduler) ScheduleRel(slot Slot, delta Cycle, id int, data int64, handler Handler) {
	s.ScheduleAbs(slot, s.clock+delta, id, data, handler)
}

// Cancel disarms slot; it will not fire until rescheduled.
func (s *Scheduler) Cancel(slot Slot) {
	s.slots[slot].triggerCycle = Never
	s.slots[slot].handler = nil
}

// IsPending reports whether slot currently holds an armed event.
func (s *Scheduler) IsPending(slot Slot) bool {
	return s.slots[slot].triggerCycle != Never
}

// TriggerCycle returns the cycle slot is due, or Never if it isn't armed.
func (s *Scheduler) TriggerCycle(slot Slot) Cycle {
	return s.slots[slot].triggerCycle
}

// ExecuteUntil drains every due event up to and including target, always
// executing the soonest-due slot first and breaking ties by declaration
// order (the fixed iteration order of the slots array). A handler is free
// to reschedule its own slot, or any other, before this call returns; newly
// armed events due at or before target are serviced in the same call.
func (s *Scheduler) ExecuteUntil(target Cycle) {
	for {
		next := Slot(-1)
		nextCycle := Never

		for i := Slot(0); i < numSlots; i++ {
			tc := s.slots[i].triggerCycle
			if tc <= target && tc < nextCycle {
				next = i
				nextCycle = tc
			}
		}

		if next < 0 {
			break
		}

		// event slot times are monotonically non-decreasing as events are
		// serviced: never rewind the clock for an event scheduled in the past.
		if nextCycle > s.clock {
			s.clock = nextCycle
		}

		ev := s.slots[next]
		s.slots[next].triggerCycle = Never
		s.slots[next].handler = nil

		if ev.handler != nil {
			ev.handler(ev.id, ev.data)
		}
	}

	if target > s.clock {
		s.clock = target
	}
}
