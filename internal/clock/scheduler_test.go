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

package clock_test

import (
	"testing"

	"github.com/amiga-go/vamiga/internal/clock"
)

func TestScheduleRelFiresExactlyOnce(t *testing.T) {
	s := clock.NewScheduler()

	fired := 0
	var firedAt clock.Cycle

	s.ScheduleRel(clock.BLT, 10, 0, 0, func(id int, data int64) {
		fired++
		firedAt = s.Clock()
	})

	s.ExecuteUntil(5)
	if fired != 0 {
		t.Fatalf("fired early: %d", fired)
	}

	s.ExecuteUntil(10)
	if fired != 1 {
		t.Fatalf("expected exactly one invocation, got %d", fired)
	}
	if firedAt != 10 {
		t.Fatalf("expected handler to see clock==10, got %d", firedAt)
	}

	// further calls to ExecuteUntil must not refire a consumed slot
	s.ExecuteUntil(100)
	if fired != 1 {
		t.Fatalf("slot refired: %d", fired)
	}
}

func TestTieBreakIsDeclarationOrder(t *testing.T) {
	s := clock.NewScheduler()

	var order []clock.Slot
	record := func(slot clock.Slot) clock.Handler {
		return func(id int, data int64) { order = append(order, slot) }
	}

	// BLT is declared after COP; both due at the same cycle.
	s.ScheduleAbs(clock.BLT, 20, 0, 0, record(clock.BLT))
	s.ScheduleAbs(clock.COP, 20, 0, 0, record(clock.COP))

	s.ExecuteUntil(20)

	if len(order) != 2 || order[0] != clock.COP || order[1] != clock.BLT {
		t.Fatalf("unexpected service order: %v", order)
	}
}

func TestRescheduleFromHandler(t *testing.T) {
	s := clock.NewScheduler()

	count := 0
	var fn clock.Handler
	fn = func(id int, data int64) {
		count++
		if count < 3 {
			s.ScheduleRel(clock.DAS, 4, 0, 0, fn)
		}
	}
	s.ScheduleRel(clock.DAS, 4, 0, 0, fn)

	s.ExecuteUntil(100)
	if count != 3 {
		t.Fatalf("expected the chained reschedule to fire 3 times, got %d", count)
	}
}

func TestCancel(t *testing.T) {
	s := clock.NewScheduler()

	fired := false
	s.ScheduleRel(clock.KBD, 5, 0, 0, func(int, int64) { fired = true })
	s.Cancel(clock.KBD)

	s.ExecuteUntil(1000)
	if fired {
		t.Fatalf("cancelled slot fired")
	}
	if s.IsPending(clock.KBD) {
		t.Fatalf("cancelled slot reports pending")
	}
}

func TestClockNeverRewinds(t *testing.T) {
	s := clock.NewScheduler()
	s.ScheduleAbs(clock.INS, 50, 0, 0, func(int, int64) {})
	s.ExecuteUntil(50)
	if s.Clock() != 50 {
		t.Fatalf("expected clock 50, got %d", s.Clock())
	}

	s.ExecuteUntil(30)
	if s.Clock() != 50 {
		t.Fatalf("clock rewound: %d", s.Clock())
	}
}
