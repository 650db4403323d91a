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

package hardware_test

import (
	"testing"

	"github.com/amiga-go/vamiga/config"
	"github.com/amiga-go/vamiga/hardware"
	"github.com/amiga-go/vamiga/m68k"
)

func newTestAmiga(t *testing.T) *hardware.Amiga {
	t.Helper()
	a := hardware.NewAmiga(func(bus m68k.Bus) m68k.Core {
		return m68k.NewTestCore(bus)
	})
	if err := a.PowerOn(); err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	return a
}

func TestPowerOnReachesPausedState(t *testing.T) {
	a := newTestAmiga(t)
	if !a.IsPaused() {
		t.Fatalf("expected a freshly powered-on Amiga to be Paused")
	}
	if a.IsRunning() || a.IsPoweredOff() {
		t.Fatalf("expected exactly one of the power states to hold")
	}
	if got := a.GetMessage(); got != hardware.MsgReset {
		t.Fatalf("expected RESET as the first message, got %v", got)
	}
}

func TestRunPauseLifecycle(t *testing.T) {
	a := newTestAmiga(t)

	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !a.IsRunning() {
		t.Fatalf("expected Running immediately after Run")
	}

	a.Pause()
	if !a.IsPaused() {
		t.Fatalf("expected Paused after Pause returns (join must be synchronous)")
	}
}

func TestSuspendResumeReentrantCounter(t *testing.T) {
	a := newTestAmiga(t)
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	a.Suspend()
	if !a.IsPaused() {
		t.Fatalf("expected first suspend to stop the worker")
	}

	a.Suspend()
	a.Resume()
	if !a.IsPaused() {
		t.Fatalf("expected emulator to remain paused after only one of two resumes")
	}

	a.Resume()
	if !a.IsRunning() {
		t.Fatalf("expected the matching resume to restart the worker")
	}

	a.Pause()
}

func TestPowerOffTornDownStateReturnsToOff(t *testing.T) {
	a := newTestAmiga(t)
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	a.PowerOff()
	if !a.IsPoweredOff() {
		t.Fatalf("expected PowerOff to stop the worker and reach Off")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	a := newTestAmiga(t)

	if ok, err := a.Configure(config.FAST_RAM, 0); !ok || err != nil {
		t.Fatalf("Configure(FAST_RAM, 0): ok=%v err=%v", ok, err)
	}

	a.TakeSnapshot()
	if n := a.NumSnapshots(); n != 1 {
		t.Fatalf("expected 1 snapshot after TakeSnapshot, got %d", n)
	}

	if ok, err := a.Configure(config.FAST_RAM, 256); !ok || err != nil {
		t.Fatalf("Configure(FAST_RAM, 256): ok=%v err=%v", ok, err)
	}
	if got := a.Config().GetInt(config.FAST_RAM); got != 256 {
		t.Fatalf("expected FAST_RAM=256 before restore, got %d", got)
	}

	if err := a.RestoreSnapshot(0); err != nil {
		t.Fatalf("RestoreSnapshot: %v", err)
	}
	if got := a.Config().GetInt(config.FAST_RAM); got != 0 {
		t.Fatalf("expected FAST_RAM restored to 0, got %d", got)
	}
}

func TestSnapshotHistoryBoundedAtMax(t *testing.T) {
	a := newTestAmiga(t)

	for i := 0; i < hardware.MaxSnapshots+5; i++ {
		a.TakeSnapshot()
	}
	if got := a.NumSnapshots(); got != hardware.MaxSnapshots {
		t.Fatalf("expected snapshot history capped at %d, got %d", hardware.MaxSnapshots, got)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	a := newTestAmiga(t)
	a.TakeSnapshot()
	a.TakeSnapshot()
	if got := a.NumSnapshots(); got != 2 {
		t.Fatalf("expected 2 snapshots, got %d", got)
	}
	a.DeleteSnapshot(0)
	if got := a.NumSnapshots(); got != 1 {
		t.Fatalf("expected 1 snapshot after delete, got %d", got)
	}
}
