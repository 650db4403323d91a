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

package logger_test

import (
	"strings"
	"testing"

	"github.com/amiga-go/vamiga/logger"
)

func TestCentralLogger(t *testing.T) {
	w := &strings.Builder{}

	logger.Clear()
	logger.Write(w)
	if w.String() != "" {
		t.Fatalf("expected empty log, got %q", w.String())
	}

	logger.Log(logger.Allow, "AGNUS", "dma slot conflict")
	w.Reset()
	logger.Write(w)
	if w.String() != "AGNUS: dma slot conflict\n" {
		t.Fatalf("unexpected entry: %q", w.String())
	}

	logger.Logf(logger.Allow, "BLT", "minterm %02x", 0xca)
	w.Reset()
	logger.Write(w)
	want := "AGNUS: dma slot conflict\nBLT: minterm ca\n"
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}
}

func TestTail(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "MEM", "one")
	logger.Log(logger.Allow, "MEM", "two")
	logger.Log(logger.Allow, "MEM", "three")

	w := &strings.Builder{}
	logger.Tail(w, 2)
	if w.String() != "MEM: two\nMEM: three\n" {
		t.Fatalf("unexpected tail: %q", w.String())
	}

	w.Reset()
	logger.Tail(w, 100)
	if w.String() != "MEM: one\nMEM: two\nMEM: three\n" {
		t.Fatalf("unexpected tail with over-large count: %q", w.String())
	}
}

func TestRepeatedEntryIsCollapsed(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "CIA", "tod latch")
	logger.Log(logger.Allow, "CIA", "tod latch")
	logger.Log(logger.Allow, "CIA", "tod latch")

	w := &strings.Builder{}
	logger.Write(w)
	if w.String() != "CIA: tod latch (repeat x3)\n" {
		t.Fatalf("expected collapsed repeat entry, got %q", w.String())
	}
}

type denyAll struct{}

func (denyAll) AllowLogging() bool { return false }

func TestPermission(t *testing.T) {
	logger.Clear()
	logger.Log(denyAll{}, "PAULA", "should not appear")

	w := &strings.Builder{}
	if logger.Write(w) {
		t.Fatalf("expected no entries to have been logged, got %q", w.String())
	}
}
