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

package paula_test

import (
	"testing"

	"github.com/amiga-go/vamiga/paula"
)

func TestINTREQSetClearRoundTrip(t *testing.T) {
	var p paula.Interrupts
	p.WriteINTREQ(0x8000 | 1<<paula.IntCOPER)
	p.WriteINTENA(0x8000 | 1<<paula.IntCOPER)

	if p.Level() == 0 {
		t.Fatalf("expected a nonzero interrupt level once COPER is pending and enabled")
	}

	prev := p.ReadINTREQ()
	p.WriteINTREQ(1 << paula.IntCOPER) // clear, bit 15 = 0
	if got := p.ReadINTREQ(); got != prev&^(1<<paula.IntCOPER) {
		t.Fatalf("clear write did not produce prev & ~bits: got %#x", got)
	}
}

func TestInterruptLevelZeroIffNoActiveBits(t *testing.T) {
	var p paula.Interrupts
	if p.Level() != 0 {
		t.Fatalf("expected level 0 with nothing pending")
	}
	p.WriteINTENA(0x8000 | 0x7FFF)
	p.Raise(paula.IntTBE) // bit 0 -> group 1
	if p.Level() != 1 {
		t.Fatalf("expected level 1 for bit 0, got %d", p.Level())
	}
	p.Raise(paula.IntVERTB) // bit 5 -> group 3
	if p.Level() != 3 {
		t.Fatalf("expected level 3 once bit 5 is also pending, got %d", p.Level())
	}
	p.Raise(paula.IntEXTER) // bit 13 -> group 6
	if p.Level() != 6 {
		t.Fatalf("expected level 6 once bit 13 is also pending, got %d", p.Level())
	}
}

func TestDiskKickRequiresTwoArmedWrites(t *testing.T) {
	var d paula.Disk
	d.WriteDSKLEN(0x8000 | 100)
	if d.Armed() {
		t.Fatalf("disk should not be armed after a single write")
	}
	d.WriteDSKLEN(0x8000 | 100)
	if !d.Armed() {
		t.Fatalf("disk should be armed after two consecutive bit-15 writes")
	}
}

func TestDiskSyncMatch(t *testing.T) {
	var d paula.Disk
	d.WriteDSKLEN(0x8000 | 1)
	d.WriteDSKLEN(0x8000 | 1)
	d.WriteDSKSYNC(0x4489)
	if matched := d.FeedWord(0x1234); matched {
		t.Fatalf("expected no sync match for a non-matching word")
	}
	if matched := d.FeedWord(0x4489); !matched {
		t.Fatalf("expected sync match for the configured sync word")
	}
}
