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

package cia_test

import (
	"testing"

	"github.com/amiga-go/vamiga/cia"
)

func TestOVLDefaultsHighOnCIAA(t *testing.T) {
	a := cia.NewA()
	if !a.OVL() {
		t.Fatalf("expected CIA-A to reset with OVL asserted")
	}
	a.PokeCIA(0, 0x00)
	if a.OVL() {
		t.Fatalf("expected clearing port A bit 0 to clear OVL")
	}
}

func TestTimerAUnderflowRaisesICR(t *testing.T) {
	c := cia.NewB()
	c.PokeCIA(4, 0x02) // TALO = 2
	c.PokeCIA(5, 0x00) // TAHI = 0
	c.PokeCIA(0xD, 0x81) // unmask TA interrupt (set bit + TA)
	c.PokeCIA(0xE, 0x11) // CRA: START | LOAD

	for i := 0; i < 3; i++ {
		c.TickPhi2()
	}

	if !c.IRQPending() {
		t.Fatalf("expected timer A underflow to assert IRQ")
	}

	// reading ICR clears all pending flags
	_ = c.PeekCIA(0xD)
	if c.IRQPending() {
		t.Fatalf("expected ICR read to clear pending interrupt")
	}
}

func TestTODRollover(t *testing.T) {
	c := cia.NewA()
	c.PokeCIA(9, 59)  // seconds register (not writing alarm)
	c.PokeCIA(8, 9)   // tenths

	for i := 0; i < 10; i++ {
		c.TickTOD()
	}

	if got := c.PeekCIA(9); got != 0 {
		t.Fatalf("expected seconds to roll over to 0, got %d", got)
	}
	if got := c.PeekCIA(10); got != 1 {
		t.Fatalf("expected minutes to advance to 1, got %d", got)
	}
}
