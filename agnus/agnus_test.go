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

package agnus_test

import (
	"testing"

	"github.com/amiga-go/vamiga/agnus"
	"github.com/amiga-go/vamiga/blitter"
	"github.com/amiga-go/vamiga/copper"
	"github.com/amiga-go/vamiga/memory"
	"github.com/amiga-go/vamiga/paula"
)

// stubCIA satisfies memory.CIADevice with no register behaviour: these
// tests never touch the CIA window, they just need NewMap to construct.
type stubCIA struct{}

func (stubCIA) PeekCIA(reg uint8) uint8        { return 0 }
func (stubCIA) PokeCIA(reg uint8, value uint8) {}
func (stubCIA) OVL() bool                      { return false }

type stubRTC struct{}

func (stubRTC) PeekRTC(reg uint8) uint8        { return 0 }
func (stubRTC) PokeRTC(reg uint8, value uint8) {}

func newTestAgnus(t *testing.T) (*agnus.Agnus, *memory.Map) {
	t.Helper()
	cop := &copper.Copper{}
	pla := paula.NewPaula()

	a := agnus.New(blitter.NewBlitter(), cop, pla)
	sizes := memory.Sizes{ChipPages: 8, ROMPages: 1}
	mem := memory.NewMap(sizes, stubCIA{}, stubCIA{}, stubRTC{}, a, a.Arbiter())
	a.AttachMemory(mem)
	return a, mem
}

func TestBeamAdvancesAndWrapsIntoNewFrame(t *testing.T) {
	a, _ := newTestAgnus(t)

	start := a.Frame()
	for h := 0; h < slotsPerLineForTest*linesPerFrameForTest; h++ {
		a.ExecuteUntil(a.Clock() + 8)
	}
	if a.Frame() != start+1 {
		t.Fatalf("expected frame counter to advance by exactly one full frame, got %d -> %d", start, a.Frame())
	}
	if a.BeamH() != 0 || a.BeamV() != 0 {
		t.Fatalf("expected beam to be back at (0,0) after one full frame, got (%d,%d)", a.BeamH(), a.BeamV())
	}
}

const slotsPerLineForTest = 227
const linesPerFrameForTest = 313

func TestCopperListDrivesPaletteChange(t *testing.T) {
	a, mem := newTestAgnus(t)

	// A two-word Copper list at chip address 0x1000: MOVE COLOR00, 0x0F00.
	const listAddr = 0x1000
	mem.Poke16(listAddr, 0x0180)   // COLOR00 register (byte offset 0x180 -> word reg 0xC0)
	mem.Poke16(listAddr+2, 0x0F00) // red

	a.PokeCustom(0x40, uint16(listAddr>>16)) // COP1LCH
	a.PokeCustom(0x41, uint16(listAddr))     // COP1LCL
	a.PokeCustom(0x44, 0)                    // COPJMP1: strobe the list

	a.PokeCustom(0x4B, 0x8000|uint16(agnus.DMACONDMAEN|agnus.DMACONCOPEN)) // enable DMA + Copper

	for i := 0; i < 8; i++ {
		a.ExecuteUntil(a.Clock() + 8)
	}

	if got := a.PeekCustom(0xC0); got != 0x0F00 {
		t.Fatalf("expected Copper MOVE to have applied COLOR00=0x0F00, got %#x", got)
	}
}

func TestBlitterMemsetThroughRegisterDispatch(t *testing.T) {
	a, mem := newTestAgnus(t)

	const dest = 0x2000
	for i := 0; i < 100; i++ {
		mem.Poke16(uint32(dest+i*2), 0xFFFF)
	}

	a.PokeCustom(0x20, 0x0100)                 // BLTCON0: channel D only, minterm 0
	a.PokeCustom(0x21, 0x0000)                 // BLTCON1
	a.PokeCustom(0x22, 0xFFFF)                 // BLTAFWM (unused, channel A off)
	a.PokeCustom(0x23, 0xFFFF)                 // BLTALWM
	a.PokeCustom(0x2A, uint16(dest>>16))       // BLTDPTH
	a.PokeCustom(0x2B, uint16(dest))           // BLTDPTL
	a.PokeCustom(0x33, 0)                      // BLTDMOD
	a.PokeCustom(0x4B, 0x8000|uint16(agnus.DMACONDMAEN|agnus.DMACONBLTEN))
	a.PokeCustom(0x2C, 100<<6|1) // BLTSIZE: 100 rows, 1 word/row

	for i := 0; i < 2000 && a.PeekCustom(0x01)&agnus.DMACONBusy != 0; i++ {
		a.ExecuteUntil(a.Clock() + 8)
	}

	for i := 0; i < 100; i++ {
		if got := mem.Peek16(uint32(dest + i*2)); got != 0 {
			t.Fatalf("word %d: expected blitter memset to clear destination, got %#x", i, got)
		}
	}
}

func TestSpriteArmedBySPRxDATAAndClearedBySPRxCTL(t *testing.T) {
	a, _ := newTestAgnus(t)

	const spr0POS = 0x0A0
	const spr0CTL = 0x0A1
	const spr0DATA = 0x0A2

	if a.SpriteArmed(0) {
		t.Fatalf("expected sprite 0 to start disarmed")
	}

	a.PokeCustom(spr0DATA, 0xFFFF)
	if !a.SpriteArmed(0) {
		t.Fatalf("expected SPR0DATA write to arm sprite 0")
	}

	a.PokeCustom(spr0CTL, 0x0000)
	if a.SpriteArmed(0) {
		t.Fatalf("expected SPR0CTL write to disarm sprite 0")
	}

	a.PokeCustom(spr0POS, 0x1234)
	if a.SpriteArmed(0) {
		t.Fatalf("expected SPR0POS write to leave sprite 0 disarmed")
	}
}

func TestBitplaneDMAFetchesWordsIntoDrainBuffer(t *testing.T) {
	a, mem := newTestAgnus(t)

	const planeAddr = 0x3000
	mem.Poke16(planeAddr, 0xAAAA)
	mem.Poke16(planeAddr+2, 0x5555)

	a.PokeCustom(0x70, uint16(planeAddr>>16)) // BPL1PTH
	a.PokeCustom(0x71, uint16(planeAddr))     // BPL1PTL
	a.PokeCustom(0x49, 0x0000)                // DDFSTRT: slot 0
	a.PokeCustom(0x4A, 0x0008)                // DDFSTOP: slot 8
	a.PokeCustom(0x80, 1<<12)                 // BPLCON0: 1 bitplane
	a.PokeCustom(0x4B, 0x8000|uint16(agnus.DMACONDMAEN|agnus.DMACONBPLEN))

	for i := 0; i < 8; i++ {
		a.ExecuteUntil(a.Clock() + 8)
	}

	words := a.DrainBitplaneWords()
	if len(words[0]) == 0 {
		t.Fatalf("expected plane 0 to have fetched at least one word, got none")
	}
	if words[0][0] != 0xAAAA {
		t.Fatalf("expected first fetched word to be 0xAAAA, got %#x", words[0][0])
	}

	again := a.DrainBitplaneWords()
	if len(again[0]) != 0 {
		t.Fatalf("expected DrainBitplaneWords to clear the buffer, got %d leftover words", len(again[0]))
	}
}

func TestBusArbiterGrantsOnlyOneOwnerPerSlot(t *testing.T) {
	a, _ := newTestAgnus(t)
	arb := a.Arbiter()
	if !arb.AllocateBus(memory.OwnerCopper) {
		t.Fatalf("expected first allocation of the slot to succeed")
	}
	if arb.AllocateBus(memory.OwnerBlitter) {
		t.Fatalf("expected a second owner to be refused the same slot")
	}
	if !arb.BusIsFree(memory.OwnerCopper) {
		t.Fatalf("expected the owner that already holds the slot to see it as free for itself")
	}
}
