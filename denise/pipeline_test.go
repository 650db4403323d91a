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

package denise_test

import (
	"testing"

	"github.com/amiga-go/vamiga/denise"
)

func TestColorToRGBARedIsFullChannelOpaque(t *testing.T) {
	got := denise.ColorToRGBA(0x0F00)
	want := uint32(0xFF)<<24 | 0x00<<16 | 0x00<<8 | 0xFF
	if got != want {
		t.Fatalf("ColorToRGBA(0x0F00) = %#x, want %#x", got, want)
	}
}

// TestSpriteOverDualPlayfield exercises spec.md §8 scenario 4: sprite 0
// armed at column 0x40 with dataA=0xFFFF, dataB=0x0000 (solid colour 1), no
// bitplane data (fully transparent playfield), dual-playfield mode, BPLCON2
// left at zero.
func TestSpriteOverDualPlayfield(t *testing.T) {
	in := &denise.LineInput{
		BPLCON0:  0x0400, // dual-playfield bit set, 0 bitplanes active
		DIWSTOP:  0xFF,
		ColorReg: [32]uint16{17: 0x0ABC},
		Armed:    [8]bool{0: true},
	}
	in.SprPos[0] = 0x0040
	in.SprDataA[0] = 0xFFFF
	in.SprDataB[0] = 0x0000

	row := make([]uint32, denise.HPixels)
	clxdat := denise.RenderLine(in, row)

	for col := 0x40; col <= 0x4F; col++ {
		want := denise.ColorToRGBA(0x0ABC)
		if row[col] != want {
			t.Fatalf("column %#x: expected sprite 0 colour 1 (palette slot 17), got %#x want %#x", col, row[col], want)
		}
	}
	if clxdat != 0 {
		t.Fatalf("expected no collision bits with all detection classes disabled, got %#x", clxdat)
	}
}

func TestSpriteOverDualPlayfieldSetsCollisionWhenEnabled(t *testing.T) {
	in := &denise.LineInput{
		BPLCON0:   0x0400,
		DIWSTOP:   0xFF,
		Armed:     [8]bool{0: true},
		ClxSprPlf: true,
	}
	in.SprPos[0] = 0x0040
	in.SprDataA[0] = 0xFFFF
	in.SprDataB[0] = 0x0000

	row := make([]uint32, denise.HPixels)
	clxdat := denise.RenderLine(in, row)

	if clxdat&(1<<1) == 0 {
		t.Fatalf("expected clxdat bit 1 (sprite pair 0 vs PF1) set, got %#x", clxdat)
	}
}

func TestSinglePlayfieldTranslatesBitplaneIndexDirectly(t *testing.T) {
	in := &denise.LineInput{
		BPLCON0:  1 << 12, // 1 bitplane, single playfield
		DIWSTOP:  0xFF,
		ColorReg: [32]uint16{1: 0x0F0F},
	}
	in.BitplaneWords[0] = []uint16{0x8000} // first pixel of plane 0 set

	row := make([]uint32, denise.HPixels)
	denise.RenderLine(in, row)

	if row[0] != denise.ColorToRGBA(0x0F0F) {
		t.Fatalf("expected pixel 0 to use colour register 1, got %#x", row[0])
	}
	if row[1] != denise.ColorToRGBA(0) {
		t.Fatalf("expected pixel 1 (bitplane bit clear) to use colour register 0, got %#x", row[1])
	}
}

func TestBorderFillsOutsideDisplayWindow(t *testing.T) {
	in := &denise.LineInput{
		BPLCON0:  1 << 12,
		DIWSTRT:  0x50,
		DIWSTOP:  0x90,
		ColorReg: [32]uint16{1: 0x0F0F},
	}
	words := make([]uint16, denise.HPixels/16+1)
	for i := range words {
		words[i] = 0xFFFF
	}
	in.BitplaneWords[0] = words

	row := make([]uint32, denise.HPixels)
	denise.RenderLine(in, row)

	if row[0x10] != denise.ColorToRGBA(0) {
		t.Fatalf("expected column outside DIW to show background colour 0, got %#x", row[0x10])
	}
	if row[0x60] != denise.ColorToRGBA(0x0F0F) {
		t.Fatalf("expected column inside DIW to show the bitplane colour, got %#x", row[0x60])
	}
}
