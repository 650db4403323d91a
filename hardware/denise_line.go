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

import (
	"github.com/amiga-go/vamiga/config"
	"github.com/amiga-go/vamiga/denise"
)

// Custom register numbers this package needs to snapshot into a
// denise.LineInput. These mirror the word-register numbers agnus.PeekCustom
// already accepts (agnus/registers.go's unexported reg* constants), kept
// here as the small subset a line-render snapshot actually reads.
const (
	regBPLCON0 = 0x080
	regBPLCON1 = 0x081
	regBPLCON2 = 0x082
	regDIWSTRT = 0x047
	regDIWSTOP = 0x048
	regCLXCON  = 0x04C
	regCOLOR00 = 0x0C0
	regSPR0POS = 0x0A0
	sprStride  = 0x004
)

// renderLine builds a denise.LineInput from Agnus's current register state,
// the bitplane words Agnus's DDF-window DMA fetch collected this line, and
// the register changes queued since the previous line, renders it into the
// working long frame's row v, and leaves both drained.
func (a *Amiga) renderLine(v int) {
	if v < 0 || v >= denise.VLines {
		return
	}

	in := &denise.LineInput{
		BPLCON0: a.agn.PeekCustom(regBPLCON0),
		BPLCON1: a.agn.PeekCustom(regBPLCON1),
		BPLCON2: a.agn.PeekCustom(regBPLCON2),
		DIWSTRT: a.agn.PeekCustom(regDIWSTRT),
		DIWSTOP: a.agn.PeekCustom(regDIWSTOP),
		CLXCON:  a.agn.PeekCustom(regCLXCON),

		ClxSprSpr: a.cfg.GetBool(config.CLX_SPR_SPR),
		ClxSprPlf: a.cfg.GetBool(config.CLX_SPR_PLF),
		ClxPlfPlf: a.cfg.GetBool(config.CLX_PLF_PLF),
	}

	for i := 0; i < 32; i++ {
		in.ColorReg[i] = a.agn.PeekCustom(uint8(regCOLOR00 + i))
	}

	for s := 0; s < 8; s++ {
		base := uint8(regSPR0POS + s*sprStride)
		in.SprPos[s] = a.agn.PeekCustom(base)
		in.SprCtl[s] = a.agn.PeekCustom(base + 1)
		in.SprDataA[s] = a.agn.PeekCustom(base + 2)
		in.SprDataB[s] = a.agn.PeekCustom(base + 3)
		in.Armed[s] = a.agn.SpriteArmed(s)
	}

	for _, ch := range a.agn.DrainRegisterChanges() {
		in.Changes = append(in.Changes, denise.RegisterChange(ch))
	}
	in.BitplaneWords = a.agn.DrainBitplaneWords()

	row := a.display.WorkingLong().Row(v)
	clxdat := denise.RenderLine(in, row)
	if clxdat != 0 {
		a.agn.AccumulateCLXDAT(clxdat)
	}
}
