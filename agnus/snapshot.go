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

package agnus

import "github.com/amiga-go/vamiga/internal/clock"

// Snapshot captures Agnus's beam position and DMA-calendar state: every
// register bank a restored machine needs to keep rendering the same frame
// in progress rather than resuming with a blank playfield and silent DMA
// pointers, per spec.md §6.
type Snapshot struct {
	h, v      int
	frame     uint64
	longFrame bool
	clock     clock.Cycle

	dmacon, adkcon, copcon, clxcon, clxdat uint16

	diwstrt, diwstop uint16
	ddfstrt, ddfstop uint16

	bplcon0, bplcon1, bplcon2 uint16
	bplmod1, bplmod2          int16
	bplpt                     [6]uint32
	bpldat                    [6]uint16
	bplFetchBuf               [6][]uint16

	sprpt              [8]uint32
	sprpos, sprctl     [8]uint16
	sprdataA, sprdataB [8]uint16
	sprarmed           [8]bool

	colorReg [32]uint16

	dskpt    uint32
	dsklenCt uint16

	audlc    [4]uint32
	audlenCt [4]uint16

	bltaptShadow, bltbptShadow, bltcptShadow, bltdptShadow uint32
	cop1lcShadow, cop2lcShadow                             uint32

	registerChanges []RegisterChange
}

// Snapshot captures the receiver's full beam/DMA state.
func (a *Agnus) Snapshot() *Snapshot {
	s := &Snapshot{
		h: a.h, v: a.v, frame: a.frame, longFrame: a.longFrame, clock: a.sched.Clock(),

		dmacon: a.dmacon, adkcon: a.adkcon, copcon: a.copcon, clxcon: a.clxcon, clxdat: a.clxdat,

		diwstrt: a.diwstrt, diwstop: a.diwstop, ddfstrt: a.ddfstrt, ddfstop: a.ddfstop,

		bplcon0: a.bplcon0, bplcon1: a.bplcon1, bplcon2: a.bplcon2,
		bplmod1: a.bplmod1, bplmod2: a.bplmod2,
		bplpt: a.bplpt, bpldat: a.bpldat,

		sprpt: a.sprpt, sprpos: a.sprpos, sprctl: a.sprctl,
		sprdataA: a.sprdataA, sprdataB: a.sprdataB, sprarmed: a.sprarmed,

		colorReg: a.colorReg,

		dskpt: a.dskpt, dsklenCt: a.dsklenCt,

		audlc: a.audlc, audlenCt: a.audlenCt,

		bltaptShadow: a.bltaptShadow, bltbptShadow: a.bltbptShadow,
		bltcptShadow: a.bltcptShadow, bltdptShadow: a.bltdptShadow,
		cop1lcShadow: a.cop1lcShadow, cop2lcShadow: a.cop2lcShadow,
	}
	for i := range a.bplFetchBuf {
		s.bplFetchBuf[i] = append([]uint16(nil), a.bplFetchBuf[i]...)
	}
	s.registerChanges = append([]RegisterChange(nil), a.registerChanges...)
	return s
}

// Restore installs a previously captured Snapshot, including the
// in-flight bitplane fetch buffer and undrained register-change queue so a
// restore mid-line replays exactly as it would have without the restore.
func (a *Agnus) Restore(s *Snapshot) {
	a.h, a.v, a.frame, a.longFrame = s.h, s.v, s.frame, s.longFrame
	a.sched.SetClock(s.clock)

	a.dmacon, a.adkcon, a.copcon, a.clxcon, a.clxdat = s.dmacon, s.adkcon, s.copcon, s.clxcon, s.clxdat

	a.diwstrt, a.diwstop, a.ddfstrt, a.ddfstop = s.diwstrt, s.diwstop, s.ddfstrt, s.ddfstop

	a.bplcon0, a.bplcon1, a.bplcon2 = s.bplcon0, s.bplcon1, s.bplcon2
	a.bplmod1, a.bplmod2 = s.bplmod1, s.bplmod2
	a.bplpt, a.bpldat = s.bplpt, s.bpldat

	a.sprpt, a.sprpos, a.sprctl = s.sprpt, s.sprpos, s.sprctl
	a.sprdataA, a.sprdataB, a.sprarmed = s.sprdataA, s.sprdataB, s.sprarmed

	a.colorReg = s.colorReg

	a.dskpt, a.dsklenCt = s.dskpt, s.dsklenCt

	a.audlc, a.audlenCt = s.audlc, s.audlenCt

	a.bltaptShadow, a.bltbptShadow = s.bltaptShadow, s.bltbptShadow
	a.bltcptShadow, a.bltdptShadow = s.bltcptShadow, s.bltdptShadow
	a.cop1lcShadow, a.cop2lcShadow = s.cop1lcShadow, s.cop2lcShadow

	for i := range s.bplFetchBuf {
		a.bplFetchBuf[i] = append([]uint16(nil), s.bplFetchBuf[i]...)
	}
	a.registerChanges = append([]RegisterChange(nil), s.registerChanges...)
}
