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

import (
	"github.com/amiga-go/vamiga/blitter"
	"github.com/amiga-go/vamiga/copper"
	"github.com/amiga-go/vamiga/internal/clock"
	"github.com/amiga-go/vamiga/memory"
	"github.com/amiga-go/vamiga/paula"
)

// slotsPerLine mirrors memory.Arbiter's fixed 227-slot rasterline.
const slotsPerLine = 227

// linesPerFrame is the PAL long-frame line count; NTSC/short-frame
// alternation is out of this module's scope (spec.md names PAL timing
// throughout its examples).
const linesPerFrame = 313

// RegisterChange is one entry in the Denise-bound register-change queue:
// spec.md §4.6 requires BPLCON0/1/2, COLORxx and SPRxPOS/CTL/DATA/DATB
// writes to be tagged with the pixel column at which they take effect
// rather than applied immediately, so Denise's end-of-line pipeline can
// replay them mid-line.
type RegisterChange struct {
	Pixel int
	Reg   uint8
	Value uint16
}

// Agnus is the DMA host: beam position, bus arbitration, the custom
// register window, and the Blitter/Copper/Paula sub-engine drivers.
type Agnus struct {
	mem     *memory.Map
	arbiter *memory.Arbiter
	sched   *clock.Scheduler

	blt *blitter.Blitter
	cop *copper.Copper
	pla *paula.Paula

	h, v      int
	frame     uint64
	longFrame bool

	dmacon uint16
	adkcon uint16
	copcon uint16
	clxcon uint16
	clxdat uint16

	diwstrt, diwstop uint16
	ddfstrt, ddfstop uint16

	bplcon0, bplcon1, bplcon2 uint16
	bplmod1, bplmod2          int16
	bplpt                     [6]uint32
	bpldat                    [6]uint16

	// bplFetchBuf[p] accumulates the words fetched for plane p during the
	// current line's DDF fetch window, oldest first, drained once per line
	// by DrainBitplaneWords.
	bplFetchBuf [6][]uint16

	sprpt          [8]uint32
	sprpos, sprctl [8]uint16
	sprdataA, sprdataB [8]uint16
	sprarmed       [8]bool

	colorReg [32]uint16

	dskpt    uint32
	dsklenCt uint16

	audlc    [4]uint32
	audlenCt [4]uint16

	// Shadow copies of the Blitter/Copper pointer registers, since BLTxPTH
	// and BLTxPTL (and COPxLCH/COPxLCL) are written as two separate 16-bit
	// halves of one 32-bit pointer but Blitter/Copper only expose a
	// whole-pointer setter.
	bltaptShadow, bltbptShadow, bltcptShadow, bltdptShadow uint32
	cop1lcShadow, cop2lcShadow                             uint32

	registerChanges []RegisterChange

	ports [2]ControlPortDevice
}

// ControlPortDevice is the read surface a DB9 control port (mouse or
// joystick) exposes to JOY0DAT/JOY1DAT/POTGOR, satisfied by
// *controlport.Port. Agnus depends only on this interface, not the
// controlport package itself, to keep the same import-direction discipline
// as CIADevice/RTCDevice in the memory package.
type ControlPortDevice interface {
	JOYDAT() uint16
	POTGOR() uint16
}

// DMACON enable bits (spec.md §4.3's slot-order consumers, plus the master
// enable bit 9 and the Blitter-priority bit 10).
const (
	DMACONBusy   = 1 << 14 // read-only: Blitter busy
	DMACONBZERO  = 1 << 13 // read-only: last blit's BZERO
	DMACONBLTPRI = 1 << 10
	DMACONDMAEN  = 1 << 9
	DMACONBPLEN  = 1 << 8
	DMACONCOPEN  = 1 << 7
	DMACONBLTEN  = 1 << 6
	DMACONSPREN  = 1 << 5
	DMACONDSKEN  = 1 << 4
	DMACONAUD3EN = 1 << 3
	DMACONAUD2EN = 1 << 2
	DMACONAUD1EN = 1 << 1
	DMACONAUD0EN = 1 << 0
)

// New returns an Agnus with a fresh scheduler and bus arbiter, driving the
// given Blitter, Copper and Paula. Call AttachMemory once the memory.Map
// has been constructed (Map itself needs this Agnus as its CustomDevice and
// BusWaiter, so the two are wired together in two steps).
func New(blt *blitter.Blitter, cop *copper.Copper, pla *paula.Paula) *Agnus {
	a := &Agnus{
		arbiter:   memory.NewArbiter(),
		sched:     clock.NewScheduler(),
		blt:       blt,
		cop:       cop,
		pla:       pla,
		longFrame: true,
	}
	a.arbiter.SetAdvance(a.advanceOneDMACycle)
	return a
}

// AttachMemory installs the memory map Agnus fetches/writes DMA data
// through. Must be called before ExecuteUntil.
func (a *Agnus) AttachMemory(mem *memory.Map) {
	a.mem = mem
}

// AttachControlPorts installs the two DB9 control ports JOY0DAT/JOY1DAT/
// POTGOR read from. Either may be nil, in which case the corresponding
// register reads as no device connected.
func (a *Agnus) AttachControlPorts(port1, port2 ControlPortDevice) {
	a.ports[0] = port1
	a.ports[1] = port2
}

// Arbiter returns the bus arbiter (memory.NewMap's BusWaiter argument).
func (a *Agnus) Arbiter() *memory.Arbiter { return a.arbiter }

// Scheduler returns the master event scheduler.
func (a *Agnus) Scheduler() *clock.Scheduler { return a.sched }

// Clock returns the current master cycle.
func (a *Agnus) Clock() clock.Cycle { return a.sched.Clock() }

// BeamH and BeamV report the current DMA slot and rasterline.
func (a *Agnus) BeamH() int { return a.h }
func (a *Agnus) BeamV() int { return a.v }

// Frame returns the frame counter (spec.md's `agnus.frame`).
func (a *Agnus) Frame() uint64 { return a.frame }

// ExecuteUntil advances the beam, the DMA slot calendar and the master
// scheduler up to and including target, one DMA cycle (8 master cycles) at
// a time, matching original_source/Amiga/Amiga.cpp's `agnus.executeUntil
// (newClock)` call from the CPU-driven run loop.
func (a *Agnus) ExecuteUntil(target clock.Cycle) {
	for a.sched.Clock() < target {
		a.advanceOneDMACycle()
	}
}

// advanceOneDMACycle services one DMA slot: it lets the scheduler drain any
// events due by the end of this cycle, offers the slot to disk/audio and
// bitplane DMA and then to the Copper and Blitter, in the arbiter's fixed
// order, then moves the beam to the next slot. It is
// installed as memory.Arbiter's SetAdvance callback, so a CPU chip access
// that finds its slot busy re-enters here until the slot clears.
func (a *Agnus) advanceOneDMACycle() {
	a.sched.ExecuteUntil(a.sched.Clock() + clock.DMACycle)

	if a.dmacon&DMACONDMAEN != 0 {
		a.serviceDiskAndAudioSlots()
		a.serviceBitplaneSlot()
		if a.dmacon&DMACONCOPEN != 0 {
			a.cop.Step(copperHost{a})
		}
		if a.dmacon&DMACONBLTEN != 0 {
			a.blt.Step(blitterHost{a})
		}
	}

	a.pla.TickAudio()

	a.advanceBeam()
}

// serviceDiskAndAudioSlots grants the first 8 DMA slots of a rasterline to
// the 4 audio channels (slots 0..3) and the disk (slots 4..7), one transfer
// attempt per slot per line. Real Agnus interleaves these with bitplane
// fetch according to a fixed strobe table; collapsing it to "once per slot
// per line" is a documented simplification of a concern this core does not
// need bus-slot-exact for (no spec.md testable property pins an exact
// audio/disk slot position — only the bus-exclusivity contract and the
// resulting interrupt/DMA protocol matter here).
func (a *Agnus) serviceDiskAndAudioSlots() {
	switch {
	case a.h < 4:
		ch := a.h
		if a.dmacon&(DMACONAUD0EN<<uint(ch)) == 0 {
			return
		}
		owner := audioOwner(ch)
		if !a.arbiter.AllocateBus(owner) {
			return
		}
		word := a.mem.DMAPeek16(a.audlc[ch])
		a.arbiter.RecordValue(word)
		a.audlc[ch] += 2
		a.pla.Audio[ch].Fetch(word)

	case a.h < 8:
		if a.dmacon&DMACONDSKEN == 0 || !a.pla.Disk.Armed() {
			return
		}
		if !a.arbiter.AllocateBus(memory.OwnerDisk) {
			return
		}
		word := a.mem.DMAPeek16(a.dskpt)
		a.arbiter.RecordValue(word)
		a.dskpt += 2
		if matched := a.pla.Disk.FeedWord(word); matched {
			a.pla.Raise(paula.IntDSKSYN)
		}
	}
}

// serviceBitplaneSlot fetches one bitplane word per DMA slot within the
// current line's DDF fetch window, round-robining across the active planes
// (spec.md §4.6's bitplane-to-colour-index pipeline needs this fetched data;
// real hardware's exact bitplane strobe table depends on hires/lores and
// interleaves more than one plane per slot group, which this module
// collapses to "one plane per slot" as a documented simplification — no
// spec.md testable property pins an exact bitplane DMA slot position, only
// that the fetched words reach Denise in fetch order).
//
// DDFSTRT/DDFSTOP's low byte is read directly as a DMA-slot index within
// the line, the same simplification already used for DIWSTRT/DIWSTOP's low
// byte as a pixel column (denise/pipeline.go's diwH0/diwH1).
func (a *Agnus) serviceBitplaneSlot() {
	if a.dmacon&DMACONBPLEN == 0 {
		return
	}
	numPlanes := int((a.bplcon0 >> 12) & 0x7)
	if numPlanes == 0 || numPlanes > 6 {
		return
	}

	ddfH0 := int(a.ddfstrt & 0xFF)
	ddfH1 := int(a.ddfstop & 0xFF)
	if ddfH1 <= ddfH0 {
		ddfH1 += slotsPerLine
	}
	h := a.h
	if h < ddfH0 {
		h += slotsPerLine
	}
	if h < ddfH0 || h >= ddfH1 {
		return
	}

	plane := (h - ddfH0) % numPlanes
	if !a.arbiter.AllocateBus(bitplaneOwner(plane)) {
		return
	}

	word := a.mem.DMAPeek16(a.bplpt[plane])
	a.arbiter.RecordValue(word)
	a.bplpt[plane] += 2
	a.bpldat[plane] = word
	a.bplFetchBuf[plane] = append(a.bplFetchBuf[plane], word)
}

func bitplaneOwner(plane int) memory.BusOwner {
	switch plane {
	case 0:
		return memory.OwnerBitplane1
	case 1:
		return memory.OwnerBitplane2
	case 2:
		return memory.OwnerBitplane3
	case 3:
		return memory.OwnerBitplane4
	case 4:
		return memory.OwnerBitplane5
	default:
		return memory.OwnerBitplane6
	}
}

func audioOwner(ch int) memory.BusOwner {
	switch ch {
	case 0:
		return memory.OwnerAudio0
	case 1:
		return memory.OwnerAudio1
	case 2:
		return memory.OwnerAudio2
	default:
		return memory.OwnerAudio3
	}
}

func (a *Agnus) advanceBeam() {
	a.h++
	if a.h >= slotsPerLine {
		a.h = 0
		a.v++
		a.arbiter.BeginLine()
		if a.dmacon&(DMACONDMAEN|DMACONBPLEN) == DMACONDMAEN|DMACONBPLEN {
			a.applyBitplaneModulo()
		}
		if a.v >= linesPerFrame {
			a.v = 0
			a.frame++
			a.registerChanges = a.registerChanges[:0]
			a.pla.Raise(paula.IntVERTB)
		}
	}
	a.arbiter.SetSlot(a.h)
}

// applyBitplaneModulo adds BPL1MOD/BPL2MOD to the odd/even plane pointers
// at the end of each display line, per the 8370/8371 Agnus's documented
// end-of-line pointer adjustment (skips the non-displayed words of an
// interleaved bitmap's next line).
func (a *Agnus) applyBitplaneModulo() {
	for p := 0; p < 6; p++ {
		if p%2 == 0 {
			a.bplpt[p] = uint32(int64(a.bplpt[p]) + int64(a.bplmod1))
		} else {
			a.bplpt[p] = uint32(int64(a.bplpt[p]) + int64(a.bplmod2))
		}
	}
}

// DrainBitplaneWords hands the accumulated per-plane bitplane fetch buffer
// to the caller and clears it, matching DrainRegisterChanges's once-per-line
// drain shape for Denise's other line input.
func (a *Agnus) DrainBitplaneWords() [6][]uint16 {
	out := a.bplFetchBuf
	a.bplFetchBuf = [6][]uint16{}
	return out
}

// queueRegisterChange records a Denise-bound register write, tagged with
// the pixel column it takes effect at. Denise drains this once per line.
func (a *Agnus) queueRegisterChange(reg uint8, value uint16) {
	a.registerChanges = append(a.registerChanges, RegisterChange{Pixel: a.h, Reg: reg, Value: value})
}

// DrainRegisterChanges hands the accumulated Denise-bound register changes
// to the caller and clears the queue, matching the "queue of register
// changes ... consumed at end-of-line" flow of spec.md §4.6.
func (a *Agnus) DrainRegisterChanges() []RegisterChange {
	out := a.registerChanges
	a.registerChanges = nil
	return out
}

// SpriteArmed reports whether sprite x is currently armed: its SPRxDATA has
// been written since the last SPRxCTL write (spec.md §8 "writing SPRxDATA
// then SPRxCTL leaves armed bit for x cleared").
func (a *Agnus) SpriteArmed(x int) bool {
	return a.sprarmed[x]
}

// AccumulateCLXDAT ORs newly detected collision bits into CLXDAT. Real
// hardware's collision latch is cumulative across a frame until read
// (PeekCustom's regCLXDAT case clears it); Denise's per-line render is the
// only producer of new bits.
func (a *Agnus) AccumulateCLXDAT(bits uint16) {
	a.clxdat |= bits
}
