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

package blitter

// Host is the Agnus-side surface the Blitter needs: bus allocation for
// chip-memory fetches/writes, and a completion signal (raises Paula's
// BLTDONE interrupt, releases the channel). Mirrors the Host-interface
// shape copper.Host uses to reach Agnus without an import cycle.
type Host interface {
	AllocateBus() bool
	BusIsFree() bool
	Read16(addr uint32) uint16
	Write16(addr uint32, value uint16)
	RaiseBlitterDone()
}

// BLTCON0 field layout: ASH[15:12], channel enables USEA/USEB/USEC/USED
// [11:8], minterm [7:0].
const (
	bltcon0ASHShift = 12
	bltcon0UseAMask = 1 << 11
	bltcon0UseBMask = 1 << 10
	bltcon0UseCMask = 1 << 9
	bltcon0UseDMask = 1 << 8
)

// BLTCON1 field layout: BSH[15:12], then LINE/DESC/FCI/IFE/EFE flags.
const (
	bltcon1BSHShift = 12
	bltcon1LINE     = 1 << 0
	bltcon1DESC     = 1 << 1
	bltcon1FCI      = 1 << 2
	bltcon1IFE      = 1 << 3
	bltcon1EFE      = 1 << 4
)

// Blitter is the channel A/B/C/D micro-engine.
type Blitter struct {
	bltcon0, bltcon1 uint16

	bltapt, bltbpt, bltcpt, bltdpt uint32
	bltafwm, bltalwm               uint16
	bltamod, bltbmod, bltcmod, bltdmod int16

	bltsizeW, bltsizeH uint16

	anew, bnew             uint16
	aold, bold             uint16
	ahold, bhold, chold, dhold uint16

	incr                   int32
	amod, bmod, cmod, dmod int32
	ash, bsh               uint16

	xCounter, yCounter     uint16
	cntA, cntB, cntC, cntD uint16
	mask                   uint16

	fillCarry bool
	bzero     bool
	lockD     bool

	program []microOp
	pc      int
	fake    bool

	busy bool
	line bool

	accuracy int // 0/1 = fake, 2 = full, per config.BLITTER_ACCURACY
}

// NewBlitter returns a Blitter at its power-on default (full accuracy).
func NewBlitter() *Blitter {
	return &Blitter{accuracy: 2}
}

// SetAccuracy installs the BLITTER_ACCURACY config value.
func (bl *Blitter) SetAccuracy(level int) { bl.accuracy = level }

// Register pokes. Addresses are Agnus/custom-chip concerns; this package
// only models the values.
func (bl *Blitter) SetBLTCON0(v uint16)  { bl.bltcon0 = v }
func (bl *Blitter) SetBLTCON1(v uint16)  { bl.bltcon1 = v }
func (bl *Blitter) SetBLTAFWM(v uint16)  { bl.bltafwm = v }
func (bl *Blitter) SetBLTALWM(v uint16)  { bl.bltalwm = v }
func (bl *Blitter) SetBLTAPT(v uint32)   { bl.bltapt = v }
func (bl *Blitter) SetBLTBPT(v uint32)   { bl.bltbpt = v }
func (bl *Blitter) SetBLTCPT(v uint32)   { bl.bltcpt = v }
func (bl *Blitter) SetBLTDPT(v uint32)   { bl.bltdpt = v }
func (bl *Blitter) SetBLTAMOD(v int16)   { bl.bltamod = v }
func (bl *Blitter) SetBLTBMOD(v int16)   { bl.bltbmod = v }
func (bl *Blitter) SetBLTCMOD(v int16)   { bl.bltcmod = v }
func (bl *Blitter) SetBLTDMOD(v int16)   { bl.bltdmod = v }

func (bl *Blitter) desc() bool { return bl.bltcon1&bltcon1DESC != 0 }
func (bl *Blitter) lineMode() bool { return bl.bltcon1&bltcon1LINE != 0 }
func (bl *Blitter) exclusiveFill() bool { return bl.bltcon1&bltcon1EFE != 0 }
func (bl *Blitter) minterm() uint8 { return uint8(bl.bltcon0) }

func (bl *Blitter) channelMask() int {
	m := 0
	if bl.bltcon0&bltcon0UseAMask != 0 {
		m |= 8
	}
	if bl.bltcon0&bltcon0UseBMask != 0 {
		m |= 4
	}
	if bl.bltcon0&bltcon0UseCMask != 0 {
		m |= 2
	}
	if bl.bltcon0&bltcon0UseDMask != 0 {
		m |= 1
	}
	return m
}

// Busy reports whether a blit is in progress (Copper WAIT BFD checks this).
func (bl *Blitter) Busy() bool { return bl.busy }

// SetBLTSIZE kicks off a copy or line blit: width (in words, low 6 bits)
// and height (high 10 bits), matching the real BLTSIZE register's packing.
func (bl *Blitter) SetBLTSIZE(v uint16, host Host) {
	bl.bltsizeW = v & 0x3F
	if bl.bltsizeW == 0 {
		bl.bltsizeW = 64
	}
	bl.bltsizeH = v >> 6
	if bl.bltsizeH == 0 {
		bl.bltsizeH = 1024
	}

	bl.line = bl.lineMode()

	if bl.desc() {
		bl.incr = -2
		bl.ash = 16 - (bl.bltcon0 >> bltcon0ASHShift)
		bl.bsh = 16 - (bl.bltcon1 >> bltcon1BSHShift)
		bl.amod, bl.bmod, bl.cmod, bl.dmod = -int32(bl.bltamod), -int32(bl.bltbmod), -int32(bl.bltcmod), -int32(bl.bltdmod)
	} else {
		bl.incr = 2
		bl.ash = bl.bltcon0 >> bltcon0ASHShift
		bl.bsh = bl.bltcon1 >> bltcon1BSHShift
		bl.amod, bl.bmod, bl.cmod, bl.dmod = int32(bl.bltamod), int32(bl.bltbmod), int32(bl.bltcmod), int32(bl.bltdmod)
	}

	bl.resetXCounter()
	bl.resetYCounter()
	bl.aold, bl.bold = 0, 0
	bl.fillCarry = bl.bltcon1&bltcon1FCI != 0
	bl.bzero = true
	bl.lockD = true
	bl.busy = true
	bl.pc = 0

	fill := 0
	if (bl.bltcon1&(bltcon1IFE|bltcon1EFE)) != 0 && !bl.line {
		fill = 1
	}
	bl.fake = bl.accuracy < 2

	if bl.line {
		// There is no distinct slow line Blitter (spec.md §9 Open
		// Question 3): line mode always runs the fake tier, replaying
		// only the bus trace of data runFastLine has already written.
		bl.fake = true
		bl.program = lineBlitInstr
		bl.bltsizeW = 1
		bl.runFastLine(host)
	} else {
		mask := bl.channelMask()
		if mask == 1 && fill == 1 && bl.accuracy < 2 {
			// D-only fill is the one case SlowBlitter.cpp flags as uncertain
			// in the HRM: at full accuracy we run the October 1985 errata's
			// corrected sequence (copyBlitInstr[1][1]); below that we
			// reproduce the HRM-as-published sequence verbatim, matching
			// software timed against the uncorrected chip behaviour.
			bl.program = legacyFillD1Instr
		} else {
			bl.program = copyBlitInstr[mask][fill]
		}
		if bl.fake {
			bl.runFastCopy(host)
		}
	}
}

func (bl *Blitter) resetXCounter() {
	bl.xCounter = bl.bltsizeW
	bl.cntA, bl.cntB, bl.cntC, bl.cntD = bl.bltsizeW, bl.bltsizeW, bl.bltsizeW, bl.bltsizeW
	bl.setMask()
}
func (bl *Blitter) resetYCounter() { bl.yCounter = bl.bltsizeH }

func (bl *Blitter) setMask() {
	bl.mask = 0xFFFF
	if bl.xCounter == bl.bltsizeW {
		bl.mask &= bl.bltafwm
	}
	if bl.xCounter == 1 {
		bl.mask &= bl.bltalwm
	}
}

// Step runs exactly one micro-op of the current program; Agnus calls this
// once per BLT DMA slot. No-ops (returns immediately) if no blit is active.
func (bl *Blitter) Step(host Host) {
	if !bl.busy || bl.pc >= len(bl.program) {
		return
	}
	op := bl.program[bl.pc]

	if bl.fake {
		bl.fakeExec(op, host)
	} else {
		bl.execOne(op, host)
	}
}

func (bl *Blitter) execOne(op microOp, host Host) {
	needBus := op&(opFETCH|opBUS) != 0
	needIdle := op&opBUSIDLE != 0
	if op&opWRITE_D != 0 {
		needBus = !bl.lockD
		needIdle = bl.lockD
	}

	if needBus && !host.AllocateBus() {
		return
	}
	if needIdle && !host.BusIsFree() {
		return
	}
	bl.pc++

	if op&opWRITE_D != 0 && !bl.lockD {
		host.Write16(bl.bltdpt, bl.dhold)
		bl.bltdpt = addPtr(bl.bltdpt, bl.incr)
		bl.cntD--
		if bl.cntD == 0 {
			bl.bltdpt = addPtr(bl.bltdpt, bl.dmod)
			bl.cntD = bl.bltsizeW
			bl.fillCarry = bl.bltcon1&bltcon1FCI != 0
		}
	}

	if op&opFETCH_A != 0 {
		bl.anew = host.Read16(bl.bltapt)
		bl.bltapt = addPtr(bl.bltapt, bl.incr)
		bl.cntA--
		if bl.cntA == 0 {
			bl.bltapt = addPtr(bl.bltapt, bl.amod)
			bl.cntA = bl.bltsizeW
		}
	}
	if op&opFETCH_B != 0 {
		bl.bnew = host.Read16(bl.bltbpt)
		bl.bltbpt = addPtr(bl.bltbpt, bl.incr)
		bl.cntB--
		if bl.cntB == 0 {
			bl.bltbpt = addPtr(bl.bltbpt, bl.bmod)
			bl.cntB = bl.bltsizeW
		}
	}
	if op&opFETCH_C != 0 {
		bl.chold = host.Read16(bl.bltcpt)
		bl.bltcpt = addPtr(bl.bltcpt, bl.incr)
		bl.cntC--
		if bl.cntC == 0 {
			bl.bltcpt = addPtr(bl.bltcpt, bl.cmod)
			bl.cntC = bl.bltsizeW
		}
	}

	if op&opHOLD_A != 0 {
		masked := bl.anew & bl.mask
		if bl.desc() {
			bl.ahold = shift32(masked, bl.aold, bl.ash)
		} else {
			bl.ahold = shift32(bl.aold, masked, bl.ash)
		}
		bl.aold = masked
	}
	if op&opHOLD_B != 0 {
		if bl.desc() {
			bl.bhold = shift32(bl.bnew, bl.bold, bl.bsh)
		} else {
			bl.bhold = shift32(bl.bold, bl.bnew, bl.bsh)
		}
		bl.bold = bl.bnew
	}
	if op&opHOLD_D != 0 {
		bl.dhold = MintermLogic(bl.ahold, bl.bhold, bl.chold, bl.minterm())
		if op&opFILL != 0 && !bl.lockD {
			bl.dhold, bl.fillCarry = runFill(bl.dhold, bl.fillCarry, bl.exclusiveFill())
		}
		if bl.dhold != 0 {
			bl.bzero = false
		}
	}

	bl.repeatAndDone(op, host)
}

func (bl *Blitter) fakeExec(op microOp, host Host) {
	needBus := op&(opFETCH|opBUS) != 0
	needIdle := op&opBUSIDLE != 0
	if op&opWRITE_D != 0 {
		needBus = !bl.lockD
		needIdle = bl.lockD
	}
	if needBus && !host.AllocateBus() {
		return
	}
	if needIdle && !host.BusIsFree() {
		return
	}
	bl.pc++
	bl.repeatAndDone(op, host)
}

func (bl *Blitter) repeatAndDone(op microOp, host Host) {
	if op&opREPEAT != 0 {
		bl.lockD = false
		if bl.xCounter > 1 {
			bl.xCounter--
			bl.setMask()
			bl.pc = 0
		} else if bl.yCounter > 1 {
			bl.yCounter--
			bl.resetXCounter()
			bl.pc = 0
		}
		// Once both counters are exhausted the program runs on past
		// REPEAT: the remaining micro-ops flush the last D word and
		// BLTDONE ends the blit.
	}
	if op&opBLTDONE != 0 {
		bl.endBlit(host)
	}
}

func (bl *Blitter) endBlit(host Host) {
	bl.busy = false
	host.RaiseBlitterDone()
}

// BlitZero reports the BZERO status flag: true iff every HOLD_D produced
// zero across the whole blit.
func (bl *Blitter) BlitZero() bool { return bl.bzero }

// shift32 models the Blitter's 32-bit barrel shifter: concatenate {hi,lo}
// as a 32-bit word and shift right by n (0..16; descending blits pass
// 16 minus the shift amount), returning the low 16 bits.
func shift32(hi, lo uint16, n uint16) uint16 {
	v := uint32(hi)<<16 | uint32(lo)
	return uint16(v >> n)
}

func addPtr(ptr uint32, delta int32) uint32 {
	return uint32(int64(ptr) + int64(delta))
}
