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

// microOp is a bitfield of combinable micro-instructions executed in one
// Blitter cycle, per spec.md §4.4.
type microOp uint16

const (
	opNOTHING microOp = 0
	opBUSIDLE microOp = 1 << iota
	opBUS
	opWRITE_D
	opFETCH_A
	opFETCH_B
	opFETCH_C
	opHOLD_A
	opHOLD_B
	opHOLD_D
	opFILL
	opBLTDONE
	opREPEAT
)

const opFETCH = opFETCH_A | opFETCH_B | opFETCH_C

// copyBlitInstr[channelMask][fill] is the micro-program run for a non-line
// blit, transcribed from SlowBlitter.cpp's copyBlitInstr table (HRM Table
// 6.2 for the no-fill column, the October 1985 HRM errata for the fill
// column). The "full" and "fake" accuracy tiers execute the very same
// op-list; only the interpretation of FETCH/HOLD/FILL differs
// (Blitter.execOne versus Blitter.fakeExec in blitter.go), matching the
// original's identically-shaped
// Blitter::exec/fakeExec template pair.
var copyBlitInstr = [16][2][]microOp{
	// 0: -- -- | -- --
	{
		{opBUSIDLE, opBUSIDLE | opREPEAT, opNOTHING, opBLTDONE},
		{opBUSIDLE, opBUSIDLE | opREPEAT, opNOTHING, opBLTDONE},
	},
	// 1: D only
	{
		{opHOLD_D | opBUSIDLE, opWRITE_D | opHOLD_A | opHOLD_B | opREPEAT, opHOLD_D, opWRITE_D | opBLTDONE},
		{opFILL | opHOLD_D | opBUSIDLE, opWRITE_D, opBUSIDLE | opHOLD_A | opHOLD_B | opREPEAT, opFILL | opHOLD_D, opWRITE_D | opBLTDONE},
	},
	// 2: C only
	{
		{opHOLD_D | opBUSIDLE, opFETCH_C | opHOLD_A | opHOLD_B | opREPEAT, opHOLD_D, opBLTDONE},
		{opFILL | opHOLD_D | opBUSIDLE, opFETCH_C | opHOLD_A | opHOLD_B | opREPEAT, opFILL | opHOLD_D, opBLTDONE},
	},
	// 3: C D
	{
		{opHOLD_D | opBUSIDLE, opFETCH_C | opHOLD_A | opHOLD_B, opWRITE_D | opREPEAT, opHOLD_D, opWRITE_D | opBLTDONE},
		{opFILL | opHOLD_D | opBUSIDLE, opFETCH_C | opHOLD_A | opHOLD_B, opWRITE_D | opREPEAT, opFILL | opHOLD_D, opWRITE_D | opBLTDONE},
	},
	// 4: B only
	{
		{opHOLD_D | opBUSIDLE, opFETCH_B | opHOLD_A, opHOLD_B | opBUSIDLE | opREPEAT, opHOLD_D, opBLTDONE},
		{opFILL | opHOLD_D | opBUSIDLE, opFETCH_B | opHOLD_A, opHOLD_B | opBUSIDLE | opREPEAT, opFILL | opHOLD_D, opBLTDONE},
	},
	// 5: B D
	{
		{opBUSIDLE | opHOLD_D, opFETCH_B | opHOLD_A, opWRITE_D | opHOLD_B | opREPEAT, opHOLD_D, opWRITE_D | opBLTDONE},
		{opBUSIDLE | opFILL | opHOLD_D, opFETCH_B | opHOLD_A, opWRITE_D | opHOLD_B, opBUSIDLE | opREPEAT, opFILL | opHOLD_D, opWRITE_D | opBLTDONE},
	},
	// 6: B C
	{
		{opBUSIDLE | opHOLD_D, opFETCH_B | opHOLD_A, opFETCH_C | opHOLD_B | opREPEAT, opHOLD_D, opBLTDONE},
		{opBUSIDLE | opFILL | opHOLD_D, opFETCH_B | opHOLD_A, opFETCH_C | opHOLD_B | opREPEAT, opFILL | opHOLD_D, opBLTDONE},
	},
	// 7: B C D
	{
		{opBUSIDLE | opHOLD_D, opFETCH_B | opHOLD_A, opFETCH_C | opHOLD_B, opWRITE_D | opREPEAT, opHOLD_D, opWRITE_D | opBLTDONE},
		{opBUSIDLE | opFILL | opHOLD_D, opFETCH_B | opHOLD_A, opFETCH_C | opHOLD_B, opWRITE_D | opREPEAT, opFILL | opHOLD_D, opWRITE_D | opBLTDONE},
	},
	// 8: A only
	{
		{opFETCH_A | opHOLD_D, opHOLD_A | opHOLD_B | opBUSIDLE | opREPEAT, opHOLD_D, opBLTDONE},
		{opFETCH_A | opFILL | opHOLD_D, opHOLD_A | opHOLD_B | opBUSIDLE | opREPEAT, opFILL | opHOLD_D, opBLTDONE},
	},
	// 9: A D
	{
		{opFETCH_A | opHOLD_D, opWRITE_D | opHOLD_A | opHOLD_B | opREPEAT, opHOLD_D, opWRITE_D | opBLTDONE},
		{opFETCH_A | opFILL | opHOLD_D, opWRITE_D | opHOLD_A | opHOLD_B, opBUSIDLE | opREPEAT, opFILL | opHOLD_D, opWRITE_D | opBLTDONE},
	},
	// A: A C
	{
		{opFETCH_A | opHOLD_D, opFETCH_C | opHOLD_A | opHOLD_B | opREPEAT, opHOLD_D, opBLTDONE},
		{opFETCH_A | opFILL | opHOLD_D, opFETCH_C | opHOLD_A | opHOLD_B | opREPEAT, opFILL | opHOLD_D, opBLTDONE},
	},
	// B: A C D
	{
		{opFETCH_A | opHOLD_D, opFETCH_C | opHOLD_A | opHOLD_B, opWRITE_D | opREPEAT, opHOLD_D, opWRITE_D | opBLTDONE},
		{opFETCH_A | opFILL | opHOLD_D, opFETCH_C | opHOLD_A | opHOLD_B, opWRITE_D | opREPEAT, opFILL | opHOLD_D, opWRITE_D | opBLTDONE},
	},
	// C: A B
	{
		{opFETCH_A | opHOLD_D, opFETCH_B | opHOLD_A, opHOLD_B | opBUSIDLE | opREPEAT, opHOLD_D, opBLTDONE},
		{opFETCH_A | opFILL | opHOLD_D, opFETCH_B | opHOLD_A, opHOLD_B | opBUSIDLE | opREPEAT, opFILL | opHOLD_D, opBLTDONE},
	},
	// D: A B D
	{
		{opFETCH_A | opHOLD_D, opFETCH_B | opHOLD_A, opWRITE_D | opHOLD_B | opREPEAT, opHOLD_D, opWRITE_D | opBLTDONE},
		{opFETCH_A | opFILL | opHOLD_D, opFETCH_B | opHOLD_A, opWRITE_D | opHOLD_B, opBUSIDLE | opREPEAT, opFILL | opHOLD_D, opWRITE_D | opBLTDONE},
	},
	// E: A B C
	{
		{opFETCH_A | opHOLD_D, opFETCH_B | opHOLD_A, opFETCH_C | opHOLD_B | opREPEAT, opHOLD_D, opBLTDONE},
		{opFETCH_A | opFILL | opHOLD_D, opFETCH_B | opHOLD_A, opFETCH_C | opHOLD_B | opREPEAT, opFILL | opHOLD_D, opBLTDONE},
	},
	// F: A B C D
	{
		{opFETCH_A | opHOLD_D, opFETCH_B | opHOLD_A, opFETCH_C | opHOLD_B, opWRITE_D | opREPEAT, opHOLD_D, opWRITE_D | opBLTDONE},
		{opFETCH_A | opFILL | opHOLD_D, opFETCH_B | opHOLD_A, opFETCH_C | opHOLD_B, opWRITE_D | opREPEAT, opHOLD_D, opWRITE_D | opBLTDONE},
	},
}

// legacyFillD1Instr is the literal HRM Table 6.2 fill-mode sequence for
// channel mask 1 (D only), before the October 1985 errata: it naively
// reuses the non-fill D-only shape (copyBlitInstr[1][0]) with opFILL ORed
// onto the HOLD_D steps, never inserting the extra serializing cycle the
// errata's corrected copyBlitInstr[1][1] adds before WRITE_D. SlowBlitter.cpp
// carries a comment noting the HRM's own table is "most likely wrong" here;
// spec.md §9 Open Question 1 asks for both sequences to be present, selected
// by BLITTER_ACCURACY — lower accuracy tiers reproduce the original,
// HRM-as-published (and buggy) behaviour some released software was timed
// against, full accuracy uses the errata-corrected sequence.
var legacyFillD1Instr = []microOp{
	opFILL | opHOLD_D | opBUSIDLE, opWRITE_D | opHOLD_A | opHOLD_B | opREPEAT, opFILL | opHOLD_D, opWRITE_D | opBLTDONE,
}

// lineBlitInstr is the single fixed micro-program for line-draw mode,
// addressing channel C (pixel under cursor) and writing back through D.
// original_source notes this sequence with a "(???)" — DESIGN.md records
// it as carried over unmodified per spec.md §9 Open Question (3): there is
// no distinct slow line Blitter, the line path always runs this program
// as a bus trace for data runFastLine has already written. runFastLine
// steps its pointers by the C/D modulos and has no Bresenham error term.
var lineBlitInstr = []microOp{
	opBUSIDLE,
	opFETCH_C,
	opBUSIDLE,
	opWRITE_D | opREPEAT,
	opNOTHING,
	opWRITE_D | opBLTDONE,
}
