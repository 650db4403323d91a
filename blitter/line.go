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

// runFastLine draws bl.bltsizeH pixels by reading the word under the
// cursor through channel C (when enabled), combining it with a one-pixel A
// pattern through the minterm, and writing the result back through channel
// D. Between pixels the C and D pointers advance by their modulos only:
// there is no Bresenham error term and no octant handling, so the pixel
// path is fixed by the modulos. Per spec.md §9 Open Question (3),
// there is no distinct "slow" line Blitter in the original either — the
// slow micro-program (lineBlitInstr) only replays this result's bus trace.
func (bl *Blitter) runFastLine(host Host) {
	useC := bl.bltcon0&bltcon0UseCMask != 0
	cpt, dpt := bl.bltcpt, bl.bltdpt

	for i := uint16(0); i < bl.bltsizeH; i++ {
		var chold uint16
		if useC {
			chold = host.Read16(cpt)
		}
		bit := uint16(1) << (15 - (bl.ash & 0xF))
		dhold := MintermLogic(bit, 0xFFFF, chold, bl.minterm())
		host.Write16(dpt, dhold)

		// C and D advance by their configured modulos each iteration;
		// no octant-aware Bresenham walk is performed.
		cpt = addPtr(cpt, bl.cmod)
		dpt = addPtr(dpt, bl.dmod)
	}
}
