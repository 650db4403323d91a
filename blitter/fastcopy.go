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

// runFastCopy performs the whole copy/fill blit in one pass, the "fast
// Blitter" lower accuracy tiers fall back to (original_source's
// Blitter::beginFakeCopyBlit: "the fast Blitter" already produced the
// result before the slow micro-program replays only the bus trace). Data
// is written directly through Host; the caller's micro-program (run via
// Step, in fake mode) subsequently only paces DMA slot allocation and does
// not touch memory again.
func (bl *Blitter) runFastCopy(host Host) {
	useA := bl.bltcon0&bltcon0UseAMask != 0
	useB := bl.bltcon0&bltcon0UseBMask != 0
	useC := bl.bltcon0&bltcon0UseCMask != 0
	useD := bl.bltcon0&bltcon0UseDMask != 0

	fill := bl.bltcon1&(bltcon1IFE|bltcon1EFE) != 0
	exclusive := bl.exclusiveFill()

	apt, bpt, cpt, dpt := bl.bltapt, bl.bltbpt, bl.bltcpt, bl.bltdpt
	var aold, bold uint16
	fillCarry := bl.bltcon1&bltcon1FCI != 0
	bzero := true

	for y := uint16(0); y < bl.bltsizeH; y++ {
		rowFillCarry := fillCarry
		for x := uint16(0); x < bl.bltsizeW; x++ {
			mask := uint16(0xFFFF)
			if x == 0 {
				mask &= bl.bltafwm
			}
			if x == bl.bltsizeW-1 {
				mask &= bl.bltalwm
			}

			var anew, bnew uint16
			if useA {
				anew = host.Read16(apt)
				apt = addPtr(apt, bl.incr)
			}
			if useB {
				bnew = host.Read16(bpt)
				bpt = addPtr(bpt, bl.incr)
			}
			var chold uint16
			if useC {
				chold = host.Read16(cpt)
				cpt = addPtr(cpt, bl.incr)
			}

			masked := anew & mask
			var ahold, bhold uint16
			if bl.desc() {
				ahold = shift32(masked, aold, bl.ash)
				bhold = shift32(bnew, bold, bl.bsh)
			} else {
				ahold = shift32(aold, masked, bl.ash)
				bhold = shift32(bold, bnew, bl.bsh)
			}
			aold, bold = masked, bnew

			dhold := MintermLogic(ahold, bhold, chold, bl.minterm())
			if fill {
				dhold, rowFillCarry = runFill(dhold, rowFillCarry, exclusive)
			}
			if dhold != 0 {
				bzero = false
			}

			if useD {
				host.Write16(dpt, dhold)
				dpt = addPtr(dpt, bl.incr)
			}
		}
		if useA {
			apt = addPtr(apt, bl.amod)
		}
		if useB {
			bpt = addPtr(bpt, bl.bmod)
		}
		if useC {
			cpt = addPtr(cpt, bl.cmod)
		}
		if useD {
			dpt = addPtr(dpt, bl.dmod)
		}
		fillCarry = bl.bltcon1&bltcon1FCI != 0
	}

	bl.bzero = bzero
}
