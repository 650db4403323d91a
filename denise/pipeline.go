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

package denise

// RegisterChange is one pixel-tagged write to a display register, as queued
// by Agnus's PokeCustom during the line and replayed here at the column it
// takes effect, rather than applied immediately like every other register.
type RegisterChange struct {
	Pixel int
	Reg   uint8
	Value uint16
}

// Register numbers RegisterChange.Reg uses, matching agnus's word-register
// numbering so the caller can forward agnus.RegisterChange values verbatim.
const (
	RegBPLCON0 = 0x080
	RegBPLCON1 = 0x081
	RegBPLCON2 = 0x082
	RegDIWSTRT = 0x047
	RegDIWSTOP = 0x048
	RegCOLOR00 = 0x0C0
	RegSPR0POS = 0x0A0
	regSPRStride = 0x004
)

// LineInput is everything RenderLine needs for one rasterline: the register
// values in effect at the start of the line, the bitplane words Agnus's DMA
// fetch collected during the line's fetch window, and the pixel-tagged
// changes queued during the line.
type LineInput struct {
	BPLCON0, BPLCON1, BPLCON2 uint16
	DIWSTRT, DIWSTOP          uint16
	CLXCON                    uint16
	ColorReg                  [32]uint16

	// BitplaneWords[p] is the sequence of words Agnus fetched for plane p
	// this line, oldest first.
	BitplaneWords [6][]uint16

	SprPos, SprCtl, SprDataA, SprDataB [8]uint16
	Armed                              [8]bool

	Changes []RegisterChange

	// Collision-detection enables, mirroring config.CLX_SPR_SPR/CLX_SPR_PLF/
	// CLX_PLF_PLF: real hardware always checks every collision class, these
	// gate which classes this emulation bothers computing.
	ClxSprSpr, ClxSprPlf, ClxPlfPlf bool
}

// zBuffer bit layout: one bit per sprite for collision participation, plus
// one each for playfield 1/2 opacity.
const (
	zSprite0 = 1 << iota
	zSprite1
	zSprite2
	zSprite3
	zSprite4
	zSprite5
	zSprite6
	zSprite7
	zPF1
	zPF2
)

var zSprite = [8]uint16{zSprite0, zSprite1, zSprite2, zSprite3, zSprite4, zSprite5, zSprite6, zSprite7}

// unpackPlaneBits expands each of a plane's fetched words into HPixels bits
// (MSB first, the order bits leave a hardware shift register), applying a
// BPLCON1-derived horizontal scroll delay of up to 15 pixels. Odd planes
// (1,3,5) use the low nibble of BPLCON1, even planes the high nibble,
// matching the register's documented PF1/PF2 scroll-delay split.
func unpackPlaneBits(words []uint16, plane int, bplcon1 uint16) []bool {
	bits := make([]bool, 0, len(words)*16)
	for _, w := range words {
		for i := 15; i >= 0; i-- {
			bits = append(bits, w&(1<<uint(i)) != 0)
		}
	}
	var delay int
	if plane%2 == 0 {
		delay = int(bplcon1 & 0xF)
	} else {
		delay = int((bplcon1 >> 4) & 0xF)
	}
	out := make([]bool, HPixels)
	for p := 0; p < HPixels; p++ {
		src := p - delay
		if src >= 0 && src < len(bits) {
			out[p] = bits[src]
		}
	}
	return out
}

// RenderLine synthesizes one rasterline of RGBA pixels into row (which must
// be at least HPixels long) and returns the CLXDAT bits this line's
// collisions set, for the caller to OR into the persistent CLXDAT register.
func RenderLine(in *LineInput, row []uint32) uint16 {
	bplcon0, bplcon1, bplcon2 := in.BPLCON0, in.BPLCON1, in.BPLCON2
	diwstrt, diwstop := in.DIWSTRT, in.DIWSTOP
	clxcon := in.CLXCON
	colorReg := in.ColorReg
	sprPos, sprCtl, sprDataA, sprDataB := in.SprPos, in.SprCtl, in.SprDataA, in.SprDataB

	hires := bplcon0&0x8000 != 0
	dualPlayfield := bplcon0&0x0400 != 0
	numPlanes := int((bplcon0 >> 12) & 0x7)

	planeBits := [6][]bool{}
	for p := 0; p < 6; p++ {
		planeBits[p] = unpackPlaneBits(in.BitplaneWords[p], p, bplcon1)
	}

	diwH0 := int(diwstrt & 0xFF)
	diwH1 := int(diwstop & 0xFF)
	if diwH1 <= diwH0 {
		diwH1 += 0x100
	}

	var clxdat uint16
	changeIdx := 0
	pf2pri := bplcon2&0x40 != 0
	pfPriority := int(bplcon2 & 0x07)

	// sprite shift position: each sprite's 16-bit A/B data shifts out MSB
	// first starting at its HSTART column (low 8 bits of SPRxPOS plus the
	// attach/HSTART high bit folded into SPRxCTL, simplified here to the
	// POS register's low byte only).
	sprStart := [8]int{}
	for s := 0; s < 8; s++ {
		sprStart[s] = int(sprPos[s] & 0xFF)
	}

	for pixel := 0; pixel < HPixels; pixel++ {
		for changeIdx < len(in.Changes) && in.Changes[changeIdx].Pixel == pixel {
			ch := in.Changes[changeIdx]
			switch {
			case ch.Reg == RegBPLCON0:
				bplcon0 = ch.Value
				hires = bplcon0&0x8000 != 0
				dualPlayfield = bplcon0&0x0400 != 0
				numPlanes = int((bplcon0 >> 12) & 0x7)
			case ch.Reg == RegBPLCON1:
				bplcon1 = ch.Value
			case ch.Reg == RegBPLCON2:
				bplcon2 = ch.Value
				pf2pri = bplcon2&0x40 != 0
				pfPriority = int(bplcon2 & 0x07)
			case ch.Reg == RegDIWSTRT:
				diwstrt = ch.Value
				diwH0 = int(diwstrt & 0xFF)
			case ch.Reg == RegDIWSTOP:
				diwstop = ch.Value
				diwH1 = int(diwstop & 0xFF)
				if diwH1 <= diwH0 {
					diwH1 += 0x100
				}
			case ch.Reg >= RegCOLOR00 && ch.Reg < RegCOLOR00+32:
				colorReg[ch.Reg-RegCOLOR00] = ch.Value
			case ch.Reg >= RegSPR0POS && ch.Reg < RegSPR0POS+regSPRStride*8:
				spr := int(ch.Reg-RegSPR0POS) / regSPRStride
				switch int(ch.Reg-RegSPR0POS) % regSPRStride {
				case 0:
					sprPos[spr] = ch.Value
					sprStart[spr] = int(ch.Value & 0xFF)
				case 1:
					sprCtl[spr] = ch.Value
				case 2:
					sprDataA[spr] = ch.Value
				case 3:
					sprDataB[spr] = ch.Value
				}
			}
			changeIdx++
		}

		_ = hires // decoded but unused: each column samples one bit per plane in lores and hires alike

		// Step 1+2: shift/sample and translate to an index + z value.
		var bval byte
		for p := 0; p < numPlanes && p < 6; p++ {
			if planeBits[p][pixel] {
				bval |= 1 << uint(p)
			}
		}

		var index int
		var z uint16
		if !dualPlayfield {
			index = int(bval)
			if bval != 0 {
				z = zPF1
			}
		} else {
			// Odd bitplanes (1,3,5 -> bits 0,2,4) form PF1's index, even
			// bitplanes (2,4,6 -> bits 1,3,5) form PF2's.
			pf1idx := 0
			if bval&0x01 != 0 {
				pf1idx |= 1
			}
			if bval&0x04 != 0 {
				pf1idx |= 2
			}
			if bval&0x10 != 0 {
				pf1idx |= 4
			}
			pf2idx := 0
			if bval&0x02 != 0 {
				pf2idx |= 1
			}
			if bval&0x08 != 0 {
				pf2idx |= 2
			}
			if bval&0x20 != 0 {
				pf2idx |= 4
			}
			pf1opaque := pf1idx != 0
			pf2opaque := pf2idx != 0
			switch {
			case pf1opaque && pf2opaque:
				if pf2pri {
					index = pf2idx*2 + 2
					z = zPF2
				} else {
					index = pf1idx*2 + 1
					z = zPF1
				}
			case pf2opaque:
				index = pf2idx*2 + 2
				z = zPF2
			case pf1opaque:
				index = pf1idx*2 + 1
				z = zPF1
			}
		}

		// Step 3: sprite compositing.
		pfZ := 0
		if z != 0 {
			pfZ = pfPriority
		}
		bestPairPriority := -1
		for pair := 0; pair < 4; pair++ {
			s0, s1 := pair*2, pair*2+1
			col := spriteColumn(s0, sprStart, sprDataA, sprDataB, pixel, in.Armed)
			attached := sprCtl[s1]&0x80 != 0
			var idx int
			var sprZBit uint16
			if attached {
				col1 := spriteColumn(s1, sprStart, sprDataA, sprDataB, pixel, in.Armed)
				combined := col*4 + col1
				if combined != 0 {
					idx = 16 + combined
					sprZBit = zSprite[s0] | zSprite[s1]
				}
			} else if col != 0 {
				idx = 16 + col + 2*(s0&6)
				sprZBit = zSprite[s0]
			}
			if idx == 0 {
				continue
			}
			pairPriority := 4 - pair
			z |= sprZBit
			if pairPriority > pfZ && pairPriority > bestPairPriority {
				bestPairPriority = pairPriority
				index = idx
			}
		}

		// Step 4: border.
		if pixel < diwH0 || pixel >= diwH1 {
			index = 0
			z = 0
		}

		// Step 5: collisions.
		clxdat |= collideAtPixel(z, byte(bval), clxcon, in.ClxSprSpr, in.ClxSprPlf, in.ClxPlfPlf)

		// Step 6: colourise.
		row[pixel] = ColorToRGBA(colorReg[index&0x1F] & 0x0FFF)
	}

	return clxdat
}

// spriteColumn returns sprite s's 2-bit colour (0 = transparent) at the
// given absolute pixel column, or 0 if the sprite isn't armed or the column
// falls outside its 16-pixel span.
func spriteColumn(s int, start [8]int, dataA, dataB [8]uint16, pixel int, armed [8]bool) int {
	if !armed[s] {
		return 0
	}
	offset := pixel - start[s]
	if offset < 0 || offset > 15 {
		return 0
	}
	bitpos := uint(15 - offset)
	a := (dataA[s] >> bitpos) & 1
	b := (dataB[s] >> bitpos) & 1
	return int(a | b<<1)
}

// collideAtPixel implements a simplified version of Denise.cpp's
// checkS2SCollisions/checkS2PCollisions/checkP2PCollisions. Sprite-sprite
// collisions set bits 9..14 of the result, one per pair of sprite pairs;
// they are gated by clxSprSpr only, and CLXCON's sprite enable bits are not
// consulted. CLXCON's low nibble (enabled bitplanes) and next nibble
// (compare values) gate sprite-playfield (bits 1..5) and
// playfield-playfield (bit 0).
func collideAtPixel(z uint16, bval byte, clxcon uint16, clxSprSpr, clxSprPlf, clxPlfPlf bool) uint16 {
	var out uint16

	if clxPlfPlf {
		enabled1 := uint8(clxcon & 0x0F)
		compare1 := uint8((clxcon >> 4) & 0x0F)
		if bval&enabled1 == compare1 {
			out |= 1
		}
	}

	if clxSprPlf {
		// PF1 participates via the same bitplane-mask/compare check used for
		// playfield-playfield collisions (matching Denise.cpp's
		// checkS2PCollisions, which compares raw bBuffer bits rather than
		// the opaque/transparent-translated index); PF2 participation is
		// approximated by its z-buffer opacity bit, a documented
		// simplification of the source's separate PF2 mask/compare pair.
		enabled1 := uint8(clxcon & 0x0F)
		compare1 := uint8((clxcon >> 4) & 0x0F)
		pf1Hit := bval&enabled1 == compare1
		pf2Hit := z&zPF2 != 0
		for pair := 0; pair < 4; pair++ {
			pairBit := zSprite[pair*2] | zSprite[pair*2+1]
			if z&pairBit == 0 {
				continue
			}
			if pf1Hit || pf2Hit {
				out |= 1 << uint(1+pair)
			}
		}
	}

	if clxSprSpr {
		comp := [4]uint16{zSprite0 | zSprite1, zSprite2 | zSprite3, zSprite4 | zSprite5, zSprite6 | zSprite7}
		bit := uint(9)
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if z&comp[i] != 0 && z&comp[j] != 0 {
					out |= 1 << bit
				}
				bit++
			}
		}
	}

	return out
}
