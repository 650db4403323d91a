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

package memory

// AutoConfig implements the minimal Zorro-II plug-and-play responder in the
// 0xE80000-0xEFFFFF window (pages 0xE8-0xEF, each decoding the same 64 KiB
// of offsets; spec.md's glossary entry "Autoconfig"): a board
// identifies itself through a fixed sequence of nibble-wide ID bytes at
// even offsets (their one's-complement at the following byte, per the
// standard Zorro encoding), the host writes an assigned base address back
// to offsets 0x48/0x4A, and a final write to the shut-up register at 0x4C
// tells the board to stop responding to the autoconfig space for the rest
// of the boot. This module doesn't relocate Fast RAM to the assigned base
// (Fast RAM's page-table position is fixed by memorymap.go's UpdateMemSrcTable
// instead) — the point of wiring this at all is that the AutoConfig page no
// longer silently falls through to the "unmapped address" default the way
// it did before, not a full slot-independent expansion-bus model.
type AutoConfig struct {
	present bool // a board (configured Fast RAM) exists to identify itself
	shutUp  bool
	base    uint32
}

// NewAutoConfig returns an AutoConfig responder. present should be true iff
// Fast RAM has been configured (sizes.FastPages > 0): Zorro-II autoconfig
// only has a board to enumerate when one exists.
func NewAutoConfig(present bool) *AutoConfig {
	return &AutoConfig{present: present}
}

// Zorro-II ER_Type/ER_Product identification nibbles for a generic Fast-RAM
// expansion board: ER_TYPE=0xC0 (Zorro II, add-memory, no ROM), the rest
// are placeholder manufacturer/product/serial fields since this core has no
// real board database to draw from (spec.md places ROM fingerprinting out
// of scope; the same applies here by extension).
var autoConfigID = [16]uint8{
	0xC0, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// PeekAutoConfig reads one byte from the autoconfig window. Real Zorro-II
// boards drive only the high nibble of each even byte and its complement on
// the next; this implementation keeps that shape for the identification
// bytes and reads back 0xFF everywhere else, matching an unpopulated slot.
func (ac *AutoConfig) PeekAutoConfig(offset uint32) uint8 {
	if !ac.present || ac.shutUp {
		return 0xFF
	}
	idx := offset / 2
	if idx >= uint32(len(autoConfigID)) {
		return 0xFF
	}
	id := autoConfigID[idx]
	if offset%2 == 0 {
		return id | 0x0F
	}
	return (^id) | 0x0F
}

// PokeAutoConfig writes to the autoconfig window: 0x48/0x4A latch the
// high/low half of the base address the host assigned this board, 0x4C is
// the shut-up register — any write there ends this board's participation in
// the autoconfig chain for the rest of the boot, per the Zorro-II protocol.
func (ac *AutoConfig) PokeAutoConfig(offset uint32, value uint8) {
	if !ac.present || ac.shutUp {
		return
	}
	switch offset {
	case 0x48:
		ac.base = (ac.base & 0x00FFFFFF) | uint32(value)<<24
	case 0x4A:
		ac.base = (ac.base & 0xFF00FFFF) | uint32(value)<<16
	case 0x4C:
		ac.shutUp = true
	}
}

// Base returns the address the host last assigned this board, valid once
// PokeAutoConfig has seen both address-latch writes.
func (ac *AutoConfig) Base() uint32 { return ac.base }
