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
	"github.com/amiga-go/vamiga/memory"
	"github.com/amiga-go/vamiga/paula"
)

// blitterHost and copperHost adapt Agnus to blitter.Host and copper.Host
// separately, rather than Agnus implementing both interfaces directly,
// because AllocateBus/BusIsFree must be tagged with different BusOwner
// values for the two callers even though the method shapes coincide.

type blitterHost struct{ a *Agnus }

func (h blitterHost) AllocateBus() bool { return h.a.arbiter.AllocateBus(memory.OwnerBlitter) }
func (h blitterHost) BusIsFree() bool   { return h.a.arbiter.BusIsFree(memory.OwnerBlitter) }

func (h blitterHost) Read16(addr uint32) uint16 {
	v := h.a.mem.DMAPeek16(addr)
	h.a.arbiter.RecordValue(v)
	return v
}

func (h blitterHost) Write16(addr uint32, value uint16) {
	h.a.mem.DMAPoke16(addr, value)
	h.a.arbiter.RecordValue(value)
}

func (h blitterHost) RaiseBlitterDone() { h.a.pla.Raise(paula.IntBLIT) }

type copperHost struct{ a *Agnus }

func (h copperHost) AllocateBus() bool { return h.a.arbiter.AllocateBus(memory.OwnerCopper) }
func (h copperHost) BusIsFree() bool   { return h.a.arbiter.BusIsFree(memory.OwnerCopper) }

func (h copperHost) Read16(addr uint32) uint16 {
	v := h.a.mem.DMAPeek16(addr)
	h.a.arbiter.RecordValue(v)
	return v
}

// WriteCustomCopper routes a Copper MOVE through the same PokeCustom
// dispatch CPU pokes use. Both sources take effect at once and queue any
// Denise-bound change at the current DMA slot; a CPU poke is not delayed
// relative to a Copper write.
func (h copperHost) WriteCustomCopper(reg uint16, value uint16) {
	// reg here is a byte offset (word1 & 0x1FE); PokeCustom indexes by word
	// register number, the same reg>>1 conversion memory.Map's Custom-area
	// decode applies to a CPU address.
	h.a.PokeCustom(uint8(reg>>1), value)
}

func (h copperHost) BeamH() int        { return h.a.h }
func (h copperHost) BeamV() int        { return h.a.v }
func (h copperHost) BlitterBusy() bool { return h.a.blt.Busy() }
func (h copperHost) CDANG() bool       { return h.a.copcon&1 != 0 }
