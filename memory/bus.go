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

// BusOwner marks who owns a DMA slot on the current rasterline.
type BusOwner int

const (
	OwnerNone BusOwner = iota
	OwnerCPU
	OwnerRefresh
	OwnerDisk
	OwnerAudio0
	OwnerAudio1
	OwnerAudio2
	OwnerAudio3
	OwnerSprite0
	OwnerSprite1
	OwnerSprite2
	OwnerSprite3
	OwnerSprite4
	OwnerSprite5
	OwnerSprite6
	OwnerSprite7
	OwnerBitplane1
	OwnerBitplane2
	OwnerBitplane3
	OwnerBitplane4
	OwnerBitplane5
	OwnerBitplane6
	OwnerCopper
	OwnerBlitter
)

func (o BusOwner) String() string {
	names := map[BusOwner]string{
		OwnerNone: "None", OwnerCPU: "CPU", OwnerRefresh: "Refresh",
		OwnerDisk: "Disk", OwnerAudio0: "Audio0", OwnerAudio1: "Audio1",
		OwnerAudio2: "Audio2", OwnerAudio3: "Audio3", OwnerSprite0: "Sprite0",
		OwnerSprite1: "Sprite1", OwnerSprite2: "Sprite2", OwnerSprite3: "Sprite3",
		OwnerSprite4: "Sprite4", OwnerSprite5: "Sprite5", OwnerSprite6: "Sprite6",
		OwnerSprite7: "Sprite7", OwnerBitplane1: "Bitplane1", OwnerBitplane2: "Bitplane2",
		OwnerBitplane3: "Bitplane3", OwnerBitplane4: "Bitplane4", OwnerBitplane5: "Bitplane5",
		OwnerBitplane6: "Bitplane6", OwnerCopper: "Copper", OwnerBlitter: "Blitter",
	}
	if n, ok := names[o]; ok {
		return n
	}
	return "Unknown"
}

// slotsPerLine is the number of DMA slots on one rasterline (0..226).
const slotsPerLine = 227

// Arbiter allocates one owner per DMA slot per rasterline, in the fixed
// order Refresh -> Disk -> Audio(4) -> Sprite(8) -> Bitplane(<=6) -> Copper
// -> Blitter -> CPU. It also exposes ExecuteUntilBusIsFree so Map (via the
// BusWaiter interface) can charge CPU chip accesses against DMA contention
// without importing agnus.
type Arbiter struct {
	busOwner [slotsPerLine]BusOwner
	busValue [slotsPerLine]uint16

	h int // current horizontal DMA slot, advanced externally by Agnus

	// advance is called by ExecuteUntilBusIsFree to let the caller (agnus)
	// step the scheduler forward one DMA cycle. nil is legal in tests that
	// only exercise AllocateBus/BusIsFree directly.
	advance func()
}

// NewArbiter returns an Arbiter with every slot on the current line free.
func NewArbiter() *Arbiter {
	return &Arbiter{}
}

// SetAdvance installs the callback ExecuteUntilBusIsFree uses to step time
// forward. Agnus wires this to its own executeUntil during construction.
func (a *Arbiter) SetAdvance(advance func()) {
	a.advance = advance
}

// BeginLine resets ownership for a new rasterline and resets the current
// slot to the start of the line.
func (a *Arbiter) BeginLine() {
	for i := range a.busOwner {
		a.busOwner[i] = OwnerNone
		a.busValue[i] = 0
	}
	a.h = 0
}

// SetSlot moves the arbiter's notion of "current" DMA slot; Agnus calls
// this as the beam position advances.
func (a *Arbiter) SetSlot(h int) {
	a.h = h % slotsPerLine
}

// CurrentSlot returns the DMA slot the arbiter believes is current.
func (a *Arbiter) CurrentSlot() int {
	return a.h
}

// AllocateBus attempts to claim the current slot for owner. Succeeds if the
// slot is free, in which case it records owner and returns true; otherwise
// leaves the slot untouched and returns false. Only one owner is recorded
// per position in busOwner per line.
func (a *Arbiter) AllocateBus(owner BusOwner) bool {
	if a.busOwner[a.h] != OwnerNone {
		return false
	}
	a.busOwner[a.h] = owner
	return true
}

// BusIsFree reports whether the current slot is unclaimed, or already
// claimed by owner (so the same owner may re-test/re-enter its own slot).
func (a *Arbiter) BusIsFree(owner BusOwner) bool {
	cur := a.busOwner[a.h]
	return cur == OwnerNone || cur == owner
}

// RecordValue stores the data value that moved across the bus in the
// current slot, for the DMA debugger's bus trace.
func (a *Arbiter) RecordValue(value uint16) {
	a.busValue[a.h] = value
}

// OwnerAt and ValueAt expose the recorded trace for a given slot (debugger,
// tests).
func (a *Arbiter) OwnerAt(h int) BusOwner { return a.busOwner[h%slotsPerLine] }
func (a *Arbiter) ValueAt(h int) uint16   { return a.busValue[h%slotsPerLine] }

// ExecuteUntilBusIsFree steps time forward (via the installed advance
// callback) until the current slot is unowned, implementing the memory
// map's "a CPU access to a chip-memory window must run to the next free
// bus cycle before returning" side effect.
func (a *Arbiter) ExecuteUntilBusIsFree() {
	for a.busOwner[a.h] != OwnerNone {
		if a.advance == nil {
			return
		}
		a.advance()
	}
}
