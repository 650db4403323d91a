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

package m68k

// Bus is the memory-side half of the CPU contract: the MemoryMap, as
// addressed by the 68000 core. Side effects (bus contention, open-bus
// residue) live entirely on the implementation's side of this boundary.
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, value uint8)
	Write16(addr uint32, value uint16)
	Write32(addr uint32, value uint32)

	// DisassemblerRead16/32 are side-effect-free reads used only by an
	// external disassembler; they must not charge the bus arbiter or
	// disturb dataBus residue.
	DisassemblerRead16(addr uint32) uint16
	DisassemblerRead32(addr uint32) uint32
}

// Context is an opaque snapshot of the CPU core's internal register file,
// round-tripped through Core.GetContext/SetContext for the snapshot system.
// Its layout is owned entirely by the external 68000 core implementation;
// this package treats it as an opaque byte buffer.
type Context []byte

// Core is the external 68000 core boundary spec.md §6 names. vamiga
// supplies a Bus; the core supplies everything instruction-decode related.
type Core interface {
	// ExecuteInstruction runs a minimum of one instruction and returns the
	// number of master cycles consumed.
	ExecuteInstruction() int

	// SetIRQ asserts an interrupt request at the given priority level
	// (1-7, 0 meaning none); AckIRQ is called by the core once it takes
	// the interrupt, and returns the vector number to use.
	SetIRQ(level int)
	AckIRQ() uint8

	// GetContext/SetContext round-trip the register file for snapshotting.
	GetContext() Context
	SetContext(ctx Context)
}

// TestCore is a minimal Core implementation used only by this package's own
// tests and by other packages' tests that need a CPU-shaped stand-in
// without pulling in a real 68000 decoder (out of scope per spec.md §1).
// It does not decode instructions: ExecuteInstruction just advances a
// counter and reports a fixed cycle cost, enough to exercise callers that
// only care about the contract shape.
type TestCore struct {
	bus Bus

	cycles       int
	pendingLevel int
	context      Context
}

// NewTestCore returns a TestCore addressing bus.
func NewTestCore(bus Bus) *TestCore {
	return &TestCore{bus: bus}
}

func (c *TestCore) ExecuteInstruction() int {
	c.cycles += 4
	return 4
}

func (c *TestCore) SetIRQ(level int) { c.pendingLevel = level }

func (c *TestCore) AckIRQ() uint8 {
	level := c.pendingLevel
	c.pendingLevel = 0
	return uint8(24 + level) // autovector base, matches the 68000's spurious/autovector scheme
}

func (c *TestCore) GetContext() Context { return c.context }
func (c *TestCore) SetContext(ctx Context) { c.context = ctx }

// Cycles reports the running total of cycles TestCore has reported through
// ExecuteInstruction, for tests that want to assert on pacing.
func (c *TestCore) Cycles() int { return c.cycles }
