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

package m68k_test

import (
	"testing"

	"github.com/amiga-go/vamiga/m68k"
)

type nullBus struct{}

func (nullBus) Read8(uint32) uint8                 { return 0 }
func (nullBus) Read16(uint32) uint16                { return 0 }
func (nullBus) Read32(uint32) uint32                { return 0 }
func (nullBus) Write8(uint32, uint8)                {}
func (nullBus) Write16(uint32, uint16)              {}
func (nullBus) Write32(uint32, uint32)              {}
func (nullBus) DisassemblerRead16(uint32) uint16 { return 0 }
func (nullBus) DisassemblerRead32(uint32) uint32 { return 0 }

func TestCoreContractShape(t *testing.T) {
	var core m68k.Core = m68k.NewTestCore(nullBus{})

	cycles := core.ExecuteInstruction()
	if cycles <= 0 {
		t.Fatalf("expected at least one instruction's worth of cycles, got %d", cycles)
	}

	core.SetIRQ(6)
	vector := core.AckIRQ()
	if vector == 0 {
		t.Fatalf("expected a nonzero autovector for level 6")
	}

	core.SetContext(m68k.Context{1, 2, 3})
	if got := core.GetContext(); len(got) != 3 {
		t.Fatalf("context round-trip failed: %v", got)
	}
}
