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

package copper_test

import (
	"testing"

	"github.com/amiga-go/vamiga/copper"
)

type stubHost struct {
	mem          map[uint32]uint16
	beamH, beamV int
	cdang        bool
	writes       []uint16
}

func (s *stubHost) AllocateBus() bool { return true }
func (s *stubHost) BusIsFree() bool   { return true }
func (s *stubHost) Read16(addr uint32) uint16 { return s.mem[addr] }
func (s *stubHost) WriteCustomCopper(reg uint16, value uint16) {
	s.writes = append(s.writes, reg, value)
}
func (s *stubHost) BeamH() int       { return s.beamH }
func (s *stubHost) BeamV() int       { return s.beamV }
func (s *stubHost) BlitterBusy() bool { return false }
func (s *stubHost) CDANG() bool      { return s.cdang }

func TestMoveInstructionWritesRegisterImmediately(t *testing.T) {
	host := &stubHost{mem: map[uint32]uint16{
		0x2000: 0x0180, // COLOR00
		0x2002: 0x0F00,
	}}
	var c copper.Copper
	c.SetCOP1LC(0x2000)
	c.StrobeCOP1(host)

	c.Step(host) // fetch word1
	c.Step(host) // fetch word2 + execute MOVE

	if len(host.writes) != 2 || host.writes[0] != 0x0180 || host.writes[1] != 0x0F00 {
		t.Fatalf("expected an immediate MOVE write of COLOR00=0x0F00, got %v", host.writes)
	}
}

func TestWaitBlocksUntilBeamReached(t *testing.T) {
	host := &stubHost{mem: map[uint32]uint16{
		0x2000: 0x2A01, // WAIT line 0x2A
		0x2002: 0xFFFE,
	}, beamV: 0x10}
	var c copper.Copper
	c.SetCOP1LC(0x2000)
	c.StrobeCOP1(host)

	c.Step(host)
	c.Step(host) // now waiting

	c.Step(host) // beam not there yet: still waiting, no panic/hang
	host.beamV = 0x2A
	c.Step(host)
	if !c.Busy() {
		t.Fatalf("expected Copper to still be mid-list immediately after WAIT clears")
	}
}
