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

package paula

// Snapshot captures Paula's interrupt controller, all four audio channels'
// phase, the disk front end's kick-off stage, and the UART's busy latch,
// per spec.md §6.
type Snapshot struct {
	state Paula
}

// Snapshot captures the receiver's full state.
func (p *Paula) Snapshot() *Snapshot {
	return &Snapshot{state: *p}
}

// Restore installs a previously captured Snapshot.
func (p *Paula) Restore(s *Snapshot) {
	*p = s.state
}
