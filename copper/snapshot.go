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

package copper

// Snapshot captures the Copper's program counter, fetch-state machine and
// pending WAIT condition, per spec.md §6.
type Snapshot struct {
	state Copper
}

// Snapshot captures the receiver's full state.
func (c *Copper) Snapshot() *Snapshot {
	return &Snapshot{state: *c}
}

// Restore installs a previously captured Snapshot.
func (c *Copper) Restore(s *Snapshot) {
	*c = s.state
}
