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

package cia

// Snapshot captures a CIA's timer A/B state, TOD clock (including any
// latched read and in-progress alarm write), ICR and port registers, per
// spec.md §6. The attached control port (see AttachControlPort) is carried
// along too; it is the same live *controlport.Port either way, so this is
// a no-op in practice rather than a real restore of port state.
type Snapshot struct {
	state CIA
}

// Snapshot captures the receiver's full state.
func (c *CIA) Snapshot() *Snapshot {
	return &Snapshot{state: *c}
}

// Restore installs a previously captured Snapshot.
func (c *CIA) Restore(s *Snapshot) {
	*c = s.state
}
