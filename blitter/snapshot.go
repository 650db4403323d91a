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

package blitter

// Snapshot captures the Blitter's channel registers, microprogram counter
// and in-flight program selection, per spec.md §6. program is a slice into
// one of the package-level copyBlitInstr/legacyFillD1Instr/lineBlitInstr
// tables, which are never mutated after init, so copying the slice header
// is enough — no deep copy needed.
type Snapshot struct {
	state Blitter
}

// Snapshot captures the receiver's full state.
func (bl *Blitter) Snapshot() *Snapshot {
	return &Snapshot{state: *bl}
}

// Restore installs a previously captured Snapshot.
func (bl *Blitter) Restore(s *Snapshot) {
	*bl = s.state
}
