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

// Package clock implements the master event scheduler: a fixed-width vector
// of named event slots advancing on a single master cycle counter, not a
// heap. The number of event sources (one per custom-chip subsystem) is
// small and known at compile time, so a flat array serviced slot by slot is
// faster and simpler than a general priority queue. The SEC slot is an
// ordinary entry in that array; it does not gate the slower peripherals.
//
// This generalises gopher2600/hardware/tia/future's per-sprite Ticker (one
// pool of delayed-payload Events per object) into the single, named,
// fixed-size slot array spec.md's Agnus shares across every subsystem.
package clock
