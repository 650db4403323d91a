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

// Package paula implements INTREQ/INTENA interrupt-level computation, the
// four audio channel state machines, the disk byte-stream front end and the
// UART shift register. Grounded on original_source/Amiga/Computer/Paula/Paula.cpp
// (a thin dispatcher in the original — most of the behaviour here is
// synthesised directly from spec.md §4.7, since the original file mostly
// forwards to sibling objects this module folds into one package) and, for
// the leaf state-machine shape, gopher2600/hardware/tia/audio's small
// per-channel struct pattern.
package paula
