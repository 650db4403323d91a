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

// Package agnus is the DMA host: beam position, the per-slot bus arbiter
// driver, the custom register window dispatcher, and the sub-engine drivers
// for the Blitter, Copper, Paula and the Denise-bound register-change
// queue. It is the one package in this module allowed to import blitter,
// copper, paula and memory together, since it is the component all four of
// their Host/CustomDevice/BusWaiter interfaces exist to keep decoupled from
// one another.
//
// Grounded on gopher2600/hardware/tia/{tia.go,step.go} (a single
// step-driven custom chip object composing sub-objects and forwarding
// memory-mapped register writes into them) generalised from the VCS's
// single-chip TIA to the Amiga's beam-plus-DMA-calendar Agnus, and on
// original_source/Amiga/Amiga.cpp's many `agnus.<field>` references
// (`agnus.clock`, `agnus.pos.v/h`, `agnus.frame`, `agnus.dmacon`,
// `agnus.copper`, `agnus.blitter`, `agnus.executeUntil`).
package agnus
