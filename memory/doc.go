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

// Package memory implements the Amiga's 256-page address decoder and the
// per-DMA-slot chip-bus arbiter. It generalises
// gopher2600/hardware/memory/memorymap's origin/memtop mirroring arithmetic
// (three fixed areas: TIA, RAM, cartridge) to the Amiga's ten-area,
// page-granular map, whose layout can change at runtime as RAM sizes and
// the CIA-A OVL line change.
package memory
