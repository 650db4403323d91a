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

// Package denise turns one rasterline's worth of bitplane words, sprite
// register state and pixel-tagged register changes into a row of RGBA
// pixels: bitplane shift/sample, single/dual-playfield translation, sprite
// compositing, border, collision detection and colour lookup.
//
// It takes no dependency on agnus: the caller (hardware.Amiga's per-line
// renderLine) drains agnus.Agnus's register-change queue and beam
// position and hands this package a LineInput snapshot, mirroring the
// Host-interface boundary blitter and copper use to stay independent of
// their driver, just via a plain data snapshot instead of an interface,
// since Denise's per-line render has no need to call back into its driver.
package denise
