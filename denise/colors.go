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

package denise

// ColorToRGBA converts a 12-bit Amiga colour register value (0RGB, 4 bits
// per channel) to a 32-bit RGBA value, alpha always opaque. Each nibble is
// scaled to a full byte by the standard 0xF->0xFF replication (n*17),
// grounded on PixelEngine.h's rgba[4096] lookup table, collapsed here to a
// direct computation since this module has no need to precompute all 4096
// entries up front.
func ColorToRGBA(amigaColor uint16) uint32 {
	r := uint32((amigaColor>>8)&0xF) * 17
	g := uint32((amigaColor>>4)&0xF) * 17
	b := uint32(amigaColor&0xF) * 17
	return r<<24 | g<<16 | b<<8 | 0xFF
}
