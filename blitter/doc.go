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

// Package blitter implements the micro-coded Blitter channel state machine
// of spec.md §4.4: sixteen copy-blit micro-programs (one per BLTCON0[11:8]
// channel-enable mask), a line-draw micro-program, minterm logic, the fill
// circuit and the barrel shifters. Ported from the C++ template
// specialisation in original_source/Amiga/Computer/Agnus/SlowBlitter.cpp
// (DESIGN NOTES §9 "Template specializations": a table of function pointers
// indexed by channel mask becomes a table of micro-op bitmask slices
// dispatched by one Go function). The "fake" accuracy tier (DESIGN NOTES
// §9, BLITTER_ACCURACY=1) reuses the identical micro-op tables but
// interprets only their bus-allocation/REPEAT/BLTDONE bits, since in that
// tier the data movement has already been performed in one pass by the
// fast path (see Blitter.runFastCopy).
package blitter
