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

// runFill implements the line-fill circuit: scanned from bit 0 (the
// rightmost, first-drawn pixel) to bit 15, toggling an internal carry on
// every set bit of dhold. Inclusive fill ORs the carry into each output
// bit; exclusive fill XORs it. The returned carry is fed back in as
// fillCarry for the next word (reset to BLTCON1.FCI at the start of each
// output row, per spec.md §4.4).
func runFill(dhold uint16, carryIn bool, exclusive bool) (filled uint16, carryOut bool) {
	carry := carryIn
	var out uint16
	for i := 0; i < 16; i++ {
		bit := (dhold>>uint(i))&1 != 0

		var outBit bool
		if exclusive {
			outBit = carry != bit // XOR
		} else {
			outBit = carry || bit // OR
		}
		if outBit {
			out |= 1 << uint(i)
		}
		if bit {
			carry = !carry
		}
	}
	return out, carry
}
