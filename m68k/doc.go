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

// Package m68k defines the 68000 core boundary this core consumes rather
// than implements: instruction decoding is an external collaborator per
// spec.md §1. The Core interface mirrors other_examples' jenska/m68kemu
// CPU/Device split (Step/Reset/RequestInterrupt/Cycles, a Device-like
// read/write surface) but renamed to spec.md §6's exact method names, since
// that section names the contract this package's callers depend on.
package m68k
