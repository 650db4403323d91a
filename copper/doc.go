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

// Package copper implements the MOVE/WAIT/SKIP list interpreter of
// spec.md §4.5. It depends on its Host (implemented by agnus) only through
// a small interface, the same avoid-the-import-cycle shape memory uses for
// its CIA/RTC/custom devices and gopher2600/hardware/tia/step.go uses for
// its between-components driving.
package copper
