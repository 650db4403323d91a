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

// Package cia implements the CIA-A/CIA-B peripheral: an 8-bit parallel I/O
// port pair, two 16-bit timers, a 24-bit time-of-day counter and a serial
// shift register, one instance per chip. It generalises
// gopher2600/hardware/riot/timer's single-timer countdown-with-interval
// design (RIOT is the VCS's nearest analogue to a CIA) to the 8520's two
// independent timers, TOD alarm, and interrupt control register.
package cia
