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

// Package hostconsole wraps "github.com/pkg/term/termios" to put the
// reference CLI's controlling terminal into raw mode, so single keypresses
// (pause, warp toggle, reset, quit) can drive an EmulatorLoop without a GUI
// message queue. It is the headless stand-in for the GUI boundary spec.md
// §6 places out of scope.
package hostconsole
