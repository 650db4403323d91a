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

package curated

// The non-panicking error taxonomy of the timing-and-bus core. Each pattern
// is matched with Is()/Has() rather than compared directly, so callers can
// distinguish these from incidental wrapped errors.
const (
	ConfigRejected      = "configuration value rejected: %v"
	NotReady            = "not ready to power on: %v"
	OddAddress          = "odd address access: %v"
	InvalidRegister     = "invalid register access: %v"
	UnsupportedFeature  = "unsupported feature: %v"
	SnapshotCorrupt     = "corrupt snapshot: %v"
)
