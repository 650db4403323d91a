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

package paula

// Disk is the floppy byte-stream front end: DSKLEN kick-off, a shifting
// DSKDATR byte stream, and sync-word matching. ADF/IMG image decoding is an
// external collaborator (spec.md §1); this models only the DMA-visible
// register protocol.
type Disk struct {
	dsklen    uint16
	armed     bool // true once DSKLEN has been written twice with bit 15 set
	kickStage int

	syncWord uint16
	dskdatr  uint16

	motorOn  bool
	selected [4]bool
}

const dsklenDMAEN = 1 << 15

// WriteDSKLEN implements the documented two-write kick-off protocol: the
// first write with bit 15 set arms the sequence; an immediate second write
// with bit 15 set starts DMA.
func (d *Disk) WriteDSKLEN(value uint16) {
	if value&dsklenDMAEN == 0 {
		d.armed = false
		d.kickStage = 0
		d.dsklen = value
		return
	}
	d.kickStage++
	d.dsklen = value
	if d.kickStage >= 2 {
		d.armed = true
	}
}

// Armed reports whether disk DMA is currently enabled.
func (d *Disk) Armed() bool { return d.armed }

// WriteDSKSYNC sets the word the sync-detector compares incoming bytes
// against.
func (d *Disk) WriteDSKSYNC(value uint16) { d.syncWord = value }

// FeedWord delivers the next word read off the simulated disk stream and
// reports whether it matched the configured sync word (caller raises
// IntDSKSYN on a match).
func (d *Disk) FeedWord(word uint16) (matched bool) {
	d.dskdatr = word
	return d.armed && word == d.syncWord
}

// ReadDSKDATR returns the most recently fetched data word.
func (d *Disk) ReadDSKDATR() uint16 { return d.dskdatr }

// SetMotor and SelectDrive record the CIA-B port-B drive lines (select,
// motor). Nothing in this module calls them from CIA-B, and FeedWord does
// not consult them.
func (d *Disk) SetMotor(on bool)            { d.motorOn = on }
func (d *Disk) SelectDrive(n int, sel bool) { d.selected[n&3] = sel }
func (d *Disk) MotorOn() bool               { return d.motorOn }
