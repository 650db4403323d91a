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

// Uart is Paula's serial shift register: TXD/RXD byte-at-a-time, no host
// serial device attached here (spec.md §1 leaves the physical device as an
// external collaborator; SERIAL_DEVICE in config only selects which stub is
// wired up at the host boundary).
type Uart struct {
	serdat uint16
	serper uint16
	txBusy bool
}

func (u *Uart) WriteSERDAT(value uint16) { u.serdat = value; u.txBusy = true }
func (u *Uart) WriteSERPER(value uint16) { u.serper = value }
func (u *Uart) TxDone()                  { u.txBusy = false }
func (u *Uart) TxBusy() bool             { return u.txBusy }

// Paula bundles the interrupt controller, four audio channels, the disk
// front end and the UART into the single chip spec.md §4.7 describes.
type Paula struct {
	Interrupts
	Audio [4]AudioChannel
	Disk  Disk
	Uart  Uart

	warp bool
}

// NewPaula returns a Paula with every sub-block at its power-on default.
func NewPaula() *Paula {
	return &Paula{}
}

// SetWarp propagates warp mode to the audio channels' volume ramp.
func (p *Paula) SetWarp(on bool) {
	p.warp = on
}

// TickAudio advances all four channels by one audio DMA cycle; callers
// (Agnus) invoke this once per audio DMA slot per channel actually granted
// the bus.
func (p *Paula) TickAudio() {
	for i := range p.Audio {
		p.Audio[i].ApplyWarp(p.warp)
		if _, ready := p.Audio[i].TickSample(); ready {
			p.Raise(IntAUD0 + i)
		}
	}
}
