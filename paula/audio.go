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

// audioState is one of a channel's five DMA/playback states per spec.md §4.7.
type audioState int

const (
	AudioIdle audioState = iota
	AudioDMAReqStart
	AudioDMAReqSecond
	AudioPlaying1
	AudioPlaying2
)

// AudioChannel is one of Paula's four independent sample-playback state
// machines: a period counter running at the audio DMA rate, a current
// sample, and a volume that ramps under warp mode.
type AudioChannel struct {
	state audioState

	length  uint16 // AUDxLEN: word count
	period  uint16 // AUDxPER
	volume  uint8  // AUDxVOL, 0..64
	data    uint16 // AUDxDAT, latest fetched word
	counter uint16 // period down-counter

	dmaEnabled bool

	targetVolume uint8 // ramp target when warp mode toggles
}

// SetLength, SetPeriod, SetVolume implement the AUDxLEN/PER/VOL register
// writes; all three take effect immediately (no delayed-write queue, unlike
// the bitplane/colour registers Denise owns).
func (c *AudioChannel) SetLength(v uint16) { c.length = v }
func (c *AudioChannel) SetPeriod(v uint16) { c.period = v }
func (c *AudioChannel) SetVolume(v uint8) {
	if v > 64 {
		v = 64
	}
	c.volume = v
	c.targetVolume = v
}

// SetDMA enables or disables this channel's DMA request; disabling resets
// the state machine to Idle.
func (c *AudioChannel) SetDMA(enabled bool) {
	c.dmaEnabled = enabled
	if !enabled {
		c.state = AudioIdle
	}
}

// Fetch delivers a DMA-fetched data word (AUDxDAT) and advances the state
// machine through its documented transitions.
func (c *AudioChannel) Fetch(word uint16) {
	c.data = word
	switch c.state {
	case AudioIdle, AudioDMAReqStart:
		c.state = AudioDMAReqSecond
	case AudioDMAReqSecond:
		c.state = AudioPlaying1
	case AudioPlaying1:
		c.state = AudioPlaying2
	case AudioPlaying2:
		c.state = AudioPlaying1
	}
	c.counter = c.period
}

// TickSample advances the period counter by one audio DMA cycle, returning
// true (with the sample value) on every period underflow.
func (c *AudioChannel) TickSample() (sample int8, ready bool) {
	if c.state == AudioIdle {
		return 0, false
	}
	if c.counter == 0 {
		c.counter = c.period
		return int8(uint8(c.data)), true
	}
	c.counter--
	return 0, false
}

// ApplyWarp ramps the volume toward zero (warp on) or back to its
// configured target (warp off), one step per call; spec.md §4.7.
func (c *AudioChannel) ApplyWarp(warpOn bool) {
	if warpOn {
		if c.volume > 0 {
			c.volume--
		}
	} else if c.volume < c.targetVolume {
		c.volume++
	}
}

func (c *AudioChannel) State() audioState { return c.state }
func (c *AudioChannel) Volume() uint8     { return c.volume }
