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

package denise

import "sync"

// HPixels is the widest horizontal pixel count a rasterline's RenderLine
// call ever produces (exceeds any real DIW window, so border fill always
// has room to run to the buffer's edge).
const HPixels = 910

// VLines is the tallest a PAL long frame ever gets.
const VLines = 313

// FrameBuffer is one complete RGBA raster: VLines rows of HPixels pixels.
type FrameBuffer struct {
	Pixels []uint32
}

// NewFrameBuffer allocates a zeroed frame buffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{Pixels: make([]uint32, HPixels*VLines)}
}

// Row returns the pixel slice for rasterline v, for RenderLine to write into
// directly.
func (f *FrameBuffer) Row(v int) []uint32 {
	return f.Pixels[v*HPixels : (v+1)*HPixels]
}

// Display holds the two working/stable buffer pairs PixelEngine.h keeps (one
// pair per field parity, long and short, to support interlace) and the lock
// that makes swapping them atomic from a GUI reader's perspective.
type Display struct {
	mu sync.Mutex

	workingLong, stableLong   *FrameBuffer
	workingShort, stableShort *FrameBuffer
}

// NewDisplay returns a Display with all four buffers allocated.
func NewDisplay() *Display {
	return &Display{
		workingLong:  NewFrameBuffer(),
		stableLong:   NewFrameBuffer(),
		workingShort: NewFrameBuffer(),
		stableShort:  NewFrameBuffer(),
	}
}

// WorkingLong is the buffer the current long-frame rendering pass writes
// into. Callers must not retain the returned pointer across SwapBuffers.
func (d *Display) WorkingLong() *FrameBuffer { return d.workingLong }

// WorkingShort is the short-frame (interlace second field) counterpart.
func (d *Display) WorkingShort() *FrameBuffer { return d.workingShort }

// SwapBuffers exchanges the working and stable buffer of the field parity
// named by longFrame, under the lock, so a concurrent StableLong/StableShort
// reader never observes a half-rendered frame.
func (d *Display) SwapBuffers(longFrame bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if longFrame {
		d.workingLong, d.stableLong = d.stableLong, d.workingLong
	} else {
		d.workingShort, d.stableShort = d.stableShort, d.workingShort
	}
}

// StableLong returns a copy of the last completed long frame.
func (d *Display) StableLong() []uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]uint32, len(d.stableLong.Pixels))
	copy(out, d.stableLong.Pixels)
	return out
}

// StableShort returns a copy of the last completed short frame.
func (d *Display) StableShort() []uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]uint32, len(d.stableShort.Pixels))
	copy(out, d.stableShort.Pixels)
	return out
}
