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

package hardware

import (
	"sync"
	"sync/atomic"

	"github.com/amiga-go/vamiga/agnus"
	"github.com/amiga-go/vamiga/blitter"
	"github.com/amiga-go/vamiga/cia"
	"github.com/amiga-go/vamiga/config"
	"github.com/amiga-go/vamiga/controlport"
	"github.com/amiga-go/vamiga/copper"
	"github.com/amiga-go/vamiga/curated"
	"github.com/amiga-go/vamiga/denise"
	"github.com/amiga-go/vamiga/internal/clock"
	"github.com/amiga-go/vamiga/logger"
	"github.com/amiga-go/vamiga/m68k"
	"github.com/amiga-go/vamiga/memory"
	"github.com/amiga-go/vamiga/paula"
	"github.com/amiga-go/vamiga/rtc"
)

// memBus adapts *memory.Map to m68k.Bus. The 68000 core sees the memory
// map's ordinary Peek/Poke path for live accesses and its side-effect-free
// Spypeek path for disassembly, exactly the split memory.Map already
// exposes for the debugger.
type memBus struct {
	mem *memory.Map
}

func (b memBus) Read8(addr uint32) uint8   { return b.mem.Peek8(addr) }
func (b memBus) Read16(addr uint32) uint16 { return b.mem.Peek16(addr) }
func (b memBus) Read32(addr uint32) uint32 { return b.mem.Peek32(addr) }

func (b memBus) Write8(addr uint32, value uint8)   { b.mem.Poke8(addr, value) }
func (b memBus) Write16(addr uint32, value uint16) { b.mem.Poke16(addr, value) }
func (b memBus) Write32(addr uint32, value uint32) { b.mem.Poke32(addr, value) }

func (b memBus) DisassemblerRead16(addr uint32) uint16 { return b.mem.Spypeek16(addr) }
func (b memBus) DisassemblerRead32(addr uint32) uint32 { return b.mem.Spypeek32(addr) }

// Info is the protected snapshot a host thread reads without racing the
// worker, refreshed once per _inspect() hop (spec.md §5).
type Info struct {
	CPUClock  clock.Cycle
	DMAClock  clock.Cycle
	CIAAClock clock.Cycle
	CIABClock clock.Cycle
	Frame     uint64
	VPos      int
	HPos      int
}

// Amiga is the top-level container: every custom chip, the memory map that
// multiplexes them onto the 68000's bus, and the run/pause/off state
// machine that paces them against wall-clock time.
type Amiga struct {
	mu sync.Mutex // guards info, state, snapshots — the host/worker rendezvous point (spec.md §5)

	cfg *config.Config

	cpu  m68k.Core
	mem  *memory.Map
	agn  *agnus.Agnus
	cop  *copper.Copper
	blt  *blitter.Blitter
	pla  *paula.Paula
	ciaA *cia.CIA
	ciaB *cia.CIA
	rtc  memory.RTCDevice

	port1 *controlport.Port
	port2 *controlport.Port

	display *denise.Display

	state          State
	suspendCounter int
	warp           bool

	ctrl runLoopCtrl // atomic bitfield, set/cleared from either thread

	messages *messageQueue

	timing timing

	lastCIATick  clock.Cycle
	lastFrame    uint64
	lastBeamV    int

	stopped chan struct{} // closed by the worker when it returns

	snapshots []*Snapshot

	newCore func(bus m68k.Bus) m68k.Core
}

// NewAmiga returns a powered-off Amiga. newCore supplies the 68000 core
// implementation (external to this module per spec.md §1); pass
// m68k.NewTestCore for tests that don't need real instruction decode.
func NewAmiga(newCore func(bus m68k.Bus) m68k.Core) *Amiga {
	a := &Amiga{
		cfg:      config.New(),
		messages: newMessageQueue(64),
		newCore:  newCore,
		state:    Off,
	}
	return a
}

// ReadyToPowerUp reports whether the configured RAM/ROM sizes are
// sufficient to bring the machine up, per spec.md §6's lifecycle. The core's
// scope excludes real ROM images, so the only checked precondition here is
// that Chip RAM has been sized at all.
func (a *Amiga) ReadyToPowerUp() bool {
	return a.cfg.GetInt(config.CHIP_RAM) > 0
}

// PowerOn builds every custom chip and the memory map and enters Paused,
// per spec.md §4.9's "powerOn: Off -> Paused (init)" transition.
func (a *Amiga) PowerOn() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != Off {
		return nil
	}
	if !a.ReadyToPowerUp() {
		return curated.Errorf(curated.NotReady, "chip RAM not configured")
	}

	a.blt = blitter.NewBlitter()
	a.cop = &copper.Copper{}
	a.pla = paula.NewPaula()
	a.agn = agnus.New(a.blt, a.cop, a.pla)

	a.ciaA = cia.NewA()
	a.ciaB = cia.NewB()
	// RTC and control-port attachments are battery-/host-backed: they
	// survive power-off/power-on and reset, so only build them the first
	// time this Amiga instance is ever powered on.
	if a.rtc == nil {
		a.rtc = a.newRTC()
	}
	if a.port1 == nil {
		a.port1 = controlport.New(1)
		a.port2 = controlport.New(2)
	}
	a.ciaA.AttachControlPort(a.port1)

	sizes := memory.Sizes{
		ChipPages: a.cfg.GetInt(config.CHIP_RAM) / 64,
		SlowPages: a.cfg.GetInt(config.SLOW_RAM) / 64,
		FastPages: a.cfg.GetInt(config.FAST_RAM) / 64,
		ROMPages:  8,
	}
	a.mem = memory.NewMap(sizes, a.ciaA, a.ciaB, a.rtc, a.agn, a.agn.Arbiter())
	a.mem.AttachAutoConfig(memory.NewAutoConfig(sizes.FastPages > 0))
	a.agn.AttachMemory(a.mem)
	a.agn.AttachControlPorts(a.port1, a.port2)

	a.display = denise.NewDisplay()
	a.cpu = a.newCore(memBus{a.mem})

	a.cfg.SetHookPost(config.CHIP_RAM, a.resizeHook)
	a.cfg.SetHookPost(config.SLOW_RAM, a.resizeHook)
	a.cfg.SetHookPost(config.FAST_RAM, a.resizeHook)

	a.state = Paused
	a.messages.push(MsgReset)
	logger.Log(logger.Allow, "LOOP", "power on")
	return nil
}

// PowerOff tears the machine down and returns to Off, per spec.md §4.9's
// "powerOff: Paused -> Off (teardown)" and "Running -> Paused -> Off" paths.
func (a *Amiga) PowerOff() {
	a.Pause()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == Off {
		return
	}
	// rtc, port1, port2 deliberately survive teardown (see PowerOn's
	// first-time-only construction comment): a battery-backed clock and a
	// host's chosen port wiring both outlive a power cycle on real hardware.
	a.mem, a.agn, a.cop, a.blt, a.pla, a.ciaA, a.ciaB, a.display, a.cpu = nil, nil, nil, nil, nil, nil, nil, nil, nil
	a.state = Off
	logger.Log(logger.Allow, "LOOP", "power off")
}

// noRTC is the RTC stub used when RT_CLOCK is disabled: reads return 0,
// writes are discarded, matching real hardware with no battery-backed clock
// module fitted.
type noRTC struct{}

func (noRTC) PeekRTC(reg uint8) uint8        { return 0 }
func (noRTC) PokeRTC(reg uint8, value uint8) {}

// newRTC returns a real rtc.Clock when RT_CLOCK is enabled, or noRTC{}
// otherwise — matching a real A500 board, which only responds in the RTC
// address window when a clock module is actually fitted.
func (a *Amiga) newRTC() memory.RTCDevice {
	if a.cfg.GetBool(config.RT_CLOCK) {
		return rtc.New()
	}
	return noRTC{}
}

func (a *Amiga) resizeHook(opt config.Option, value interface{}) error {
	if a.mem == nil {
		return nil
	}
	sizes := memory.Sizes{
		ChipPages: a.cfg.GetInt(config.CHIP_RAM) / 64,
		SlowPages: a.cfg.GetInt(config.SLOW_RAM) / 64,
		FastPages: a.cfg.GetInt(config.FAST_RAM) / 64,
		ROMPages:  8,
	}
	// The hook runs before Configure commits the new value to the cell, so
	// the option that triggered this call still reads its old value through
	// cfg.GetInt; substitute the incoming value for that one option.
	switch opt {
	case config.CHIP_RAM:
		sizes.ChipPages = value.(int) / 64
	case config.SLOW_RAM:
		sizes.SlowPages = value.(int) / 64
	case config.FAST_RAM:
		sizes.FastPages = value.(int) / 64
	}
	a.mem.Resize(sizes)
	return nil
}

// Reset emulates the reset switch: per spec.md §4.9, Off stays Off, Paused
// clears state, Running cycles through Paused back to Running.
func (a *Amiga) Reset() error {
	a.mu.Lock()
	prev := a.state
	a.mu.Unlock()

	if prev == Off {
		return nil
	}

	a.Pause()

	a.mu.Lock()
	a.agn = agnus.New(a.blt, a.cop, a.pla)
	a.ciaA = cia.NewA()
	a.ciaB = cia.NewB()
	a.ciaA.AttachControlPort(a.port1)
	sizes := memory.Sizes{
		ChipPages: a.cfg.GetInt(config.CHIP_RAM) / 64,
		SlowPages: a.cfg.GetInt(config.SLOW_RAM) / 64,
		FastPages: a.cfg.GetInt(config.FAST_RAM) / 64,
		ROMPages:  8,
	}
	a.mem = memory.NewMap(sizes, a.ciaA, a.ciaB, a.rtc, a.agn, a.agn.Arbiter())
	a.mem.AttachAutoConfig(memory.NewAutoConfig(sizes.FastPages > 0))
	a.agn.AttachMemory(a.mem)
	a.agn.AttachControlPorts(a.port1, a.port2)
	a.cpu = a.newCore(memBus{a.mem})
	a.lastCIATick, a.lastFrame, a.lastBeamV = 0, 0, 0
	a.mu.Unlock()

	a.messages.push(MsgReset)

	if prev == Running {
		return a.Run()
	}
	return nil
}

func (a *Amiga) IsPoweredOn() bool  { a.mu.Lock(); defer a.mu.Unlock(); return a.state != Off }
func (a *Amiga) IsPoweredOff() bool { a.mu.Lock(); defer a.mu.Unlock(); return a.state == Off }
func (a *Amiga) IsPaused() bool     { a.mu.Lock(); defer a.mu.Unlock(); return a.state == Paused }
func (a *Amiga) IsRunning() bool    { a.mu.Lock(); defer a.mu.Unlock(); return a.state == Running }

// Configure applies one configuration change. See config.Config.Configure
// for the closed option/value surface spec.md §6 documents.
func (a *Amiga) Configure(opt config.Option, value interface{}) (bool, error) {
	return a.cfg.Configure(opt, value)
}

// Config exposes the read side of the configuration surface (Get/GetInt/
// GetBool) to a host that only wants to inspect the current settings.
func (a *Amiga) Config() *config.Config { return a.cfg }

// Info returns a copy of the protected inspection snapshot, safe to call
// from any goroutine.
func (a *Amiga) Info() Info {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.info()
}

func (a *Amiga) info() Info {
	info := Info{
		CIAAClock: a.ciaAClock(),
		CIABClock: a.ciaBClock(),
	}
	if a.agn != nil {
		info.CPUClock = a.agn.Clock()
		info.DMAClock = a.agn.Clock()
		info.Frame = a.agn.Frame()
		info.VPos = a.agn.BeamV()
		info.HPos = a.agn.BeamH()
	}
	return info
}

func (a *Amiga) ciaAClock() clock.Cycle {
	if a.agn == nil {
		return 0
	}
	return a.agn.Clock()
}

func (a *Amiga) ciaBClock() clock.Cycle {
	return a.ciaAClock()
}

// Display exposes the double-buffered frame store the worker renders into
// and a host thread reads stable frames from.
func (a *Amiga) Display() *denise.Display { return a.display }

// GetMessage returns the next pending message, or MsgNone if the queue is
// empty (spec.md §6's getMessage()).
func (a *Amiga) GetMessage() Message { return a.messages.pop() }

func (a *Amiga) setCtrl(flags runLoopCtrl) {
	for {
		old := runLoopCtrl(atomic.LoadUint32((*uint32)(&a.ctrl)))
		if atomic.CompareAndSwapUint32((*uint32)(&a.ctrl), uint32(old), uint32(old|flags)) {
			return
		}
	}
}

func (a *Amiga) clearCtrl(flags runLoopCtrl) {
	for {
		old := runLoopCtrl(atomic.LoadUint32((*uint32)(&a.ctrl)))
		if atomic.CompareAndSwapUint32((*uint32)(&a.ctrl), uint32(old), uint32(old&^flags)) {
			return
		}
	}
}

func (a *Amiga) testCtrl(flags runLoopCtrl) bool {
	return runLoopCtrl(atomic.LoadUint32((*uint32)(&a.ctrl)))&flags != 0
}
