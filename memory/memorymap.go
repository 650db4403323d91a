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

package memory

import (
	"github.com/amiga-go/vamiga/logger"
)

// Area identifies the kind of memory a page belongs to. Think of these as
// the "debugging" identity of a page, analogous to gopher2600's
// memorymap.Area, generalised from three fixed areas to the Amiga's ten.
type Area int

const (
	Unmapped Area = iota
	Chip
	Slow
	Fast
	ROM
	WOM
	Ext
	CIA
	RTC
	Custom
	AutoConfigArea
)

func (a Area) String() string {
	switch a {
	case Unmapped:
		return "Unmapped"
	case Chip:
		return "Chip"
	case Slow:
		return "Slow"
	case Fast:
		return "Fast"
	case ROM:
		return "ROM"
	case WOM:
		return "WOM"
	case Ext:
		return "Ext"
	case CIA:
		return "CIA"
	case RTC:
		return "RTC"
	case Custom:
		return "Custom"
	case AutoConfigArea:
		return "AutoConfig"
	}
	return "undefined"
}

const pageSize = 0x10000 // 64 KiB
const numPages = 256     // 256 * 64 KiB == 16 MiB, the 24-bit bus

// CIADevice is the two-CIA window's byte-wide peripheral interface.
type CIADevice interface {
	PeekCIA(reg uint8) uint8
	PokeCIA(reg uint8, value uint8)
	// OVL reports the current state of CIA-A port A bit 0, which mirrors
	// the boot ROM window at address 0 until software clears it.
	OVL() bool
}

// RTCDevice is the real-time clock's nibble-wide register interface.
type RTCDevice interface {
	PeekRTC(reg uint8) uint8
	PokeRTC(reg uint8, value uint8)
}

// CustomDevice is the custom-chip register window (Agnus/Denise/Paula
// registers all multiplexed through one 0x100-register space).
type CustomDevice interface {
	PeekCustom(reg uint8) uint16
	PokeCustom(reg uint8, value uint16)
}

// AutoConfigDevice is the Zorro-II plug-and-play window's byte-wide
// interface, satisfied by *AutoConfig.
type AutoConfigDevice interface {
	PeekAutoConfig(offset uint32) uint8
	PokeAutoConfig(offset uint32, value uint8)
}

// BusWaiter lets the memory map charge a CPU access against the chip-bus
// arbiter without importing the agnus package (which itself depends on
// memory): a CPU access to a chip-memory window must run to the next free
// bus cycle before returning.
type BusWaiter interface {
	ExecuteUntilBusIsFree()
}

// Sizes describes the configured size, in 64 KiB pages, of each RAM/ROM
// region. Chip/Slow/Fast are expressed in pages for exact page-table
// arithmetic; spec.md's KiB-denominated config.Option values are converted
// by the caller (KiB/64).
type Sizes struct {
	ChipPages int
	SlowPages int
	FastPages int
	ROMPages  int
	WOMPages  int
	ExtPages  int
	ExtStart  int // 0xE0 or 0xF0
}

// Map is the 256-page address decoder plus the RAM/ROM/peripheral backing
// stores it multiplexes. It is the only legal way to change address
// decoding: construct, then call UpdateMemSrcTable whenever sizes or the
// OVL line change.
type Map struct {
	sizes Sizes

	chip []byte
	slow []byte
	fast []byte
	rom  []byte
	wom  []byte
	ext  []byte

	womLocked bool

	ciaA, ciaB CIADevice
	rtc        RTCDevice
	custom     CustomDevice
	autoConfig AutoConfigDevice
	bus        BusWaiter

	pages   [numPages]Area
	dataBus uint16
}

// NewMap allocates backing storage for sizes and returns a Map whose page
// table is already built from sizes and the current OVL line.
func NewMap(sizes Sizes, ciaA, ciaB CIADevice, rtc RTCDevice, custom CustomDevice, bus BusWaiter) *Map {
	m := &Map{
		sizes:  sizes,
		chip:   make([]byte, sizes.ChipPages*pageSize),
		slow:   make([]byte, sizes.SlowPages*pageSize),
		fast:   make([]byte, sizes.FastPages*pageSize),
		rom:    make([]byte, sizes.ROMPages*pageSize),
		wom:    make([]byte, sizes.WOMPages*pageSize),
		ext:    make([]byte, sizes.ExtPages*pageSize),
		ciaA:   ciaA,
		ciaB:   ciaB,
		rtc:    rtc,
		custom: custom,
		bus:    bus,
	}
	m.UpdateMemSrcTable()
	return m
}

// AttachAutoConfig installs the Zorro-II autoconfig responder for the
// 0xE8-0xEF page range. A nil device (the zero value before this is called)
// makes AutoConfig reads/writes behave like an unpopulated expansion slot.
func (m *Map) AttachAutoConfig(ac AutoConfigDevice) {
	m.autoConfig = ac
}

// Resize replaces the backing store sizes (e.g. CHIP_RAM reconfiguration)
// and rebuilds the page table. Per spec.md's non-goals, doing this while
// the emulator is running is not guaranteed consistent; callers should
// suspend() first.
func (m *Map) Resize(sizes Sizes) {
	m.sizes = sizes
	m.chip = make([]byte, sizes.ChipPages*pageSize)
	m.slow = make([]byte, sizes.SlowPages*pageSize)
	m.fast = make([]byte, sizes.FastPages*pageSize)
	m.rom = make([]byte, sizes.ROMPages*pageSize)
	m.wom = make([]byte, sizes.WOMPages*pageSize)
	m.ext = make([]byte, sizes.ExtPages*pageSize)
	m.womLocked = false
	m.UpdateMemSrcTable()
}

// UpdateMemSrcTable recomputes the page table from the current sizes and
// OVL line. Idempotent: calling it twice in a row with nothing else having
// changed produces the same table.
func (m *Map) UpdateMemSrcTable() {
	for i := range m.pages {
		m.pages[i] = Unmapped
	}

	// chip RAM, mirrored to fill 0x00..0x1F when chip size is 256 KiB (4
	// pages) rather than 512 KiB (8 pages).
	chipMirror := m.sizes.ChipPages
	if chipMirror > 0 && chipMirror < 8 {
		for p := 0; p < 0x20; p++ {
			m.pages[p] = Chip
		}
	} else {
		for p := 0; p < m.sizes.ChipPages && p < numPages; p++ {
			m.pages[p] = Chip
		}
	}

	for p := 0; p < m.sizes.FastPages; p++ {
		page := 0x20 + p
		if page < numPages {
			m.pages[page] = Fast
		}
	}

	for p := 0xA0; p <= 0xBF; p++ {
		m.pages[p] = CIA
	}

	for p := 0; p < m.sizes.SlowPages; p++ {
		page := 0xC0 + p
		if page < numPages {
			m.pages[page] = Slow
		}
	}

	for p := 0xDC; p <= 0xDE; p++ {
		m.pages[p] = RTC
	}

	m.pages[0xDF] = Custom

	for p := 0xE8; p <= 0xEF; p++ {
		m.pages[p] = AutoConfigArea
	}

	for p := 0; p < m.sizes.ExtPages; p++ {
		page := m.sizes.ExtStart + p
		if page >= 0 && page < numPages {
			m.pages[page] = Ext
		}
	}

	for p := 0xF8; p <= 0xFF; p++ {
		if p <= 0xFB || m.womLocked {
			m.pages[p] = ROM
		} else {
			m.pages[p] = WOM
		}
	}

	// OVL: CIA-A port A bit 0 mirrors the boot window at address 0.
	if m.ciaA != nil && m.ciaA.OVL() {
		for p := 0xF8; p <= 0xFF; p++ {
			m.pages[p-0xF8] = m.pages[p]
		}
	}
}

func pageOf(addr uint32) int {
	return int((addr >> 16) & 0xFF)
}

func (m *Map) touchBus(area Area) {
	if area == Fast {
		return
	}
	if m.bus != nil {
		m.bus.ExecuteUntilBusIsFree()
	}
}

// Peek8 reads one byte at a 24-bit address.
func (m *Map) Peek8(addr uint32) uint8 {
	addr &= 0xFFFFFF
	area := m.pages[pageOf(addr)]
	v := m.read(area, addr)
	m.touchBus(area)
	m.dataBus = (m.dataBus & 0xFF00) | uint16(v)
	return v
}

// Peek16 reads one big-endian word. An odd address is a documented
// violation: warn, clear the low address bit, and proceed (matches
// hardware, which ignores A0 on word accesses).
func (m *Map) Peek16(addr uint32) uint16 {
	if addr&1 != 0 {
		logger.Logf(logger.Allow, "MEM", "odd address word read at 0x%06x", addr)
		addr &^= 1
	}
	if m.pages[pageOf(addr&0xFFFFFF)] == Custom {
		// custom registers are word-wide: one PeekCustom yields the word.
		v := m.custom.PeekCustom(uint8((addr >> 1) & 0xFF))
		m.touchBus(Custom)
		m.dataBus = v
		return v
	}
	hi := m.Peek8(addr)
	lo := m.Peek8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Peek32 reads one big-endian longword, same odd-address handling as Peek16.
func (m *Map) Peek32(addr uint32) uint32 {
	if addr&1 != 0 {
		logger.Logf(logger.Allow, "MEM", "odd address long read at 0x%06x", addr)
		addr &^= 1
	}
	hi := m.Peek16(addr)
	lo := m.Peek16(addr + 2)
	return uint32(hi)<<16 | uint32(lo)
}

// Poke8 writes one byte at a 24-bit address.
func (m *Map) Poke8(addr uint32, value uint8) {
	addr &= 0xFFFFFF
	area := m.pages[pageOf(addr)]
	m.write(area, addr, value)
	m.touchBus(area)
	m.dataBus = (m.dataBus & 0xFF00) | uint16(value)
}

// Poke16 writes one big-endian word, with the same odd-address handling as
// Peek16.
func (m *Map) Poke16(addr uint32, value uint16) {
	if addr&1 != 0 {
		logger.Logf(logger.Allow, "MEM", "odd address word write at 0x%06x", addr)
		addr &^= 1
	}
	if m.pages[pageOf(addr&0xFFFFFF)] == Custom {
		// custom registers are word-wide: one PokeCustom carries the word.
		m.custom.PokeCustom(uint8((addr>>1)&0xFF), value)
		m.touchBus(Custom)
		m.dataBus = value
		return
	}
	m.Poke8(addr, uint8(value>>8))
	m.Poke8(addr+1, uint8(value))
}

// Poke32 writes one big-endian longword, same odd-address handling.
func (m *Map) Poke32(addr uint32, value uint32) {
	if addr&1 != 0 {
		logger.Logf(logger.Allow, "MEM", "odd address long write at 0x%06x", addr)
		addr &^= 1
	}
	m.Poke16(addr, uint16(value>>16))
	m.Poke16(addr+2, uint16(value))
}

// DataBus returns the last value latched onto the external data bus by any
// Peek/Poke/DMAPeek/DMAPoke call, the value a write-only or nonexistent
// custom register's read falls back to (spec.md §4.2's documented OCS
// faulty-read behaviour).
func (m *Map) DataBus() uint16 { return m.dataBus }

// DMAPeek16 and DMAPoke16 are the word accessors DMA consumers (Blitter,
// Copper) use once they already own the current bus slot via the arbiter:
// unlike Peek16/Poke16 they skip touchBus, since waiting for the bus to
// clear here would deadlock against the slot the caller itself just
// claimed. They still update dataBus so open-bus reads elsewhere observe
// the last value that crossed the bus.
func (m *Map) DMAPeek16(addr uint32) uint16 {
	addr &^= 1
	area := m.pages[pageOf(addr&0xFFFFFF)]
	hi := m.read(area, addr&0xFFFFFF)
	lo := m.read(area, (addr+1)&0xFFFFFF)
	v := uint16(hi)<<8 | uint16(lo)
	m.dataBus = v
	return v
}

func (m *Map) DMAPoke16(addr uint32, value uint16) {
	addr &^= 1
	area := m.pages[pageOf(addr&0xFFFFFF)]
	m.write(area, addr&0xFFFFFF, uint8(value>>8))
	m.write(area, (addr+1)&0xFFFFFF, uint8(value))
	m.dataBus = value
}

// Spypeek8/16/32 read without any side effect: no bus charge, no dataBus
// update. Used by the debugger.
func (m *Map) Spypeek8(addr uint32) uint8 {
	addr &= 0xFFFFFF
	return m.read(m.pages[pageOf(addr)], addr)
}

func (m *Map) Spypeek16(addr uint32) uint16 {
	addr &^= 1
	hi := m.Spypeek8(addr)
	lo := m.Spypeek8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (m *Map) Spypeek32(addr uint32) uint32 {
	addr &^= 1
	hi := m.Spypeek16(addr)
	lo := m.Spypeek16(addr + 2)
	return uint32(hi)<<16 | uint32(lo)
}

// AreaAt reports which Area the given address currently decodes to.
func (m *Map) AreaAt(addr uint32) Area {
	return m.pages[pageOf(addr&0xFFFFFF)]
}

// MapSnapshot is a deep copy of a Map's backing RAM/ROM/WOM stores, round-
// tripped by the hardware package's snapshot system. It deliberately
// excludes CIA/RTC/custom-chip state, which those packages snapshot
// themselves; a restore always reattaches the same device set it was
// created with.
type MapSnapshot struct {
	Sizes     Sizes
	Chip      []byte
	Slow      []byte
	Fast      []byte
	ROM       []byte
	WOM       []byte
	Ext       []byte
	WOMLocked bool
}

// Snapshot copies every backing store into a MapSnapshot.
func (m *Map) Snapshot() *MapSnapshot {
	clone := func(b []byte) []byte {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	return &MapSnapshot{
		Sizes:     m.sizes,
		Chip:      clone(m.chip),
		Slow:      clone(m.slow),
		Fast:      clone(m.fast),
		ROM:       clone(m.rom),
		WOM:       clone(m.wom),
		Ext:       clone(m.ext),
		WOMLocked: m.womLocked,
	}
}

// Restore replaces this Map's sizes and backing stores with a previously
// captured snapshot and rebuilds the page table from the snapshot's Sizes.
func (m *Map) Restore(snap *MapSnapshot) {
	m.sizes = snap.Sizes
	m.chip = append([]byte(nil), snap.Chip...)
	m.slow = append([]byte(nil), snap.Slow...)
	m.fast = append([]byte(nil), snap.Fast...)
	m.rom = append([]byte(nil), snap.ROM...)
	m.wom = append([]byte(nil), snap.WOM...)
	m.ext = append([]byte(nil), snap.Ext...)
	m.womLocked = snap.WOMLocked
	m.UpdateMemSrcTable()
}

func (m *Map) read(area Area, addr uint32) uint8 {
	switch area {
	case Chip:
		return m.chip[addr&uint32(len(m.chip)-1)]
	case Slow:
		return m.slow[(addr-0xC00000)%uint32(len(m.slow))]
	case Fast:
		return m.fast[(addr-0x200000)%uint32(len(m.fast))]
	case ROM:
		if len(m.rom) == 0 {
			return uint8(m.dataBus)
		}
		return m.rom[addr%uint32(len(m.rom))]
	case WOM:
		if len(m.wom) == 0 {
			return uint8(m.dataBus)
		}
		return m.wom[addr%uint32(len(m.wom))]
	case Ext:
		if len(m.ext) == 0 {
			return uint8(m.dataBus)
		}
		return m.ext[addr%uint32(len(m.ext))]
	case CIA:
		return m.readCIA(addr)
	case RTC:
		return m.readRTC(addr)
	case Custom:
		// custom registers are word-wide; byte reads take the low byte of
		// the word-aligned register, OCS faulty-read behaviour for
		// write-only/nonexistent registers is handled in Peek16's caller
		// via CustomDevice itself.
		reg := uint8((addr >> 1) & 0xFF)
		return uint8(m.custom.PeekCustom(reg))
	case AutoConfigArea:
		if m.autoConfig == nil {
			return 0xFF
		}
		return m.autoConfig.PeekAutoConfig(addr & 0xFFFF)
	default:
		logger.Logf(logger.Allow, "MEM", "read from unmapped address 0x%06x", addr)
		return uint8(m.dataBus)
	}
}

func (m *Map) write(area Area, addr uint32, value uint8) {
	switch area {
	case Chip:
		m.chip[addr&uint32(len(m.chip)-1)] = value
	case Slow:
		m.slow[(addr-0xC00000)%uint32(len(m.slow))] = value
	case Fast:
		m.fast[(addr-0x200000)%uint32(len(m.fast))] = value
	case ROM:
		// ROM is not writable; ignored (matches hardware: writes to the
		// Kickstart window are simply discarded once WOM is locked).
	case WOM:
		if len(m.wom) == 0 {
			return
		}
		m.wom[addr%uint32(len(m.wom))] = value
		if !m.womLocked {
			m.womLocked = true
			m.UpdateMemSrcTable()
		}
	case Ext:
		// extended ROM is not writable.
	case CIA:
		m.writeCIA(addr, value)
	case RTC:
		m.writeRTC(addr, value)
	case Custom:
		reg := uint8((addr >> 1) & 0xFF)
		m.custom.PokeCustom(reg, uint16(value)<<8|uint16(value))
	case AutoConfigArea:
		if m.autoConfig != nil {
			m.autoConfig.PokeAutoConfig(addr&0xFFFF, value)
		}
	default:
		logger.Logf(logger.Allow, "MEM", "write to unmapped address 0x%06x = 0x%02x", addr, value)
	}
}

// readCIA decodes the shared CIA-A/CIA-B window: bit 12 selects CIA-A (low),
// bit 13 selects CIA-B (low); bits 8..11 select the register; bit 0 selects
// the byte lane.
func (m *Map) readCIA(addr uint32) uint8 {
	reg := uint8((addr >> 8) & 0xF)
	selA := addr&0x1000 == 0
	selB := addr&0x2000 == 0

	var v uint8
	if selA && m.ciaA != nil {
		v |= m.ciaA.PeekCIA(reg)
	}
	if selB && m.ciaB != nil {
		v |= m.ciaB.PeekCIA(reg)
	}
	return v
}

func (m *Map) writeCIA(addr uint32, value uint8) {
	reg := uint8((addr >> 8) & 0xF)
	selA := addr&0x1000 == 0
	selB := addr&0x2000 == 0

	if selA && m.ciaA != nil {
		m.ciaA.PokeCIA(reg, value)
		if reg == 0 {
			// PRA bit 0 is OVL: rebuild so the boot-ROM mirror follows it.
			m.UpdateMemSrcTable()
		}
	}
	if selB && m.ciaB != nil {
		m.ciaB.PokeCIA(reg, value)
	}
}

// readRTC addresses the clock by (addr>>2)&0xF on odd addresses only, per
// spec.md's decoder description; even addresses in the RTC window read as
// open bus.
func (m *Map) readRTC(addr uint32) uint8 {
	if addr&1 == 0 || m.rtc == nil {
		return uint8(m.dataBus)
	}
	return m.rtc.PeekRTC(uint8((addr >> 2) & 0xF))
}

func (m *Map) writeRTC(addr uint32, value uint8) {
	if addr&1 == 0 || m.rtc == nil {
		return
	}
	m.rtc.PokeRTC(uint8((addr>>2)&0xF), value)
}
