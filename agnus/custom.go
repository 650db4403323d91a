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

package agnus

// PeekCustom and PokeCustom implement memory.CustomDevice: the one 0x100
// word-register window Agnus, the Blitter, the Copper, Denise and Paula all
// multiplex through. CPU accesses reach these via memory.Map; Copper MOVE
// instructions reach PokeCustom through copperHost.WriteCustomCopper.

// PeekCustom reads one custom register. Write-only or nonexistent
// registers fall back to the open-bus value per spec.md §4.2.
func (a *Agnus) PeekCustom(reg uint8) uint16 {
	switch {
	case reg == regDMACONR:
		v := a.dmacon & 0x07FF
		if a.blt.Busy() {
			v |= DMACONBusy
		}
		if a.blt.BlitZero() {
			v |= DMACONBZERO
		}
		return v
	case reg == regVPOSR:
		v := uint16((a.v >> 8) & 0x7)
		if a.longFrame {
			v |= 1 << 15
		}
		return v
	case reg == regVHPOSR:
		return uint16(a.v&0xFF)<<8 | uint16(a.h&0xFF)
	case reg == regDSKDATR:
		return a.pla.Disk.ReadDSKDATR()
	case reg == regCLXDAT:
		v := a.clxdat | 0x8000
		a.clxdat = 0
		return v
	case reg == regADKCONR:
		return a.adkcon
	case reg == regJOY0DAT:
		return a.portJOYDAT(0)
	case reg == regJOY1DAT:
		return a.portJOYDAT(1)
	case reg == regPOTINP:
		return a.portPOTGOR(0) & a.portPOTGOR(1)
	case reg == regINTENAR:
		return a.pla.ReadINTENA()
	case reg == regINTREQR:
		return a.pla.ReadINTREQ()
	case reg >= regCOLOR00 && reg < regCOLOR00+32:
		return a.colorReg[reg-regCOLOR00]
	default:
		return a.openBusRead()
	}
}

// openBusRead implements the documented faulty-read fallback: the last
// value on the external data bus, OR-ed with whatever crossed the bus in
// the current DMA slot.
func (a *Agnus) openBusRead() uint16 {
	v := a.arbiter.ValueAt(a.h)
	if a.mem != nil {
		v |= a.mem.DataBus()
	}
	return v
}

// PokeCustom writes one custom register, dispatching to the owning
// sub-engine. The registers below byte offset 0x80 (word registers
// 0x00..0x3F) are the privileged range the Copper can only reach when
// COPCON.CDANG is set; that gate lives in
// copperHost.WriteCustomCopper's caller (copper.Copper.execute), not here,
// since PokeCustom itself is also the CPU's own write path and must not
// reject CPU writes to the same registers.
func (a *Agnus) PokeCustom(reg uint8, value uint16) {
	switch {
	case reg == regDMACON:
		a.pokeDMACON(value)
	case reg == regCOPCON:
		a.copcon = value
	case reg == regADKCON:
		a.adkcon = value
	case reg == regINTENA:
		a.pla.WriteINTENA(value)
	case reg == regINTREQ:
		a.pla.WriteINTREQ(value)
	case reg == regCLXCON:
		a.clxcon = value
	case reg == regDIWSTRT:
		a.diwstrt = value
		a.queueRegisterChange(reg, value)
	case reg == regDIWSTOP:
		a.diwstop = value
		a.queueRegisterChange(reg, value)
	case reg == regDDFSTRT:
		a.ddfstrt = value
	case reg == regDDFSTOP:
		a.ddfstop = value

	case reg == regBPLCON0:
		a.bplcon0 = value
		a.queueRegisterChange(reg, value)
	case reg == regBPLCON1:
		a.bplcon1 = value
		a.queueRegisterChange(reg, value)
	case reg == regBPLCON2:
		a.bplcon2 = value
		a.queueRegisterChange(reg, value)
	case reg == regBPL1MOD:
		a.bplmod1 = int16(value)
	case reg == regBPL2MOD:
		a.bplmod2 = int16(value)
	case reg >= regBPL1PTH && reg < regBPL1PTH+regBPLPTStride*6:
		a.pokeBitplanePointer(reg, value)
	case reg >= regBPL1DAT && reg < regBPL1DAT+6:
		a.bpldat[reg-regBPL1DAT] = value

	case reg == regDSKPTH:
		a.dskpt = (a.dskpt & 0x0000FFFF) | uint32(value)<<16
	case reg == regDSKPTL:
		a.dskpt = (a.dskpt & 0xFFFF0000) | uint32(value)
	case reg == regDSKLEN:
		a.pla.Disk.WriteDSKLEN(value)
	case reg == regDSKSYNC:
		a.pla.Disk.WriteDSKSYNC(value)

	case reg == regSERDAT:
		a.pla.Uart.WriteSERDAT(value)
	case reg == regSERPER:
		a.pla.Uart.WriteSERPER(value)

	case reg >= regAUD0LCH && reg < regAUD0LCH+regAUDStride*4:
		a.pokeAudio(reg, value)

	case reg == regBLTCON0:
		a.blt.SetBLTCON0(value)
	case reg == regBLTCON1:
		a.blt.SetBLTCON1(value)
	case reg == regBLTAFWM:
		a.blt.SetBLTAFWM(value)
	case reg == regBLTALWM:
		a.blt.SetBLTALWM(value)
	case reg == regBLTAPTH:
		a.bltaptShadow = (a.bltaptShadow & 0x0000FFFF) | uint32(value)<<16
		a.blt.SetBLTAPT(a.bltaptShadow)
	case reg == regBLTAPTL:
		a.bltaptShadow = (a.bltaptShadow & 0xFFFF0000) | uint32(value)
		a.blt.SetBLTAPT(a.bltaptShadow)
	case reg == regBLTBPTH:
		a.bltbptShadow = (a.bltbptShadow & 0x0000FFFF) | uint32(value)<<16
		a.blt.SetBLTBPT(a.bltbptShadow)
	case reg == regBLTBPTL:
		a.bltbptShadow = (a.bltbptShadow & 0xFFFF0000) | uint32(value)
		a.blt.SetBLTBPT(a.bltbptShadow)
	case reg == regBLTCPTH:
		a.bltcptShadow = (a.bltcptShadow & 0x0000FFFF) | uint32(value)<<16
		a.blt.SetBLTCPT(a.bltcptShadow)
	case reg == regBLTCPTL:
		a.bltcptShadow = (a.bltcptShadow & 0xFFFF0000) | uint32(value)
		a.blt.SetBLTCPT(a.bltcptShadow)
	case reg == regBLTDPTH:
		a.bltdptShadow = (a.bltdptShadow & 0x0000FFFF) | uint32(value)<<16
		a.blt.SetBLTDPT(a.bltdptShadow)
	case reg == regBLTDPTL:
		a.bltdptShadow = (a.bltdptShadow & 0xFFFF0000) | uint32(value)
		a.blt.SetBLTDPT(a.bltdptShadow)
	case reg == regBLTAMOD:
		a.blt.SetBLTAMOD(int16(value))
	case reg == regBLTBMOD:
		a.blt.SetBLTBMOD(int16(value))
	case reg == regBLTCMOD:
		a.blt.SetBLTCMOD(int16(value))
	case reg == regBLTDMOD:
		a.blt.SetBLTDMOD(int16(value))
	case reg == regBLTSIZE:
		a.blt.SetBLTSIZE(value, blitterHost{a})

	case reg == regCOP1LCH:
		a.cop1lcShadow = (a.cop1lcShadow & 0x0000FFFF) | uint32(value)<<16
		a.cop.SetCOP1LC(a.cop1lcShadow)
	case reg == regCOP1LCL:
		a.cop1lcShadow = (a.cop1lcShadow & 0xFFFF0000) | uint32(value)
		a.cop.SetCOP1LC(a.cop1lcShadow)
	case reg == regCOP2LCH:
		a.cop2lcShadow = (a.cop2lcShadow & 0x0000FFFF) | uint32(value)<<16
		a.cop.SetCOP2LC(a.cop2lcShadow)
	case reg == regCOP2LCL:
		a.cop2lcShadow = (a.cop2lcShadow & 0xFFFF0000) | uint32(value)
		a.cop.SetCOP2LC(a.cop2lcShadow)
	case reg == regCOPJMP1:
		a.cop.StrobeCOP1(copperHost{a})
	case reg == regCOPJMP2:
		a.cop.StrobeCOP2(copperHost{a})

	case reg >= regCOLOR00 && reg < regCOLOR00+32:
		a.colorReg[reg-regCOLOR00] = value & 0x0FFF
		a.queueRegisterChange(reg, value)

	case reg >= regSPR0PTH && reg < regSPR0PTH+regSPRPTStride*8:
		a.pokeSpritePointer(reg, value)
	case reg >= regSPR0POS && reg < regSPR0POS+regSPRStride*8:
		a.pokeSpriteSlot(reg, value)

	default:
		// unmapped register: writes are simply discarded, matching the
		// documented OCS behaviour for reserved register addresses.
	}
}

// portJOYDAT and portPOTGOR read the given control port (0 or 1), treating
// an unattached port as "no device connected" (per controlport.Port's own
// zero-value DeviceNone behaviour).
func (a *Agnus) portJOYDAT(port int) uint16 {
	if a.ports[port] == nil {
		return 0
	}
	return a.ports[port].JOYDAT()
}

func (a *Agnus) portPOTGOR(port int) uint16 {
	if a.ports[port] == nil {
		return 0xFFFF
	}
	return a.ports[port].POTGOR()
}

func (a *Agnus) pokeDMACON(value uint16) {
	if value&0x8000 != 0 {
		a.dmacon |= value & 0x07FF
	} else {
		a.dmacon &^= value & 0x07FF
	}
}

func (a *Agnus) pokeBitplanePointer(reg uint8, value uint16) {
	plane := int(reg-regBPL1PTH) / 2
	hi := (reg-regBPL1PTH)%2 == 0
	if hi {
		a.bplpt[plane] = (a.bplpt[plane] & 0x0000FFFF) | uint32(value)<<16
	} else {
		a.bplpt[plane] = (a.bplpt[plane] & 0xFFFF0000) | uint32(value)
	}
}

func (a *Agnus) pokeAudio(reg uint8, value uint16) {
	ch := int(reg-regAUD0LCH) / int(regAUDStride)
	offset := int(reg-regAUD0LCH) % int(regAUDStride)
	switch offset {
	case 0:
		a.audlc[ch] = (a.audlc[ch] & 0x0000FFFF) | uint32(value)<<16
	case 1:
		a.audlc[ch] = (a.audlc[ch] & 0xFFFF0000) | uint32(value)
	case 2:
		a.audlenCt[ch] = value
		a.pla.Audio[ch].SetLength(value)
	case 3:
		a.pla.Audio[ch].SetPeriod(value)
	case 4:
		a.pla.Audio[ch].SetVolume(uint8(value))
		a.pla.Audio[ch].SetDMA(a.dmacon&(DMACONAUD0EN<<uint(ch)) != 0)
	}
}

func (a *Agnus) pokeSpritePointer(reg uint8, value uint16) {
	spr := int(reg-regSPR0PTH) / 2
	hi := (reg-regSPR0PTH)%2 == 0
	if hi {
		a.sprpt[spr] = (a.sprpt[spr] & 0x0000FFFF) | uint32(value)<<16
	} else {
		a.sprpt[spr] = (a.sprpt[spr] & 0xFFFF0000) | uint32(value)
	}
}

func (a *Agnus) pokeSpriteSlot(reg uint8, value uint16) {
	spr := int(reg-regSPR0POS) / int(regSPRStride)
	offset := int(reg-regSPR0POS) % int(regSPRStride)
	switch offset {
	case 0:
		a.sprpos[spr] = value
	case 1:
		a.sprctl[spr] = value
		a.sprarmed[spr] = false
	case 2:
		a.sprdataA[spr] = value
		a.sprarmed[spr] = true
	case 3:
		a.sprdataB[spr] = value
	}
	a.queueRegisterChange(reg, value)
}

