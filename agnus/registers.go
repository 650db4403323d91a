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

// Custom register numbers, in word units from 0xDFF000 (reg = offset>>1),
// per the Amiga Hardware Reference Manual's chip register map. Only the
// OCS/ECS subset spec.md's modules actually consume is named; everything
// else decodes through the default case in PeekCustom/PokeCustom.
const (
	regBLTDDAT  = 0x000
	regDMACONR  = 0x001
	regVPOSR    = 0x002
	regVHPOSR   = 0x003
	regDSKDATR  = 0x004
	regJOY0DAT  = 0x005
	regJOY1DAT  = 0x006
	regCLXDAT   = 0x007
	regADKCONR  = 0x008
	regPOT0DAT  = 0x009
	regPOT1DAT  = 0x00A
	regPOTINP   = 0x00B
	regSERDATR  = 0x00C
	regDSKBYTR  = 0x00D
	regINTENAR  = 0x00E
	regINTREQR  = 0x00F
	regDSKPTH   = 0x010
	regDSKPTL   = 0x011
	regDSKLEN   = 0x012
	regDSKDAT   = 0x013
	regREFPTR   = 0x014
	regVPOSW    = 0x015
	regVHPOSW   = 0x016
	regCOPCON   = 0x017
	regSERDAT   = 0x018
	regSERPER   = 0x019
	regPOTGO    = 0x01A
	regJOYTEST  = 0x01B
	regBLTCON0  = 0x020
	regBLTCON1  = 0x021
	regBLTAFWM  = 0x022
	regBLTALWM  = 0x023
	regBLTCPTH  = 0x024
	regBLTCPTL  = 0x025
	regBLTBPTH  = 0x026
	regBLTBPTL  = 0x027
	regBLTAPTH  = 0x028
	regBLTAPTL  = 0x029
	regBLTDPTH  = 0x02A
	regBLTDPTL  = 0x02B
	regBLTSIZE  = 0x02C
	regBLTCMOD  = 0x030
	regBLTBMOD  = 0x031
	regBLTAMOD  = 0x032
	regBLTDMOD  = 0x033
	regDSKSYNC  = 0x03F
	regCOP1LCH  = 0x040
	regCOP1LCL  = 0x041
	regCOP2LCH  = 0x042
	regCOP2LCL  = 0x043
	regCOPJMP1  = 0x044
	regCOPJMP2  = 0x045
	regDIWSTRT  = 0x047
	regDIWSTOP  = 0x048
	regDDFSTRT  = 0x049
	regDDFSTOP  = 0x04A
	regDMACON   = 0x04B
	regCLXCON   = 0x04C
	regINTENA   = 0x04D
	regINTREQ   = 0x04E
	regADKCON   = 0x04F

	// four audio channels, 8 words apart: LCH,LCL,LEN,PER,VOL,DAT
	regAUD0LCH = 0x050
	regAUDStride = 0x008

	// six bitplane pointers, 2 words apart: PTH,PTL
	regBPL1PTH = 0x070
	regBPLPTStride = 0x002

	regBPLCON0 = 0x080
	regBPLCON1 = 0x081
	regBPLCON2 = 0x082
	regBPL1MOD = 0x084
	regBPL2MOD = 0x085

	// six bitplane data latches, 1 word apart
	regBPL1DAT = 0x088

	// eight sprites, 4 words apart: POS,CTL,DATA,DATB; pointers precede at
	// regSPR0PTH
	regSPR0PTH = 0x090
	regSPRPTStride = 0x002
	regSPR0POS = 0x0A0
	regSPRStride = 0x004

	// 32 colour registers
	regCOLOR00 = 0x0C0
)
