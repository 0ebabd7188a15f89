// This file is part of GopherSMS.
//
// GopherSMS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSMS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSMS.  If not, see <https://www.gnu.org/licenses/>.

package z80

// edOpcodes is the dispatch table for the ED prefix. the defined
// instructions all live in the 0x40-0xbf range; the well known
// "undocumented duplicates" of NEG, RETN and IM are included. everything
// else is a fault.
var edOpcodes = [256]instruction{}

func init() {
	for i := 0; i < 256; i++ {
		edOpcodes[i] = unimplemented("ed ", uint8(i))
	}

	edOpcodes[0x40] = inC(regB, false)        // IN B,(C)
	edOpcodes[0x41] = outC(regB, false)       // OUT (C),B
	edOpcodes[0x42] = sbc16(regBC)            // SBC HL,BC
	edOpcodes[0x43] = st16Mem(regBC, 20)      // LD (nn),BC
	edOpcodes[0x44] = neg()                   // NEG
	edOpcodes[0x45] = retn()                  // RETN
	edOpcodes[0x46] = im(0)                   // IM 0
	edOpcodes[0x47] = ldIRA(regI)             // LD I,A
	edOpcodes[0x48] = inC(regC, false)        // IN C,(C)
	edOpcodes[0x49] = outC(regC, false)       // OUT (C),C
	edOpcodes[0x4a] = adc16(regBC)            // ADC HL,BC
	edOpcodes[0x4b] = ld16Mem(regBC, 20)      // LD BC,(nn)
	edOpcodes[0x4c] = neg()                   // NEG*
	edOpcodes[0x4d] = retn()                  // RETI
	edOpcodes[0x4e] = im(0)                   // IM 0*
	edOpcodes[0x4f] = ldIRA(regR)             // LD R,A
	edOpcodes[0x50] = inC(regD, false)        // IN D,(C)
	edOpcodes[0x51] = outC(regD, false)       // OUT (C),D
	edOpcodes[0x52] = sbc16(regDE)            // SBC HL,DE
	edOpcodes[0x53] = st16Mem(regDE, 20)      // LD (nn),DE
	edOpcodes[0x54] = neg()                   // NEG*
	edOpcodes[0x55] = retn()                  // RETN*
	edOpcodes[0x56] = im(1)                   // IM 1
	edOpcodes[0x57] = ldAIR(regI)             // LD A,I
	edOpcodes[0x58] = inC(regE, false)        // IN E,(C)
	edOpcodes[0x59] = outC(regE, false)       // OUT (C),E
	edOpcodes[0x5a] = adc16(regDE)            // ADC HL,DE
	edOpcodes[0x5b] = ld16Mem(regDE, 20)      // LD DE,(nn)
	edOpcodes[0x5c] = neg()                   // NEG*
	edOpcodes[0x5d] = retn()                  // RETN*
	edOpcodes[0x5e] = im(2)                   // IM 2
	edOpcodes[0x5f] = ldAIR(regR)             // LD A,R
	edOpcodes[0x60] = inC(regH, false)        // IN H,(C)
	edOpcodes[0x61] = outC(regH, false)       // OUT (C),H
	edOpcodes[0x62] = sbc16(regHL)            // SBC HL,HL
	edOpcodes[0x63] = st16Mem(regHL, 20)      // LD (nn),HL
	edOpcodes[0x64] = neg()                   // NEG*
	edOpcodes[0x65] = retn()                  // RETN*
	edOpcodes[0x66] = im(0)                   // IM 0*
	edOpcodes[0x67] = rrd()                   // RRD
	edOpcodes[0x68] = inC(regL, false)        // IN L,(C)
	edOpcodes[0x69] = outC(regL, false)       // OUT (C),L
	edOpcodes[0x6a] = adc16(regHL)            // ADC HL,HL
	edOpcodes[0x6b] = ld16Mem(regHL, 20)      // LD HL,(nn)
	edOpcodes[0x6c] = neg()                   // NEG*
	edOpcodes[0x6d] = retn()                  // RETN*
	edOpcodes[0x6e] = im(0)                   // IM 0*
	edOpcodes[0x6f] = rld()                   // RLD
	edOpcodes[0x70] = inC(regF, true)         // IN (C)
	edOpcodes[0x71] = outC(regF, true)        // OUT (C),0
	edOpcodes[0x72] = sbc16(regSP)            // SBC HL,SP
	edOpcodes[0x73] = st16Mem(regSP, 20)      // LD (nn),SP
	edOpcodes[0x74] = neg()                   // NEG*
	edOpcodes[0x75] = retn()                  // RETN*
	edOpcodes[0x76] = im(1)                   // IM 1*
	edOpcodes[0x78] = inC(regA, false)        // IN A,(C)
	edOpcodes[0x79] = outC(regA, false)       // OUT (C),A
	edOpcodes[0x7a] = adc16(regSP)            // ADC HL,SP
	edOpcodes[0x7b] = ld16Mem(regSP, 20)      // LD SP,(nn)
	edOpcodes[0x7c] = neg()                   // NEG*
	edOpcodes[0x7d] = retn()                  // RETN*
	edOpcodes[0x7e] = im(2)                   // IM 2*
	edOpcodes[0xa0] = blockLDOp(1)            // LDI
	edOpcodes[0xa1] = blockCPOp(1)            // CPI
	edOpcodes[0xa2] = blockINOp(1)            // INI
	edOpcodes[0xa3] = blockOUTOp(1)           // OUTI
	edOpcodes[0xa8] = blockLDOp(0xffff)       // LDD
	edOpcodes[0xa9] = blockCPOp(0xffff)       // CPD
	edOpcodes[0xaa] = blockINOp(0xffff)       // IND
	edOpcodes[0xab] = blockOUTOp(0xffff)      // OUTD
	edOpcodes[0xb0] = blockLDRepeatOp(1)      // LDIR
	edOpcodes[0xb1] = blockCPRepeatOp(1)      // CPIR
	edOpcodes[0xb2] = blockINRepeatOp(1)      // INIR
	edOpcodes[0xb3] = blockOUTRepeatOp(1)     // OTIR
	edOpcodes[0xb8] = blockLDRepeatOp(0xffff) // LDDR
	edOpcodes[0xb9] = blockCPRepeatOp(0xffff) // CPDR
	edOpcodes[0xba] = blockINRepeatOp(0xffff) // INDR
	edOpcodes[0xbb] = blockOUTRepeatOp(0xffff) // OTDR
}
