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

// ddOpcodes and fdOpcodes are the dispatch tables for the DD and FD
// prefixes. a prefix replaces HL with an index register for the duration of
// one instruction so the tables start as a copy of the base table and
// override only the rows that touch HL. that includes the undocumented
// half-register rows (IXH, IXL and so on) but not the (IX+d) rows' use of H
// and L themselves: LD H,(IX+d) loads the real H register.
//
// a second prefix byte after DD or FD is a fault.
var ddOpcodes [256]instruction
var fdOpcodes [256]instruction

func init() {
	ddOpcodes = opcodes
	fdOpcodes = opcodes

	buildIndexTable(&ddOpcodes, 0xdd, regIX, regIXH, regIXL, ixPlus, ixPlusPrev)
	buildIndexTable(&fdOpcodes, 0xfd, regIY, regIYH, regIYL, iyPlus, iyPlusPrev)
}

func buildIndexTable(table *[256]instruction, prefix uint8, rr, rh, rl register, plus, plusPrev addressing) {
	table[0x09] = add16(rr, regBC)            // ADD rr,BC
	table[0x19] = add16(rr, regDE)            // ADD rr,DE
	table[0x21] = ld16Imm(rr)                 // LD rr,nn
	table[0x22] = st16Mem(rr, 16)             // LD (nn),rr
	table[0x23] = incReg16(rr)                // INC rr
	table[0x24] = incReg(rh)                  // INC rrH
	table[0x25] = decReg(rh)                  // DEC rrH
	table[0x26] = ldRegImm(rh)                // LD rrH,n
	table[0x29] = add16(rr, rr)               // ADD rr,rr
	table[0x2a] = ld16Mem(rr, 16)             // LD rr,(nn)
	table[0x2b] = decReg16(rr)                // DEC rr
	table[0x2c] = incReg(rl)                  // INC rrL
	table[0x2d] = decReg(rl)                  // DEC rrL
	table[0x2e] = ldRegImm(rl)                // LD rrL,n
	table[0x34] = incMem(plus, 19)            // INC (rr+d)
	table[0x35] = decMem(plus, 19)            // DEC (rr+d)
	table[0x36] = ldMemImm(plus, 15)          // LD (rr+d),n
	table[0x39] = add16(rr, regSP)            // ADD rr,SP
	table[0x44] = ldRegReg(regB, rh)          // LD B,rrH
	table[0x45] = ldRegReg(regB, rl)          // LD B,rrL
	table[0x46] = ldRegMem(regB, plus, 15)    // LD B,(rr+d)
	table[0x4c] = ldRegReg(regC, rh)          // LD C,rrH
	table[0x4d] = ldRegReg(regC, rl)          // LD C,rrL
	table[0x4e] = ldRegMem(regC, plus, 15)    // LD C,(rr+d)
	table[0x54] = ldRegReg(regD, rh)          // LD D,rrH
	table[0x55] = ldRegReg(regD, rl)          // LD D,rrL
	table[0x56] = ldRegMem(regD, plus, 15)    // LD D,(rr+d)
	table[0x5c] = ldRegReg(regE, rh)          // LD E,rrH
	table[0x5d] = ldRegReg(regE, rl)          // LD E,rrL
	table[0x5e] = ldRegMem(regE, plus, 15)    // LD E,(rr+d)
	table[0x60] = ldRegReg(rh, regB)          // LD rrH,B
	table[0x61] = ldRegReg(rh, regC)          // LD rrH,C
	table[0x62] = ldRegReg(rh, regD)          // LD rrH,D
	table[0x63] = ldRegReg(rh, regE)          // LD rrH,E
	table[0x64] = ldRegReg(rh, rh)            // LD rrH,rrH
	table[0x65] = ldRegReg(rh, rl)            // LD rrH,rrL
	table[0x66] = ldRegMem(regH, plus, 15)    // LD H,(rr+d)
	table[0x67] = ldRegReg(rh, regA)          // LD rrH,A
	table[0x68] = ldRegReg(rl, regB)          // LD rrL,B
	table[0x69] = ldRegReg(rl, regC)          // LD rrL,C
	table[0x6a] = ldRegReg(rl, regD)          // LD rrL,D
	table[0x6b] = ldRegReg(rl, regE)          // LD rrL,E
	table[0x6c] = ldRegReg(rl, rh)            // LD rrL,rrH
	table[0x6d] = ldRegReg(rl, rl)            // LD rrL,rrL
	table[0x6e] = ldRegMem(regL, plus, 15)    // LD L,(rr+d)
	table[0x6f] = ldRegReg(rl, regA)          // LD rrL,A
	table[0x70] = ldMemReg(plus, regB, 15)    // LD (rr+d),B
	table[0x71] = ldMemReg(plus, regC, 15)    // LD (rr+d),C
	table[0x72] = ldMemReg(plus, regD, 15)    // LD (rr+d),D
	table[0x73] = ldMemReg(plus, regE, 15)    // LD (rr+d),E
	table[0x74] = ldMemReg(plus, regH, 15)    // LD (rr+d),H
	table[0x75] = ldMemReg(plus, regL, 15)    // LD (rr+d),L
	table[0x77] = ldMemReg(plus, regA, 15)    // LD (rr+d),A
	table[0x7c] = ldRegReg(regA, rh)          // LD A,rrH
	table[0x7d] = ldRegReg(regA, rl)          // LD A,rrL
	table[0x7e] = ldRegMem(regA, plus, 15)    // LD A,(rr+d)
	table[0x84] = aluReg(aluAdd, rh)          // ADD A,rrH
	table[0x85] = aluReg(aluAdd, rl)          // ADD A,rrL
	table[0x86] = aluMem(aluAdd, plus, 15)    // ADD A,(rr+d)
	table[0x8c] = aluReg(aluAdc, rh)          // ADC A,rrH
	table[0x8d] = aluReg(aluAdc, rl)          // ADC A,rrL
	table[0x8e] = aluMem(aluAdc, plus, 15)    // ADC A,(rr+d)
	table[0x94] = aluReg(aluSub, rh)          // SUB rrH
	table[0x95] = aluReg(aluSub, rl)          // SUB rrL
	table[0x96] = aluMem(aluSub, plus, 15)    // SUB (rr+d)
	table[0x9c] = aluReg(aluSbc, rh)          // SBC A,rrH
	table[0x9d] = aluReg(aluSbc, rl)          // SBC A,rrL
	table[0x9e] = aluMem(aluSbc, plus, 15)    // SBC A,(rr+d)
	table[0xa4] = aluReg(aluAnd, rh)          // AND rrH
	table[0xa5] = aluReg(aluAnd, rl)          // AND rrL
	table[0xa6] = aluMem(aluAnd, plus, 15)    // AND (rr+d)
	table[0xac] = aluReg(aluXor, rh)          // XOR rrH
	table[0xad] = aluReg(aluXor, rl)          // XOR rrL
	table[0xae] = aluMem(aluXor, plus, 15)    // XOR (rr+d)
	table[0xb4] = aluReg(aluOr, rh)           // OR rrH
	table[0xb5] = aluReg(aluOr, rl)           // OR rrL
	table[0xb6] = aluMem(aluOr, plus, 15)     // OR (rr+d)
	table[0xbc] = aluReg(aluCp, rh)           // CP rrH
	table[0xbd] = aluReg(aluCp, rl)           // CP rrL
	table[0xbe] = aluMem(aluCp, plus, 15)     // CP (rr+d)
	table[0xcb] = prefixIndexCB(plusPrev)     // DDCB/FDCB
	table[0xdd] = illegalPrefix(prefix, 0xdd) // prefix chains are a fault
	table[0xe1] = pop16(rr)                   // POP rr
	table[0xe3] = exSP(rr)                    // EX (SP),rr
	table[0xe5] = push16(rr)                  // PUSH rr
	table[0xe9] = jpReg(rr)                   // JP (rr)
	table[0xed] = illegalPrefix(prefix, 0xed)
	table[0xf9] = ldSP(rr)                    // LD SP,rr
	table[0xfd] = illegalPrefix(prefix, 0xfd)
}

// indexCBCopy maps the low three bits of a DDCB/FDCB sub-opcode to the
// register that also receives the result of the undocumented forms. column
// six is the documented instruction with no register copy; its entry here
// is never read.
var indexCBCopy = [8]register{regB, regC, regD, regE, regH, regL, regA, regA}

// indexCB executes a DDCB/FDCB sub-opcode. the table is fully regular so
// decode is arithmetic rather than a 256 entry table: bits 6-7 select the
// operation class, bits 3-5 the bit number (or shift operation) and bits
// 0-2 the register that shadows the memory result in the undocumented
// forms.
func (mc *CPU) indexCB(mode addressing, sub uint8) int {
	addr := mc.address(mode)
	copyTo := sub & 0x07

	switch sub >> 6 {
	case 0: // rotates and shifts on (rr+d)
		v := mc.shift(shiftOp(sub>>3), mc.read(addr))
		mc.write(addr, v)
		if copyTo != 6 {
			mc.setRegister8(indexCBCopy[copyTo], v)
		}
		return 19

	case 1: // BIT n,(rr+d). every column decodes to the same instruction
		mc.bitTest((sub>>3)&0x07, mc.read(addr), uint8(addr>>8))
		return 16

	case 2: // RES n,(rr+d)
		v := mc.read(addr) &^ (1 << ((sub >> 3) & 0x07))
		mc.write(addr, v)
		if copyTo != 6 {
			mc.setRegister8(indexCBCopy[copyTo], v)
		}
		return 19

	default: // SET n,(rr+d)
		v := mc.read(addr) | 1<<((sub>>3)&0x07)
		mc.write(addr, v)
		if copyTo != 6 {
			mc.setRegister8(indexCBCopy[copyTo], v)
		}
		return 19
	}
}
