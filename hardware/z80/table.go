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

// opcodes is the dispatch table for the unprefixed instructions. one row
// per opcode.
var opcodes = [256]instruction{
	/* 0x00 NOP          */ nop(),
	/* 0x01 LD BC,nn     */ ld16Imm(regBC),
	/* 0x02 LD (BC),A    */ ldMemReg(indBC, regA, 7),
	/* 0x03 INC BC       */ incReg16(regBC),
	/* 0x04 INC B        */ incReg(regB),
	/* 0x05 DEC B        */ decReg(regB),
	/* 0x06 LD B,n       */ ldRegImm(regB),
	/* 0x07 RLCA         */ rlca(),
	/* 0x08 EX AF,AF'    */ exAF(),
	/* 0x09 ADD HL,BC    */ add16(regHL, regBC),
	/* 0x0a LD A,(BC)    */ ldRegMem(regA, indBC, 7),
	/* 0x0b DEC BC       */ decReg16(regBC),
	/* 0x0c INC C        */ incReg(regC),
	/* 0x0d DEC C        */ decReg(regC),
	/* 0x0e LD C,n       */ ldRegImm(regC),
	/* 0x0f RRCA         */ rrca(),
	/* 0x10 DJNZ e       */ djnz(),
	/* 0x11 LD DE,nn     */ ld16Imm(regDE),
	/* 0x12 LD (DE),A    */ ldMemReg(indDE, regA, 7),
	/* 0x13 INC DE       */ incReg16(regDE),
	/* 0x14 INC D        */ incReg(regD),
	/* 0x15 DEC D        */ decReg(regD),
	/* 0x16 LD D,n       */ ldRegImm(regD),
	/* 0x17 RLA          */ rla(),
	/* 0x18 JR e         */ jr(condAlways),
	/* 0x19 ADD HL,DE    */ add16(regHL, regDE),
	/* 0x1a LD A,(DE)    */ ldRegMem(regA, indDE, 7),
	/* 0x1b DEC DE       */ decReg16(regDE),
	/* 0x1c INC E        */ incReg(regE),
	/* 0x1d DEC E        */ decReg(regE),
	/* 0x1e LD E,n       */ ldRegImm(regE),
	/* 0x1f RRA          */ rra(),
	/* 0x20 JR NZ,e      */ jr(condNZ),
	/* 0x21 LD HL,nn     */ ld16Imm(regHL),
	/* 0x22 LD (nn),HL   */ st16Mem(regHL, 16),
	/* 0x23 INC HL       */ incReg16(regHL),
	/* 0x24 INC H        */ incReg(regH),
	/* 0x25 DEC H        */ decReg(regH),
	/* 0x26 LD H,n       */ ldRegImm(regH),
	/* 0x27 DAA          */ daa(),
	/* 0x28 JR Z,e       */ jr(condZ),
	/* 0x29 ADD HL,HL    */ add16(regHL, regHL),
	/* 0x2a LD HL,(nn)   */ ld16Mem(regHL, 16),
	/* 0x2b DEC HL       */ decReg16(regHL),
	/* 0x2c INC L        */ incReg(regL),
	/* 0x2d DEC L        */ decReg(regL),
	/* 0x2e LD L,n       */ ldRegImm(regL),
	/* 0x2f CPL          */ cpl(),
	/* 0x30 JR NC,e      */ jr(condNC),
	/* 0x31 LD SP,nn     */ ld16Imm(regSP),
	/* 0x32 LD (nn),A    */ ldMemReg(indirect, regA, 13),
	/* 0x33 INC SP       */ incReg16(regSP),
	/* 0x34 INC (HL)     */ incMem(indHL, 11),
	/* 0x35 DEC (HL)     */ decMem(indHL, 11),
	/* 0x36 LD (HL),n    */ ldMemImm(indHL, 10),
	/* 0x37 SCF          */ scf(),
	/* 0x38 JR C,e       */ jr(condC),
	/* 0x39 ADD HL,SP    */ add16(regHL, regSP),
	/* 0x3a LD A,(nn)    */ ldRegMem(regA, indirect, 13),
	/* 0x3b DEC SP       */ decReg16(regSP),
	/* 0x3c INC A        */ incReg(regA),
	/* 0x3d DEC A        */ decReg(regA),
	/* 0x3e LD A,n       */ ldRegImm(regA),
	/* 0x3f CCF          */ ccf(),
	/* 0x40 LD B,B       */ ldRegReg(regB, regB),
	/* 0x41 LD B,C       */ ldRegReg(regB, regC),
	/* 0x42 LD B,D       */ ldRegReg(regB, regD),
	/* 0x43 LD B,E       */ ldRegReg(regB, regE),
	/* 0x44 LD B,H       */ ldRegReg(regB, regH),
	/* 0x45 LD B,L       */ ldRegReg(regB, regL),
	/* 0x46 LD B,(HL)    */ ldRegMem(regB, indHL, 7),
	/* 0x47 LD B,A       */ ldRegReg(regB, regA),
	/* 0x48 LD C,B       */ ldRegReg(regC, regB),
	/* 0x49 LD C,C       */ ldRegReg(regC, regC),
	/* 0x4a LD C,D       */ ldRegReg(regC, regD),
	/* 0x4b LD C,E       */ ldRegReg(regC, regE),
	/* 0x4c LD C,H       */ ldRegReg(regC, regH),
	/* 0x4d LD C,L       */ ldRegReg(regC, regL),
	/* 0x4e LD C,(HL)    */ ldRegMem(regC, indHL, 7),
	/* 0x4f LD C,A       */ ldRegReg(regC, regA),
	/* 0x50 LD D,B       */ ldRegReg(regD, regB),
	/* 0x51 LD D,C       */ ldRegReg(regD, regC),
	/* 0x52 LD D,D       */ ldRegReg(regD, regD),
	/* 0x53 LD D,E       */ ldRegReg(regD, regE),
	/* 0x54 LD D,H       */ ldRegReg(regD, regH),
	/* 0x55 LD D,L       */ ldRegReg(regD, regL),
	/* 0x56 LD D,(HL)    */ ldRegMem(regD, indHL, 7),
	/* 0x57 LD D,A       */ ldRegReg(regD, regA),
	/* 0x58 LD E,B       */ ldRegReg(regE, regB),
	/* 0x59 LD E,C       */ ldRegReg(regE, regC),
	/* 0x5a LD E,D       */ ldRegReg(regE, regD),
	/* 0x5b LD E,E       */ ldRegReg(regE, regE),
	/* 0x5c LD E,H       */ ldRegReg(regE, regH),
	/* 0x5d LD E,L       */ ldRegReg(regE, regL),
	/* 0x5e LD E,(HL)    */ ldRegMem(regE, indHL, 7),
	/* 0x5f LD E,A       */ ldRegReg(regE, regA),
	/* 0x60 LD H,B       */ ldRegReg(regH, regB),
	/* 0x61 LD H,C       */ ldRegReg(regH, regC),
	/* 0x62 LD H,D       */ ldRegReg(regH, regD),
	/* 0x63 LD H,E       */ ldRegReg(regH, regE),
	/* 0x64 LD H,H       */ ldRegReg(regH, regH),
	/* 0x65 LD H,L       */ ldRegReg(regH, regL),
	/* 0x66 LD H,(HL)    */ ldRegMem(regH, indHL, 7),
	/* 0x67 LD H,A       */ ldRegReg(regH, regA),
	/* 0x68 LD L,B       */ ldRegReg(regL, regB),
	/* 0x69 LD L,C       */ ldRegReg(regL, regC),
	/* 0x6a LD L,D       */ ldRegReg(regL, regD),
	/* 0x6b LD L,E       */ ldRegReg(regL, regE),
	/* 0x6c LD L,H       */ ldRegReg(regL, regH),
	/* 0x6d LD L,L       */ ldRegReg(regL, regL),
	/* 0x6e LD L,(HL)    */ ldRegMem(regL, indHL, 7),
	/* 0x6f LD L,A       */ ldRegReg(regL, regA),
	/* 0x70 LD (HL),B    */ ldMemReg(indHL, regB, 7),
	/* 0x71 LD (HL),C    */ ldMemReg(indHL, regC, 7),
	/* 0x72 LD (HL),D    */ ldMemReg(indHL, regD, 7),
	/* 0x73 LD (HL),E    */ ldMemReg(indHL, regE, 7),
	/* 0x74 LD (HL),H    */ ldMemReg(indHL, regH, 7),
	/* 0x75 LD (HL),L    */ ldMemReg(indHL, regL, 7),
	/* 0x76 HALT         */ halt(),
	/* 0x77 LD (HL),A    */ ldMemReg(indHL, regA, 7),
	/* 0x78 LD A,B       */ ldRegReg(regA, regB),
	/* 0x79 LD A,C       */ ldRegReg(regA, regC),
	/* 0x7a LD A,D       */ ldRegReg(regA, regD),
	/* 0x7b LD A,E       */ ldRegReg(regA, regE),
	/* 0x7c LD A,H       */ ldRegReg(regA, regH),
	/* 0x7d LD A,L       */ ldRegReg(regA, regL),
	/* 0x7e LD A,(HL)    */ ldRegMem(regA, indHL, 7),
	/* 0x7f LD A,A       */ ldRegReg(regA, regA),
	/* 0x80 ADD A,B      */ aluReg(aluAdd, regB),
	/* 0x81 ADD A,C      */ aluReg(aluAdd, regC),
	/* 0x82 ADD A,D      */ aluReg(aluAdd, regD),
	/* 0x83 ADD A,E      */ aluReg(aluAdd, regE),
	/* 0x84 ADD A,H      */ aluReg(aluAdd, regH),
	/* 0x85 ADD A,L      */ aluReg(aluAdd, regL),
	/* 0x86 ADD A,(HL)   */ aluMem(aluAdd, indHL, 7),
	/* 0x87 ADD A,A      */ aluReg(aluAdd, regA),
	/* 0x88 ADC A,B      */ aluReg(aluAdc, regB),
	/* 0x89 ADC A,C      */ aluReg(aluAdc, regC),
	/* 0x8a ADC A,D      */ aluReg(aluAdc, regD),
	/* 0x8b ADC A,E      */ aluReg(aluAdc, regE),
	/* 0x8c ADC A,H      */ aluReg(aluAdc, regH),
	/* 0x8d ADC A,L      */ aluReg(aluAdc, regL),
	/* 0x8e ADC A,(HL)   */ aluMem(aluAdc, indHL, 7),
	/* 0x8f ADC A,A      */ aluReg(aluAdc, regA),
	/* 0x90 SUB B        */ aluReg(aluSub, regB),
	/* 0x91 SUB C        */ aluReg(aluSub, regC),
	/* 0x92 SUB D        */ aluReg(aluSub, regD),
	/* 0x93 SUB E        */ aluReg(aluSub, regE),
	/* 0x94 SUB H        */ aluReg(aluSub, regH),
	/* 0x95 SUB L        */ aluReg(aluSub, regL),
	/* 0x96 SUB (HL)     */ aluMem(aluSub, indHL, 7),
	/* 0x97 SUB A        */ aluReg(aluSub, regA),
	/* 0x98 SBC A,B      */ aluReg(aluSbc, regB),
	/* 0x99 SBC A,C      */ aluReg(aluSbc, regC),
	/* 0x9a SBC A,D      */ aluReg(aluSbc, regD),
	/* 0x9b SBC A,E      */ aluReg(aluSbc, regE),
	/* 0x9c SBC A,H      */ aluReg(aluSbc, regH),
	/* 0x9d SBC A,L      */ aluReg(aluSbc, regL),
	/* 0x9e SBC A,(HL)   */ aluMem(aluSbc, indHL, 7),
	/* 0x9f SBC A,A      */ aluReg(aluSbc, regA),
	/* 0xa0 AND B        */ aluReg(aluAnd, regB),
	/* 0xa1 AND C        */ aluReg(aluAnd, regC),
	/* 0xa2 AND D        */ aluReg(aluAnd, regD),
	/* 0xa3 AND E        */ aluReg(aluAnd, regE),
	/* 0xa4 AND H        */ aluReg(aluAnd, regH),
	/* 0xa5 AND L        */ aluReg(aluAnd, regL),
	/* 0xa6 AND (HL)     */ aluMem(aluAnd, indHL, 7),
	/* 0xa7 AND A        */ aluReg(aluAnd, regA),
	/* 0xa8 XOR B        */ aluReg(aluXor, regB),
	/* 0xa9 XOR C        */ aluReg(aluXor, regC),
	/* 0xaa XOR D        */ aluReg(aluXor, regD),
	/* 0xab XOR E        */ aluReg(aluXor, regE),
	/* 0xac XOR H        */ aluReg(aluXor, regH),
	/* 0xad XOR L        */ aluReg(aluXor, regL),
	/* 0xae XOR (HL)     */ aluMem(aluXor, indHL, 7),
	/* 0xaf XOR A        */ aluReg(aluXor, regA),
	/* 0xb0 OR B         */ aluReg(aluOr, regB),
	/* 0xb1 OR C         */ aluReg(aluOr, regC),
	/* 0xb2 OR D         */ aluReg(aluOr, regD),
	/* 0xb3 OR E         */ aluReg(aluOr, regE),
	/* 0xb4 OR H         */ aluReg(aluOr, regH),
	/* 0xb5 OR L         */ aluReg(aluOr, regL),
	/* 0xb6 OR (HL)      */ aluMem(aluOr, indHL, 7),
	/* 0xb7 OR A         */ aluReg(aluOr, regA),
	/* 0xb8 CP B         */ aluReg(aluCp, regB),
	/* 0xb9 CP C         */ aluReg(aluCp, regC),
	/* 0xba CP D         */ aluReg(aluCp, regD),
	/* 0xbb CP E         */ aluReg(aluCp, regE),
	/* 0xbc CP H         */ aluReg(aluCp, regH),
	/* 0xbd CP L         */ aluReg(aluCp, regL),
	/* 0xbe CP (HL)      */ aluMem(aluCp, indHL, 7),
	/* 0xbf CP A         */ aluReg(aluCp, regA),
	/* 0xc0 RET NZ       */ retCond(condNZ),
	/* 0xc1 POP BC       */ pop16(regBC),
	/* 0xc2 JP NZ,nn     */ jp(condNZ),
	/* 0xc3 JP nn        */ jp(condAlways),
	/* 0xc4 CALL NZ,nn   */ call(condNZ),
	/* 0xc5 PUSH BC      */ push16(regBC),
	/* 0xc6 ADD A,n      */ aluImm(aluAdd),
	/* 0xc7 RST 00       */ rst(0x0000),
	/* 0xc8 RET Z        */ retCond(condZ),
	/* 0xc9 RET          */ ret(),
	/* 0xca JP Z,nn      */ jp(condZ),
	/* 0xcb prefix       */ prefixCB(),
	/* 0xcc CALL Z,nn    */ call(condZ),
	/* 0xcd CALL nn      */ call(condAlways),
	/* 0xce ADC A,n      */ aluImm(aluAdc),
	/* 0xcf RST 08       */ rst(0x0008),
	/* 0xd0 RET NC       */ retCond(condNC),
	/* 0xd1 POP DE       */ pop16(regDE),
	/* 0xd2 JP NC,nn     */ jp(condNC),
	/* 0xd3 OUT (n),A    */ outImm(),
	/* 0xd4 CALL NC,nn   */ call(condNC),
	/* 0xd5 PUSH DE      */ push16(regDE),
	/* 0xd6 SUB n        */ aluImm(aluSub),
	/* 0xd7 RST 10       */ rst(0x0010),
	/* 0xd8 RET C        */ retCond(condC),
	/* 0xd9 EXX          */ exx(),
	/* 0xda JP C,nn      */ jp(condC),
	/* 0xdb IN A,(n)     */ inImm(),
	/* 0xdc CALL C,nn    */ call(condC),
	/* 0xdd prefix       */ prefixDD(),
	/* 0xde SBC A,n      */ aluImm(aluSbc),
	/* 0xdf RST 18       */ rst(0x0018),
	/* 0xe0 RET PO       */ retCond(condPO),
	/* 0xe1 POP HL       */ pop16(regHL),
	/* 0xe2 JP PO,nn     */ jp(condPO),
	/* 0xe3 EX (SP),HL   */ exSP(regHL),
	/* 0xe4 CALL PO,nn   */ call(condPO),
	/* 0xe5 PUSH HL      */ push16(regHL),
	/* 0xe6 AND n        */ aluImm(aluAnd),
	/* 0xe7 RST 20       */ rst(0x0020),
	/* 0xe8 RET PE       */ retCond(condPE),
	/* 0xe9 JP (HL)      */ jpReg(regHL),
	/* 0xea JP PE,nn     */ jp(condPE),
	/* 0xeb EX DE,HL     */ exDEHL(),
	/* 0xec CALL PE,nn   */ call(condPE),
	/* 0xed prefix       */ prefixED(),
	/* 0xee XOR n        */ aluImm(aluXor),
	/* 0xef RST 28       */ rst(0x0028),
	/* 0xf0 RET P        */ retCond(condP),
	/* 0xf1 POP AF       */ pop16(regAF),
	/* 0xf2 JP P,nn      */ jp(condP),
	/* 0xf3 DI           */ di(),
	/* 0xf4 CALL P,nn    */ call(condP),
	/* 0xf5 PUSH AF      */ push16(regAF),
	/* 0xf6 OR n         */ aluImm(aluOr),
	/* 0xf7 RST 30       */ rst(0x0030),
	/* 0xf8 RET M        */ retCond(condM),
	/* 0xf9 LD SP,HL     */ ldSP(regHL),
	/* 0xfa JP M,nn      */ jp(condM),
	/* 0xfb EI           */ ei(),
	/* 0xfc CALL M,nn    */ call(condM),
	/* 0xfd prefix       */ prefixFD(),
	/* 0xfe CP n         */ aluImm(aluCp),
	/* 0xff RST 38       */ rst(0x0038),
}
