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

// cbOpcodes is the dispatch table for the CB prefix: rotates, shifts and
// bit operations. the table is fully regular, eight columns of registers
// (B C D E H L (HL) A) against thirty-two operation rows.
var cbOpcodes = [256]instruction{
	/* 0x00 RLC B        */ shiftReg(shiftRLC, regB),
	/* 0x01 RLC C        */ shiftReg(shiftRLC, regC),
	/* 0x02 RLC D        */ shiftReg(shiftRLC, regD),
	/* 0x03 RLC E        */ shiftReg(shiftRLC, regE),
	/* 0x04 RLC H        */ shiftReg(shiftRLC, regH),
	/* 0x05 RLC L        */ shiftReg(shiftRLC, regL),
	/* 0x06 RLC (HL)     */ shiftMem(shiftRLC),
	/* 0x07 RLC A        */ shiftReg(shiftRLC, regA),
	/* 0x08 RRC B        */ shiftReg(shiftRRC, regB),
	/* 0x09 RRC C        */ shiftReg(shiftRRC, regC),
	/* 0x0a RRC D        */ shiftReg(shiftRRC, regD),
	/* 0x0b RRC E        */ shiftReg(shiftRRC, regE),
	/* 0x0c RRC H        */ shiftReg(shiftRRC, regH),
	/* 0x0d RRC L        */ shiftReg(shiftRRC, regL),
	/* 0x0e RRC (HL)     */ shiftMem(shiftRRC),
	/* 0x0f RRC A        */ shiftReg(shiftRRC, regA),
	/* 0x10 RL B         */ shiftReg(shiftRL, regB),
	/* 0x11 RL C         */ shiftReg(shiftRL, regC),
	/* 0x12 RL D         */ shiftReg(shiftRL, regD),
	/* 0x13 RL E         */ shiftReg(shiftRL, regE),
	/* 0x14 RL H         */ shiftReg(shiftRL, regH),
	/* 0x15 RL L         */ shiftReg(shiftRL, regL),
	/* 0x16 RL (HL)      */ shiftMem(shiftRL),
	/* 0x17 RL A         */ shiftReg(shiftRL, regA),
	/* 0x18 RR B         */ shiftReg(shiftRR, regB),
	/* 0x19 RR C         */ shiftReg(shiftRR, regC),
	/* 0x1a RR D         */ shiftReg(shiftRR, regD),
	/* 0x1b RR E         */ shiftReg(shiftRR, regE),
	/* 0x1c RR H         */ shiftReg(shiftRR, regH),
	/* 0x1d RR L         */ shiftReg(shiftRR, regL),
	/* 0x1e RR (HL)      */ shiftMem(shiftRR),
	/* 0x1f RR A         */ shiftReg(shiftRR, regA),
	/* 0x20 SLA B        */ shiftReg(shiftSLA, regB),
	/* 0x21 SLA C        */ shiftReg(shiftSLA, regC),
	/* 0x22 SLA D        */ shiftReg(shiftSLA, regD),
	/* 0x23 SLA E        */ shiftReg(shiftSLA, regE),
	/* 0x24 SLA H        */ shiftReg(shiftSLA, regH),
	/* 0x25 SLA L        */ shiftReg(shiftSLA, regL),
	/* 0x26 SLA (HL)     */ shiftMem(shiftSLA),
	/* 0x27 SLA A        */ shiftReg(shiftSLA, regA),
	/* 0x28 SRA B        */ shiftReg(shiftSRA, regB),
	/* 0x29 SRA C        */ shiftReg(shiftSRA, regC),
	/* 0x2a SRA D        */ shiftReg(shiftSRA, regD),
	/* 0x2b SRA E        */ shiftReg(shiftSRA, regE),
	/* 0x2c SRA H        */ shiftReg(shiftSRA, regH),
	/* 0x2d SRA L        */ shiftReg(shiftSRA, regL),
	/* 0x2e SRA (HL)     */ shiftMem(shiftSRA),
	/* 0x2f SRA A        */ shiftReg(shiftSRA, regA),
	/* 0x30 SLL B        */ shiftReg(shiftSLL, regB),
	/* 0x31 SLL C        */ shiftReg(shiftSLL, regC),
	/* 0x32 SLL D        */ shiftReg(shiftSLL, regD),
	/* 0x33 SLL E        */ shiftReg(shiftSLL, regE),
	/* 0x34 SLL H        */ shiftReg(shiftSLL, regH),
	/* 0x35 SLL L        */ shiftReg(shiftSLL, regL),
	/* 0x36 SLL (HL)     */ shiftMem(shiftSLL),
	/* 0x37 SLL A        */ shiftReg(shiftSLL, regA),
	/* 0x38 SRL B        */ shiftReg(shiftSRL, regB),
	/* 0x39 SRL C        */ shiftReg(shiftSRL, regC),
	/* 0x3a SRL D        */ shiftReg(shiftSRL, regD),
	/* 0x3b SRL E        */ shiftReg(shiftSRL, regE),
	/* 0x3c SRL H        */ shiftReg(shiftSRL, regH),
	/* 0x3d SRL L        */ shiftReg(shiftSRL, regL),
	/* 0x3e SRL (HL)     */ shiftMem(shiftSRL),
	/* 0x3f SRL A        */ shiftReg(shiftSRL, regA),
	/* 0x40 BIT 0,B      */ bitReg(0, regB),
	/* 0x41 BIT 0,C      */ bitReg(0, regC),
	/* 0x42 BIT 0,D      */ bitReg(0, regD),
	/* 0x43 BIT 0,E      */ bitReg(0, regE),
	/* 0x44 BIT 0,H      */ bitReg(0, regH),
	/* 0x45 BIT 0,L      */ bitReg(0, regL),
	/* 0x46 BIT 0,(HL)   */ bitMem(0),
	/* 0x47 BIT 0,A      */ bitReg(0, regA),
	/* 0x48 BIT 1,B      */ bitReg(1, regB),
	/* 0x49 BIT 1,C      */ bitReg(1, regC),
	/* 0x4a BIT 1,D      */ bitReg(1, regD),
	/* 0x4b BIT 1,E      */ bitReg(1, regE),
	/* 0x4c BIT 1,H      */ bitReg(1, regH),
	/* 0x4d BIT 1,L      */ bitReg(1, regL),
	/* 0x4e BIT 1,(HL)   */ bitMem(1),
	/* 0x4f BIT 1,A      */ bitReg(1, regA),
	/* 0x50 BIT 2,B      */ bitReg(2, regB),
	/* 0x51 BIT 2,C      */ bitReg(2, regC),
	/* 0x52 BIT 2,D      */ bitReg(2, regD),
	/* 0x53 BIT 2,E      */ bitReg(2, regE),
	/* 0x54 BIT 2,H      */ bitReg(2, regH),
	/* 0x55 BIT 2,L      */ bitReg(2, regL),
	/* 0x56 BIT 2,(HL)   */ bitMem(2),
	/* 0x57 BIT 2,A      */ bitReg(2, regA),
	/* 0x58 BIT 3,B      */ bitReg(3, regB),
	/* 0x59 BIT 3,C      */ bitReg(3, regC),
	/* 0x5a BIT 3,D      */ bitReg(3, regD),
	/* 0x5b BIT 3,E      */ bitReg(3, regE),
	/* 0x5c BIT 3,H      */ bitReg(3, regH),
	/* 0x5d BIT 3,L      */ bitReg(3, regL),
	/* 0x5e BIT 3,(HL)   */ bitMem(3),
	/* 0x5f BIT 3,A      */ bitReg(3, regA),
	/* 0x60 BIT 4,B      */ bitReg(4, regB),
	/* 0x61 BIT 4,C      */ bitReg(4, regC),
	/* 0x62 BIT 4,D      */ bitReg(4, regD),
	/* 0x63 BIT 4,E      */ bitReg(4, regE),
	/* 0x64 BIT 4,H      */ bitReg(4, regH),
	/* 0x65 BIT 4,L      */ bitReg(4, regL),
	/* 0x66 BIT 4,(HL)   */ bitMem(4),
	/* 0x67 BIT 4,A      */ bitReg(4, regA),
	/* 0x68 BIT 5,B      */ bitReg(5, regB),
	/* 0x69 BIT 5,C      */ bitReg(5, regC),
	/* 0x6a BIT 5,D      */ bitReg(5, regD),
	/* 0x6b BIT 5,E      */ bitReg(5, regE),
	/* 0x6c BIT 5,H      */ bitReg(5, regH),
	/* 0x6d BIT 5,L      */ bitReg(5, regL),
	/* 0x6e BIT 5,(HL)   */ bitMem(5),
	/* 0x6f BIT 5,A      */ bitReg(5, regA),
	/* 0x70 BIT 6,B      */ bitReg(6, regB),
	/* 0x71 BIT 6,C      */ bitReg(6, regC),
	/* 0x72 BIT 6,D      */ bitReg(6, regD),
	/* 0x73 BIT 6,E      */ bitReg(6, regE),
	/* 0x74 BIT 6,H      */ bitReg(6, regH),
	/* 0x75 BIT 6,L      */ bitReg(6, regL),
	/* 0x76 BIT 6,(HL)   */ bitMem(6),
	/* 0x77 BIT 6,A      */ bitReg(6, regA),
	/* 0x78 BIT 7,B      */ bitReg(7, regB),
	/* 0x79 BIT 7,C      */ bitReg(7, regC),
	/* 0x7a BIT 7,D      */ bitReg(7, regD),
	/* 0x7b BIT 7,E      */ bitReg(7, regE),
	/* 0x7c BIT 7,H      */ bitReg(7, regH),
	/* 0x7d BIT 7,L      */ bitReg(7, regL),
	/* 0x7e BIT 7,(HL)   */ bitMem(7),
	/* 0x7f BIT 7,A      */ bitReg(7, regA),
	/* 0x80 RES 0,B      */ resReg(0, regB),
	/* 0x81 RES 0,C      */ resReg(0, regC),
	/* 0x82 RES 0,D      */ resReg(0, regD),
	/* 0x83 RES 0,E      */ resReg(0, regE),
	/* 0x84 RES 0,H      */ resReg(0, regH),
	/* 0x85 RES 0,L      */ resReg(0, regL),
	/* 0x86 RES 0,(HL)   */ resMem(0),
	/* 0x87 RES 0,A      */ resReg(0, regA),
	/* 0x88 RES 1,B      */ resReg(1, regB),
	/* 0x89 RES 1,C      */ resReg(1, regC),
	/* 0x8a RES 1,D      */ resReg(1, regD),
	/* 0x8b RES 1,E      */ resReg(1, regE),
	/* 0x8c RES 1,H      */ resReg(1, regH),
	/* 0x8d RES 1,L      */ resReg(1, regL),
	/* 0x8e RES 1,(HL)   */ resMem(1),
	/* 0x8f RES 1,A      */ resReg(1, regA),
	/* 0x90 RES 2,B      */ resReg(2, regB),
	/* 0x91 RES 2,C      */ resReg(2, regC),
	/* 0x92 RES 2,D      */ resReg(2, regD),
	/* 0x93 RES 2,E      */ resReg(2, regE),
	/* 0x94 RES 2,H      */ resReg(2, regH),
	/* 0x95 RES 2,L      */ resReg(2, regL),
	/* 0x96 RES 2,(HL)   */ resMem(2),
	/* 0x97 RES 2,A      */ resReg(2, regA),
	/* 0x98 RES 3,B      */ resReg(3, regB),
	/* 0x99 RES 3,C      */ resReg(3, regC),
	/* 0x9a RES 3,D      */ resReg(3, regD),
	/* 0x9b RES 3,E      */ resReg(3, regE),
	/* 0x9c RES 3,H      */ resReg(3, regH),
	/* 0x9d RES 3,L      */ resReg(3, regL),
	/* 0x9e RES 3,(HL)   */ resMem(3),
	/* 0x9f RES 3,A      */ resReg(3, regA),
	/* 0xa0 RES 4,B      */ resReg(4, regB),
	/* 0xa1 RES 4,C      */ resReg(4, regC),
	/* 0xa2 RES 4,D      */ resReg(4, regD),
	/* 0xa3 RES 4,E      */ resReg(4, regE),
	/* 0xa4 RES 4,H      */ resReg(4, regH),
	/* 0xa5 RES 4,L      */ resReg(4, regL),
	/* 0xa6 RES 4,(HL)   */ resMem(4),
	/* 0xa7 RES 4,A      */ resReg(4, regA),
	/* 0xa8 RES 5,B      */ resReg(5, regB),
	/* 0xa9 RES 5,C      */ resReg(5, regC),
	/* 0xaa RES 5,D      */ resReg(5, regD),
	/* 0xab RES 5,E      */ resReg(5, regE),
	/* 0xac RES 5,H      */ resReg(5, regH),
	/* 0xad RES 5,L      */ resReg(5, regL),
	/* 0xae RES 5,(HL)   */ resMem(5),
	/* 0xaf RES 5,A      */ resReg(5, regA),
	/* 0xb0 RES 6,B      */ resReg(6, regB),
	/* 0xb1 RES 6,C      */ resReg(6, regC),
	/* 0xb2 RES 6,D      */ resReg(6, regD),
	/* 0xb3 RES 6,E      */ resReg(6, regE),
	/* 0xb4 RES 6,H      */ resReg(6, regH),
	/* 0xb5 RES 6,L      */ resReg(6, regL),
	/* 0xb6 RES 6,(HL)   */ resMem(6),
	/* 0xb7 RES 6,A      */ resReg(6, regA),
	/* 0xb8 RES 7,B      */ resReg(7, regB),
	/* 0xb9 RES 7,C      */ resReg(7, regC),
	/* 0xba RES 7,D      */ resReg(7, regD),
	/* 0xbb RES 7,E      */ resReg(7, regE),
	/* 0xbc RES 7,H      */ resReg(7, regH),
	/* 0xbd RES 7,L      */ resReg(7, regL),
	/* 0xbe RES 7,(HL)   */ resMem(7),
	/* 0xbf RES 7,A      */ resReg(7, regA),
	/* 0xc0 SET 0,B      */ setReg(0, regB),
	/* 0xc1 SET 0,C      */ setReg(0, regC),
	/* 0xc2 SET 0,D      */ setReg(0, regD),
	/* 0xc3 SET 0,E      */ setReg(0, regE),
	/* 0xc4 SET 0,H      */ setReg(0, regH),
	/* 0xc5 SET 0,L      */ setReg(0, regL),
	/* 0xc6 SET 0,(HL)   */ setMem(0),
	/* 0xc7 SET 0,A      */ setReg(0, regA),
	/* 0xc8 SET 1,B      */ setReg(1, regB),
	/* 0xc9 SET 1,C      */ setReg(1, regC),
	/* 0xca SET 1,D      */ setReg(1, regD),
	/* 0xcb SET 1,E      */ setReg(1, regE),
	/* 0xcc SET 1,H      */ setReg(1, regH),
	/* 0xcd SET 1,L      */ setReg(1, regL),
	/* 0xce SET 1,(HL)   */ setMem(1),
	/* 0xcf SET 1,A      */ setReg(1, regA),
	/* 0xd0 SET 2,B      */ setReg(2, regB),
	/* 0xd1 SET 2,C      */ setReg(2, regC),
	/* 0xd2 SET 2,D      */ setReg(2, regD),
	/* 0xd3 SET 2,E      */ setReg(2, regE),
	/* 0xd4 SET 2,H      */ setReg(2, regH),
	/* 0xd5 SET 2,L      */ setReg(2, regL),
	/* 0xd6 SET 2,(HL)   */ setMem(2),
	/* 0xd7 SET 2,A      */ setReg(2, regA),
	/* 0xd8 SET 3,B      */ setReg(3, regB),
	/* 0xd9 SET 3,C      */ setReg(3, regC),
	/* 0xda SET 3,D      */ setReg(3, regD),
	/* 0xdb SET 3,E      */ setReg(3, regE),
	/* 0xdc SET 3,H      */ setReg(3, regH),
	/* 0xdd SET 3,L      */ setReg(3, regL),
	/* 0xde SET 3,(HL)   */ setMem(3),
	/* 0xdf SET 3,A      */ setReg(3, regA),
	/* 0xe0 SET 4,B      */ setReg(4, regB),
	/* 0xe1 SET 4,C      */ setReg(4, regC),
	/* 0xe2 SET 4,D      */ setReg(4, regD),
	/* 0xe3 SET 4,E      */ setReg(4, regE),
	/* 0xe4 SET 4,H      */ setReg(4, regH),
	/* 0xe5 SET 4,L      */ setReg(4, regL),
	/* 0xe6 SET 4,(HL)   */ setMem(4),
	/* 0xe7 SET 4,A      */ setReg(4, regA),
	/* 0xe8 SET 5,B      */ setReg(5, regB),
	/* 0xe9 SET 5,C      */ setReg(5, regC),
	/* 0xea SET 5,D      */ setReg(5, regD),
	/* 0xeb SET 5,E      */ setReg(5, regE),
	/* 0xec SET 5,H      */ setReg(5, regH),
	/* 0xed SET 5,L      */ setReg(5, regL),
	/* 0xee SET 5,(HL)   */ setMem(5),
	/* 0xef SET 5,A      */ setReg(5, regA),
	/* 0xf0 SET 6,B      */ setReg(6, regB),
	/* 0xf1 SET 6,C      */ setReg(6, regC),
	/* 0xf2 SET 6,D      */ setReg(6, regD),
	/* 0xf3 SET 6,E      */ setReg(6, regE),
	/* 0xf4 SET 6,H      */ setReg(6, regH),
	/* 0xf5 SET 6,L      */ setReg(6, regL),
	/* 0xf6 SET 6,(HL)   */ setMem(6),
	/* 0xf7 SET 6,A      */ setReg(6, regA),
	/* 0xf8 SET 7,B      */ setReg(7, regB),
	/* 0xf9 SET 7,C      */ setReg(7, regC),
	/* 0xfa SET 7,D      */ setReg(7, regD),
	/* 0xfb SET 7,E      */ setReg(7, regE),
	/* 0xfc SET 7,H      */ setReg(7, regH),
	/* 0xfd SET 7,L      */ setReg(7, regL),
	/* 0xfe SET 7,(HL)   */ setMem(7),
	/* 0xff SET 7,A      */ setReg(7, regA),
}
