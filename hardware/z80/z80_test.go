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

package z80_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/test"
)

func TestReset(t *testing.T) {
	mc, _ := newTestCPU()

	test.Equate(t, mc.A, 0xff)
	test.Equate(t, mc.F.Value(), 0xff)
	test.Equate(t, mc.SP.Value(), 0xffff)
	test.Equate(t, mc.PC.Value(), 0x0000)
}

func TestStackSymmetry(t *testing.T) {
	mc, bus := newTestCPU()

	// PUSH BC / POP DE must round-trip any 16 bit value and restore SP
	for _, w := range []uint16{0x0000, 0x0001, 0x00ff, 0x0100, 0x1234, 0x7fff, 0x8000, 0xabcd, 0xffff} {
		poke(mc, bus, 0x8000, 0xc5, 0xd1) // PUSH BC; POP DE
		mc.SP.Load(0xdff0)
		mc.BC.Load(w)
		mc.DE.Load(0)

		step(t, mc)
		test.Equate(t, mc.SP.Value(), 0xdfee)

		step(t, mc)
		test.Equate(t, mc.DE.Value(), w)
		test.Equate(t, mc.SP.Value(), 0xdff0)
	}
}

func TestStackByteOrder(t *testing.T) {
	mc, bus := newTestCPU()

	// the stack grows downwards: high byte first, low byte below it
	poke(mc, bus, 0x8000, 0xc5) // PUSH BC
	mc.SP.Load(0xd000)
	mc.BC.Load(0x1234)
	step(t, mc)

	test.Equate(t, bus.mem[0xcfff], 0x12)
	test.Equate(t, bus.mem[0xcffe], 0x34)
}

func TestExchangeInvolutions(t *testing.T) {
	mc, bus := newTestCPU()

	mc.BC.Load(0x1111)
	mc.DE.Load(0x2222)
	mc.HL.Load(0x3333)
	mc.A = 0x44
	mc.F.Load(0x55)

	// EX AF,AF' twice then EXX twice must restore everything
	poke(mc, bus, 0x8000, 0x08, 0x08, 0xd9, 0xd9)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A, 0x44)
	test.Equate(t, mc.F.Value(), 0x55)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.BC.Value(), 0x1111)
	test.Equate(t, mc.DE.Value(), 0x2222)
	test.Equate(t, mc.HL.Value(), 0x3333)
}

func TestExDEHLLeavesShadows(t *testing.T) {
	mc, bus := newTestCPU()

	mc.DE.Load(0x1234)
	mc.HL.Load(0x5678)

	poke(mc, bus, 0x8000, 0xeb) // EX DE,HL
	step(t, mc)
	test.Equate(t, mc.DE.Value(), 0x5678)
	test.Equate(t, mc.HL.Value(), 0x1234)

	// the shadow bank must not have been involved: EXX brings in zeros
	poke(mc, bus, 0x8001, 0xd9) // EXX
	step(t, mc)
	test.Equate(t, mc.DE.Value(), 0x0000)
	test.Equate(t, mc.HL.Value(), 0x0000)
}

func TestDAA(t *testing.T) {
	mc, bus := newTestCPU()

	// 0x45 + 0x38 = 0x7d, adjusted to 0x83
	mc.A = 0x45
	poke(mc, bus, 0x8000, 0xc6, 0x38, 0x27) // ADD A,0x38; DAA
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A, 0x83)
	test.Equate(t, mc.F.Carry, false)
	test.Equate(t, mc.F.HalfCarry, true)

	// 0x9a adjusts to 0x00 with carry out. note the half-carry: the low
	// nibble correction 0xa+0x6 carries into bit 4
	mc.A = 0x9a
	mc.F.Load(0x00)
	poke(mc, bus, 0x8003, 0x27) // DAA
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	test.Equate(t, mc.F.Carry, true)
	test.Equate(t, mc.F.Zero, true)
	test.Equate(t, mc.F.HalfCarry, true)
	test.Equate(t, mc.F.ParityOverflow, true)

	// subtraction path: 0x42 - 0x13 = 0x2f, adjusted to 0x29
	mc.A = 0x42
	poke(mc, bus, 0x8004, 0xd6, 0x13, 0x27) // SUB 0x13; DAA
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A, 0x29)
	test.Equate(t, mc.F.Carry, false)
}

func TestADC16Flags(t *testing.T) {
	mc, bus := newTestCPU()

	mc.HL.Load(0x7fff)
	mc.DE.Load(0x0001)
	mc.F.Carry = false

	poke(mc, bus, 0x8000, 0xed, 0x5a) // ADC HL,DE
	cycles := step(t, mc)

	test.Equate(t, cycles, 15)
	test.Equate(t, mc.HL.Value(), 0x8000)
	test.Equate(t, mc.F.Sign, true)
	test.Equate(t, mc.F.Zero, false)
	test.Equate(t, mc.F.ParityOverflow, true)
	test.Equate(t, mc.F.HalfCarry, true)
	test.Equate(t, mc.F.Subtract, false)
	test.Equate(t, mc.F.Carry, false)
}

func TestADD16PreservesSZP(t *testing.T) {
	mc, bus := newTestCPU()

	mc.HL.Load(0x1000)
	mc.BC.Load(0x2000)
	mc.F.Load(0xc4) // S, Z and P/V set

	poke(mc, bus, 0x8000, 0x09) // ADD HL,BC
	step(t, mc)

	test.Equate(t, mc.HL.Value(), 0x3000)
	test.Equate(t, mc.F.Sign, true)
	test.Equate(t, mc.F.Zero, true)
	test.Equate(t, mc.F.ParityOverflow, true)
	test.Equate(t, mc.F.Carry, false)
}

func TestLDIR(t *testing.T) {
	mc, bus := newTestCPU()

	for i := 0; i < 16; i++ {
		bus.mem[0xc000+i] = uint8(i)
	}
	mc.HL.Load(0xc000)
	mc.DE.Load(0xd000)
	mc.BC.Load(0x0010)

	poke(mc, bus, 0x8000, 0xed, 0xb0) // LDIR
	for mc.BC.Value() != 0 {
		step(t, mc)
	}

	test.Equate(t, mc.PC.Value(), 0x8002)
	test.Equate(t, mc.HL.Value(), 0xc010)
	test.Equate(t, mc.DE.Value(), 0xd010)
	for i := 0; i < 16; i++ {
		test.Equate(t, bus.mem[0xd000+i], i)
	}
	test.Equate(t, mc.F.ParityOverflow, false)
	test.Equate(t, mc.F.Subtract, false)
	test.Equate(t, mc.F.HalfCarry, false)
}

func TestCPFlagsFromOperand(t *testing.T) {
	mc, bus := newTestCPU()

	// CP takes the undocumented bits from the operand, not the result.
	// 0x80 - 0x01: result = 0x7f (bits 3,5 set), operand 0x01 (bits 3,5 clear)
	mc.A = 0x80
	poke(mc, bus, 0x8000, 0xfe, 0x01) // CP 0x01
	step(t, mc)

	test.Equate(t, mc.A, 0x80) // CP does not store
	test.Equate(t, mc.F.Bit3, false)
	test.Equate(t, mc.F.Bit5, false)
	test.Equate(t, mc.F.Subtract, true)
	test.Equate(t, mc.F.ParityOverflow, true) // 0x80 - 0x01 overflows
}

func TestParity(t *testing.T) {
	mc, bus := newTestCPU()

	// AND: parity of the result
	mc.A = 0xff
	poke(mc, bus, 0x8000, 0xe6, 0x03) // AND 0x03
	step(t, mc)
	test.Equate(t, mc.F.ParityOverflow, true) // 0x03: two bits
	test.Equate(t, mc.F.HalfCarry, true)
	test.Equate(t, mc.F.Carry, false)

	mc.A = 0xff
	poke(mc, bus, 0x8002, 0xe6, 0x07) // AND 0x07
	step(t, mc)
	test.Equate(t, mc.F.ParityOverflow, false) // 0x07: three bits
}

func TestJRAlwaysReadsDisplacement(t *testing.T) {
	mc, bus := newTestCPU()

	// condition false: PC must still advance past the displacement byte
	mc.F.Zero = false
	poke(mc, bus, 0x8000, 0x28, 0x10) // JR Z,+0x10
	cycles := step(t, mc)
	test.Equate(t, cycles, 7)
	test.Equate(t, mc.PC.Value(), 0x8002)

	// condition true: branch is relative to the instruction end
	mc.F.Zero = true
	poke(mc, bus, 0x8002, 0x28, 0x10) // JR Z,+0x10
	cycles = step(t, mc)
	test.Equate(t, cycles, 12)
	test.Equate(t, mc.PC.Value(), 0x8014)

	// negative displacement
	poke(mc, bus, 0x8014, 0x18, 0xfe) // JR -2 (tight loop)
	step(t, mc)
	test.Equate(t, mc.PC.Value(), 0x8014)
}

func TestDJNZ(t *testing.T) {
	mc, bus := newTestCPU()

	mc.BC.SetHi(0x03)
	poke(mc, bus, 0x8000, 0x10, 0xfe) // DJNZ -2
	cycles := step(t, mc)
	test.Equate(t, cycles, 13)
	test.Equate(t, mc.PC.Value(), 0x8000)
	test.Equate(t, mc.BC.Hi(), 0x02)

	step(t, mc)
	cycles = step(t, mc)
	test.Equate(t, cycles, 8)
	test.Equate(t, mc.PC.Value(), 0x8002)
	test.Equate(t, mc.BC.Hi(), 0x00)
}

func TestEIDelay(t *testing.T) {
	mc, bus := newTestCPU()
	mc.InterruptMode = 1

	// the interrupt must not be serviced until the instruction after EI
	// has completed
	poke(mc, bus, 0x8000, 0xfb, 0x00) // EI; NOP
	mc.RaiseInterrupt()

	step(t, mc)
	test.Equate(t, mc.PC.Value(), 0x8001)

	step(t, mc)
	test.Equate(t, mc.PC.Value(), 0x0038)
}

func TestInterruptModeOne(t *testing.T) {
	mc, bus := newTestCPU()
	mc.InterruptMode = 1
	mc.SP.Load(0xd000)

	poke(mc, bus, 0x8000, 0xfb, 0x00, 0x00) // EI; NOP; NOP
	step(t, mc)
	mc.RaiseInterrupt()
	step(t, mc)

	// return address is the instruction after the NOP at 0x8001
	test.Equate(t, mc.PC.Value(), 0x0038)
	test.Equate(t, bus.mem[0xcfff], 0x80)
	test.Equate(t, bus.mem[0xcffe], 0x02)

	// a second interrupt is not serviced: the enables were cleared
	mc.RaiseInterrupt()
	step(t, mc)
	test.Equate(t, mc.PC.Value(), 0x0039)
}

func TestInterruptModeTwo(t *testing.T) {
	mc, bus := newTestCPU()
	mc.SP.Load(0xd000)
	mc.I = 0xc1

	// vector table entry at (I<<8 | 0xff) & 0xfffe = 0xc1fe
	bus.mem[0xc1fe] = 0x34
	bus.mem[0xc1ff] = 0x12

	poke(mc, bus, 0x8000, 0xed, 0x5e, 0xfb, 0x00) // IM 2; EI; NOP
	step(t, mc)
	step(t, mc)
	mc.RaiseInterrupt()
	step(t, mc)

	test.Equate(t, mc.PC.Value(), 0x1234)
}

func TestHalt(t *testing.T) {
	mc, bus := newTestCPU()
	mc.InterruptMode = 1

	poke(mc, bus, 0x8000, 0xfb, 0x76) // EI; HALT
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.Halted(), true)

	// the halted CPU idles
	r := mc.R
	cycles := step(t, mc)
	test.Equate(t, cycles, 4)
	test.Equate(t, mc.Halted(), true)
	test.Equate(t, mc.R, (r&0x80)|((r+1)&0x7f))

	// an interrupt wakes it. the pushed return address is the instruction
	// after the HALT
	mc.SP.Load(0xd000)
	mc.RaiseInterrupt()
	step(t, mc)
	test.Equate(t, mc.Halted(), false)
	test.Equate(t, mc.PC.Value(), 0x0038)
	test.Equate(t, bus.mem[0xcfff], 0x80)
	test.Equate(t, bus.mem[0xcffe], 0x02)
}

func TestRefreshRegister(t *testing.T) {
	mc, bus := newTestCPU()

	// R counts opcode fetches, preserving bit 7. a CB instruction is two
	// fetches
	mc.R = 0x7f
	poke(mc, bus, 0x8000, 0x00) // NOP
	step(t, mc)
	test.Equate(t, mc.R, 0x00)

	mc.R = 0xfe
	poke(mc, bus, 0x8001, 0xcb, 0x00) // RLC B
	step(t, mc)
	test.Equate(t, mc.R, 0x80)
}

func TestNEG(t *testing.T) {
	mc, bus := newTestCPU()

	mc.A = 0x01
	poke(mc, bus, 0x8000, 0xed, 0x44) // NEG
	step(t, mc)
	test.Equate(t, mc.A, 0xff)
	test.Equate(t, mc.F.Sign, true)
	test.Equate(t, mc.F.Carry, true)
	test.Equate(t, mc.F.Subtract, true)

	// 0x80 is the overflow case
	mc.A = 0x80
	poke(mc, bus, 0x8002, 0xed, 0x44)
	step(t, mc)
	test.Equate(t, mc.A, 0x80)
	test.Equate(t, mc.F.ParityOverflow, true)

	// 0x00 leaves carry clear
	mc.A = 0x00
	poke(mc, bus, 0x8004, 0xed, 0x44)
	step(t, mc)
	test.Equate(t, mc.A, 0x00)
	test.Equate(t, mc.F.Carry, false)
	test.Equate(t, mc.F.Zero, true)
}

func TestPCAdvance(t *testing.T) {
	mc, bus := newTestCPU()

	// PC must advance by the documented instruction length
	instructions := []struct {
		program []uint8
		length  uint16
	}{
		{[]uint8{0x00}, 1},                   // NOP
		{[]uint8{0x3e, 0x12}, 2},             // LD A,n
		{[]uint8{0x01, 0x34, 0x12}, 3},       // LD BC,nn
		{[]uint8{0x36, 0x56}, 2},             // LD (HL),n
		{[]uint8{0xcb, 0x27}, 2},             // SLA A
		{[]uint8{0xed, 0x44}, 2},             // NEG
		{[]uint8{0xdd, 0x23}, 2},             // INC IX
		{[]uint8{0xdd, 0x34, 0x01}, 3},       // INC (IX+1)
		{[]uint8{0xdd, 0x36, 0x01, 0x99}, 4}, // LD (IX+1),n
		{[]uint8{0xdd, 0xcb, 0x01, 0xc6}, 4}, // SET 0,(IX+1)
		{[]uint8{0x32, 0x00, 0xc0}, 3},       // LD (nn),A
	}

	for _, ins := range instructions {
		mc.HL.Load(0xc100)
		mc.IX.Load(0xc200)
		poke(mc, bus, 0x8000, ins.program...)
		step(t, mc)
		test.Equate(t, mc.PC.Value(), 0x8000+ins.length)
	}
}

func TestUnimplementedOpcodeFault(t *testing.T) {
	mc, bus := newTestCPU()

	// an undefined ED row is a fault, not a silent nop
	poke(mc, bus, 0x8000, 0xed, 0x00)
	_, err := mc.Step()
	test.ExpectedFailure(t, err)
}

func TestIllegalPrefixFault(t *testing.T) {
	mc, bus := newTestCPU()

	poke(mc, bus, 0x8000, 0xdd, 0xdd, 0x00)
	_, err := mc.Step()
	test.ExpectedFailure(t, err)

	poke(mc, bus, 0x8003, 0xfd, 0xed, 0x44)
	_, err = mc.Step()
	test.ExpectedFailure(t, err)
}
