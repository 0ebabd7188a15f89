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

// the ED block instructions. each performs one iteration; the repeating
// forms rewind PC by two so that the instruction is fetched again on the
// next step, until the termination condition is met. interrupts can
// therefore be serviced between iterations, as on real hardware.

// blockLD is LDI/LDD: copy (HL) to (DE), step both pointers by delta,
// decrement BC. the undocumented bits come from bits 3 and 1 of the copied
// byte plus the accumulator.
func (mc *CPU) blockLD(delta uint16) {
	v := mc.read(mc.HL.Value())
	mc.write(mc.DE.Value(), v)

	mc.HL.Add(delta)
	mc.DE.Add(delta)
	mc.BC.Add(0xffff)

	n := v + mc.A
	mc.F.HalfCarry = false
	mc.F.Subtract = false
	mc.F.ParityOverflow = mc.BC.Value() != 0
	mc.F.Bit3 = n&0x08 == 0x08
	mc.F.Bit5 = n&0x02 == 0x02
}

// blockLDRepeat is LDIR/LDDR.
func (mc *CPU) blockLDRepeat(delta uint16) int {
	mc.blockLD(delta)
	if mc.BC.Value() != 0 {
		mc.PC.Add(0xfffe)
		return 21
	}
	return 16
}

// blockCP is CPI/CPD: compare A with (HL), step HL by delta, decrement BC.
// the carry flag is preserved. the undocumented bits come from the
// comparison result less the half-carry, shifted per bit.
func (mc *CPU) blockCP(delta uint16) {
	v := mc.read(mc.HL.Value())
	a := mc.A
	r := a - v

	mc.HL.Add(delta)
	mc.BC.Add(0xffff)

	mc.F.Sign = r&0x80 == 0x80
	mc.F.Zero = r == 0
	mc.F.HalfCarry = (a&0x0f-v&0x0f)&0x10 == 0x10
	mc.F.ParityOverflow = mc.BC.Value() != 0
	mc.F.Subtract = true

	n := r
	if mc.F.HalfCarry {
		n--
	}
	mc.F.Bit3 = n&0x08 == 0x08
	mc.F.Bit5 = n&0x02 == 0x02
}

// blockCPRepeat is CPIR/CPDR. repeats until BC is exhausted or a match is
// found.
func (mc *CPU) blockCPRepeat(delta uint16) int {
	mc.blockCP(delta)
	if mc.BC.Value() != 0 && !mc.F.Zero {
		mc.PC.Add(0xfffe)
		return 21
	}
	return 16
}

// blockIN is INI/IND: read from port C into (HL), step HL by delta,
// decrement B.
func (mc *CPU) blockIN(delta uint16) {
	v := mc.portIn(mc.BC.Lo())
	mc.write(mc.HL.Value(), v)

	b := mc.BC.Hi() - 1
	mc.BC.SetHi(b)
	mc.HL.Add(delta)

	t := uint16(v) + uint16(mc.BC.Lo()+uint8(delta))
	mc.F.Sign = b&0x80 == 0x80
	mc.F.Zero = b == 0
	mc.F.Subtract = v&0x80 == 0x80
	mc.F.HalfCarry = t > 0xff
	mc.F.Carry = t > 0xff
	mc.F.ParityOverflow = parityTable[uint8(t)&0x07^b]
	mc.F.SetResultBits(b)
}

// blockINRepeat is INIR/INDR.
func (mc *CPU) blockINRepeat(delta uint16) int {
	mc.blockIN(delta)
	if mc.BC.Hi() != 0 {
		mc.PC.Add(0xfffe)
		return 21
	}
	return 16
}

// blockOUT is OUTI/OUTD: write (HL) to port C, step HL by delta, decrement
// B. note that B is decremented before it appears on the address bus.
func (mc *CPU) blockOUT(delta uint16) {
	v := mc.read(mc.HL.Value())

	b := mc.BC.Hi() - 1
	mc.BC.SetHi(b)
	mc.portOut(mc.BC.Lo(), v)
	mc.HL.Add(delta)

	t := uint16(v) + uint16(mc.HL.Lo())
	mc.F.Sign = b&0x80 == 0x80
	mc.F.Zero = b == 0
	mc.F.Subtract = v&0x80 == 0x80
	mc.F.HalfCarry = t > 0xff
	mc.F.Carry = t > 0xff
	mc.F.ParityOverflow = parityTable[uint8(t)&0x07^b]
	mc.F.SetResultBits(b)
}

// blockOUTRepeat is OTIR/OTDR.
func (mc *CPU) blockOUTRepeat(delta uint16) int {
	mc.blockOUT(delta)
	if mc.BC.Hi() != 0 {
		mc.PC.Add(0xfffe)
		return 21
	}
	return 16
}
