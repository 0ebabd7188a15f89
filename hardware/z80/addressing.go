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

// addressing names the source or destination of a memory operand.
type addressing int

const (
	// the operand is the next byte (or byte pair) in the instruction stream
	immediate addressing = iota

	// the operand address is the next byte pair in the instruction stream
	indirect

	// register-indirect
	indBC
	indDE
	indHL

	// index register plus a signed displacement read from the instruction
	// stream
	ixPlus
	iyPlus

	// index register plus the displacement prefetched by the DDCB/FDCB
	// prefix. PC is not advanced
	ixPlusPrev
	iyPlusPrev
)

// address resolves an addressing mode to the operand address. modes that
// carry a displacement or absolute address consume instruction stream bytes
// in the process; resolve the address exactly once per instruction.
func (mc *CPU) address(mode addressing) uint16 {
	switch mode {
	case indirect:
		return mc.readPC16()
	case indBC:
		return mc.BC.Value()
	case indDE:
		return mc.DE.Value()
	case indHL:
		return mc.HL.Value()
	case ixPlus:
		return mc.IX.Value() + uint16(int8(mc.readPC()))
	case iyPlus:
		return mc.IY.Value() + uint16(int8(mc.readPC()))
	case ixPlusPrev:
		return mc.IX.Value() + uint16(int8(mc.prevImmediate))
	case iyPlusPrev:
		return mc.IY.Value() + uint16(int8(mc.prevImmediate))
	}
	panic("address: addressing mode has no address")
}

// readValue8 reads the 8 bit operand for the addressing mode.
func (mc *CPU) readValue8(mode addressing) uint8 {
	if mode == immediate {
		return mc.readPC()
	}
	return mc.read(mc.address(mode))
}

// condition names a branch condition in an instruction table entry.
type condition int

const (
	condAlways condition = iota
	condZ
	condNZ
	condC
	condNC
	condPO
	condPE
	condP
	condM
)

// checkCondition evaluates a branch condition against the flag register.
func (mc *CPU) checkCondition(c condition) bool {
	switch c {
	case condAlways:
		return true
	case condZ:
		return mc.F.Zero
	case condNZ:
		return !mc.F.Zero
	case condC:
		return mc.F.Carry
	case condNC:
		return !mc.F.Carry
	case condPO:
		return !mc.F.ParityOverflow
	case condPE:
		return mc.F.ParityOverflow
	case condP:
		return !mc.F.Sign
	case condM:
		return mc.F.Sign
	}
	return false
}
