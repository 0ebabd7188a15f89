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

import (
	"fmt"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/z80/registers"
)

// error patterns returned by Step(). all of them indicate a programmer
// fault, either in the emulation or in the guest program.
const (
	UnimplementedInstruction = "z80: unimplemented instruction (%s%02x) at (%#04x)"
	IllegalPrefix            = "z80: illegal prefix sequence (%02x %02x) at (%#04x)"
	UnsupportedInterruptMode = "z80: unsupported interrupt mode (%d)"
)

// ReadHandler is how the CPU reads a byte from the address space. Supplied
// by the host with SetBusHandlers().
type ReadHandler func(address uint16) uint8

// WriteHandler is how the CPU writes a byte to the address space.
type WriteHandler func(address uint16, value uint8)

// PortInHandler is how the CPU reads a byte from an I/O port.
type PortInHandler func(port uint8) uint8

// PortOutHandler is how the CPU writes a byte to an I/O port.
type PortOutHandler func(port uint8, value uint8)

// CPU implements the Zilog Z80 as found in the Sega Master System. Register
// logic is implemented by the types in the registers sub-package.
type CPU struct {
	A  uint8
	F  registers.Flags
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair
	IX registers.Pair
	IY registers.Pair
	SP registers.Pair
	PC registers.Pair
	I  uint8
	R  uint8

	// the shadow bank, swapped wholesale by EX AF,AF' and EXX
	altAF uint16
	altBC uint16
	altDE uint16
	altHL uint16

	// InterruptMode is the mode selected by the IM instruction. only modes
	// 1 and 2 can be serviced
	InterruptMode int

	// interruptsEnabled is the master enable (IFF). EI does not enable
	// interrupts immediately: it sets nextInterruptsEnabled, which is
	// committed at the start of the following Step(). the instruction after
	// an EI is therefore the first that can be preempted
	interruptsEnabled     bool
	nextInterruptsEnabled bool

	// an interrupt has been requested with RaiseInterrupt() and has not yet
	// been serviced
	interruptPending bool

	// the CPU has executed a HALT and is idling until an interrupt
	halted bool

	// the displacement byte prefetched by the DDCB/FDCB prefixes. those
	// sequences place the displacement before the sub-opcode so the operand
	// must be read before dispatch
	prevImmediate uint8

	read    ReadHandler
	write   WriteHandler
	portIn  PortInHandler
	portOut PortOutHandler

	// a fault is raised by an instruction handler when it cannot continue.
	// checked at the end of Step()
	fault error
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// returned CPU has been reset but has no bus attached.
func NewCPU() *CPU {
	mc := &CPU{
		BC: registers.NewPair("BC"),
		DE: registers.NewPair("DE"),
		HL: registers.NewPair("HL"),
		IX: registers.NewPair("IX"),
		IY: registers.NewPair("IY"),
		SP: registers.NewPair("SP"),
		PC: registers.NewPair("PC"),
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%#04x AF=%02x%02x %s %s %s %s %s SP=%#04x I=%02x R=%02x F=%s",
		mc.PC.Value(), mc.A, mc.F.Value(),
		mc.BC, mc.DE, mc.HL, mc.IX, mc.IY,
		mc.SP.Value(), mc.I, mc.R, mc.F)
}

// Reset reinitialises the CPU to its power-on state: A and F all ones, SP
// at the top of the address space, PC at zero.
func (mc *CPU) Reset() {
	mc.A = 0xff
	mc.F.Load(0xff)
	mc.BC.Load(0)
	mc.DE.Load(0)
	mc.HL.Load(0)
	mc.IX.Load(0)
	mc.IY.Load(0)
	mc.SP.Load(0xffff)
	mc.PC.Load(0)
	mc.I = 0
	mc.R = 0
	mc.altAF = 0
	mc.altBC = 0
	mc.altDE = 0
	mc.altHL = 0
	mc.InterruptMode = 0
	mc.interruptsEnabled = false
	mc.nextInterruptsEnabled = false
	mc.interruptPending = false
	mc.halted = false
	mc.fault = nil
}

// SetBusHandlers attaches the CPU to an address space.
func (mc *CPU) SetBusHandlers(read ReadHandler, write WriteHandler) {
	mc.read = read
	mc.write = write
}

// SetPortHandlers attaches the CPU to the I/O port space.
func (mc *CPU) SetPortHandlers(in PortInHandler, out PortOutHandler) {
	mc.portIn = in
	mc.portOut = out
}

// SetPC loads the program counter directly. Used by hosts that place a
// program somewhere other than the reset vector.
func (mc *CPU) SetPC(address uint16) {
	mc.PC.Load(address)
}

// RaiseInterrupt asserts the maskable interrupt line. The request stays
// pending until the CPU services it at the next instruction boundary with
// interrupts enabled.
func (mc *CPU) RaiseInterrupt() {
	mc.interruptPending = true
}

// Halted returns true when the CPU is idling after a HALT instruction.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// Step executes one instruction and returns the number of T-states it
// consumed. If an enabled interrupt is pending once the instruction has
// completed it is serviced before Step returns, with its T-states included
// in the count.
//
// An error indicates a fault the emulation cannot recover from: an
// unimplemented opcode, an illegal prefix sequence or an unsupported
// interrupt mode. The CPU is in an undefined state after an error.
func (mc *CPU) Step() (int, error) {
	// commit a pending EI. done before anything else so that the
	// instruction executed by this Step is the one following the EI
	mc.interruptsEnabled = mc.nextInterruptsEnabled

	var cycles int

	if mc.halted {
		// the halted CPU executes the internal equivalent of NOPs. the
		// refresh register keeps counting
		mc.bumpR()
		cycles = 4
	} else {
		opcode := mc.fetchOpcode()
		cycles = opcodes[opcode](mc)

		if mc.fault != nil {
			err := mc.fault
			mc.fault = nil
			return 0, err
		}
	}

	if mc.interruptsEnabled && mc.interruptPending {
		mc.halted = false
		cycles += mc.serviceInterrupt()

		if mc.fault != nil {
			err := mc.fault
			mc.fault = nil
			return 0, err
		}
	}

	return cycles, nil
}

// serviceInterrupt accepts a pending maskable interrupt. both enable flags
// and the pending bit are cleared before the jump.
func (mc *CPU) serviceInterrupt() int {
	mc.interruptPending = false
	mc.interruptsEnabled = false
	mc.nextInterruptsEnabled = false

	switch mc.InterruptMode {
	case 1:
		mc.push(mc.PC.Value())
		mc.PC.Load(0x0038)
		return 13

	case 2:
		// the data bus floats at 0xff on the Master System so the vector
		// table entry is always the last (even) one on the page selected
		// by I
		mc.push(mc.PC.Value())
		vector := (uint16(mc.I)<<8 | 0x00ff) & 0xfffe
		mc.PC.Load(mc.read16(vector))
		return 19
	}

	mc.fault = curated.Errorf(UnsupportedInterruptMode, mc.InterruptMode)
	return 0
}

// bumpR increments the refresh register, preserving bit 7.
func (mc *CPU) bumpR() {
	mc.R = (mc.R & 0x80) | ((mc.R + 1) & 0x7f)
}

// fetchOpcode reads the byte at PC, advances PC and counts the refresh
// register. used for opcode and prefix bytes only; operand bytes are read
// with readPC() which leaves R alone.
func (mc *CPU) fetchOpcode() uint8 {
	v := mc.read(mc.PC.Value())
	mc.PC.Add(1)
	mc.bumpR()
	return v
}

// readPC reads the byte at PC and advances PC.
func (mc *CPU) readPC() uint8 {
	v := mc.read(mc.PC.Value())
	mc.PC.Add(1)
	return v
}

// readPC16 reads a little-endian 16 bit value at PC and advances PC twice.
func (mc *CPU) readPC16() uint16 {
	lo := uint16(mc.readPC())
	hi := uint16(mc.readPC())
	return (hi << 8) | lo
}

// read16 reads a little-endian 16 bit value from the address space.
func (mc *CPU) read16(address uint16) uint16 {
	lo := uint16(mc.read(address))
	hi := uint16(mc.read(address + 1))
	return (hi << 8) | lo
}

// write16 writes a little-endian 16 bit value to the address space.
func (mc *CPU) write16(address uint16, value uint16) {
	mc.write(address, uint8(value))
	mc.write(address+1, uint8(value>>8))
}

// push a 16 bit value onto the stack: high byte then low byte into
// decreasing SP.
func (mc *CPU) push(value uint16) {
	mc.SP.Add(0xffff)
	mc.write(mc.SP.Value(), uint8(value>>8))
	mc.SP.Add(0xffff)
	mc.write(mc.SP.Value(), uint8(value))
}

// pop a 16 bit value from the stack.
func (mc *CPU) pop() uint16 {
	lo := uint16(mc.read(mc.SP.Value()))
	mc.SP.Add(1)
	hi := uint16(mc.read(mc.SP.Value()))
	mc.SP.Add(1)
	return (hi << 8) | lo
}
