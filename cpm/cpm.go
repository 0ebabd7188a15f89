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

// Package cpm is a minimal CP/M machine built around the Z80 core, good
// enough to run the classic processor testing programs (zexdoc, zexall,
// prelim) and other simple BDOS clients.
//
// The machine is 64k of flat RAM. The program is loaded at 0x0100. A stub
// at 0x0005 forwards BDOS calls to the host through port zero and a second
// stub at 0x0000 turns the end-of-program jump into a shutdown request:
//
//	0x0000: OUT (0),A            ; program termination
//	0x0005: IN A,(0) / RET       ; BDOS call
//
// Only the console output calls (C=2 and C=9) and console input (C=1) are
// implemented. That is all the test programs use.
package cpm

import (
	"io"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/z80"
	"github.com/jetsetilly/gophersms/logger"
)

// error patterns returned by Run().
const (
	UnsupportedBDOSCall = "cpm: unsupported BDOS call (%d)"
	ProgramTooLarge     = "cpm: program of %d bytes does not fit"
)

// the program origin dictated by CP/M.
const origin = 0x0100

// Console is the source of bytes for the console input BDOS call. a nil
// console reads as end-of-file.
type Console interface {
	ReadByte() (uint8, error)
}

// Machine is a CP/M host for a Z80 program.
type Machine struct {
	CPU *z80.CPU
	mem [0x10000]uint8

	output  io.Writer
	console Console

	running bool
	fault   error
}

// NewMachine creates a CP/M machine with the program loaded and the
// syscall stubs in place. console output is written to the output writer.
func NewMachine(program []uint8, output io.Writer) (*Machine, error) {
	if len(program) > 0x10000-origin {
		return nil, curated.Errorf(ProgramTooLarge, len(program))
	}

	m := &Machine{
		CPU:    z80.NewCPU(),
		output: output,
	}

	copy(m.mem[origin:], program)

	// termination stub: the program ends with a jump to 0x0000
	m.mem[0x0000] = 0xd3 // OUT (0),A
	m.mem[0x0001] = 0x00

	// BDOS stub
	m.mem[0x0005] = 0xdb // IN A,(0)
	m.mem[0x0006] = 0x00
	m.mem[0x0007] = 0xc9 // RET

	m.CPU.SetBusHandlers(m.readByte, m.writeByte)
	m.CPU.SetPortHandlers(m.portIn, m.portOut)
	m.CPU.SetPC(origin)

	return m, nil
}

// SetConsole attaches a byte source for console input.
func (m *Machine) SetConsole(console Console) {
	m.console = console
}

func (m *Machine) readByte(address uint16) uint8 {
	return m.mem[address]
}

func (m *Machine) writeByte(address uint16, value uint8) {
	m.mem[address] = value
}

// portOut: a write to port zero is the termination request from the stub
// at 0x0000.
func (m *Machine) portOut(port uint8, value uint8) {
	if port == 0 {
		m.running = false
	}
}

// portIn: a read of port zero is a BDOS call, selected by the C register.
func (m *Machine) portIn(port uint8) uint8 {
	if port != 0 {
		return 0xff
	}

	switch m.CPU.BC.Lo() {
	case 1: // console input
		if m.console == nil {
			return 0x1a // ctrl-z: end of file
		}
		b, err := m.console.ReadByte()
		if err != nil {
			return 0x1a
		}
		return b

	case 2: // console output: character in E
		m.write(m.CPU.DE.Lo())

	case 9: // print string: $-terminated, address in DE
		addr := m.CPU.DE.Value()
		for i := 0; i < 0x10000; i++ {
			c := m.mem[addr]
			if c == '$' {
				break
			}
			m.write(c)
			addr++
		}

	default:
		m.fault = curated.Errorf(UnsupportedBDOSCall, m.CPU.BC.Lo())
	}

	return 0
}

func (m *Machine) write(c uint8) {
	if m.output == nil {
		return
	}
	if _, err := m.output.Write([]byte{c}); err != nil {
		logger.Logf("cpm", "console write: %s", err)
	}
}

// Run the program to completion. returns nil on a normal termination
// through the stub at 0x0000.
func (m *Machine) Run() error {
	m.running = true
	for m.running {
		if _, err := m.CPU.Step(); err != nil {
			return err
		}
		if m.fault != nil {
			return m.fault
		}
	}
	return nil
}
