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

// Package hardware assembles the Master System from its parts: CPU, VDP,
// memory and the I/O port router. one SMS value is one machine; nothing in
// the emulation is a package level global so several machines can coexist.
package hardware

import (
	"github.com/jetsetilly/gophersms/hardware/memory"
	"github.com/jetsetilly/gophersms/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/hardware/z80"
)

// SMS is the Master System.
type SMS struct {
	CPU   *z80.CPU
	VDP   *vdp.VDP
	Mem   *memory.Memory
	Ports *ports.Ports
}

// NewSMS creates and wires a Master System. the cartridge ROM is required;
// the BIOS image may be nil.
func NewSMS(rom []uint8, bios []uint8) *SMS {
	sms := &SMS{
		CPU: z80.NewCPU(),
		VDP: vdp.NewVDP(),
		Mem: memory.NewMemory(),
	}
	sms.Ports = ports.NewPorts(sms.VDP, sms.Mem)

	sms.Mem.AttachCartridge(cartridge.NewCartridge(rom))
	sms.Mem.AttachBIOS(bios)
	sms.Mem.Reset()

	sms.CPU.SetBusHandlers(sms.Mem.ReadByte, sms.Mem.WriteByte)
	sms.CPU.SetPortHandlers(sms.Ports.In, sms.Ports.Out)

	return sms
}

// Reset the machine to its power-on state.
func (sms *SMS) Reset() {
	sms.CPU.Reset()
	sms.VDP.Reset()
	sms.Mem.Reset()
}

// Step runs one CPU instruction and feeds the consumed T-states to the
// VDP. the VDP's interrupt line is sampled before the instruction so that
// state changes from the previous step are visible.
func (sms *SMS) Step() (int, error) {
	if sms.VDP.InterruptPending() {
		sms.CPU.RaiseInterrupt()
	}

	cycles, err := sms.CPU.Step()
	if err != nil {
		return cycles, err
	}

	if err := sms.Ports.Fault(); err != nil {
		return cycles, err
	}

	if err := sms.VDP.Step(cycles); err != nil {
		return cycles, err
	}

	return cycles, nil
}

// Run steps the machine until the check function returns false or the
// machine faults.
func (sms *SMS) Run(check func() bool) error {
	for check() {
		if _, err := sms.Step(); err != nil {
			return err
		}
	}
	return nil
}
