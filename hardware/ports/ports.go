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

// Package ports routes the Z80's I/O port space to the devices that live
// there: the VDP's data/control/status ports, the H and V counters, the
// memory enable register and the joystick ports.
package ports

import (
	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/memory"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/logger"
)

// error patterns recorded by port accesses.
const (
	UnsupportedPortIn  = "ports: unsupported port read (%#02x)"
	UnsupportedPortOut = "ports: unsupported port write (%#02x)"
)

// Ports is the I/O port router.
type Ports struct {
	vdp *vdp.VDP
	mem *memory.Memory

	// a fault raised by an access to a port nothing responds to. the
	// machine checks this after every CPU step
	fault error

	// PSG traffic is expected and ignored; log it once only
	psgLogged bool
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(v *vdp.VDP, mem *memory.Memory) *Ports {
	return &Ports{vdp: v, mem: mem}
}

// Fault returns (and clears) the error raised by an unsupported port
// access.
func (p *Ports) Fault() error {
	err := p.fault
	p.fault = nil
	return err
}

// In dispatches a port read.
func (p *Ports) In(port uint8) uint8 {
	switch {
	case port >= 0x40 && port <= 0x7f:
		if port&0x01 == 0 {
			return p.vdp.VCounter()
		}
		return p.vdp.HCounter()

	case port == 0xbe:
		return p.vdp.ReadData()

	case port == 0xbf:
		return p.vdp.ReadStatus()

	case port == 0xdc || port == 0xdd:
		// joysticks: all lines idle
		return 0xff
	}

	p.fault = curated.Errorf(UnsupportedPortIn, port)
	return 0xff
}

// Out dispatches a port write.
func (p *Ports) Out(port uint8, value uint8) {
	switch {
	case port == 0x3e:
		p.mem.SetEnables(value)

	case port == 0x3f:
		// joystick port direction/TH lines. nothing to do without
		// peripherals

	case port >= 0x40 && port <= 0x7f:
		if !p.psgLogged {
			logger.Log("ports", "PSG writes ignored")
			p.psgLogged = true
		}

	case port == 0xbe:
		if err := p.vdp.WriteData(value); err != nil {
			p.fault = err
		}

	case port == 0xbf:
		p.vdp.WriteControl(value)

	default:
		p.fault = curated.Errorf(UnsupportedPortOut, port)
	}
}
