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

// Package memory implements the Master System address space: 48k of
// cartridge/BIOS area followed by 8k of system RAM, mirrored into the top
// 8k. writes to the top four addresses of the mirror additionally program
// the cartridge mapper.
package memory

import (
	"github.com/jetsetilly/gophersms/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersms/logger"
)

// biosSize is the size of the only BIOS image the memory system accepts.
const biosSize = 0x2000

// Memory is the Master System address space as seen by the CPU.
//
// multiple sources can drive the lower 48k at once. a real bus resolves the
// contention by wired-AND, so a read returns the AND of every enabled
// source, with disabled sources contributing 0xff.
type Memory struct {
	bios []uint8
	ram  [0x2000]uint8
	cart *cartridge.Cartridge

	// enables from port 0x3e. the port bits are active low; these booleans
	// are active high
	biosEnabled bool
	cartEnabled bool
	ramEnabled  bool
	cardEnabled bool
	extEnabled  bool
	joyEnabled  bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset returns the memory system to its power-on state. RAM contents are
// cleared; attached BIOS and cartridge stay attached.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	if mem.cart != nil {
		mem.cart.Reset()
	}

	mem.biosEnabled = mem.bios != nil
	mem.cartEnabled = true
	mem.ramEnabled = true
	mem.cardEnabled = false
	mem.extEnabled = false
	mem.joyEnabled = true
}

// AttachCartridge gives the memory system a cartridge to map into the lower
// 48k.
func (mem *Memory) AttachCartridge(cart *cartridge.Cartridge) {
	mem.cart = cart
}

// AttachBIOS gives the memory system a BIOS image. images of the wrong size
// are refused. a nil image detaches the BIOS.
func (mem *Memory) AttachBIOS(bios []uint8) {
	if bios != nil && len(bios) != biosSize {
		logger.Logf("memory", "ignoring BIOS image of %d bytes", len(bios))
		return
	}
	mem.bios = bios
	mem.biosEnabled = bios != nil
}

// ReadByte dispatches a CPU read to the enabled sources.
func (mem *Memory) ReadByte(address uint16) uint8 {
	if address >= 0xc000 {
		return mem.ram[address&0x1fff]
	}

	// wired-AND of every enabled source
	v := uint8(0xff)
	if mem.biosEnabled && mem.bios != nil {
		v &= mem.bios[address&(biosSize-1)]
	}
	if mem.cartEnabled && mem.cart != nil {
		v &= mem.cart.Read(address)
	}
	return v
}

// WriteByte dispatches a CPU write. writes below 0xc000 go to the cartridge
// (which ignores them unless cart RAM is paged in); writes to the RAM
// mirror's top four addresses also program the mapper.
func (mem *Memory) WriteByte(address uint16, value uint8) {
	if address < 0xc000 {
		if mem.cartEnabled && mem.cart != nil {
			mem.cart.Write(address, value)
		}
		return
	}

	mem.ram[address&0x1fff] = value

	if address >= 0xfffc && mem.cart != nil {
		mem.cart.CtrlWrite(address, value)
	}
}

// SetEnables reprograms the memory source enables from a port 0x3e write.
// the bits are active low.
func (mem *Memory) SetEnables(value uint8) {
	mem.joyEnabled = value&0x04 == 0
	mem.biosEnabled = value&0x08 == 0 && mem.bios != nil
	mem.ramEnabled = value&0x10 == 0
	mem.cardEnabled = value&0x20 == 0
	mem.cartEnabled = value&0x40 == 0
	mem.extEnabled = value&0x80 == 0

	logger.Logf("memory", "enables %#02x (bios %v, cart %v)", value, mem.biosEnabled, mem.cartEnabled)
}
