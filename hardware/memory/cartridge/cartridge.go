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

// Package cartridge implements the standard Sega mapper: three 16k slots
// in the lower 48k of the address space, backed by switchable pages of
// cartridge ROM, programmed through writes to 0xfffc-0xffff.
package cartridge

import (
	"github.com/jetsetilly/gophersms/logger"
)

// bankSize is the granularity of the Sega mapper.
const bankSize = 0x4000

// Cartridge is a Master System cartridge with the standard Sega mapper.
// the mapper swaps 16k pages of ROM into the three slots and can also page
// 16k of on-cartridge RAM into slot 2.
//
// the mapper registers live at 0xfffc-0xffff, inside the system RAM mirror.
// writes land in RAM as normal; the memory package forwards them here as
// well.
type Cartridge struct {
	data []uint8

	// byte offsets into data for the three slots
	bankOffsets [3]int

	// control bits from 0xfffc
	romWrite      bool
	ram0          bool // cart RAM in slot 2
	ram1          bool // cart RAM over system RAM (unused by licensed software)
	ramBankSelect bool
	bankShift     uint8

	// two pages of on-cartridge RAM, selectable into slot 2
	ram [2][bankSize]uint8
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. the data slice is the entire ROM file.
func NewCartridge(data []uint8) *Cartridge {
	cart := &Cartridge{data: data}
	cart.Reset()
	return cart
}

// Reset the mapper to the power-on banking: the first three pages in
// sequence. boot code reprograms the slots almost immediately.
func (cart *Cartridge) Reset() {
	cart.bankOffsets[0] = 0
	cart.bankOffsets[1] = 1 * bankSize
	cart.bankOffsets[2] = 2 * bankSize
	cart.romWrite = true
	cart.ram0 = false
	cart.ram1 = false
	cart.ramBankSelect = false
	cart.bankShift = 0
}

func (cart *Cartridge) ramBank() int {
	if cart.ramBankSelect {
		return 1
	}
	return 0
}

// Read a byte through the mapper. the address must be below 0xc000.
func (cart *Cartridge) Read(address uint16) uint8 {
	slot := address >> 14
	offset := int(address & (bankSize - 1))

	if slot == 2 && cart.ram0 {
		return cart.ram[cart.ramBank()][offset]
	}

	if len(cart.data) == 0 {
		return 0xff
	}

	// out of range banks wrap modulo the pages actually present
	return cart.data[(cart.bankOffsets[slot]+offset)%len(cart.data)]
}

// Write a byte through the mapper. ROM writes are ignored, as on real
// hardware; only a cart RAM page selected into slot 2 is writable.
func (cart *Cartridge) Write(address uint16, value uint8) {
	if address>>14 == 2 && cart.ram0 {
		cart.ram[cart.ramBank()][address&(bankSize-1)] = value
	}
}

// CtrlWrite programs the mapper. addresses 0xfffd to 0xffff select the ROM
// page for the corresponding slot; 0xfffc carries the control bits.
func (cart *Cartridge) CtrlWrite(address uint16, value uint8) {
	switch address {
	case 0xfffc:
		cart.romWrite = (value>>7)&1 == 1
		cart.ram0 = (value>>4)&1 == 1
		cart.ram1 = (value>>3)&1 == 1
		cart.ramBankSelect = (value>>2)&1 == 1
		cart.bankShift = value & 0x03
		if cart.bankShift != 0 {
			logger.Logf("mapper", "bank shift %d not honoured", cart.bankShift)
		}
		if cart.ram1 {
			logger.Log("mapper", "cart RAM over system RAM not honoured")
		}

	case 0xfffd, 0xfffe, 0xffff:
		cart.bankOffsets[address-0xfffd] = int(value) * bankSize
	}
}
