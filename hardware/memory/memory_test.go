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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/hardware/memory"
	"github.com/jetsetilly/gophersms/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersms/test"
)

func TestRAMMirror(t *testing.T) {
	mem := memory.NewMemory()

	mem.WriteByte(0xc123, 0x42)
	test.Equate(t, mem.ReadByte(0xc123), 0x42)
	test.Equate(t, mem.ReadByte(0xe123), 0x42)

	mem.WriteByte(0xe456, 0x24)
	test.Equate(t, mem.ReadByte(0xc456), 0x24)
}

func TestDisabledSourcesReadFF(t *testing.T) {
	mem := memory.NewMemory()

	// no BIOS, no cartridge
	test.Equate(t, mem.ReadByte(0x0000), 0xff)
	test.Equate(t, mem.ReadByte(0xbfff), 0xff)
}

func TestWiredAND(t *testing.T) {
	mem := memory.NewMemory()

	rom := make([]uint8, 0x4000)
	for i := range rom {
		rom[i] = 0x0f
	}
	mem.AttachCartridge(cartridge.NewCartridge(rom))

	bios := make([]uint8, 0x2000)
	for i := range bios {
		bios[i] = 0xf3
	}
	mem.AttachBIOS(bios)
	mem.Reset()

	// both sources enabled: bitwise AND
	test.Equate(t, mem.ReadByte(0x0100), 0x03)

	// disabling the BIOS leaves the cartridge alone
	mem.SetEnables(0x08)
	test.Equate(t, mem.ReadByte(0x0100), 0x0f)

	// disabling the cartridge leaves the BIOS
	mem.SetEnables(0x40)
	test.Equate(t, mem.ReadByte(0x0100), 0xf3)
}

func TestROMWriteIgnored(t *testing.T) {
	mem := memory.NewMemory()

	rom := make([]uint8, 0x4000)
	rom[0x100] = 0x55
	mem.AttachCartridge(cartridge.NewCartridge(rom))

	mem.WriteByte(0x0100, 0x99)
	test.Equate(t, mem.ReadByte(0x0100), 0x55)
}

func TestMapperWriteThroughMirror(t *testing.T) {
	mem := memory.NewMemory()

	rom := make([]uint8, 4*0x4000)
	for i := range rom {
		rom[i] = uint8(i / 0x4000)
	}
	mem.AttachCartridge(cartridge.NewCartridge(rom))

	// a write to 0xffff programs slot 2 and also lands in RAM
	mem.WriteByte(0xffff, 3)
	test.Equate(t, mem.ReadByte(0x8000), 3)
	test.Equate(t, mem.ReadByte(0xdfff), 3)
}

func TestWrongSizeBIOSRefused(t *testing.T) {
	mem := memory.NewMemory()

	mem.AttachBIOS(make([]uint8, 0x100))
	test.Equate(t, mem.ReadByte(0x0000), 0xff)
}
