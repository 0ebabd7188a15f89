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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersms/test"
)

// romWithPages builds a ROM where every byte of page n has value n.
func romWithPages(n int) []uint8 {
	data := make([]uint8, n*0x4000)
	for i := range data {
		data[i] = uint8(i / 0x4000)
	}
	return data
}

func TestPowerOnBanking(t *testing.T) {
	cart := cartridge.NewCartridge(romWithPages(4))

	test.Equate(t, cart.Read(0x0000), 0)
	test.Equate(t, cart.Read(0x4000), 1)
	test.Equate(t, cart.Read(0x8000), 2)
}

func TestBankSwitch(t *testing.T) {
	cart := cartridge.NewCartridge(romWithPages(8))

	cart.CtrlWrite(0xffff, 5) // slot 2 -> page 5
	test.Equate(t, cart.Read(0x8000), 5)
	test.Equate(t, cart.Read(0xbfff), 5)

	cart.CtrlWrite(0xfffd, 7) // slot 0 -> page 7
	test.Equate(t, cart.Read(0x0000), 7)

	cart.CtrlWrite(0xfffe, 3) // slot 1 -> page 3
	test.Equate(t, cart.Read(0x7fff), 3)
}

func TestBankWrapping(t *testing.T) {
	cart := cartridge.NewCartridge(romWithPages(2))

	// page numbers beyond the ROM wrap
	cart.CtrlWrite(0xfffe, 2)
	test.Equate(t, cart.Read(0x4000), 0)

	cart.CtrlWrite(0xfffe, 3)
	test.Equate(t, cart.Read(0x4000), 1)
}

func TestROMWriteIgnored(t *testing.T) {
	cart := cartridge.NewCartridge(romWithPages(2))

	cart.Write(0x0100, 0x99)
	test.Equate(t, cart.Read(0x0100), 0)
}

func TestCartRAM(t *testing.T) {
	cart := cartridge.NewCartridge(romWithPages(4))

	// enable cart RAM in slot 2
	cart.CtrlWrite(0xfffc, 0x90) // romWrite + ram0

	cart.Write(0x8010, 0x42)
	test.Equate(t, cart.Read(0x8010), 0x42)

	// the second RAM page is distinct
	cart.CtrlWrite(0xfffc, 0x94) // + ramBankSelect
	test.Equate(t, cart.Read(0x8010), 0x00)
	cart.Write(0x8010, 0x24)

	cart.CtrlWrite(0xfffc, 0x90)
	test.Equate(t, cart.Read(0x8010), 0x42)

	// disabling RAM restores the ROM page
	cart.CtrlWrite(0xfffc, 0x80)
	test.Equate(t, cart.Read(0x8010), 2)
}

func TestEmptyCartridge(t *testing.T) {
	cart := cartridge.NewCartridge(nil)

	test.Equate(t, cart.Read(0x0000), 0xff)
	cart.Write(0x0000, 0x00)
	test.Equate(t, cart.Read(0x0000), 0xff)
}
