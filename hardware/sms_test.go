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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/test"
)

// testROM is a hand assembled program that sets up a mode 4 display with
// the frame interrupt enabled and counts interrupts into RAM at 0xc000.
//
//	0000  DI
//	      LD SP,0xdff0
//	      LD A,0x06 / OUT (0xbf),A / LD A,0x80 / OUT (0xbf),A   ; reg 0
//	      LD A,0x30 / OUT (0xbf),A / LD A,0x81 / OUT (0xbf),A   ; reg 1
//	      IM 1
//	      EI
//	loop: JP loop
//	0038  IN A,(0xbf)          ; acknowledge
//	      LD HL,0xc000
//	      INC (HL)
//	      EI
//	      RETI
func testROM() []uint8 {
	rom := make([]uint8, 0x4000)

	program := []uint8{
		0xf3,             // DI
		0x31, 0xf0, 0xdf, // LD SP,0xdff0
		0x3e, 0x06, // LD A,0x06
		0xd3, 0xbf, // OUT (0xbf),A
		0x3e, 0x80, // LD A,0x80
		0xd3, 0xbf, // OUT (0xbf),A
		0x3e, 0x30, // LD A,0x30
		0xd3, 0xbf, // OUT (0xbf),A
		0x3e, 0x81, // LD A,0x81
		0xd3, 0xbf, // OUT (0xbf),A
		0xed, 0x56, // IM 1
		0xfb,             // EI
		0xc3, 0x17, 0x00, // JP 0x0017
	}
	copy(rom, program)

	handler := []uint8{
		0xdb, 0xbf, // IN A,(0xbf)
		0x21, 0x00, 0xc0, // LD HL,0xc000
		0x34,       // INC (HL)
		0xfb,       // EI
		0xed, 0x4d, // RETI
	}
	copy(rom[0x0038:], handler)

	return rom
}

func TestFrameInterruptDelivery(t *testing.T) {
	sms := hardware.NewSMS(testROM(), nil)

	// about ten frames of CPU time is comfortably enough for two interrupts
	for i := 0; i < 60000; i++ {
		if _, err := sms.Step(); err != nil {
			t.Fatalf("machine fault: %s", err)
		}
	}

	if sms.Mem.ReadByte(0xc000) < 2 {
		t.Errorf("frame interrupts not delivered (count %d)", sms.Mem.ReadByte(0xc000))
	}
}

func TestMachineReset(t *testing.T) {
	sms := hardware.NewSMS(testROM(), nil)

	for i := 0; i < 100; i++ {
		if _, err := sms.Step(); err != nil {
			t.Fatalf("machine fault: %s", err)
		}
	}

	sms.Reset()
	test.Equate(t, sms.CPU.PC.Value(), 0x0000)
	test.Equate(t, sms.CPU.SP.Value(), 0xffff)
	test.Equate(t, sms.Mem.ReadByte(0xc000), 0x00)
}
