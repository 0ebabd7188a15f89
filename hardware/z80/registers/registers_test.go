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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/hardware/z80/registers"
	"github.com/jetsetilly/gophersms/test"
)

func TestPairHalves(t *testing.T) {
	p := registers.NewPair("HL")

	p.Load(0x1234)
	test.Equate(t, p.Hi(), 0x12)
	test.Equate(t, p.Lo(), 0x34)

	// writing one half must preserve the other
	p.SetHi(0xab)
	test.Equate(t, p.Value(), 0xab34)
	p.SetLo(0xcd)
	test.Equate(t, p.Value(), 0xabcd)
}

func TestPairWrapping(t *testing.T) {
	p := registers.NewPair("SP")

	p.Load(0xffff)
	p.Add(1)
	test.Equate(t, p.Value(), 0x0000)

	// a decrement is an add of 0xffff
	p.Add(0xffff)
	test.Equate(t, p.Value(), 0xffff)

	p.Load(0x8000)
	p.Add(0x8000)
	test.Equate(t, p.Value(), 0x0000)
}

func TestFlagsRoundTrip(t *testing.T) {
	var f registers.Flags

	// round-trip identity for every byte value
	for b := 0; b < 256; b++ {
		f.Load(uint8(b))
		test.Equate(t, f.Value(), b)
	}
}

func TestFlagsLayout(t *testing.T) {
	var f registers.Flags

	f.Load(0x80)
	test.Equate(t, f.Sign, true)
	test.Equate(t, f.Carry, false)

	f.Load(0x01)
	test.Equate(t, f.Sign, false)
	test.Equate(t, f.Carry, true)

	f = registers.Flags{Zero: true, HalfCarry: true, Subtract: true}
	test.Equate(t, f.Value(), 0x52)

	f = registers.Flags{Bit5: true, Bit3: true, ParityOverflow: true}
	test.Equate(t, f.Value(), 0x2c)
}

func TestFlagsResultBits(t *testing.T) {
	var f registers.Flags

	f.SetResultBits(0x28)
	test.Equate(t, f.Bit5, true)
	test.Equate(t, f.Bit3, true)

	f.SetResultBits(0xd7)
	test.Equate(t, f.Bit5, false)
	test.Equate(t, f.Bit3, false)
}
