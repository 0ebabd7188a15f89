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

package registers

// Flags is the Z80 flag register. The register is eight independent
// booleans, assembled into the SZ5H3PNC byte layout on demand.
//
// Bit5 and Bit3 are the undocumented flags, copied from bits 5 and 3 of an
// instruction's result (or of another value specific to the instruction).
type Flags struct {
	Sign           bool
	Zero           bool
	Bit5           bool
	HalfCarry      bool
	Bit3           bool
	ParityOverflow bool
	Subtract       bool
	Carry          bool
}

// Value packs the flags into their byte representation.
func (f Flags) Value() uint8 {
	var v uint8

	if f.Sign {
		v |= 0x80
	}
	if f.Zero {
		v |= 0x40
	}
	if f.Bit5 {
		v |= 0x20
	}
	if f.HalfCarry {
		v |= 0x10
	}
	if f.Bit3 {
		v |= 0x08
	}
	if f.ParityOverflow {
		v |= 0x04
	}
	if f.Subtract {
		v |= 0x02
	}
	if f.Carry {
		v |= 0x01
	}

	return v
}

// Load unpacks a byte into the flag booleans.
func (f *Flags) Load(v uint8) {
	f.Sign = v&0x80 == 0x80
	f.Zero = v&0x40 == 0x40
	f.Bit5 = v&0x20 == 0x20
	f.HalfCarry = v&0x10 == 0x10
	f.Bit3 = v&0x08 == 0x08
	f.ParityOverflow = v&0x04 == 0x04
	f.Subtract = v&0x02 == 0x02
	f.Carry = v&0x01 == 0x01
}

// SetResultBits copies bits 5 and 3 of the value into the undocumented
// flags.
func (f *Flags) SetResultBits(v uint8) {
	f.Bit5 = v&0x20 == 0x20
	f.Bit3 = v&0x08 == 0x08
}

// String returns the flags as a labelled bit pattern. Upper-case letters
// indicate a set flag.
func (f Flags) String() string {
	var v string

	if f.Sign {
		v += "S"
	} else {
		v += "s"
	}
	if f.Zero {
		v += "Z"
	} else {
		v += "z"
	}
	if f.Bit5 {
		v += "5"
	} else {
		v += "-"
	}
	if f.HalfCarry {
		v += "H"
	} else {
		v += "h"
	}
	if f.Bit3 {
		v += "3"
	} else {
		v += "-"
	}
	if f.ParityOverflow {
		v += "P"
	} else {
		v += "p"
	}
	if f.Subtract {
		v += "N"
	} else {
		v += "n"
	}
	if f.Carry {
		v += "C"
	} else {
		v += "c"
	}

	return v
}
