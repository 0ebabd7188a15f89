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

package vdp

import (
	"github.com/jetsetilly/gophersms/logger"
)

// bits of mode control register 0.
const (
	ModeControl1VScrollLock  = 0x80
	ModeControl1HScrollLock  = 0x40
	ModeControl1MaskCol0     = 0x20
	ModeControl1LineIntEnab  = 0x10
	ModeControl1ShiftSprites = 0x08
	ModeControl1M4           = 0x04
	ModeControl1M2           = 0x02
	ModeControl1Monochrome   = 0x01
)

// bits of mode control register 1.
const (
	ModeControl2EnableDisplay = 0x40
	ModeControl2FrameIntEnab  = 0x20
	ModeControl2M1            = 0x10
	ModeControl2M3            = 0x08
	ModeControl2TiledSprites  = 0x02
	ModeControl2Stretched     = 0x01
)

// bits of the derived mode nibble.
const (
	modeM1 = 0x01
	modeM2 = 0x02
	modeM3 = 0x04
	modeM4 = 0x08
)

func (v *VDP) lineInterruptEnabled() bool {
	return v.modeControl1&ModeControl1LineIntEnab == ModeControl1LineIntEnab
}

func (v *VDP) frameInterruptEnabled() bool {
	return v.modeControl2&ModeControl2FrameIntEnab == ModeControl2FrameIntEnab
}

// registerWrite programs one of the VDP's internal registers. reached
// through the control port with command code 2.
func (v *VDP) registerWrite(reg uint8, value uint8) {
	switch reg {
	case 0x0:
		v.modeControl1 = value
		v.mode &= ^uint8(modeM2 | modeM4)
		if value&ModeControl1M2 == ModeControl1M2 {
			v.mode |= modeM2
		}
		if value&ModeControl1M4 == ModeControl1M4 {
			v.mode |= modeM4
		}

	case 0x1:
		v.modeControl2 = value
		v.mode &= ^uint8(modeM1 | modeM3)
		if value&ModeControl2M1 == ModeControl2M1 {
			v.mode |= modeM1
		}
		if value&ModeControl2M3 == ModeControl2M3 {
			v.mode |= modeM3
		}

	case 0x2:
		// nametable base address. mode 4 software almost always uses
		// 0x3800 (register value 0xff)
		v.nametable = uint16(value&0x0e) << 10

	case 0x3, 0x4:
		// colour/pattern table base addresses are only meaningful in the
		// legacy TMS modes

	case 0x5:
		// sprite attribute table base: sprites are not rendered
		logger.Logf("vdp", "sprite attribute table base %#02x", value)

	case 0x6:
		v.spritePatternBase = uint16(value&0x04) << 11

	case 0x7:
		v.overscanColour = value & 0x0f

	case 0x8:
		v.bgXScroll = value

	case 0x9:
		v.bgYScroll = value

	case 0xa:
		v.lineCounterReload = value

	default:
		logger.Logf("vdp", "write %#02x to register %#x", value, reg)
	}
}
