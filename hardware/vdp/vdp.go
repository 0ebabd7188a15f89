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

// Package vdp emulates the Master System's Video Display Processor: its
// VRAM and colour RAM, register file, scanline timing, interrupt
// generation and the mode 4 background renderer.
//
// The VDP is driven with Step(), which consumes the T-state counts
// returned by the CPU. Whenever a scanline's worth of cycles has
// accumulated the internal scanline() function advances the vertical state
// machine, rendering and raising interrupts as it goes.
package vdp

import (
	"github.com/jetsetilly/gophersms/curated"
)

// error patterns returned by Step().
const (
	UnknownVideoMode = "vdp: unknown video mode (%04b)"
	UnknownCommand   = "vdp: data port access with command code (%d)"
)

// timing constants. the VDP runs through 262 scanlines per frame at 60
// frames per second, clocked from the 3.58MHz master clock.
const (
	NumScanlines  = 262
	FPS           = 60
	ClockHz       = 3579545
	CyclesPerLine = ClockHz / NumScanlines / FPS
)

// the command codes latched by the second control port byte.
const (
	commandVRAMRead = iota
	commandVRAMWrite
	commandRegisterWrite
	commandCRAMWrite
)

// Screen dimensions. mode 4 displays 192 of the 256 buffer lines.
const (
	ScreenWidth    = 256
	ScreenHeight   = 256
	VisibleLines   = 192
	nametableBase  = 0x3800
	patternSize    = 32 // 8 rows of 4 bitplane bytes
)

// Renderer receives the completed frame at presentation time. the pixel
// values are colours straight out of CRAM (--BBGGRR).
type Renderer interface {
	Present(screen *[ScreenHeight][ScreenWidth]uint8) error
}

// VDP is the Video Display Processor.
type VDP struct {
	vram [0x4000]uint8
	cram [0x20]uint8

	// the address/code latch, built up by control port writes. address is
	// always kept below 0x4000
	address  uint16
	code     uint8
	ctrlHigh bool

	// VRAM reads are buffered: a read returns the previous prefetch
	readBuffer uint8

	vcounter     int
	hcounter     int
	cycleCounter int

	// the line interrupt counter, reloaded from register 0xa outside the
	// active display
	lineCounter uint8

	lineInterrupt  bool
	frameInterrupt bool

	// registers 0 and 1
	modeControl1 uint8
	modeControl2 uint8

	// the derived mode nibble: M4 M3 M2 M1
	mode uint8

	// registers 7 to 0xa
	overscanColour    uint8
	bgXScroll         uint8
	bgYScroll         uint8
	lineCounterReload uint8

	// register 2: nametable base address
	nametable uint16

	// register 6: sprite pattern generator base (bit 2 gives bit 13 of the
	// address)
	spritePatternBase uint16

	// Screen is the rendered frame. indexed by scanline then pixel
	Screen [ScreenHeight][ScreenWidth]uint8

	renderer Renderer
}

// NewVDP is the preferred method of initialisation for the VDP type.
func NewVDP() *VDP {
	v := &VDP{}
	v.Reset()
	return v
}

// Reset returns the VDP to its power-on state: counters cleared, VRAM
// cleared, line counter primed.
func (v *VDP) Reset() {
	for i := range v.vram {
		v.vram[i] = 0
	}
	for i := range v.cram {
		v.cram[i] = 0
	}
	v.address = 0
	v.code = 0
	v.ctrlHigh = false
	v.readBuffer = 0
	v.vcounter = 0
	v.hcounter = 0
	v.cycleCounter = 0
	v.lineCounter = 0xff
	v.lineInterrupt = false
	v.frameInterrupt = false
	v.modeControl1 = 0
	v.modeControl2 = 0
	v.mode = 0
	v.overscanColour = 0
	v.bgXScroll = 0
	v.bgYScroll = 0
	v.lineCounterReload = 0xff
	v.nametable = nametableBase
	v.spritePatternBase = 0
}

// AttachRenderer sets the frame sink. a nil renderer is fine: frames are
// simply dropped.
func (v *VDP) AttachRenderer(r Renderer) {
	v.renderer = r
}

// WriteControl accepts a byte on the control port (0xbf). the port is a two
// byte FIFO: the first byte is the low half of the address, the second
// carries the command code and the high address bits, and completes the
// command.
func (v *VDP) WriteControl(value uint8) {
	if v.ctrlHigh {
		v.address = (v.address & 0x00ff) | (uint16(value)<<8)&0x3f00
		v.code = (value >> 6) & 0x03
		v.processCommand()
	} else {
		v.address = (v.address & 0xff00) | uint16(value)
	}
	v.ctrlHigh = !v.ctrlHigh
}

// processCommand acts on a completed control word.
func (v *VDP) processCommand() {
	switch v.code {
	case commandVRAMRead:
		// prefetch into the read buffer
		v.readBuffer = v.vram[v.address]
		v.address = (v.address + 1) & 0x3fff
	case commandVRAMWrite:
		// handled by WriteData
	case commandRegisterWrite:
		v.registerWrite(uint8(v.address>>8)&0x0f, uint8(v.address))
	case commandCRAMWrite:
		// handled by WriteData
	}
}

// WriteData accepts a byte on the data port (0xbe). any data port access
// clears the control port's byte toggle.
func (v *VDP) WriteData(value uint8) error {
	v.readBuffer = value
	v.ctrlHigh = false

	switch v.code {
	case commandVRAMWrite, commandRegisterWrite:
		v.vram[v.address] = value
		v.address = (v.address + 1) & 0x3fff
	case commandCRAMWrite:
		v.cram[v.address&0x1f] = value & 0x3f
		v.address = (v.address + 1) & 0x3fff
	default:
		return curated.Errorf(UnknownCommand, v.code)
	}

	return nil
}

// ReadData returns the read buffer and refills it from VRAM, advancing the
// address. clears the control port's byte toggle.
func (v *VDP) ReadData() uint8 {
	v.ctrlHigh = false

	b := v.readBuffer
	v.readBuffer = v.vram[v.address]
	v.address = (v.address + 1) & 0x3fff
	return b
}

// ReadStatus returns the status register: the frame interrupt flag in bit
// 7, with the sprite flags unimplemented and the low bits floating high.
// reading the status clears both interrupt flags.
func (v *VDP) ReadStatus() uint8 {
	var value uint8 = 0x1f
	if v.frameInterrupt {
		value |= 0x80
	}

	v.frameInterrupt = false
	v.lineInterrupt = false

	return value
}

// VCounter returns the value of the vertical counter port. the counter
// follows the NTSC jump: 0x00-0xda then 0xd5-0xff.
func (v *VDP) VCounter() uint8 {
	if v.vcounter <= 0xda {
		return uint8(v.vcounter)
	}
	return uint8(v.vcounter - 6)
}

// HCounter returns the value of the horizontal counter port.
func (v *VDP) HCounter() uint8 {
	return uint8(v.hcounter)
}

// InterruptPending is the VDP's interrupt line, sampled by the machine
// between CPU instructions.
func (v *VDP) InterruptPending() bool {
	return (v.frameInterrupt && v.frameInterruptEnabled()) ||
		(v.lineInterrupt && v.lineInterruptEnabled())
}

// Step consumes CPU T-states, advancing the scanline state machine as
// whole lines complete.
func (v *VDP) Step(cycles int) error {
	v.cycleCounter += cycles
	for v.cycleCounter >= CyclesPerLine {
		v.cycleCounter -= CyclesPerLine
		if err := v.scanline(); err != nil {
			return err
		}
	}
	return nil
}

// scanline advances the vertical state machine by one line.
func (v *VDP) scanline() error {
	switch v.mode {
	case 0b1010, 0b1011:
		// mode 4, with either height. only the 192 line display is
		// rendered

	default:
		return curated.Errorf(UnknownVideoMode, v.mode)
	}

	if v.vcounter <= VisibleLines {
		v.renderBackgroundLine(v.vcounter)

		v.lineCounter--
		if v.lineCounter == 0xff {
			v.lineInterrupt = true
			v.lineCounter = v.lineCounterReload
		}
	} else {
		v.lineCounter = v.lineCounterReload
	}

	if v.vcounter == 224 && v.frameInterruptEnabled() {
		v.frameInterrupt = true
		if v.renderer != nil {
			if err := v.renderer.Present(&v.Screen); err != nil {
				return err
			}
		}
	}

	v.vcounter = (v.vcounter + 1) % NumScanlines

	return nil
}
