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

// Package sdltv presents VDP frames in an SDL window. it implements the
// vdp.Renderer interface.
package sdltv

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gophersms/hardware/vdp"
)

// IdealScale is the suggested pixel scaling for the window.
const IdealScale = 3

// TV is an SDL window displaying the emulated picture.
type TV struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the staging buffer for texture updates, in ARGB8888
	pixels []byte

	// window close has been requested
	quit bool
}

// NewTV creates the SDL window and texture. SDL requires that this (and
// the other functions of the type) run on the main thread.
func NewTV(scale int) (*TV, error) {
	if scale <= 0 {
		scale = IdealScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	tv := &TV{
		pixels: make([]byte, vdp.ScreenWidth*vdp.VisibleLines*4),
	}

	var err error

	tv.window, err = sdl.CreateWindow("GopherSMS",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(vdp.ScreenWidth*scale), int32(vdp.VisibleLines*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}

	tv.renderer, err = sdl.CreateRenderer(tv.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, err
	}

	tv.texture, err = tv.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, vdp.ScreenWidth, vdp.VisibleLines)
	if err != nil {
		return nil, err
	}

	return tv, nil
}

// Present implements the vdp.Renderer interface. the screen values are
// CRAM colours: --BBGGRR with two bits per channel.
func (tv *TV) Present(screen *[vdp.ScreenHeight][vdp.ScreenWidth]uint8) error {
	i := 0
	for y := 0; y < vdp.VisibleLines; y++ {
		for x := 0; x < vdp.ScreenWidth; x++ {
			c := screen[y][x]
			tv.pixels[i] = uint8((c >> 4 & 0x03) * 85)   // B
			tv.pixels[i+1] = uint8((c >> 2 & 0x03) * 85) // G
			tv.pixels[i+2] = uint8((c & 0x03) * 85)      // R
			tv.pixels[i+3] = 0xff                        // A
			i += 4
		}
	}

	if err := tv.texture.Update(nil, tv.pixels, vdp.ScreenWidth*4); err != nil {
		return err
	}
	if err := tv.renderer.Copy(tv.texture, nil, nil); err != nil {
		return err
	}
	tv.renderer.Present()

	return nil
}

// Service polls SDL events. returns false once the window has been closed.
func (tv *TV) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			tv.quit = true
		}
	}
	return !tv.quit
}

// Destroy releases the SDL resources.
func (tv *TV) Destroy() {
	if tv.texture != nil {
		tv.texture.Destroy()
	}
	if tv.renderer != nil {
		tv.renderer.Destroy()
	}
	if tv.window != nil {
		tv.window.Destroy()
	}
	sdl.Quit()
}
