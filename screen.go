/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"github.com/massung/chip8vm/chip8"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	Screen *sdl.Texture
)

/// InitScreen creates the render target for the CHIP-8 framebuffer.
///
func InitScreen() error {
	var err error

	Screen, err = Renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, chip8.Width, chip8.Height)
	if err != nil {
		return errors.Wrap(err, "creating screen texture")
	}

	return nil
}

/// RefreshScreen with the CHIP-8 framebuffer.
///
func RefreshScreen() {
	if err := Renderer.SetRenderTarget(Screen); err != nil {
		logger.Error(err.Error())
		return
	}

	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	fb := VM.Framebuffer()

	for p, lit := range fb {
		if lit {
			Renderer.DrawPoint(int32(p%chip8.Width), int32(p/chip8.Width))
		}
	}

	// restore the render target
	Renderer.SetRenderTarget(nil)
}

/// CopyScreen to the window, stretched to w x h.
///
func CopyScreen(x, y, w, h int32) {
	src := sdl.Rect{W: chip8.Width, H: chip8.Height}

	Renderer.Copy(Screen, &src, &sdl.Rect{X: x, Y: y, W: w, H: h})
}
