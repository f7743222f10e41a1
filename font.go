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
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Texture containing a predefined font for debugging, etc.
	///
	Font *sdl.Texture
)

/// InitFont loads the bitmap surface with font on it.
///
func InitFont() error {
	surface, err := sdl.LoadBMP("data/font.bmp")
	if err != nil {
		return errors.Wrap(err, "loading font")
	}
	defer surface.Free()

	// magenta is transparent
	mask := sdl.MapRGB(surface.Format, 255, 0, 255)
	surface.SetColorKey(true, mask)

	if Font, err = Renderer.CreateTextureFromSurface(surface); err != nil {
		return errors.Wrap(err, "creating font texture")
	}

	return nil
}

/// DrawText using the loaded font. Glyphs are 5x7 cells, 6 pixels apart,
/// starting at '!'.
///
func DrawText(s string, x, y int32) {
	src := sdl.Rect{W: 5, H: 7}
	dst := sdl.Rect{X: x, Y: y, W: 5, H: 7}

	for _, c := range s {
		if c > 32 && c < 94 {
			src.X = (c - 33) * 6

			Renderer.Copy(Font, &src, &dst)
		}

		// advance
		dst.X += 7
	}
}
