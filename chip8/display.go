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

package chip8

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

const (
	Width  = 64
	Height = 32
)

/// Display is the monochrome framebuffer, row-major. Coordinates wrap on
/// both axes, so there is no off-screen state.
///
type Display [Width * Height]bool

func index(x, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}

	y %= Height
	if y < 0 {
		y += Height
	}

	return y*Width + x
}

/// At returns true if the pixel at <x,y> is lit.
///
func (d Display) At(x, y int) bool {
	return d[index(x, y)]
}

/// toggle flips the pixel at <x,y> and returns true if it was lit.
///
func (d *Display) toggle(x, y int) bool {
	i := index(x, y)

	lit := d[i]
	d[i] = !lit

	return lit
}

/// Clear turns off every pixel.
///
func (d *Display) Clear() {
	*d = Display{}
}

/// Lit counts the pixels that are on.
///
func (d Display) Lit() int {
	n := 0
	for _, p := range d {
		if p {
			n++
		}
	}

	return n
}

/// Bytes packs the display MSB first: pixel <0,0> is bit 0x80 of byte 0.
///
func (d Display) Bytes() []byte {
	b := make([]byte, len(d)/8)

	for p, lit := range d {
		if lit {
			b[p>>3] |= 0x80 >> uint(p&7)
		}
	}

	return b
}

/// Digest is a sha1 fingerprint of the display contents.
///
func (d Display) Digest() string {
	return fmt.Sprintf("%x", sha1.Sum(d.Bytes()))
}

/// String renders the display as rows of '#' and '.'.
///
func (d Display) String() string {
	var sb strings.Builder

	sb.Grow((Width + 1) * Height)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if d[y*Width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
