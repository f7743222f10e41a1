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

/// SampleGlyph is the 4x4 box the sample program draws.
///
var SampleGlyph = []byte{0xF0, 0x90, 0x90, 0xF0}

/// SampleGlyphAddress is where the sample program keeps its glyph.
///
const SampleGlyphAddress = 0x300

/// SampleDrawAddress is the sample program's DRW instruction.
///
const SampleDrawAddress = 0x206

/// SampleProgram returns the demo: draw the glyph at <30,14> and spin.
///
///     LD  I, #300
///     LD  V0, 30
///     LD  V1, 14
///     DRW V0, V1, 4
///   .LOOP
///     JP  LOOP
///
func SampleProgram() []byte {
	return []byte{
		0xA3, 0x00,
		0x60, 0x1E,
		0x61, 0x0E,
		0xD0, 0x14,
		0x12, 0x08,
	}
}

/// LoadSample returns a machine with the sample program and its glyph
/// loaded.
///
func LoadSample(opts ...Option) (*Machine, error) {
	vm, err := LoadROM(SampleProgram(), opts...)
	if err != nil {
		return nil, err
	}

	if err := vm.Load(SampleGlyphAddress, SampleGlyph); err != nil {
		return nil, err
	}

	return vm, nil
}
