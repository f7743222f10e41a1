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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x0123, "SYS    #0123"},
		{0x1208, "JP     #0208"},
		{0x2ABC, "CALL   #0ABC"},
		{0x3A12, "SE     VA, #12"},
		{0x5AB0, "SE     VA, VB"},
		{0x8AB6, "SHR    VA"},
		{0xA300, "LD     I, #0300"},
		{0xB300, "JP     V0, #0300"},
		{0xD014, "DRW    V0, V1, 4"},
		{0xE19E, "SKP    V1"},
		{0xF50A, "LD     V5, K"},
		{0xF533, "LD     B, V5"},
		{0xF555, "LD     [I], V5"},
		{0x5AB1, "??"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Disassemble(tt.word))
	}
}

func TestMachineDisassemble(t *testing.T) {
	vm, err := LoadSample()
	assert.NoError(t, err)

	assert.Equal(t, "0200 - LD     I, #0300", vm.Disassemble(0x200))
	assert.Equal(t, "0206 - DRW    V0, V1, 4", vm.Disassemble(0x206))
	assert.Equal(t, "020A -", vm.Disassemble(0x20A))
	assert.Equal(t, "", vm.Disassemble(MemorySize-1))
}

func TestDisassembleRoundTrip(t *testing.T) {
	// every table entry disassembles to source the assembler accepts
	for _, word := range []uint16{0x00E0, 0x1234, 0x2345, 0x3456, 0x4567, 0x5670, 0x6789, 0x789A,
		0x89A0, 0x89A1, 0x89A2, 0x89A3, 0x89A4, 0x89A5, 0x8996, 0x89A7, 0x899E, 0x9AB0,
		0xABCD, 0xB123, 0xC1FF, 0xD12F, 0xE29E, 0xE3A1, 0xF407, 0xF50A, 0xF615, 0xF718,
		0xF81E, 0xF929, 0xFA33, 0xFB55, 0xFC65, 0x00EE, 0x0123} {
		asm, err := Assemble([]byte("  " + Disassemble(word)))
		assert.NoError(t, err)
		assert.Equal(t, []byte{byte(word >> 8), byte(word)}, asm.ROM)
	}
}
