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

const sampleSource = `
; draw a box and spin
.BOX    EQU #300
        LD  I, BOX
        LD  V0, 30
        LD  V1, 14
        DRW V0, V1, 4
.LOOP   JP  LOOP
`

func TestAssembleSample(t *testing.T) {
	asm, err := Assemble([]byte(sampleSource))
	assert.NoError(t, err)
	assert.Equal(t, SampleProgram(), asm.ROM)
}

func TestAssembleForwardReference(t *testing.T) {
	src := `
        CALL SUB
        JP   END
.SUB    CLS
        RET
.END    JP   END
.TABLE  WORD SUB, END
`

	asm, err := Assemble([]byte(src))
	assert.NoError(t, err)
	assert.Equal(t, []byte{
		0x22, 0x04,
		0x12, 0x08,
		0x00, 0xE0,
		0x00, 0xEE,
		0x12, 0x08,
		0x02, 0x04, 0x02, 0x08,
	}, asm.ROM)
	assert.Equal(t, 0, len(asm.Unresolved))

	addrs := asm.Addresses()
	assert.Equal(t, 0x204, addrs["SUB"])
	assert.Equal(t, 0x208, addrs["END"])
	assert.Equal(t, 0x20A, addrs["TABLE"])
}

func TestAssembleInstructions(t *testing.T) {
	tests := []struct {
		src  string
		want []byte
	}{
		{"SYS #123", []byte{0x01, 0x23}},
		{"JP V0, #345", []byte{0xB3, 0x45}},
		{"SE V3, #12", []byte{0x33, 0x12}},
		{"SE V3, V4", []byte{0x53, 0x40}},
		{"SNE VA, 255", []byte{0x4A, 0xFF}},
		{"SNE VA, VB", []byte{0x9A, 0xB0}},
		{"ADD V1, -1", []byte{0x71, 0xFF}},
		{"ADD V1, V2", []byte{0x81, 0x24}},
		{"ADD I, V7", []byte{0xF7, 0x1E}},
		{"OR V1, V2", []byte{0x81, 0x21}},
		{"AND V1, V2", []byte{0x81, 0x22}},
		{"XOR V1, V2", []byte{0x81, 0x23}},
		{"SUB V1, V2", []byte{0x81, 0x25}},
		{"SUBN V1, V2", []byte{0x81, 0x27}},
		{"SHR V1", []byte{0x81, 0x16}},
		{"SHL V1", []byte{0x81, 0x1E}},
		{"RND V2, $1111....", []byte{0xC2, 0xF0}},
		{"SKP V4", []byte{0xE4, 0x9E}},
		{"SKNP V4", []byte{0xE4, 0xA1}},
		{"LD V5, V6", []byte{0x85, 0x60}},
		{"LD V5, DT", []byte{0xF5, 0x07}},
		{"LD V5, K", []byte{0xF5, 0x0A}},
		{"LD DT, V5", []byte{0xF5, 0x15}},
		{"LD ST, V5", []byte{0xF5, 0x18}},
		{"LD F, V5", []byte{0xF5, 0x29}},
		{"LD B, V5", []byte{0xF5, 0x33}},
		{"LD [I], V5", []byte{0xF5, 0x55}},
		{"LD V5, [I]", []byte{0xF5, 0x65}},
		{"BYTE 1, #FF, \"AB\"", []byte{0x01, 0xFF, 'A', 'B'}},
		{"PAD 3", []byte{0, 0, 0}},
		{"ld v5, #ab", []byte{0x65, 0xAB}},
		{"BYTE $1111.... ; sprite row", []byte{0xF0}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			asm, err := Assemble([]byte("  " + tt.src))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, asm.ROM)
		})
	}
}

func TestAssembleVar(t *testing.T) {
	src := `
.X      VAR V3
        LD  X, 7
`

	asm, err := Assemble([]byte(src))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x63, 0x07}, asm.ROM)
}

func TestAssembleAlign(t *testing.T) {
	asm, err := Assemble([]byte("  BYTE 1\n  ALIGN 4\n  BYTE 2\n  ALIGN 2\n"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0}, asm.ROM)
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unindented instruction", "CLS"},
		{"unknown operands", "  CLS V0"},
		{"byte out of range", "  LD V0, 256"},
		{"address out of range", "  JP #1000"},
		{"sprite too tall", "  DRW V0, V1, 16"},
		{"jump offset register", "  JP V1, #200"},
		{"unresolved label", "  JP NOWHERE"},
		{"duplicate label", ".A\n.A\n"},
		{"bad indirection", "  LD [V0], V1"},
		{"bad alignment", "  ALIGN 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm, err := Assemble([]byte(tt.src))
			assert.Error(t, err)
			assert.Nil(t, asm)
		})
	}
}

func TestAssembleRuns(t *testing.T) {
	// count V0 down from 3 in a subroutine, storing the BCD of V1
	src := `
        LD   V0, 3
.AGAIN  CALL DEC
        SE   V0, 0
        JP   AGAIN
        LD   I, #400
        LD   B, V1
.HALT   JP   HALT
.DEC    ADD  V0, -1
        ADD  V1, 100
        RET
`

	asm, err := Assemble([]byte(src))
	assert.NoError(t, err)

	vm, err := LoadROM(asm.ROM)
	assert.NoError(t, err)
	assert.NoError(t, vm.Run(100))

	assert.Equal(t, byte(0), vm.V[0])
	assert.Equal(t, byte(44), vm.V[1])
	assert.Equal(t, uint8(0), vm.SP)
	assert.Equal(t, []byte{0, 4, 4}, vm.Memory[0x400:0x403])
}
