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
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// program assembles instruction words into a machine at ProgramStart.
func program(t *testing.T, words ...uint16) *Machine {
	t.Helper()

	rom := make([]byte, 0, len(words)*2)
	for _, w := range words {
		rom = append(rom, byte(w>>8), byte(w))
	}

	vm, err := LoadROM(rom, WithSeed(1))
	assert.NoError(t, err)

	return vm
}

func TestNew(t *testing.T) {
	vm := New()

	assert.Equal(t, uint16(ProgramStart), vm.PC)
	assert.Equal(t, uint8(0), vm.SP)
	assert.Equal(t, uint16(0), vm.I)
	assert.Equal(t, byte(0), vm.DT)
	assert.Equal(t, byte(0), vm.ST)
	assert.Equal(t, 0, vm.video.Lit())
	assert.Equal(t, Font[0], vm.Memory[FontBase])

	for _, b := range vm.Memory[ProgramStart:] {
		assert.Equal(t, byte(0), b)
	}
}

func TestFetch(t *testing.T) {
	vm := New()

	for pc := 0; pc < MemorySize-1; pc += 97 {
		vm.Memory[pc] = byte(pc)
		vm.Memory[pc+1] = byte(pc >> 4)
		vm.PC = uint16(pc)

		word, err := vm.fetch()
		assert.NoError(t, err)
		assert.Equal(t, uint16(pc+2), vm.PC)
		assert.Equal(t, uint16(vm.Memory[pc])<<8|uint16(vm.Memory[pc+1]), word)
	}
}

func TestFetchBounds(t *testing.T) {
	vm := New()
	vm.PC = 0xFFF

	_, err := vm.Tick()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrBounds))
	assert.Equal(t, uint16(0xFFF), vm.PC)

	var fault *Error
	assert.True(t, errors.As(err, &fault))
	assert.Equal(t, 0x1000, fault.Addr)
}

func TestLoadBounds(t *testing.T) {
	vm := New()

	assert.NoError(t, vm.Load(ProgramStart, make([]byte, MemorySize-ProgramStart)))

	err := vm.Load(ProgramStart, make([]byte, MemorySize-ProgramStart+1))
	assert.True(t, errors.Is(err, ErrBounds))

	_, err = LoadROM(make([]byte, 0x1000))
	assert.True(t, errors.Is(err, ErrBounds))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.ch8")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	in := Decode(0xD12F)

	assert.Equal(t, uint16(0xD12F), in.Word)
	assert.Equal(t, byte(0xD), in.Op)
	assert.Equal(t, byte(0x1), in.X)
	assert.Equal(t, byte(0x2), in.Y)
	assert.Equal(t, byte(0xF), in.N)
	assert.Equal(t, byte(0x2F), in.NN)
	assert.Equal(t, uint16(0x12F), in.NNN)
}

func TestLookupSpecificity(t *testing.T) {
	tests := []struct {
		word     uint16
		mnemonic string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x00E1, "SYS"},
		{0x0123, "SYS"},
		{0x8AB6, "SHR"},
		{0xF265, "LD"},
	}

	for _, tt := range tests {
		op := lookup(tt.word)
		assert.NotNil(t, op)
		assert.Equal(t, tt.mnemonic, op.mnemonic)
	}

	assert.True(t, lookup(0x5121) == nil)
	assert.True(t, lookup(0x800F) == nil)
	assert.True(t, lookup(0xE000) == nil)
	assert.True(t, lookup(0xF0FF) == nil)
}

func TestJumpIdempotent(t *testing.T) {
	vm := program(t, 0x1208, 0, 0, 0, 0x1208)

	assert.NoError(t, vm.Step())
	assert.Equal(t, uint16(0x208), vm.PC)

	assert.NoError(t, vm.Step())
	assert.Equal(t, uint16(0x208), vm.PC)
}

func TestCallReturn(t *testing.T) {
	// 200: CALL 206
	// 202: JP 202
	// 206: RET
	vm := program(t, 0x2206, 0x1202, 0x0000, 0x00EE)

	assert.NoError(t, vm.Step())
	assert.Equal(t, uint16(0x206), vm.PC)
	assert.Equal(t, uint8(1), vm.SP)
	assert.Equal(t, uint16(0x202), vm.Stack[0])

	assert.NoError(t, vm.Step())
	assert.Equal(t, uint16(0x202), vm.PC)
	assert.Equal(t, uint8(0), vm.SP)
}

func TestStackOverflow(t *testing.T) {
	// CALL 200 forever
	vm := program(t, 0x2200)

	assert.NoError(t, vm.Run(StackDepth))
	assert.Equal(t, uint8(StackDepth), vm.SP)

	err := vm.Step()
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, uint8(StackDepth), vm.SP)
}

func TestStackUnderflow(t *testing.T) {
	vm := program(t, 0x00EE)

	err := vm.Step()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.False(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, uint8(0), vm.SP)
}

func TestUnknownInstruction(t *testing.T) {
	var reported []Diagnostic

	rom := []byte{0x5A, 0xB1}
	vm, err := LoadROM(rom, WithDiagnostics(func(d Diagnostic) {
		reported = append(reported, d)
	}))
	assert.NoError(t, err)

	vm.V[0xA] = 3
	vm.I = 0x123
	vm.DT = 9
	vm.video.toggle(5, 5)

	before := *vm

	d, err := vm.Tick()
	assert.NoError(t, err)
	assert.NotNil(t, d)
	assert.Equal(t, uint16(0x200), d.PC)
	assert.Equal(t, uint16(0x5AB1), d.Word)
	assert.Len(t, reported, 1)

	assert.Equal(t, before.PC+2, vm.PC)
	assert.True(t, before.V == vm.V)
	assert.True(t, before.Memory == vm.Memory)
	assert.True(t, before.Stack == vm.Stack)
	assert.Equal(t, before.SP, vm.SP)
	assert.Equal(t, before.I, vm.I)
	assert.True(t, before.video == vm.video)
}

func TestSampleProgram(t *testing.T) {
	vm, err := LoadSample()
	assert.NoError(t, err)

	assert.NoError(t, vm.Run(4))
	assert.Equal(t, uint16(0x300), vm.I)
	assert.Equal(t, byte(30), vm.V[0])
	assert.Equal(t, byte(14), vm.V[1])
	assert.Equal(t, byte(0), vm.V[0xF])

	fb := vm.Framebuffer()

	for row, b := range SampleGlyph {
		for col := 0; col < 8; col++ {
			want := b&(0x80>>uint(col)) != 0
			assert.Equal(t, want, fb.At(30+col, 14+row))
		}
	}

	assert.Equal(t, 12, fb.Lit())

	// it spins on the jump without touching the display again
	assert.NoError(t, vm.Run(10))
	assert.Equal(t, uint16(0x208), vm.PC)
	assert.True(t, fb == vm.Framebuffer())
}

func TestReset(t *testing.T) {
	vm, err := LoadSample()
	assert.NoError(t, err)

	assert.NoError(t, vm.Run(4))
	vm.Memory[0x300] = 0
	vm.Reset()

	assert.Equal(t, uint16(ProgramStart), vm.PC)
	assert.Equal(t, byte(0), vm.V[0])
	assert.Equal(t, 0, vm.video.Lit())
	assert.Equal(t, byte(0xF0), vm.Memory[0x300])
	assert.Equal(t, int64(0), vm.Cycles())
}

func TestAdjustRegister(t *testing.T) {
	vm := New()

	vm.AdjustRegister(0, -1)
	assert.Equal(t, byte(0xFF), vm.V[0])

	vm.AdjustRegister(0, 2)
	assert.Equal(t, byte(1), vm.V[0])

	vm.AdjustRegister(1, 127)
	vm.AdjustRegister(1, 1)
	assert.Equal(t, byte(0x80), vm.Register(1))
}

func TestSetProgramCounter(t *testing.T) {
	vm := New()

	assert.NoError(t, vm.SetProgramCounter(0x206))
	assert.Equal(t, uint16(0x206), vm.PC)

	err := vm.SetProgramCounter(0x1000)
	assert.True(t, errors.Is(err, ErrBounds))
	assert.Equal(t, uint16(0x206), vm.PC)
}

func TestPeek(t *testing.T) {
	vm := New()

	b, err := vm.Peek(FontBase + 1)
	assert.NoError(t, err)
	assert.Equal(t, Font[1], b)

	_, err = vm.Peek(MemorySize)
	assert.True(t, errors.Is(err, ErrBounds))
}

func TestSampleRedraw(t *testing.T) {
	vm, err := LoadSample()
	assert.NoError(t, err)
	assert.NoError(t, vm.Run(4))

	// drawing again erases the glyph
	assert.NoError(t, vm.SetProgramCounter(SampleDrawAddress))
	assert.NoError(t, vm.Step())
	assert.Equal(t, 0, vm.Framebuffer().Lit())
	assert.Equal(t, byte(1), vm.V[0xF])

	vm.AdjustRegister(0, 1)
	assert.NoError(t, vm.SetProgramCounter(SampleDrawAddress))
	assert.NoError(t, vm.Step())

	fb := vm.Framebuffer()
	assert.Equal(t, 12, fb.Lit())
	assert.True(t, fb.At(31, 14))
	assert.False(t, fb.At(30, 14))
	assert.Equal(t, uint16(0x208), vm.PC)
}
