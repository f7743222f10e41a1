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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/massung/chip8vm/chip8"
	"github.com/retroenv/retrogolib/assert"
)

// beeper sets the sound timer to 3 and spins.
var beeper = []byte{
	0x60, 0x03,
	0xF0, 0x18,
	0x12, 0x04,
}

func TestExecuteRecordsBeeper(t *testing.T) {
	vm, err := chip8.LoadROM(beeper, chip8.WithSeed(1))
	assert.NoError(t, err)

	rec := NewRecorder()
	assert.NoError(t, execute(vm, 5, 10, rec))
	assert.Equal(t, 5*frameSamples, rec.Len())
	assert.Equal(t, byte(0), vm.SoundTimer())

	tone := rec.data[:3*frameSamples]
	silence := rec.data[3*frameSamples:]

	assert.Equal(t, 0xC0, tone[0])
	for _, v := range silence {
		assert.Equal(t, 0x80, v)
	}
}

func TestExecuteFault(t *testing.T) {
	vm, err := chip8.LoadROM([]byte{0x00, 0xEE})
	assert.NoError(t, err)

	err = execute(vm, 3, 10, nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
	assert.True(t, strings.HasPrefix(err.Error(), "frame 0"))
}

func TestReportSample(t *testing.T) {
	c := &Config{Frames: 1, IPF: 10, Seed: 1}

	vm, err := load(c, nil)
	assert.NoError(t, err)
	assert.NoError(t, execute(vm, c.Frames, c.IPF, nil))

	var buf bytes.Buffer
	report(&buf, vm)

	out := buf.String()
	lines := strings.Split(out, "\n")

	assert.Equal(t, strings.Repeat(".", 30)+"####"+strings.Repeat(".", 30), lines[14])
	assert.True(t, strings.Contains(out, "sha1: "+vm.Framebuffer().Digest()))
}

func TestRecorderSave(t *testing.T) {
	rec := NewRecorder()
	rec.Frame(true)
	rec.Frame(false)

	file := filepath.Join(t.TempDir(), "beep.wav")
	assert.NoError(t, rec.Save(file))

	data, err := os.ReadFile(file)
	assert.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.True(t, len(data) >= 44+rec.Len())
}
