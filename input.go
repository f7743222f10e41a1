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
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys.
	///
	KeyMap = map[sdl.Scancode]uint{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

/// ProcessEvents from SDL and map keys to the CHIP-8 VM.
///
func ProcessEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			key, mapped := KeyMap[ev.Keysym.Scancode]

			if ev.Type == sdl.KEYUP {
				if mapped {
					VM.ReleaseKey(key)
				}
				continue
			}

			if mapped {
				VM.PressKey(key)
				continue
			}

			if ev.Repeat == 0 || isRepeatable(ev.Keysym.Scancode) {
				command(ev.Keysym)
			}
		}
	}

	return true
}

func isRepeatable(code sdl.Scancode) bool {
	switch code {
	case sdl.SCANCODE_PAGEUP, sdl.SCANCODE_PAGEDOWN, sdl.SCANCODE_LEFT, sdl.SCANCODE_RIGHT, sdl.SCANCODE_UP, sdl.SCANCODE_DOWN:
		return true
	}
	return false
}

/// command handles an emulator key that isn't part of the CHIP-8 keypad.
///
func command(sym sdl.Keysym) {
	switch sym.Scancode {
	case sdl.SCANCODE_ESCAPE:
		Log.Logln("Unloading ROM")

		// go back to the sample program
		Load("")
	case sdl.SCANCODE_BACKSPACE:
		VM.Reset()

		// holding control during reset will reboot paused
		if sym.Mod&sdl.KMOD_CTRL != 0 {
			Paused = true
		}

		Log.Logln("Reset")
	case sdl.SCANCODE_PAGEUP:
		Log.Scroll(-1)
	case sdl.SCANCODE_PAGEDOWN:
		Log.Scroll(1)
	case sdl.SCANCODE_HOME:
		Log.Home()
	case sdl.SCANCODE_END:
		Log.End()
	case sdl.SCANCODE_F2:
		Load(File)
	case sdl.SCANCODE_F3:
		LoadDialog()
	case sdl.SCANCODE_H, sdl.SCANCODE_F1:
		DebugHelp()
	case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
		Paused = !Paused
	case sdl.SCANCODE_F6, sdl.SCANCODE_F10:
		if Paused {
			Step()
		}
	case sdl.SCANCODE_LEFT:
		Nudge(0, -1)
	case sdl.SCANCODE_RIGHT:
		Nudge(0, 1)
	case sdl.SCANCODE_UP:
		Nudge(1, -1)
	case sdl.SCANCODE_DOWN:
		Nudge(1, 1)
	}
}

/// Nudge moves the sample program's sprite by adjusting register x. The
/// draw instruction is executed once to erase the sprite and once more to
/// redraw it at the new position.
///
func Nudge(x int, delta int8) {
	if File != "" {
		return
	}

	redraw := func() bool {
		if err := VM.SetProgramCounter(chip8.SampleDrawAddress); err != nil {
			return false
		}
		return VM.Step() == nil
	}

	if !redraw() {
		return
	}

	VM.AdjustRegister(x, delta)
	redraw()
}
