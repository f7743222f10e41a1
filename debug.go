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
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// True if pausing emulation (single stepping).
	///
	Paused bool

	/// The ROM file loaded, empty for the sample program.
	///
	File string

	/// Current debug window address.
	///
	Address int
)

/// LoadDialog asks for a ROM to load with the native file dialog.
///
func LoadDialog() {
	file, err := dialog.File().Filter("CHIP-8 ROM", "ch8", "c8").Title("Load ROM").Load()
	if err != nil {
		if err != dialog.ErrCancelled {
			logger.Error("File dialog failed", log.Err(err))
		}

		// keep whatever is running
		if VM == nil {
			Load("")
		}
		return
	}

	Load(file)
}

/// Show the HELP text in the log.
///
func DebugHelp() {
	Log.Logln("Virtual keys:")
	Log.Log("  1-2-3-4")
	Log.Log("  Q-W-E-R")
	Log.Log("  A-S-D-F")
	Log.Log("  Z-X-C-V")
	Log.Logln("Emulation keys:")
	Log.Log("  ESC      - Sample program")
	Log.Log("  BS       - Reset (CTRL paused)")
	Log.Log("  Pg Up/Dn - Scroll log")
	Log.Log("  H/F1     - Help")
	Log.Log("  F2       - Reload ROM")
	Log.Log("  F3       - Load ROM")
	Log.Log("  F5/SPACE - Pause")
	Log.Log("  F6/F10   - Step")
	Log.Log("  Arrows   - Move sample sprite")
}

/// DebugAssembly renders the disassembled instructions around
/// the CHIP-8 program counter.
///
func DebugAssembly(x, y int32) {
	pc := int(VM.PC)

	if Address <= pc-30 || Address > pc || (Address^pc)&1 == 1 {
		Address = pc - 2
	}
	if Address < 0 {
		Address = 0
	}

	// show the disassembled instructions
	for i := 0; i < 32; i += 2 {
		if Address+i == pc {
			if Paused {
				Renderer.SetDrawColor(176, 32, 57, 255)
			} else {
				Renderer.SetDrawColor(57, 102, 176, 255)
			}

			// highlight the current instruction
			Renderer.FillRect(&sdl.Rect{
				X: x,
				Y: y + int32(i*5) - 1,
				W: 200,
				H: 10,
			})
		}

		DrawText(VM.Disassemble(Address+i), x, y+int32(i*5))
	}
}

/// Show the current value of all the CHIP-8 registers.
///
func DebugRegisters(x, y int32) {
	for i := 0; i < 16; i++ {
		DrawText(fmt.Sprintf("  V%X - #%02X", i, VM.Register(i)), x, y+int32(i*10))
	}

	// shift over for the other registers
	x += 84

	DrawText(fmt.Sprintf("PC - #%04X", VM.PC), x, y)
	DrawText(fmt.Sprintf("SP - #%02X", VM.SP), x, y+10)
	DrawText(fmt.Sprintf("I  - #%04X", VM.I), x, y+30)
	DrawText(fmt.Sprintf("DT - #%02X", VM.DelayTimer()), x, y+50)
	DrawText(fmt.Sprintf("ST - #%02X", VM.SoundTimer()), x, y+60)

	if VM.Waiting() {
		DrawText("KEY?", x, y+80)
	}
}

/// Show the current log text.
///
func DebugLog(x, y int32) {
	for _, line := range Log.Window(16) {
		if len(line) >= 52 {
			line = line[:49] + "..."
		}

		DrawText(line, x, y)

		// advance to the next line
		y += 10
	}
}
