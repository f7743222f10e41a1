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
	"runtime"
	"time"

	"github.com/massung/chip8vm/chip8"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// The CHIP-8 virtual machine.
	///
	VM *chip8.Machine

	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer

	/// Options every loaded machine is created with.
	///
	Options []chip8.Option

	/// Console logger.
	///
	logger *log.Logger
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := parseArgs()
	logger = createLogger(cfg)

	if err := run(cfg); err != nil {
		logger.Fatal(err.Error())
	}
}

func run(cfg *Config) error {
	var err error

	Options = []chip8.Option{
		chip8.WithLogger(logger),
		chip8.WithDiagnostics(func(d chip8.Diagnostic) {
			Log.Log(d.String())
		}),
	}

	if cfg.Seed != 0 {
		Options = append(Options, chip8.WithSeed(cfg.Seed))
	}

	// initialize SDL
	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return errors.Wrap(err, "sdl.Init failed")
	}
	defer sdl.Quit()

	// create the main window and renderer
	flags := sdl.WINDOW_OPENGL | sdl.WINDOWPOS_CENTERED
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(550, 348, uint32(flags)); err != nil {
		return errors.Wrap(err, "sdl.CreateWindowAndRenderer failed")
	}
	defer Window.Destroy()

	// set the icon
	if icon, err := sdl.LoadBMP("data/chip_8.bmp"); err == nil {
		mask := sdl.MapRGB(icon.Format, 255, 0, 255)

		// create the mask color key and set the icon
		icon.SetColorKey(true, mask)
		Window.SetIcon(icon)
	}

	Window.SetTitle("CHIP-8")

	// initialize subsystems
	if err = InitScreen(); err != nil {
		return err
	}
	if err = InitAudio(); err != nil {
		return err
	}
	if err = InitFont(); err != nil {
		return err
	}
	defer CloseAudio()

	// pick the program to run
	if cfg.Dialog {
		LoadDialog()
	} else {
		Load(cfg.ROM)
	}

	Paused = cfg.Paused

	// instructions run at the configured speed, timers and video at 60 Hz
	clock := time.NewTicker(time.Second / time.Duration(cfg.Speed))
	video := time.NewTicker(time.Second / 60)
	defer clock.Stop()
	defer video.Stop()

	// loop until window closed or user quit
	for ProcessEvents() {
		select {
		case <-video.C:
			VM.TickTimers()
			UpdateAudio()
			Refresh()
		case <-clock.C:
			if !Paused {
				Step()
			}
		}
	}

	return nil
}

/// Step the machine one instruction, pausing on a fault.
///
func Step() {
	if err := VM.Step(); err != nil {
		Paused = true
		Log.Logln("Halted:", err.Error())
	}
}

/// Load a ROM file, or the sample program if file is empty.
///
func Load(file string) {
	var vm *chip8.Machine
	var err error

	if file == "" {
		vm, err = chip8.LoadSample(Options...)
	} else {
		vm, err = chip8.LoadFile(file, Options...)
	}

	if err != nil {
		logger.Error("Loading ROM failed", log.String("file", file), log.Err(err))
		Log.Logln("Failed to load", file)

		// fall back to the sample program rather than an empty machine
		if VM == nil {
			VM, _ = chip8.LoadSample(Options...)
		}
		return
	}

	VM = vm
	File = file

	if file == "" {
		Log.Logln("Loaded sample program")
	} else {
		Log.Logln("Loaded", file)
		logger.Info("Loaded ROM", log.String("file", file))
	}
}

func Refresh() {
	Renderer.SetDrawColor(32, 42, 53, 255)
	Renderer.Clear()

	// frame various portions of the app
	Frame(8, 8, 322, 162)
	Frame(338, 8, 204, 162)
	Frame(8, 176, 146, 164)
	Frame(162, 176, 380, 164)

	// update the video screen and copy it
	RefreshScreen()
	CopyScreen(10, 10, 320, 160)

	// debug assembly, virtual registers and log
	DebugAssembly(342, 12)
	DebugRegisters(12, 180)
	DebugLog(166, 180)

	// show the new frame
	Renderer.Present()
}

func Frame(x, y, w, h int32) {
	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.DrawLine(x, y, x+w, y)
	Renderer.DrawLine(x, y, x, y+h)

	// highlight
	Renderer.SetDrawColor(95, 112, 120, 255)
	Renderer.DrawLine(x+w, y, x+w, y+h)
	Renderer.DrawLine(x, y+h, x+w, y+h)
}
