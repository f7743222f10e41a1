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
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/massung/chip8vm/chip8"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	config := parseArgs()
	logger := createLogger(config)

	if config.StatsView != "" {
		launchStats(config.StatsView, logger)
	}

	vm, err := load(config, logger)
	if err != nil {
		logger.Fatal("Loading ROM failed", log.String("file", config.ROM), log.Err(err))
	}

	var rec *Recorder
	if config.Wav != "" {
		rec = NewRecorder()
	}

	runErr := execute(vm, config.Frames, config.IPF, rec)
	if runErr != nil {
		logger.Error("Machine halted", log.Err(runErr))
	}

	report(os.Stdout, vm)

	logger.Info("Finished",
		log.Int("frames", config.Frames),
		log.Int("cycles", int(vm.Cycles())),
		log.Hex("pc", vm.PC))

	if rec != nil {
		if err := rec.Save(config.Wav); err != nil {
			logger.Error("Writing WAV failed", log.Err(err))
		}
	}

	if config.Memviz != "" {
		if err := dumpState(config.Memviz, vm); err != nil {
			logger.Error("Writing memviz dump failed", log.Err(err))
		}
	}

	if runErr != nil {
		os.Exit(1)
	}
}

// load builds the machine for the configured ROM, or the sample program.
func load(c *Config, logger *log.Logger) (*chip8.Machine, error) {
	opts := []chip8.Option{
		chip8.WithLogger(logger),
		chip8.WithSeed(c.Seed),
	}

	if c.ROM == "" {
		return chip8.LoadSample(opts...)
	}
	return chip8.LoadFile(c.ROM, opts...)
}

// execute runs the machine for a number of frames. Each frame executes ipf
// instructions, records the beeper and then ticks both timers once.
func execute(vm *chip8.Machine, frames, ipf int, rec *Recorder) error {
	for f := 0; f < frames; f++ {
		if err := vm.Run(ipf); err != nil {
			return errors.Wrapf(err, "frame %d", f)
		}

		if rec != nil {
			rec.Frame(vm.Beeping())
		}

		vm.TickTimers()
	}

	return nil
}

// report prints the final framebuffer and its digest.
func report(w io.Writer, vm *chip8.Machine) {
	fb := vm.Framebuffer()

	fmt.Fprint(w, fb.String())
	fmt.Fprintf(w, "sha1: %s\n", fb.Digest())
}

// dumpState writes a graphviz rendering of the machine to file.
func dumpState(file string, vm *chip8.Machine) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrap(err, "creating memviz file")
	}
	defer f.Close()

	memviz.Map(f, vm)
	return nil
}

// launchStats serves runtime statistics in the background.
func launchStats(addr string, logger *log.Logger) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		mgr.Start()
	}()

	logger.Info("Stats server started", log.String("url", "http://"+addr+"/debug/statsview"))
}
