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
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// Config defines program configuration.
type Config struct {
	ROM    string // Path to the ROM to load, or empty for the sample program.
	Speed  int    // Instructions executed per second.
	Dialog bool   // Pick the ROM with a file dialog.
	Paused bool   // Start paused for single stepping.
	Debug  bool   // Log every diagnostic at debug level.
	Quiet  bool   // Only log errors.
	Seed   int64  // RND seed, 0 for time based.
}

// parseArgs parses command line arguments.
func parseArgs() *Config {
	c := Config{Speed: 500}

	flag.Usage = func() {
		fmt.Printf("%s [options] [rom file]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.Speed, "speed", c.Speed, "Instructions per second.")
	flag.BoolVar(&c.Dialog, "dialog", c.Dialog, "Choose the ROM with a file dialog.")
	flag.BoolVar(&c.Paused, "paused", c.Paused, "Start paused.")
	flag.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging.")
	flag.BoolVar(&c.Quiet, "q", c.Quiet, "Only log errors.")
	flag.Int64Var(&c.Seed, "seed", c.Seed, "Random number seed.")
	flag.Parse()

	if c.Speed <= 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.ROM = flag.Arg(0)
	return &c
}

// createLogger creates a logger with the configured level.
func createLogger(c *Config) *log.Logger {
	cfg := log.DefaultConfig()
	if c.Debug {
		cfg.Level = log.DebugLevel
	} else if c.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
