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
	ROM       string // ROM to run, empty for the sample program.
	Frames    int    // Number of 60 Hz frames to run.
	IPF       int    // Instructions executed per frame.
	Seed      int64  // RND seed.
	Wav       string // Record the beeper to this WAV file.
	Memviz    string // Write a graphviz dump of the final machine state here.
	StatsView string // Serve runtime stats on this address while running.
	Debug     bool   // Enable debug logging.
	Quiet     bool   // Only log errors.
}

// parseArgs parses command line arguments.
//
// If an error occurred, this exits the program with an appropriate message.
func parseArgs() *Config {
	c := Config{
		Frames: 60,
		IPF:    10,
		Seed:   1,
	}

	flag.Usage = func() {
		fmt.Printf("%s [options] [rom file]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.Frames, "frames", c.Frames, "Number of frames to run.")
	flag.IntVar(&c.IPF, "ipf", c.IPF, "Instructions per frame.")
	flag.Int64Var(&c.Seed, "seed", c.Seed, "Random number seed.")
	flag.StringVar(&c.Wav, "wav", c.Wav, "Record the sound timer to a WAV file.")
	flag.StringVar(&c.Memviz, "memviz", c.Memviz, "Write a graphviz dump of the final machine state.")
	flag.StringVar(&c.StatsView, "statsview", c.StatsView, "Serve runtime statistics on this address, e.g. localhost:12600.")
	flag.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging.")
	flag.BoolVar(&c.Quiet, "q", c.Quiet, "Only log errors.")
	flag.Parse()

	if c.Frames < 0 || c.IPF <= 0 {
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
