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
	Input   string // Input source file to assemble.
	Output  string // Path to store the ROM in.
	Listing bool   // Print a disassembled listing of the ROM to stdout.
	Debug   bool   // Enable debug logging.
	Quiet   bool   // Only log errors.
}

// parseArgs parses command line arguments.
//
// If an error occurred, this exits the program with an appropriate message.
func parseArgs() *Config {
	var c Config

	flag.Usage = func() {
		fmt.Printf("%s [options] <input source file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Output, "o", c.Output, "Output ROM file. Defaults to the input with a .ch8 extension.")
	flag.BoolVar(&c.Listing, "list", c.Listing, "Print a disassembled listing of the ROM.")
	flag.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging.")
	flag.BoolVar(&c.Quiet, "q", c.Quiet, "Only log errors.")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.Input = flag.Arg(0)
	if c.Output == "" {
		c.Output = outputName(c.Input)
	}
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
