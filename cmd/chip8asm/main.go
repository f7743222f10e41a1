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
	"path/filepath"
	"sort"
	"strings"

	"github.com/massung/chip8vm/chip8"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	config := parseArgs()
	logger := createLogger(config)

	asm, err := assemble(config.Input, config.Output)
	if err != nil {
		logger.Fatal("Assembling failed", log.String("file", config.Input), log.Err(err))
	}

	logger.Info("Assembled ROM",
		log.String("file", config.Output),
		log.Int("size", len(asm.ROM)),
		log.Int("labels", len(asm.Labels)))

	if config.Listing {
		listing(os.Stdout, asm)
	}
}

// assemble reads a source file, assembles it and writes the ROM to output.
func assemble(input, output string) (*chip8.Assembly, error) {
	src, err := os.ReadFile(input)
	if err != nil {
		return nil, errors.Wrap(err, "reading source")
	}

	asm, err := chip8.Assemble(src)
	if err != nil {
		return nil, errors.Wrapf(err, "assembling %s", input)
	}

	if err := os.WriteFile(output, asm.ROM, 0644); err != nil {
		return nil, errors.Wrap(err, "writing ROM")
	}

	return asm, nil
}

// listing writes the label table followed by the disassembled ROM.
func listing(w io.Writer, asm *chip8.Assembly) {
	vm, err := chip8.LoadROM(asm.ROM)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}

	labels := make(map[int][]string)
	for name, addr := range asm.Addresses() {
		labels[addr] = append(labels[addr], name)
	}

	for _, names := range labels {
		sort.Strings(names)
	}

	end := chip8.ProgramStart + len(asm.ROM)
	for i := chip8.ProgramStart; i < end; i += 2 {
		for _, name := range labels[i] {
			fmt.Fprintf(w, ".%s\n", name)
		}

		fmt.Fprintf(w, "  %s\n", vm.Disassemble(i))
	}
}

// outputName swaps the extension of a source file for .ch8.
func outputName(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".ch8"
}
