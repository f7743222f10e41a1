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
	"fmt"
	"math/bits"
	"sort"
)

/// opcode is one row of the decode table. A word matches when
/// word&mask == value.
///
type opcode struct {
	mask     uint16
	value    uint16
	mnemonic string

	// exec performs the instruction; PC has already been advanced
	exec func(vm *Machine, in Instruction) error

	// operands formats the operand list for disassembly
	operands func(in Instruction) string
}

func none(Instruction) string {
	return ""
}

func addr(in Instruction) string {
	return fmt.Sprintf("#%04X", in.NNN)
}

func vx(in Instruction) string {
	return fmt.Sprintf("V%X", in.X)
}

func vxByte(in Instruction) string {
	return fmt.Sprintf("V%X, #%02X", in.X, in.NN)
}

func vxvy(in Instruction) string {
	return fmt.Sprintf("V%X, V%X", in.X, in.Y)
}

func operandsf(format string) func(Instruction) string {
	return func(in Instruction) string {
		return fmt.Sprintf(format, in.X)
	}
}

var opcodes = []opcode{
	{0xFFFF, 0x00E0, "CLS", (*Machine).cls, none},
	{0xFFFF, 0x00EE, "RET", (*Machine).ret, none},
	{0xF000, 0x0000, "SYS", (*Machine).sys, addr},
	{0xF000, 0x1000, "JP", (*Machine).jump, addr},
	{0xF000, 0x2000, "CALL", (*Machine).call, addr},
	{0xF000, 0x3000, "SE", (*Machine).skipIf, vxByte},
	{0xF000, 0x4000, "SNE", (*Machine).skipIfNot, vxByte},
	{0xF00F, 0x5000, "SE", (*Machine).skipIfXY, vxvy},
	{0xF000, 0x6000, "LD", (*Machine).loadX, vxByte},
	{0xF000, 0x7000, "ADD", (*Machine).addX, vxByte},
	{0xF00F, 0x8000, "LD", (*Machine).loadXY, vxvy},
	{0xF00F, 0x8001, "OR", (*Machine).or, vxvy},
	{0xF00F, 0x8002, "AND", (*Machine).and, vxvy},
	{0xF00F, 0x8003, "XOR", (*Machine).xor, vxvy},
	{0xF00F, 0x8004, "ADD", (*Machine).addXY, vxvy},
	{0xF00F, 0x8005, "SUB", (*Machine).subXY, vxvy},
	{0xF00F, 0x8006, "SHR", (*Machine).shr, vx},
	{0xF00F, 0x8007, "SUBN", (*Machine).subYX, vxvy},
	{0xF00F, 0x800E, "SHL", (*Machine).shl, vx},
	{0xF00F, 0x9000, "SNE", (*Machine).skipIfNotXY, vxvy},
	{0xF000, 0xA000, "LD", (*Machine).loadI, func(in Instruction) string {
		return fmt.Sprintf("I, #%04X", in.NNN)
	}},
	{0xF000, 0xB000, "JP", (*Machine).jumpV0, func(in Instruction) string {
		return fmt.Sprintf("V0, #%04X", in.NNN)
	}},
	{0xF000, 0xC000, "RND", (*Machine).rnd, vxByte},
	{0xF000, 0xD000, "DRW", (*Machine).drw, func(in Instruction) string {
		return fmt.Sprintf("V%X, V%X, %d", in.X, in.Y, in.N)
	}},
	{0xF0FF, 0xE09E, "SKP", (*Machine).skipIfPressed, vx},
	{0xF0FF, 0xE0A1, "SKNP", (*Machine).skipIfNotPressed, vx},
	{0xF0FF, 0xF007, "LD", (*Machine).loadXDT, operandsf("V%X, DT")},
	{0xF0FF, 0xF00A, "LD", (*Machine).loadXK, operandsf("V%X, K")},
	{0xF0FF, 0xF015, "LD", (*Machine).loadDTX, operandsf("DT, V%X")},
	{0xF0FF, 0xF018, "LD", (*Machine).loadSTX, operandsf("ST, V%X")},
	{0xF0FF, 0xF01E, "ADD", (*Machine).addIX, operandsf("I, V%X")},
	{0xF0FF, 0xF029, "LD", (*Machine).loadF, operandsf("F, V%X")},
	{0xF0FF, 0xF033, "LD", (*Machine).loadB, operandsf("B, V%X")},
	{0xF0FF, 0xF055, "LD", (*Machine).saveRegs, operandsf("[I], V%X")},
	{0xF0FF, 0xF065, "LD", (*Machine).loadRegs, operandsf("V%X, [I]")},
}

func init() {
	// most specific masks are matched first: 00E0 must win over 0NNN
	sort.SliceStable(opcodes, func(i, j int) bool {
		return bits.OnesCount16(opcodes[i].mask) > bits.OnesCount16(opcodes[j].mask)
	})
}

/// lookup returns the table entry for an instruction word, or nil.
///
func lookup(word uint16) *opcode {
	for i := range opcodes {
		if word&opcodes[i].mask == opcodes[i].value {
			return &opcodes[i]
		}
	}

	return nil
}
