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

import "fmt"

/// Disassemble a single instruction word.
///
func Disassemble(inst uint16) string {
	op := lookup(inst)
	if op == nil {
		return "??"
	}

	if s := op.operands(Decode(inst)); s != "" {
		return fmt.Sprintf("%-6s %s", op.mnemonic, s)
	}

	return op.mnemonic
}

/// Disassemble the instruction at address i in memory.
///
func (vm *Machine) Disassemble(i int) string {
	if i < 0 || i >= len(vm.Memory)-1 {
		return ""
	}

	// fetch the instruction at this location
	inst := uint16(vm.Memory[i])<<8 | uint16(vm.Memory[i+1])

	// end of program memory?
	if inst == 0 {
		return fmt.Sprintf("%04X -", i)
	}

	return fmt.Sprintf("%04X - %s", i, Disassemble(inst))
}
