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

/// Instruction is a decoded 16-bit instruction word.
///
type Instruction struct {
	/// Word is the raw instruction.
	///
	Word uint16

	/// Op is the leading nibble, selecting the operation family.
	///
	Op byte

	/// X and Y are register operands.
	///
	X byte
	Y byte

	/// N is the trailing nibble (sprite height for DRW).
	///
	N byte

	/// NN is the low byte immediate.
	///
	NN byte

	/// NNN is the 12-bit address immediate.
	///
	NNN uint16
}

/// Decode splits an instruction word into its fields.
///
func Decode(word uint16) Instruction {
	return Instruction{
		Word: word,
		Op:   byte(word >> 12),
		X:    byte(word >> 8 & 0xF),
		Y:    byte(word >> 4 & 0xF),
		N:    byte(word & 0xF),
		NN:   byte(word & 0xFF),
		NNN:  word & 0xFFF,
	}
}
