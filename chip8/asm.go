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
	"bufio"
	"bytes"
	"fmt"
)

/// Assembly is a completely assembled source file.
///
type Assembly struct {
	/// ROM is the final, assembled bytes to load at ProgramStart.
	///
	ROM []byte

	/// Label mapping.
	///
	Labels map[string]token

	/// Addresses with unresolved labels.
	///
	Unresolved map[int]string
}

/// form is one accepted operand pattern for a mnemonic.
///
type form struct {
	operands []tokenType
	encode   func(ops []int) []byte
}

func word(hi, lo int) []byte {
	return []byte{byte(hi), byte(lo)}
}

func addressForm(op int) form {
	return form{[]tokenType{TOKEN_LIT}, func(ops []int) []byte {
		a := bounded(ops[0], 0xFFF)
		return word(op|a>>8, a)
	}}
}

func vxByteForm(op int) form {
	return form{[]tokenType{TOKEN_V, TOKEN_LIT}, func(ops []int) []byte {
		return word(op|ops[0], bounded(ops[1], 0xFF))
	}}
}

func vxvyForm(op, n int) form {
	return form{[]tokenType{TOKEN_V, TOKEN_V}, func(ops []int) []byte {
		return word(op|ops[0], ops[1]<<4|n)
	}}
}

func vxForm(op, lo int) form {
	return form{[]tokenType{TOKEN_V}, func(ops []int) []byte {
		return word(op|ops[0], lo)
	}}
}

// shifts encode VX as VY too, so the result is the same on either quirk
func shiftForm(n int) form {
	return form{[]tokenType{TOKEN_V}, func(ops []int) []byte {
		return word(0x80|ops[0], ops[0]<<4|n)
	}}
}

func fxForm(src, dst tokenType, lo int) form {
	return form{[]tokenType{src, dst}, func(ops []int) []byte {
		x := ops[0]
		if src != TOKEN_V {
			x = ops[1]
		}

		return word(0xF0|x, lo)
	}}
}

/// forms maps every instruction mnemonic to its legal operand patterns.
///
var forms = map[string][]form{
	"CLS": {{nil, func([]int) []byte { return word(0x00, 0xE0) }}},
	"RET": {{nil, func([]int) []byte { return word(0x00, 0xEE) }}},
	"SYS": {addressForm(0x00)},
	"JP": {
		addressForm(0x10),
		{[]tokenType{TOKEN_V, TOKEN_LIT}, func(ops []int) []byte {
			if ops[0] != 0 {
				panic("illegal instruction")
			}
			a := bounded(ops[1], 0xFFF)
			return word(0xB0|a>>8, a)
		}},
	},
	"CALL": {addressForm(0x20)},
	"SE":   {vxByteForm(0x30), vxvyForm(0x50, 0)},
	"SNE":  {vxByteForm(0x40), vxvyForm(0x90, 0)},
	"SKP":  {vxForm(0xE0, 0x9E)},
	"SKNP": {vxForm(0xE0, 0xA1)},
	"OR":   {vxvyForm(0x80, 1)},
	"AND":  {vxvyForm(0x80, 2)},
	"XOR":  {vxvyForm(0x80, 3)},
	"SUB":  {vxvyForm(0x80, 5)},
	"SUBN": {vxvyForm(0x80, 7)},
	"SHR":  {shiftForm(6)},
	"SHL":  {shiftForm(0xE)},
	"RND":  {vxByteForm(0xC0)},
	"ADD": {
		vxByteForm(0x70),
		vxvyForm(0x80, 4),
		fxForm(TOKEN_I, TOKEN_V, 0x1E),
	},
	"DRW": {
		{[]tokenType{TOKEN_V, TOKEN_V, TOKEN_LIT}, func(ops []int) []byte {
			return word(0xD0|ops[0], ops[1]<<4|bounded(ops[2], 0xF))
		}},
	},
	"LD": {
		vxByteForm(0x60),
		vxvyForm(0x80, 0),
		{[]tokenType{TOKEN_I, TOKEN_LIT}, func(ops []int) []byte {
			a := bounded(ops[1], 0xFFF)
			return word(0xA0|a>>8, a)
		}},
		fxForm(TOKEN_V, TOKEN_DT, 0x07),
		fxForm(TOKEN_V, TOKEN_K, 0x0A),
		fxForm(TOKEN_DT, TOKEN_V, 0x15),
		fxForm(TOKEN_ST, TOKEN_V, 0x18),
		fxForm(TOKEN_F, TOKEN_V, 0x29),
		fxForm(TOKEN_B, TOKEN_V, 0x33),
		fxForm(TOKEN_EFFECTIVE_ADDRESS, TOKEN_V, 0x55),
		fxForm(TOKEN_V, TOKEN_EFFECTIVE_ADDRESS, 0x65),
	},
}

/// bounded panics if a literal operand doesn't fit. Byte operands may also
/// be negative, which encodes as two's complement.
///
func bounded(n, max int) int {
	min := 0
	if max == 0xFF {
		min = -0x80
	}

	if n < min || n > max {
		panic(fmt.Errorf("operand out of range: %d", n))
	}

	return n & max
}

/// Assemble a CHIP-8 source file. Labels begin in the first column with
/// a '.', instructions are indented.
///
func Assemble(program []byte) (out *Assembly, err error) {
	var line int

	out = &Assembly{
		ROM:        make([]byte, ProgramStart, MemorySize),
		Labels:     make(map[string]token),
		Unresolved: make(map[int]string),
	}

	// handle panics during assembly
	defer func() {
		if r := recover(); r != nil {
			if line > 0 {
				err = fmt.Errorf("line %d - %v", line, r)
			} else {
				err = fmt.Errorf("%v", r)
			}

			out = nil
		}
	}()

	scanner := bufio.NewScanner(bytes.NewReader(program))

	for line = 1; scanner.Scan(); line++ {
		out.assemble(&lexer{line: scanner.Bytes()})

		if len(out.ROM) > MemorySize {
			panic("program too large")
		}
	}

	// done with lines, errors past here aren't per-line
	line = 0

	out.resolve()

	// drop the reserved bytes from the rom
	out.ROM = out.ROM[ProgramStart:]

	return out, nil
}

/// resolve patches forward label references.
///
func (a *Assembly) resolve() {
	for address, label := range a.Unresolved {
		t, ok := a.Labels[label]
		if !ok {
			panic(fmt.Errorf("unresolved label: %s", label))
		}

		if t.typ != TOKEN_LIT {
			panic("label does not resolve to address!")
		}

		// every instruction taking an address keeps it in the low 12 bits,
		// and WORD placeholders have a zero high nibble
		a.ROM[address] = byte(t.val.(int)>>8) | a.ROM[address]&0xF0
		a.ROM[address+1] = byte(t.val.(int))

		delete(a.Unresolved, address)
	}
}

/// Addresses returns every label that resolves to a location in the ROM.
/// EQU constants that happen to fall in the same range are included.
///
func (a *Assembly) Addresses() map[string]int {
	m := make(map[string]int)

	for label, t := range a.Labels {
		if t.typ != TOKEN_LIT {
			continue
		}

		if v := t.val.(int); v >= ProgramStart && v < ProgramStart+len(a.ROM) {
			m[label] = v
		}
	}

	return m
}

/// Compile a single line into the assembly.
///
func (a *Assembly) assemble(l *lexer) {
	t := l.next()

	if t.typ == TOKEN_LABEL {
		t = a.assembleLabel(t.val.(string), l)
	}

	switch t.typ {
	case TOKEN_INSTRUCTION:
		a.ROM = append(a.ROM, a.assembleInstruction(t.val.(string), l.operands())...)
	case TOKEN_END:
	default:
		panic("unexpected token")
	}
}

/// Scan for a label and add it to the assembly.
///
func (a *Assembly) assembleLabel(label string, l *lexer) token {
	if _, exists := a.Labels[label]; exists {
		panic("duplicate label")
	}

	// by default, the label is assigned the current address
	a.Labels[label] = token{typ: TOKEN_LIT, val: len(a.ROM)}

	t := l.next()

	// if EQU or VAR, reassign the label
	if t.typ == TOKEN_EQU || t.typ == TOKEN_VAR {
		v := l.next()

		// equ requires a literal, and var requires a v-register
		if (t.typ == TOKEN_EQU && v.typ == TOKEN_LIT) || (t.typ == TOKEN_VAR && v.typ == TOKEN_V) {
			a.Labels[label] = v

			if t = l.next(); t.typ == TOKEN_END {
				return t
			}
		}

		panic("illegal label assignment")
	}

	return t
}

/// Assemble a single operand, expanding label references.
///
func (a *Assembly) assembleOperand(t token) token {
	if t.typ == TOKEN_REF {
		label := t.val.(string)
		if v, exists := a.Labels[label]; exists {
			return v
		}

		// placeholder until the label is defined
		a.Unresolved[len(a.ROM)] = label

		return token{typ: TOKEN_LIT, val: ProgramStart}
	}

	return t
}

/// Compile a single instruction or directive.
///
func (a *Assembly) assembleInstruction(i string, tokens []token) []byte {
	switch i {
	case "BYTE":
		return a.assembleBYTE(tokens)
	case "WORD":
		return a.assembleWORD(tokens)
	case "ALIGN":
		return a.assembleALIGN(tokens)
	case "PAD":
		return a.assemblePAD(tokens)
	}

	// expand labels once, so unresolved references are only recorded once
	ops := make([]token, len(tokens))
	for n, t := range tokens {
		ops[n] = a.assembleOperand(t)
	}

	for _, f := range forms[i] {
		if len(f.operands) != len(ops) {
			continue
		}

		vals := make([]int, len(ops))
		match := true

		for n, typ := range f.operands {
			if ops[n].typ != typ {
				match = false
				break
			}

			if v, ok := ops[n].val.(int); ok {
				vals[n] = v
			}
		}

		if match {
			return f.encode(vals)
		}
	}

	panic("illegal instruction")
}

/// Assemble a BYTE directive.
///
func (a *Assembly) assembleBYTE(tokens []token) []byte {
	b := make([]byte, 0, len(tokens))

	for _, t := range tokens {
		op := a.assembleOperand(t)

		switch op.typ {
		case TOKEN_LIT:
			if op.val.(int) < -128 || op.val.(int) > 0xFF {
				panic("invalid byte")
			}

			b = append(b, byte(op.val.(int)))
		case TOKEN_TEXT:
			b = append(b, op.val.(string)...)
		default:
			panic("invalid byte")
		}
	}

	return b
}

/// Assemble a WORD directive.
///
func (a *Assembly) assembleWORD(tokens []token) []byte {
	b := make([]byte, 0, len(tokens)*2)

	for _, t := range tokens {
		if t.typ == TOKEN_REF {
			if _, ok := a.Labels[t.val.(string)]; !ok {
				a.Unresolved[len(a.ROM)+len(b)] = t.val.(string)
				b = append(b, 0, 0)
				continue
			}
		}

		op := a.assembleOperand(t)

		if op.typ != TOKEN_LIT || op.val.(int) < 0 || op.val.(int) > 0xFFFF {
			panic("invalid word")
		}

		// store msb first
		b = append(b, byte(op.val.(int)>>8), byte(op.val.(int)))
	}

	return b
}

/// Assemble an ALIGN directive.
///
func (a *Assembly) assembleALIGN(tokens []token) []byte {
	if len(tokens) == 1 && tokens[0].typ == TOKEN_LIT {
		n := tokens[0].val.(int)

		if n > 0 && n&(n-1) == 0 {
			offset := len(a.ROM) & (n - 1)

			if offset == 0 {
				return nil
			}

			return make([]byte, n-offset)
		}
	}

	panic("illegal alignment")
}

/// Assemble a PAD directive.
///
func (a *Assembly) assemblePAD(tokens []token) []byte {
	if len(tokens) == 1 && tokens[0].typ == TOKEN_LIT {
		n := tokens[0].val.(int)

		if n >= 0 && n <= MemorySize-len(a.ROM) {
			return make([]byte, n)
		}
	}

	panic("illegal size")
}
