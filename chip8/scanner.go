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
	"strconv"
	"strings"
)

/// Type for scanned tokens.
///
type tokenType uint

/// Lexical assembly tokens.
///
const (
	TOKEN_END tokenType = iota
	TOKEN_CHAR
	TOKEN_LABEL
	TOKEN_REF
	TOKEN_INSTRUCTION
	TOKEN_EFFECTIVE_ADDRESS
	TOKEN_V
	TOKEN_I
	TOKEN_B
	TOKEN_F
	TOKEN_K
	TOKEN_DT
	TOKEN_ST
	TOKEN_LIT
	TOKEN_TEXT
	TOKEN_EQU
	TOKEN_VAR
)

/// A lexical token and its value, if any.
///
type token struct {
	typ tokenType
	val interface{}
}

/// lexer splits a single source line into tokens. Identifiers are case
/// insensitive and returned upper-cased.
///
type lexer struct {
	line []byte
	pos  int
}

/// keywords are the reserved identifiers that aren't labels.
///
var keywords = map[string]token{
	"I":     {typ: TOKEN_I},
	"B":     {typ: TOKEN_B},
	"F":     {typ: TOKEN_F},
	"K":     {typ: TOKEN_K},
	"D":     {typ: TOKEN_DT},
	"DT":    {typ: TOKEN_DT},
	"S":     {typ: TOKEN_ST},
	"ST":    {typ: TOKEN_ST},
	"EQU":   {typ: TOKEN_EQU},
	"VAR":   {typ: TOKEN_VAR},
	"CLS":   {typ: TOKEN_INSTRUCTION, val: "CLS"},
	"RET":   {typ: TOKEN_INSTRUCTION, val: "RET"},
	"SYS":   {typ: TOKEN_INSTRUCTION, val: "SYS"},
	"JP":    {typ: TOKEN_INSTRUCTION, val: "JP"},
	"CALL":  {typ: TOKEN_INSTRUCTION, val: "CALL"},
	"SE":    {typ: TOKEN_INSTRUCTION, val: "SE"},
	"SNE":   {typ: TOKEN_INSTRUCTION, val: "SNE"},
	"SKP":   {typ: TOKEN_INSTRUCTION, val: "SKP"},
	"SKNP":  {typ: TOKEN_INSTRUCTION, val: "SKNP"},
	"LD":    {typ: TOKEN_INSTRUCTION, val: "LD"},
	"OR":    {typ: TOKEN_INSTRUCTION, val: "OR"},
	"AND":   {typ: TOKEN_INSTRUCTION, val: "AND"},
	"XOR":   {typ: TOKEN_INSTRUCTION, val: "XOR"},
	"ADD":   {typ: TOKEN_INSTRUCTION, val: "ADD"},
	"SUB":   {typ: TOKEN_INSTRUCTION, val: "SUB"},
	"SUBN":  {typ: TOKEN_INSTRUCTION, val: "SUBN"},
	"SHR":   {typ: TOKEN_INSTRUCTION, val: "SHR"},
	"SHL":   {typ: TOKEN_INSTRUCTION, val: "SHL"},
	"RND":   {typ: TOKEN_INSTRUCTION, val: "RND"},
	"DRW":   {typ: TOKEN_INSTRUCTION, val: "DRW"},
	"BYTE":  {typ: TOKEN_INSTRUCTION, val: "BYTE"},
	"WORD":  {typ: TOKEN_INSTRUCTION, val: "WORD"},
	"ALIGN": {typ: TOKEN_INSTRUCTION, val: "ALIGN"},
	"PAD":   {typ: TOKEN_INSTRUCTION, val: "PAD"},
}

func isSpace(c byte) bool {
	return c <= ' '
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '_'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

/// span advances past every byte matching pred and returns them.
///
func (l *lexer) span(pred func(byte) bool) string {
	i := l.pos

	for l.pos < len(l.line) && pred(l.line[l.pos]) {
		l.pos++
	}

	return string(l.line[i:l.pos])
}

/// next returns the next token on the line. Comments end the line.
///
func (l *lexer) next() token {
	l.span(isSpace)

	if l.pos >= len(l.line) {
		return token{typ: TOKEN_END}
	}

	c := l.line[l.pos]

	switch {
	case c == ';':
		l.pos = len(l.line)
		return token{typ: TOKEN_END}
	case l.pos == 0:
		return l.label()
	case c == '[':
		return l.indirection()
	case c == '#':
		return l.literal(16, "0123456789ABCDEFabcdef")
	case c == '$':
		return l.literal(2, ".01")
	case c == '-' || isDigit(c):
		return l.decimal()
	case isIdentStart(c):
		return l.identifier()
	case c == '"' || c == '\'':
		return l.text(c)
	}

	l.pos++
	return token{typ: TOKEN_CHAR, val: c}
}

/// operands returns the comma-separated tokens through the end of the line.
///
func (l *lexer) operands() []token {
	var tokens []token

	t := l.next()
	if t.typ == TOKEN_END {
		return tokens
	}

	for {
		if t.typ == TOKEN_END || t.typ == TOKEN_CHAR {
			panic("expected operand")
		}

		tokens = append(tokens, t)

		switch sep := l.next(); {
		case sep.typ == TOKEN_END:
			return tokens
		case sep.typ != TOKEN_CHAR || sep.val.(byte) != ',':
			panic("unexpected token")
		}

		t = l.next()
	}
}

/// label scans a .label definition, only legal in the first column.
///
func (l *lexer) label() token {
	if l.line[0] != '.' {
		panic("expected .label")
	}

	l.pos++

	if l.pos < len(l.line) && isIdentStart(l.line[l.pos]) {
		if id := l.identifier(); id.typ == TOKEN_REF {
			return token{typ: TOKEN_LABEL, val: id.val}
		}
	}

	panic("expected label")
}

/// identifier scans an instruction, register, keyword or label reference.
///
func (l *lexer) identifier() token {
	id := strings.ToUpper(l.span(isIdent))

	// V0 through VF
	if len(id) == 2 && id[0] == 'V' {
		if n, err := strconv.ParseUint(id[1:], 16, 8); err == nil {
			return token{typ: TOKEN_V, val: int(n)}
		}
	}

	if t, ok := keywords[id]; ok {
		return t
	}

	return token{typ: TOKEN_REF, val: id}
}

/// indirection scans an effective address. Only [I] is legal.
///
func (l *lexer) indirection() token {
	l.pos++

	r := l.next()

	if c := l.next(); r.typ != TOKEN_I || c.typ != TOKEN_CHAR || c.val.(byte) != ']' {
		panic("illegal indirection")
	}

	return token{typ: TOKEN_EFFECTIVE_ADDRESS}
}

/// decimal scans a decimal literal with an optional leading minus.
///
func (l *lexer) decimal() token {
	i := l.pos

	if l.line[i] == '-' {
		l.pos++
	}

	l.span(isDigit)

	s := string(l.line[i:l.pos])

	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		panic(fmt.Errorf("illegal decimal value: %s", s))
	}

	return token{typ: TOKEN_LIT, val: int(n)}
}

/// literal scans a hex (#) or binary ($) literal. Binary literals may use
/// '.' for 0 so sprites can be drawn in the source.
///
func (l *lexer) literal(base int, digits string) token {
	prefix := l.line[l.pos]

	l.pos++

	s := l.span(func(c byte) bool {
		return strings.IndexByte(digits, c) >= 0
	})

	n, err := strconv.ParseInt(strings.ReplaceAll(s, ".", "0"), base, 32)
	if err != nil {
		panic(fmt.Errorf("illegal literal: %c%s", prefix, s))
	}

	return token{typ: TOKEN_LIT, val: int(n)}
}

/// text scans a quoted string.
///
func (l *lexer) text(quote byte) token {
	l.pos++

	s := l.span(func(c byte) bool {
		return c != quote
	})

	if l.pos >= len(l.line) {
		panic("unterminated string")
	}

	// closing quote
	l.pos++

	return token{typ: TOKEN_TEXT, val: s}
}
