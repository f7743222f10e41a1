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

// ErrorKind classifies a fatal machine fault.
type ErrorKind int

const (
	BoundsViolation ErrorKind = iota + 1
	StackOverflow
	StackUnderflow
)

func (k ErrorKind) String() string {
	switch k {
	case BoundsViolation:
		return "bounds violation"
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	}

	return "unknown fault"
}

// Sentinels for use with errors.Is.
var (
	ErrBounds         = &Error{Kind: BoundsViolation}
	ErrStackOverflow  = &Error{Kind: StackOverflow}
	ErrStackUnderflow = &Error{Kind: StackUnderflow}
)

// Error is a fatal fault raised while loading or executing. The tick that
// raised it is aborted; the host decides whether to halt or reset.
type Error struct {
	Kind ErrorKind

	// PC is the address of the faulting instruction.
	PC uint16

	// Addr is the memory address (or load size) that was out of range.
	Addr int

	// Word is the instruction word being executed, if one was fetched.
	Word uint16
}

func newBoundsError(pc uint16, addr int, word uint16) *Error {
	return &Error{Kind: BoundsViolation, PC: pc, Addr: addr, Word: word}
}

func (e *Error) Error() string {
	switch e.Kind {
	case BoundsViolation:
		return fmt.Sprintf("%04X: %s at #%04X", e.PC, e.Kind, e.Addr)
	default:
		return fmt.Sprintf("%04X: %s (%04X)", e.PC, e.Kind, e.Word)
	}
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Diagnostic reports an unrecognized instruction. It is never fatal.
type Diagnostic struct {
	PC   uint16
	Word uint16
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%04X: unknown instruction %04X", d.PC, d.Word)
}
