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
	"strings"
)

// Log is the in-window debug log.
var Log = NewLog(500)

// Logger is an output log that can be viewed and scrolled. Once full, the
// oldest lines are dropped.
type Logger struct {
	// buf contains each line of logged text.
	buf []string

	// limit is the most lines kept.
	limit int

	// pos is the line the view ends at; len(buf) when following the tail.
	pos int
}

// NewLog creates a new Logger keeping at most limit lines.
func NewLog(limit int) *Logger {
	return &Logger{
		buf:   make([]string, 0, 100),
		limit: limit,
	}
}

func (log *Logger) append(lines ...string) {
	follow := log.pos == len(log.buf)

	log.buf = append(log.buf, lines...)

	// drop from the front, keeping the view on the same lines
	if over := len(log.buf) - log.limit; over > 0 {
		log.buf = append(log.buf[:0], log.buf[over:]...)
		log.pos -= over

		if log.pos < 0 {
			log.pos = 0
		}
	}

	if follow {
		log.pos = len(log.buf)
	}
}

// Log outputs a new line to the log.
func (log *Logger) Log(s ...string) {
	log.append(strings.Join(s, " "))
}

// Logln outputs a new line to the log, with an empty line prefixed.
func (log *Logger) Logln(s ...string) {
	log.append("", strings.Join(s, " "))
}

// Len returns the number of lines held.
func (log *Logger) Len() int {
	return len(log.buf)
}

// Window returns up to n lines ending at the scroll position.
func (log *Logger) Window(n int) []string {
	start := log.pos - n

	// don't scroll past the beginning
	if start < 0 {
		start = 0
	}

	end := start + n
	if end > len(log.buf) {
		end = len(log.buf)
	}

	return log.buf[start:end]
}

// Scroll the log by d lines, clamped to the ends.
func (log *Logger) Scroll(d int) {
	log.pos += d

	if log.pos < 0 {
		log.Home()
	}

	if log.pos > len(log.buf) {
		log.End()
	}
}

// Home scrolls the log to the beginning.
func (log *Logger) Home() {
	log.pos = 0
}

// End scrolls the log to the end and follows new lines.
func (log *Logger) End() {
	log.pos = len(log.buf)
}
