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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoggerFollowsTail(t *testing.T) {
	l := NewLog(100)

	l.Log("a")
	l.Log("b", "c")
	l.Logln("d")

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []string{"b c", "", "d"}, l.Window(3))
}

func TestLoggerScroll(t *testing.T) {
	l := NewLog(100)

	for _, s := range []string{"1", "2", "3", "4", "5"} {
		l.Log(s)
	}

	l.Scroll(-2)
	assert.Equal(t, []string{"2", "3"}, l.Window(2))

	// not following, so new lines don't move the view
	l.Log("6")
	assert.Equal(t, []string{"2", "3"}, l.Window(2))

	l.Scroll(-100)
	assert.Equal(t, []string{"1", "2"}, l.Window(2))

	l.Scroll(100)
	assert.Equal(t, []string{"5", "6"}, l.Window(2))
}

func TestLoggerLimit(t *testing.T) {
	l := NewLog(3)

	for _, s := range []string{"1", "2", "3", "4", "5"} {
		l.Log(s)
	}

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"3", "4", "5"}, l.Window(10))
}
