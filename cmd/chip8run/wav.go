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
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

const (
	// SampleRate of the recorded beeper.
	SampleRate = 22050

	// ToneFreq is the pitch of the beeper.
	ToneFreq = 440

	// samples recorded for each 60 Hz frame
	frameSamples = SampleRate / 60
)

// Recorder captures the beeper one frame at a time as 8-bit mono PCM.
type Recorder struct {
	data  []int
	phase int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		data: make([]int, 0, SampleRate),
	}
}

// Frame records one frame of either the tone or silence.
func (r *Recorder) Frame(beeping bool) {
	period := SampleRate / ToneFreq

	for i := 0; i < frameSamples; i++ {
		v := 0x80

		if beeping {
			if r.phase < period/2 {
				v = 0xC0
			} else {
				v = 0x40
			}
		}

		// the phase keeps running so the tone is continuous across frames
		r.phase = (r.phase + 1) % period
		r.data = append(r.data, v)
	}
}

// Len returns the number of samples recorded.
func (r *Recorder) Len() int {
	return len(r.data)
}

// Save encodes the recording to a WAV file.
func (r *Recorder) Save(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrap(err, "creating wav file")
	}
	defer f.Close()

	enc := wav.NewEncoder(f, SampleRate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           r.data,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "encoding wav")
	}

	return errors.Wrap(enc.Close(), "closing wav encoder")
}
