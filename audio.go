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
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleRate = 22050
	toneFreq   = 440
)

var (
	/// Audio device the beeper is queued to.
	///
	Audio sdl.AudioDeviceID

	// square wave phase, carried across frames
	phase int
)

/// InitAudio opens a queued audio device for the beeper.
///
func InitAudio() error {
	desired := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	dev, err := sdl.OpenAudioDevice("", false, desired, nil, 0)
	if err != nil {
		return errors.Wrap(err, "opening audio device")
	}

	Audio = dev

	// start playing immediately, silence is just an empty queue
	sdl.PauseAudioDevice(Audio, false)

	return nil
}

/// CloseAudio releases the audio device.
///
func CloseAudio() {
	sdl.CloseAudioDevice(Audio)
}

/// UpdateAudio queues one frame (1/60 s) of tone while the sound timer is
/// running.
///
func UpdateAudio() {
	if !VM.Beeping() {
		return
	}

	// don't let the queue run ahead of the timer
	if sdl.GetQueuedAudioSize(Audio) > sampleRate/30 {
		return
	}

	if err := sdl.QueueAudio(Audio, squareWave(sampleRate/60)); err != nil {
		logger.Error(err.Error())
	}
}

/// squareWave returns n unsigned 8-bit samples of the beeper tone.
///
func squareWave(n int) []byte {
	buf := make([]byte, n)
	period := sampleRate / toneFreq

	for i := range buf {
		if phase < period/2 {
			buf[i] = 0xC0
		} else {
			buf[i] = 0x40
		}

		phase = (phase + 1) % period
	}

	return buf
}
