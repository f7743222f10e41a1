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

// The timers never run on their own. The host calls these at its own
// cadence, conventionally 60 Hz.

/// TickDelay decrements the delay timer if it is running.
///
func (vm *Machine) TickDelay() {
	if vm.DT > 0 {
		vm.DT--
	}
}

/// TickSound decrements the sound timer if it is running.
///
func (vm *Machine) TickSound() {
	if vm.ST > 0 {
		vm.ST--
	}
}

/// TickTimers decrements both timers.
///
func (vm *Machine) TickTimers() {
	vm.TickDelay()
	vm.TickSound()
}

/// DelayTimer returns the delay timer register.
///
func (vm *Machine) DelayTimer() byte {
	return vm.DT
}

/// SoundTimer returns the sound timer register.
///
func (vm *Machine) SoundTimer() byte {
	return vm.ST
}

/// Beeping is true while the sound timer is running.
///
func (vm *Machine) Beeping() bool {
	return vm.ST > 0
}

/// PressKey emulates a CHIP-8 key being pressed.
///
func (vm *Machine) PressKey(key uint) {
	if key < 16 {
		vm.Keys[key] = true

		// if waiting for a key, set it now
		if vm.W != nil {
			*vm.W = byte(key)

			// clear wait flag
			vm.W = nil
		}
	}
}

/// ReleaseKey emulates a CHIP-8 key being released.
///
func (vm *Machine) ReleaseKey(key uint) {
	if key < 16 {
		vm.Keys[key] = false
	}
}

/// Waiting is true while LD VX, K is blocked on a key press.
///
func (vm *Machine) Waiting() bool {
	return vm.W != nil
}
