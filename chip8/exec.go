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

/// Clear the video display memory.
///
func (vm *Machine) cls(Instruction) error {
	vm.video.Clear()
	return nil
}

/// system call an RCA 1802 program. There is no 1802, so it is ignored.
///
func (vm *Machine) sys(Instruction) error {
	return nil
}

/// return from subroutine.
///
func (vm *Machine) ret(in Instruction) error {
	if vm.SP == 0 || int(vm.SP) > StackDepth {
		return &Error{Kind: StackUnderflow, PC: vm.at, Word: in.Word}
	}

	vm.SP--
	vm.PC = vm.Stack[vm.SP]

	return nil
}

/// call a subroutine at address.
///
func (vm *Machine) call(in Instruction) error {
	if int(vm.SP) >= StackDepth {
		return &Error{Kind: StackOverflow, PC: vm.at, Word: in.Word}
	}

	// push the already advanced program counter
	vm.Stack[vm.SP] = vm.PC
	vm.SP++

	vm.PC = in.NNN

	return nil
}

/// jump to address.
///
func (vm *Machine) jump(in Instruction) error {
	vm.PC = in.NNN
	return nil
}

/// jump to address + v0.
///
func (vm *Machine) jumpV0(in Instruction) error {
	vm.PC = in.NNN + uint16(vm.V[0])
	return nil
}

func (vm *Machine) skip(cond bool) error {
	if cond {
		vm.PC += 2
	}

	return nil
}

/// skip next instruction if vx == n.
///
func (vm *Machine) skipIf(in Instruction) error {
	return vm.skip(vm.V[in.X] == in.NN)
}

/// skip next instruction if vx != n.
///
func (vm *Machine) skipIfNot(in Instruction) error {
	return vm.skip(vm.V[in.X] != in.NN)
}

/// skip next instruction if vx == vy.
///
func (vm *Machine) skipIfXY(in Instruction) error {
	return vm.skip(vm.V[in.X] == vm.V[in.Y])
}

/// skip next instruction if vx != vy.
///
func (vm *Machine) skipIfNotXY(in Instruction) error {
	return vm.skip(vm.V[in.X] != vm.V[in.Y])
}

/// skip next instruction if key(vx) is pressed.
///
func (vm *Machine) skipIfPressed(in Instruction) error {
	return vm.skip(vm.Keys[vm.V[in.X]&0xF])
}

/// skip next instruction if key(vx) is not pressed.
///
func (vm *Machine) skipIfNotPressed(in Instruction) error {
	return vm.skip(!vm.Keys[vm.V[in.X]&0xF])
}

/// load n into vx.
///
func (vm *Machine) loadX(in Instruction) error {
	vm.V[in.X] = in.NN
	return nil
}

/// load y into vx.
///
func (vm *Machine) loadXY(in Instruction) error {
	vm.V[in.X] = vm.V[in.Y]
	return nil
}

/// load delay timer into vx.
///
func (vm *Machine) loadXDT(in Instruction) error {
	vm.V[in.X] = vm.DT
	return nil
}

/// load vx into delay timer.
///
func (vm *Machine) loadDTX(in Instruction) error {
	vm.DT = vm.V[in.X]
	return nil
}

/// load vx into sound timer.
///
func (vm *Machine) loadSTX(in Instruction) error {
	vm.ST = vm.V[in.X]
	return nil
}

/// load vx with next key hit. Tick does nothing until PressKey.
///
func (vm *Machine) loadXK(in Instruction) error {
	vm.W = &vm.V[in.X]
	return nil
}

/// load address register.
///
func (vm *Machine) loadI(in Instruction) error {
	vm.I = in.NNN
	return nil
}

/// load address with BCD of vx.
///
func (vm *Machine) loadB(in Instruction) error {
	m, err := vm.span(vm.at, in.Word, int(vm.I), 3)
	if err != nil {
		return err
	}

	n := vm.V[in.X]

	m[0] = n / 100
	m[1] = n / 10 % 10
	m[2] = n % 10

	return nil
}

/// load font sprite for vx into I.
///
func (vm *Machine) loadF(in Instruction) error {
	vm.I = FontBase + uint16(vm.V[in.X]&0xF)*5
	return nil
}

/// or vx with vy into vx.
///
func (vm *Machine) or(in Instruction) error {
	vm.V[in.X] |= vm.V[in.Y]
	return nil
}

/// and vx with vy into vx.
///
func (vm *Machine) and(in Instruction) error {
	vm.V[in.X] &= vm.V[in.Y]
	return nil
}

/// xor vx with vy into vx.
///
func (vm *Machine) xor(in Instruction) error {
	vm.V[in.X] ^= vm.V[in.Y]
	return nil
}

// The flag is always written after the result, so when x is F the flag
// wins over the arithmetic.

/// shl vx 1 bit, set carry to MSB of vx before shift.
///
func (vm *Machine) shl(in Instruction) error {
	carry := vm.V[in.X] >> 7

	vm.V[in.X] <<= 1
	vm.V[0xF] = carry

	return nil
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (vm *Machine) shr(in Instruction) error {
	carry := vm.V[in.X] & 1

	vm.V[in.X] >>= 1
	vm.V[0xF] = carry

	return nil
}

/// add n to vx. Wraps, and never touches the carry.
///
func (vm *Machine) addX(in Instruction) error {
	vm.V[in.X] += in.NN
	return nil
}

/// add vy to vx and set carry.
///
func (vm *Machine) addXY(in Instruction) error {
	sum := uint16(vm.V[in.X]) + uint16(vm.V[in.Y])

	vm.V[in.X] = byte(sum)
	vm.V[0xF] = byte(sum >> 8)

	return nil
}

/// add v to i.
///
func (vm *Machine) addIX(in Instruction) error {
	vm.I += uint16(vm.V[in.X])
	return nil
}

func borrow(a, b byte) byte {
	if a >= b {
		return 1
	}

	return 0
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *Machine) subXY(in Instruction) error {
	flag := borrow(vm.V[in.X], vm.V[in.Y])

	vm.V[in.X] -= vm.V[in.Y]
	vm.V[0xF] = flag

	return nil
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *Machine) subYX(in Instruction) error {
	flag := borrow(vm.V[in.Y], vm.V[in.X])

	vm.V[in.X] = vm.V[in.Y] - vm.V[in.X]
	vm.V[0xF] = flag

	return nil
}

/// load a random number & n into vx.
///
func (vm *Machine) rnd(in Instruction) error {
	vm.V[in.X] = byte(vm.rng.Intn(256)) & in.NN
	return nil
}

/// draw a sprite at I to video memory at vx, vy. Pixels are XORed onto
/// whatever is already there and wrap around both edges; VF is set if any
/// lit pixel was turned off.
///
func (vm *Machine) drw(in Instruction) error {
	sprite, err := vm.span(vm.at, in.Word, int(vm.I), int(in.N))
	if err != nil {
		return err
	}

	x := int(vm.V[in.X]) % Width
	y := int(vm.V[in.Y]) % Height

	vm.V[0xF] = 0

	for row, s := range sprite {
		for col := 0; col < 8; col++ {
			if s&(0x80>>uint(col)) == 0 {
				continue
			}

			if vm.video.toggle(x+col, y+row) {
				vm.V[0xF] = 1
			}
		}
	}

	return nil
}

/// save registers v0..vx to I.
///
func (vm *Machine) saveRegs(in Instruction) error {
	m, err := vm.span(vm.at, in.Word, int(vm.I), int(in.X)+1)
	if err != nil {
		return err
	}

	copy(m, vm.V[:in.X+1])

	return nil
}

/// load registers v0..vx from I.
///
func (vm *Machine) loadRegs(in Instruction) error {
	m, err := vm.span(vm.at, in.Word, int(vm.I), int(in.X)+1)
	if err != nil {
		return err
	}

	copy(vm.V[:in.X+1], m)

	return nil
}
