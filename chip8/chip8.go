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
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

const (
	/// MemorySize is the number of addressable bytes.
	///
	MemorySize = 0x1000

	/// ProgramStart is where programs are loaded and execution begins.
	/// Everything below it is reserved for the font.
	///
	ProgramStart = 0x200

	/// StackDepth is the number of return addresses the stack can hold.
	///
	StackDepth = 16
)

/// Machine is a CHIP-8 virtual machine. It is not safe for concurrent use;
/// a host drives it by calling Tick from a single goroutine.
///
type Machine struct {
	/// ROM is the pristine memory image that Reset restores: the font
	/// plus anything written by Load.
	///
	ROM [MemorySize]byte

	/// Memory addressable by CHIP-8.
	///
	Memory [MemorySize]byte

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// SP is the number of return addresses on the stack.
	///
	SP uint8

	/// Stack of return addresses, SP entries deep.
	///
	Stack [StackDepth]uint16

	/// I is the address register.
	///
	I uint16

	/// V are the 16 virtual registers. VF doubles as the carry, borrow
	/// and collision flag.
	///
	V [16]byte

	/// DT and ST are the delay and sound timers. They only count down
	/// when the host calls TickDelay/TickSound.
	///
	DT byte
	ST byte

	/// Keys hold the current state for the 16-key pad keys.
	///
	Keys [16]bool

	/// W is the wait key (V-register) pointer. When waiting for a key
	/// to be pressed, it will be set to &V[0..F].
	///
	W *byte

	// framebuffer
	video Display

	// instructions executed since the last reset
	cycles int64

	// address of the instruction being executed
	at uint16

	rng         *rand.Rand
	logger      *log.Logger
	diagnostics func(Diagnostic)
}

/// Option configures a new Machine.
///
type Option func(*Machine)

/// WithLogger sets the logger unknown instructions and faults are reported to.
///
func WithLogger(logger *log.Logger) Option {
	return func(vm *Machine) {
		vm.logger = logger
	}
}

/// WithSeed makes RND deterministic.
///
func WithSeed(seed int64) Option {
	return func(vm *Machine) {
		vm.rng = rand.New(rand.NewSource(seed))
	}
}

/// WithDiagnostics registers a callback for unknown instructions.
///
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(vm *Machine) {
		vm.diagnostics = fn
	}
}

/// New creates a virtual machine with only the font in memory.
///
func New(opts ...Option) *Machine {
	vm := &Machine{}

	// the font lives in the reserved area
	copy(vm.ROM[FontBase:], Font[:])

	for _, opt := range opts {
		opt(vm)
	}

	if vm.rng == nil {
		vm.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	vm.Reset()

	return vm
}

/// LoadROM creates a new virtual machine with program loaded at 0x200.
///
func LoadROM(program []byte, opts ...Option) (*Machine, error) {
	vm := New(opts...)

	if err := vm.Load(ProgramStart, program); err != nil {
		return nil, err
	}

	return vm, nil
}

/// LoadFile reads a ROM file and returns a new virtual machine.
///
func LoadFile(file string, opts ...Option) (*Machine, error) {
	program, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "reading rom")
	}

	vm, err := LoadROM(program, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", file)
	}

	return vm, nil
}

/// Load copies program into memory at origin. The bytes also become part of
/// the image restored by Reset.
///
func (vm *Machine) Load(origin uint16, program []byte) error {
	end := int(origin) + len(program)
	if end > MemorySize {
		return newBoundsError(vm.PC, end-1, 0)
	}

	copy(vm.ROM[origin:], program)
	copy(vm.Memory[origin:], program)

	return nil
}

/// Reset the virtual machine back to its loaded state.
///
func (vm *Machine) Reset() {
	vm.Memory = vm.ROM

	// reset video memory
	vm.video.Clear()

	// reset keys
	vm.Keys = [16]bool{}

	// reset program counter and stack
	vm.PC = ProgramStart
	vm.SP = 0
	vm.Stack = [StackDepth]uint16{}

	// reset address and virtual registers
	vm.I = 0
	vm.V = [16]byte{}

	// reset timer registers
	vm.DT = 0
	vm.ST = 0

	vm.cycles = 0

	// not waiting for a key
	vm.W = nil
}

/// Tick executes exactly one instruction. Unknown instructions are skipped
/// and returned as a diagnostic; bounds and stack faults are returned as
/// an *Error and abort the instruction.
///
func (vm *Machine) Tick() (*Diagnostic, error) {
	if vm.W != nil {
		return nil, nil
	}

	pc := vm.PC

	word, err := vm.fetch()
	if err != nil {
		vm.fault(err)
		return nil, err
	}

	vm.cycles++

	op := lookup(word)
	if op == nil {
		d := Diagnostic{PC: pc, Word: word}
		vm.report(d)
		return &d, nil
	}

	vm.at = pc

	if err := op.exec(vm, Decode(word)); err != nil {
		vm.fault(err)
		return nil, err
	}

	return nil, nil
}

/// Step is Tick for hosts that only care about fatal errors.
///
func (vm *Machine) Step() error {
	_, err := vm.Tick()
	return err
}

/// Run ticks up to n instructions, stopping at the first fault.
///
func (vm *Machine) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := vm.Step(); err != nil {
			return err
		}
	}

	return nil
}

/// Fetch the next 16-bit instruction to execute.
///
func (vm *Machine) fetch() (uint16, error) {
	pc := vm.PC

	if int(pc)+1 >= MemorySize {
		return 0, newBoundsError(pc, int(pc)+1, 0)
	}

	// advance the program counter
	vm.PC += 2

	return uint16(vm.Memory[pc])<<8 | uint16(vm.Memory[pc+1]), nil
}

/// Cycles returns how many instructions were fetched since the last reset.
///
func (vm *Machine) Cycles() int64 {
	return vm.cycles
}

/// Framebuffer returns a snapshot of the display.
///
func (vm *Machine) Framebuffer() Display {
	return vm.video
}

/// Register returns the value of V[x].
///
func (vm *Machine) Register(x int) byte {
	return vm.V[x&0xF]
}

/// Peek reads a byte of memory.
///
func (vm *Machine) Peek(address int) (byte, error) {
	b, err := vm.span(vm.PC, 0, address, 1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

/// AdjustRegister nudges V[x] by a signed amount, wrapping.
///
func (vm *Machine) AdjustRegister(x int, delta int8) {
	vm.V[x&0xF] = byte(int8(vm.V[x&0xF]) + delta)
}

/// SetProgramCounter moves execution to address.
///
func (vm *Machine) SetProgramCounter(address uint16) error {
	if int(address) >= MemorySize {
		return newBoundsError(vm.PC, int(address), 0)
	}

	vm.PC = address
	return nil
}

/// span returns n bytes of memory at address, or a bounds error on behalf
/// of the instruction at pc.
///
func (vm *Machine) span(pc, word uint16, address, n int) ([]byte, error) {
	if address < 0 || address+n > MemorySize {
		return nil, newBoundsError(pc, address+n-1, word)
	}

	return vm.Memory[address : address+n], nil
}

func (vm *Machine) report(d Diagnostic) {
	if vm.logger != nil {
		vm.logger.Warn("Unknown instruction",
			log.Hex("pc", d.PC),
			log.Hex("word", d.Word))
	}

	if vm.diagnostics != nil {
		vm.diagnostics(d)
	}
}

func (vm *Machine) fault(err error) {
	if vm.logger != nil {
		vm.logger.Error("Machine fault", log.Err(err))
	}
}
