package emu

import (
	"errors"
	"fmt"

	"github.com/sarchlab/mipsim/insts"
)

// ErrMaxInstructions is returned when the instruction limit set with
// WithMaxInstructions is reached before the program halts.
var ErrMaxInstructions = errors.New("max instructions reached")

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Halted is true if the program terminated via the exit syscall.
	Halted bool

	// Err is set if a decode error or execution fault occurred. Faults
	// are terminal: the driver loop stops at the first one.
	Err error
}

// Emulator owns the machine state (register file, sparse memory, program
// counter, instruction sequence) and drives the fetch-decode-execute loop.
//
// The program counter is a direct index into the instruction sequence,
// not a byte offset. The state is exclusively owned by the loop for the
// duration of a run; everything is synchronous and single-threaded.
type Emulator struct {
	regFile        *RegFile
	memory         *Memory
	decoder        *insts.Decoder
	alu            *ALU
	syscallHandler SyscallHandler

	// The program, in exactly one of two forms. Raw words are decoded
	// at each fetch; pre-decoded instructions are executed directly.
	program []insts.Instruction
	words   []uint32

	pc               int
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithRegisters sets the initial register file contents. The $zero slot
// is ignored on read regardless of what the image holds.
func WithRegisters(regs [insts.NumRegs]uint32) EmulatorOption {
	return func(e *Emulator) {
		e.regFile.regs = regs
	}
}

// WithMemoryImage preloads the sparse memory with an initial image.
func WithMemoryImage(image map[uint32]uint32) EmulatorOption {
	return func(e *Emulator) {
		for addr, word := range image {
			e.memory.Write32(addr, word)
		}
	}
}

// WithSyscallHandler sets a custom syscall handler.
func WithSyscallHandler(handler SyscallHandler) EmulatorOption {
	return func(e *Emulator) {
		e.syscallHandler = handler
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// NewEmulator creates a new emulator with zeroed machine state.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		regFile: &RegFile{},
		memory:  NewMemory(),
		decoder: insts.NewDecoder(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.syscallHandler == nil {
		e.syscallHandler = NewDefaultSyscallHandler()
	}
	e.alu = NewALU(e.regFile, e.syscallHandler)

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// PC returns the program counter: the index of the next instruction.
func (e *Emulator) PC() int {
	return e.pc
}

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// LoadProgram loads a pre-decoded instruction sequence and rewinds the
// program counter.
func (e *Emulator) LoadProgram(program []insts.Instruction) {
	e.program = program
	e.words = nil
	e.pc = 0
}

// LoadWords loads a sequence of raw 32-bit instruction words and rewinds
// the program counter. Each word is decoded at fetch time; a malformed
// word surfaces as a decode error when the loop reaches it.
func (e *Emulator) LoadWords(words []uint32) {
	e.words = words
	e.program = nil
	e.pc = 0
}

// Reset zeroes the machine state, keeping the loaded program.
func (e *Emulator) Reset() {
	e.regFile = &RegFile{}
	e.memory = NewMemory()
	e.alu = NewALU(e.regFile, e.syscallHandler)
	e.pc = 0
	e.instructionCount = 0
}

// Step fetches, decodes if necessary, and executes a single instruction.
// The caller is responsible for checking that the pc is in range.
func (e *Emulator) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: ErrMaxInstructions}
	}

	inst, err := e.fetch()
	if err != nil {
		return StepResult{Err: e.faultAt(err)}
	}

	effect, err := e.alu.Execute(inst)
	if err != nil {
		return StepResult{Err: e.faultAt(err)}
	}
	e.instructionCount++

	if effect == Halt {
		return StepResult{Halted: true}
	}

	e.pc++
	return StepResult{}
}

// Run drives the loop until the program halts via syscall, the pc runs
// past the end of the instruction sequence (both clean terminations), or
// a fault occurs (terminal, returned to the caller).
func (e *Emulator) Run() error {
	for e.pc < e.programLen() {
		result := e.Step()
		if result.Err != nil {
			return result.Err
		}
		if result.Halted {
			return nil
		}
	}
	return nil
}

func (e *Emulator) fetch() (insts.Instruction, error) {
	if e.words != nil {
		return e.decoder.Decode(e.words[e.pc])
	}
	return e.program[e.pc], nil
}

func (e *Emulator) programLen() int {
	if e.words != nil {
		return len(e.words)
	}
	return len(e.program)
}

func (e *Emulator) faultAt(err error) error {
	return fmt.Errorf("at pc %d: %w", e.pc, err)
}
