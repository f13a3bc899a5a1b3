// Package emu provides functional emulation of the MIPS32 ALU subset.
package emu

import (
	"errors"
	"fmt"
)

// Execution faults. Every fault is terminal to the run: there is no
// instruction-level retry, and a faulted instruction leaves its
// destination register unwritten.
var (
	// ErrIntegerOverflow is raised by the checked add/subtract forms on
	// signed overflow (add, sub, addi) or carry-out (addiu).
	ErrIntegerOverflow = errors.New("integer overflow")

	// ErrZeroRegisterWrite is raised when an instruction's destination
	// resolves to $zero.
	ErrZeroRegisterWrite = errors.New("attempted to mutate $zero")
)

// UnsupportedSyscallError reports a syscall code with no entry in the
// dispatch table.
type UnsupportedSyscallError struct {
	// Code is the offending value read from $v0.
	Code uint32
}

func (e UnsupportedSyscallError) Error() string {
	return fmt.Sprintf("unsupported syscall $v0=%d", e.Code)
}
