package emu

// MIPS syscall codes, read from $v0.
const (
	// SyscallExit terminates the program.
	SyscallExit uint32 = 10
)

// SyscallHandler is the interface for dispatching syscalls.
type SyscallHandler interface {
	// Dispatch executes the syscall identified by code (the value of
	// $v0) and returns the resulting control effect. Codes with no
	// table entry fail with UnsupportedSyscallError.
	Dispatch(code uint32) (ControlEffect, error)
}

// DefaultSyscallHandler implements the architectural syscall table. The
// table is intentionally small; hosts that need more (read, write, ...)
// provide their own handler via WithSyscallHandler.
type DefaultSyscallHandler struct{}

// NewDefaultSyscallHandler creates the default syscall handler.
func NewDefaultSyscallHandler() *DefaultSyscallHandler {
	return &DefaultSyscallHandler{}
}

// Dispatch maps a syscall code to its control effect.
func (h *DefaultSyscallHandler) Dispatch(code uint32) (ControlEffect, error) {
	switch code {
	case SyscallExit:
		return Halt, nil
	default:
		return Continue, UnsupportedSyscallError{Code: code}
	}
}
