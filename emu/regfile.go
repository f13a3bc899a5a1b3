package emu

import "github.com/sarchlab/mipsim/insts"

// RegFile represents the MIPS32 register file: 32 general-purpose 32-bit
// registers. Register $zero always reads as 0 and rejects writes.
//
// The signed and unsigned accessors are two views over the same storage.
// A conversion between int32 and uint32 of equal width preserves the bit
// pattern, so a write through either view is immediately visible through
// the other.
type RegFile struct {
	regs [insts.NumRegs]uint32
}

// Read returns the unsigned value of a register. It never fails; $zero
// reads as 0 regardless of the underlying storage.
func (r *RegFile) Read(reg insts.Reg) uint32 {
	if reg == insts.Zero {
		return 0
	}
	return r.regs[reg]
}

// ReadSigned returns the same 32 bits as Read, reinterpreted as a two's
// complement value. This is a bit-pattern cast, not a value conversion.
func (r *RegFile) ReadSigned(reg insts.Reg) int32 {
	return int32(r.Read(reg))
}

// Write stores an unsigned value into a register. Writing $zero fails
// with ErrZeroRegisterWrite before any mutation occurs.
func (r *RegFile) Write(reg insts.Reg, value uint32) error {
	if reg == insts.Zero {
		return ErrZeroRegisterWrite
	}
	r.regs[reg] = value
	return nil
}

// WriteSigned stores a signed value through the same storage as Write.
func (r *RegFile) WriteSigned(reg insts.Reg, value int32) error {
	return r.Write(reg, uint32(value))
}

// Snapshot returns a copy of the register storage for inspection.
func (r *RegFile) Snapshot() [insts.NumRegs]uint32 {
	return r.regs
}
