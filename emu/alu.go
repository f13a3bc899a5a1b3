package emu

import "github.com/sarchlab/mipsim/insts"

// ControlEffect tells the driver loop what to do after an instruction.
type ControlEffect uint8

// Control effects.
const (
	// Continue advances the program counter to the next instruction.
	Continue ControlEffect = iota
	// Halt stops the run cleanly, with no further pc advancement.
	Halt
)

// ALU executes decoded instructions against the register file. It is the
// single execution unit for both instruction families; raw words must go
// through the decoder first.
type ALU struct {
	regFile  *RegFile
	syscalls SyscallHandler
}

// NewALU creates an ALU connected to the given register file and syscall
// handler.
func NewALU(regFile *RegFile, syscalls SyscallHandler) *ALU {
	return &ALU{regFile: regFile, syscalls: syscalls}
}

// Execute performs one instruction. A fault leaves the destination
// register unwritten; the instruction is atomic-or-faulted from the
// caller's perspective.
func (a *ALU) Execute(inst insts.Instruction) (ControlEffect, error) {
	if inst.Kind == insts.KindReg {
		return a.executeReg(inst)
	}
	return a.executeImm(inst)
}

func (a *ALU) executeReg(inst insts.Instruction) (ControlEffect, error) {
	rf := a.regFile

	switch inst.Funct {
	case insts.FunctSll:
		return Continue, rf.Write(inst.Rd, rf.Read(inst.Rt)<<inst.Shamt)
	case insts.FunctSllV:
		return Continue, rf.Write(inst.Rd, rf.Read(inst.Rt)<<a.shiftAmount(inst.Rs))
	case insts.FunctSrl:
		return Continue, rf.Write(inst.Rd, rf.Read(inst.Rt)>>inst.Shamt)
	case insts.FunctSrlV:
		return Continue, rf.Write(inst.Rd, rf.Read(inst.Rt)>>a.shiftAmount(inst.Rs))
	case insts.FunctSra:
		return Continue, rf.WriteSigned(inst.Rd, rf.ReadSigned(inst.Rt)>>inst.Shamt)
	case insts.FunctSraV:
		return Continue, rf.WriteSigned(inst.Rd, rf.ReadSigned(inst.Rt)>>a.shiftAmount(inst.Rs))
	case insts.FunctSyscall:
		return a.syscalls.Dispatch(rf.Read(insts.V0))
	case insts.FunctAdd:
		return Continue, a.addChecked(inst.Rd, rf.ReadSigned(inst.Rs), rf.ReadSigned(inst.Rt))
	case insts.FunctAddU:
		return Continue, rf.Write(inst.Rd, rf.Read(inst.Rs)+rf.Read(inst.Rt))
	case insts.FunctSub:
		return Continue, a.subChecked(inst.Rd, rf.ReadSigned(inst.Rs), rf.ReadSigned(inst.Rt))
	case insts.FunctSubU:
		return Continue, rf.Write(inst.Rd, rf.Read(inst.Rs)-rf.Read(inst.Rt))
	case insts.FunctAnd:
		return Continue, rf.Write(inst.Rd, rf.Read(inst.Rs)&rf.Read(inst.Rt))
	case insts.FunctOr:
		return Continue, rf.Write(inst.Rd, rf.Read(inst.Rs)|rf.Read(inst.Rt))
	case insts.FunctXor:
		return Continue, rf.Write(inst.Rd, rf.Read(inst.Rs)^rf.Read(inst.Rt))
	case insts.FunctNor:
		return Continue, rf.Write(inst.Rd, ^(rf.Read(inst.Rs) | rf.Read(inst.Rt)))
	default:
		// Only reachable with a hand-built instruction; the decoder
		// rejects unknown functs.
		return Continue, insts.InvalidFunctError{Funct: uint8(inst.Funct)}
	}
}

func (a *ALU) executeImm(inst insts.Instruction) (ControlEffect, error) {
	rf := a.regFile

	switch inst.Opcode {
	case insts.OpcodeAddI:
		return Continue, a.addChecked(inst.Rt, rf.ReadSigned(inst.Rs), int32(insts.SignExtend(inst.Imm)))
	case insts.OpcodeAddIU:
		return Continue, a.addUnsignedChecked(inst.Rt, rf.Read(inst.Rs), insts.SignExtend(inst.Imm))
	case insts.OpcodeAndI:
		return Continue, rf.Write(inst.Rt, rf.Read(inst.Rs)&insts.ZeroExtend(inst.Imm))
	case insts.OpcodeOrI:
		return Continue, rf.Write(inst.Rt, rf.Read(inst.Rs)|insts.ZeroExtend(inst.Imm))
	case insts.OpcodeXorI:
		return Continue, rf.Write(inst.Rt, rf.Read(inst.Rs)^insts.ZeroExtend(inst.Imm))
	case insts.OpcodeLuI:
		// The whole destination word is replaced, low half cleared.
		return Continue, rf.Write(inst.Rt, uint32(inst.Imm)<<16)
	default:
		return Continue, insts.InvalidOpcodeError{Opcode: uint8(inst.Opcode)}
	}
}

// shiftAmount reads the register-supplied shift count for the variable
// shift forms. The count is masked to 5 bits, as architectural MIPS does.
func (a *ALU) shiftAmount(rs insts.Reg) uint32 {
	return a.regFile.Read(rs) & 0x1F
}

// addChecked performs signed addition, faulting on overflow without
// writing the destination.
func (a *ALU) addChecked(rd insts.Reg, op1, op2 int32) error {
	result := op1 + op2

	op1Sign := uint32(op1) >> 31
	op2Sign := uint32(op2) >> 31
	resultSign := uint32(result) >> 31
	if op1Sign == op2Sign && op1Sign != resultSign {
		return ErrIntegerOverflow
	}

	return a.regFile.WriteSigned(rd, result)
}

// subChecked performs signed subtraction, faulting on overflow without
// writing the destination.
func (a *ALU) subChecked(rd insts.Reg, op1, op2 int32) error {
	result := op1 - op2

	op1Sign := uint32(op1) >> 31
	op2Sign := uint32(op2) >> 31
	resultSign := uint32(result) >> 31
	if op1Sign != op2Sign && op2Sign == resultSign {
		return ErrIntegerOverflow
	}

	return a.regFile.WriteSigned(rd, result)
}

// addUnsignedChecked performs unsigned addition, faulting on carry-out
// without writing the destination.
func (a *ALU) addUnsignedChecked(rd insts.Reg, op1, op2 uint32) error {
	result := op1 + op2
	if result < op1 {
		return ErrIntegerOverflow
	}

	return a.regFile.Write(rd, result)
}
