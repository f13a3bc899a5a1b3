// Package insts provides MIPS32 instruction definitions and decoding.
package insts

// Reg identifies one of the 32 architectural registers.
type Reg uint8

// MIPS32 register names by conventional usage.
const (
	Zero Reg = iota // $zero, hardwired to 0
	At              // $at, assembler temporary
	V0              // $v0, return value / syscall code
	V1              // $v1, return value
	A0              // $a0, argument
	A1              // $a1, argument
	A2              // $a2, argument
	A3              // $a3, argument
	T0              // $t0, temporary
	T1              // $t1, temporary
	T2              // $t2, temporary
	T3              // $t3, temporary
	T4              // $t4, temporary
	T5              // $t5, temporary
	T6              // $t6, temporary
	T7              // $t7, temporary
	S0              // $s0, saved
	S1              // $s1, saved
	S2              // $s2, saved
	S3              // $s3, saved
	S4              // $s4, saved
	S5              // $s5, saved
	S6              // $s6, saved
	S7              // $s7, saved
	T8              // $t8, temporary
	T9              // $t9, temporary
	K0              // $k0, kernel
	K1              // $k1, kernel
	GP              // $gp, global pointer
	SP              // $sp, stack pointer
	FP              // $fp, frame pointer
	RA              // $ra, return address
)

// NumRegs is the number of architectural registers.
const NumRegs = 32

var regNames = [NumRegs]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

// String returns the conventional assembly name of the register.
func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return "$?"
}

// Funct selects the operation of a register-type instruction (opcode 0).
type Funct uint8

// Register-type function codes.
const (
	FunctSll     Funct = 0b000000 // Shift left logical
	FunctSrl     Funct = 0b000010 // Shift right logical
	FunctSra     Funct = 0b000011 // Shift right arithmetic
	FunctSllV    Funct = 0b000100 // Shift left logical variable
	FunctSrlV    Funct = 0b000110 // Shift right logical variable
	FunctSraV    Funct = 0b000111 // Shift right arithmetic variable
	FunctSyscall Funct = 0b001100 // System call
	FunctAdd     Funct = 0b100000 // Add (traps on signed overflow)
	FunctAddU    Funct = 0b100001 // Add unsigned (wraps)
	FunctSub     Funct = 0b100010 // Subtract (traps on signed overflow)
	FunctSubU    Funct = 0b100011 // Subtract unsigned (wraps)
	FunctAnd     Funct = 0b100100 // Bitwise AND
	FunctOr      Funct = 0b100101 // Bitwise OR
	FunctXor     Funct = 0b100110 // Bitwise XOR
	FunctNor     Funct = 0b100111 // Bitwise NOR
)

// Opcode is the primary 6-bit field selecting an instruction family.
// Opcode 0 marks a register-type instruction; the remaining known values
// each select one immediate-type operation.
type Opcode uint8

// Instruction opcodes.
const (
	OpcodeReg   Opcode = 0b000000 // Register-type, operation in funct
	OpcodeAddI  Opcode = 0b001000 // Add immediate (traps on signed overflow)
	OpcodeAddIU Opcode = 0b001001 // Add immediate unsigned (traps on carry-out)
	OpcodeAndI  Opcode = 0b001100 // AND immediate (zero-extended)
	OpcodeOrI   Opcode = 0b001101 // OR immediate (zero-extended)
	OpcodeXorI  Opcode = 0b001110 // XOR immediate (zero-extended)
	OpcodeLuI   Opcode = 0b001111 // Load upper immediate
)

// Kind distinguishes the two instruction families.
type Kind uint8

// Instruction kinds.
const (
	KindReg Kind = iota // Register-type: three registers plus shamt
	KindImm             // Immediate-type: one source register plus 16-bit immediate
)

// Instruction represents a decoded MIPS32 instruction.
//
// Register fields always hold a valid register index; the 5-bit encoding
// covers the Reg enumeration exactly, so decoding a register field cannot
// fail.
type Instruction struct {
	Kind Kind

	// Register-type fields
	Funct Funct // Operation selector (KindReg)
	Rd    Reg   // Destination register (KindReg)
	Shamt uint8 // Shift amount, 5 bits (KindReg)

	// Immediate-type fields
	Opcode Opcode // Operation selector (KindImm)
	Imm    uint16 // Immediate datum, raw 16 bits (KindImm)

	// Common fields
	Rs Reg // First source register
	Rt Reg // Second source register (KindReg) or destination (KindImm)
}

// SignExtend widens a 16-bit immediate to 32 bits by replicating bit 15.
// The result is returned as the unsigned view of the same bit pattern.
func SignExtend(imm uint16) uint32 {
	return uint32(int32(int16(imm)))
}

// ZeroExtend widens a 16-bit immediate to 32 bits with a zero upper half.
func ZeroExtend(imm uint16) uint32 {
	return uint32(imm)
}
