package insts

import "fmt"

// InvalidOpcodeError reports an opcode field that matches no known
// instruction family.
type InvalidOpcodeError struct {
	// Opcode is the offending 6-bit pattern, bits [31:26] of the word.
	Opcode uint8
}

func (e InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode %#b", e.Opcode)
}

// InvalidFunctError reports a register-type funct field that matches no
// known operation.
type InvalidFunctError struct {
	// Funct is the offending 6-bit pattern, bits [5:0] of the word.
	Funct uint8
}

func (e InvalidFunctError) Error() string {
	return fmt.Sprintf("invalid funct %#b", e.Funct)
}

// Decoder decodes MIPS32 machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new MIPS32 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit instruction word.
//
// Field extraction is pure bit masking and has no side effects. A word
// whose opcode or funct bits match no known operation is an error, never
// a no-op: the caller must not guess.
func (d *Decoder) Decode(word uint32) (Instruction, error) {
	opcode := Opcode(word >> 26)
	if opcode == OpcodeReg {
		return d.decodeReg(word)
	}
	return d.decodeImm(word, opcode)
}

// decodeReg decodes a register-type instruction.
// Format: 000000 | rs | rt | rd | shamt | funct
func (d *Decoder) decodeReg(word uint32) (Instruction, error) {
	funct := Funct(word & 0x3F)

	switch funct {
	case FunctSll, FunctSrl, FunctSra,
		FunctSllV, FunctSrlV, FunctSraV,
		FunctSyscall,
		FunctAdd, FunctAddU, FunctSub, FunctSubU,
		FunctAnd, FunctOr, FunctXor, FunctNor:
	default:
		return Instruction{}, InvalidFunctError{Funct: uint8(funct)}
	}

	return Instruction{
		Kind:  KindReg,
		Funct: funct,
		Rs:    Reg((word >> 21) & 0x1F),
		Rt:    Reg((word >> 16) & 0x1F),
		Rd:    Reg((word >> 11) & 0x1F),
		Shamt: uint8((word >> 6) & 0x1F),
	}, nil
}

// decodeImm decodes an immediate-type instruction.
// Format: opcode | rs | rt | imm16
// The rt field is the destination for this family.
func (d *Decoder) decodeImm(word uint32, opcode Opcode) (Instruction, error) {
	switch opcode {
	case OpcodeAddI, OpcodeAddIU, OpcodeAndI, OpcodeOrI, OpcodeXorI, OpcodeLuI:
	default:
		return Instruction{}, InvalidOpcodeError{Opcode: uint8(opcode)}
	}

	return Instruction{
		Kind:   KindImm,
		Opcode: opcode,
		Rs:     Reg((word >> 21) & 0x1F),
		Rt:     Reg((word >> 16) & 0x1F),
		Imm:    uint16(word & 0xFFFF),
	}, nil
}
