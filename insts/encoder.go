package insts

// EncodeR forms a register-type instruction word.
// Format: 000000 | rs | rt | rd | shamt | funct
func EncodeR(funct Funct, rs, rt, rd Reg, shamt uint8) uint32 {
	return uint32(rs&0x1F)<<21 |
		uint32(rt&0x1F)<<16 |
		uint32(rd&0x1F)<<11 |
		uint32(shamt&0x1F)<<6 |
		uint32(funct)&0x3F
}

// EncodeI forms an immediate-type instruction word.
// Format: opcode | rs | rt | imm16
func EncodeI(opcode Opcode, rs, rt Reg, imm uint16) uint32 {
	return uint32(opcode&0x3F)<<26 |
		uint32(rs&0x1F)<<21 |
		uint32(rt&0x1F)<<16 |
		uint32(imm)
}

// EncodeSyscall forms the canonical syscall instruction word.
func EncodeSyscall() uint32 {
	return EncodeR(FunctSyscall, Zero, Zero, Zero, 0)
}
