// Package asm implements a line-oriented assembler for the mipsim
// instruction set. One instruction per line, '#' starts a comment,
// registers are written by name ($t0) or number ($8).
package asm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/mipsim/insts"
)

// operand layouts for the mnemonic table
type form uint8

const (
	form3Reg     form = iota // op $rd, $rs, $rt
	formShiftImm             // op $rd, $rt, shamt
	formShiftReg             // op $rd, $rt, $rs
	formNoArgs               // op
	formImm                  // op $rt, $rs, imm
	formLui                  // op $rt, imm
)

type mnemonic struct {
	form   form
	funct  insts.Funct  // register-type forms
	opcode insts.Opcode // immediate-type forms
}

var mnemonics = map[string]mnemonic{
	"sll":     {form: formShiftImm, funct: insts.FunctSll},
	"srl":     {form: formShiftImm, funct: insts.FunctSrl},
	"sra":     {form: formShiftImm, funct: insts.FunctSra},
	"sllv":    {form: formShiftReg, funct: insts.FunctSllV},
	"srlv":    {form: formShiftReg, funct: insts.FunctSrlV},
	"srav":    {form: formShiftReg, funct: insts.FunctSraV},
	"syscall": {form: formNoArgs, funct: insts.FunctSyscall},
	"add":     {form: form3Reg, funct: insts.FunctAdd},
	"addu":    {form: form3Reg, funct: insts.FunctAddU},
	"sub":     {form: form3Reg, funct: insts.FunctSub},
	"subu":    {form: form3Reg, funct: insts.FunctSubU},
	"and":     {form: form3Reg, funct: insts.FunctAnd},
	"or":      {form: form3Reg, funct: insts.FunctOr},
	"xor":     {form: form3Reg, funct: insts.FunctXor},
	"nor":     {form: form3Reg, funct: insts.FunctNor},
	"addi":    {form: formImm, opcode: insts.OpcodeAddI},
	"addiu":   {form: formImm, opcode: insts.OpcodeAddIU},
	"andi":    {form: formImm, opcode: insts.OpcodeAndI},
	"ori":     {form: formImm, opcode: insts.OpcodeOrI},
	"xori":    {form: formImm, opcode: insts.OpcodeXorI},
	"lui":     {form: formLui, opcode: insts.OpcodeLuI},
}

// regNames maps register names (without the '$' prefix) to indexes.
var regNames = map[string]insts.Reg{
	"zero": insts.Zero, "at": insts.At,
	"v0": insts.V0, "v1": insts.V1,
	"a0": insts.A0, "a1": insts.A1, "a2": insts.A2, "a3": insts.A3,
	"t0": insts.T0, "t1": insts.T1, "t2": insts.T2, "t3": insts.T3,
	"t4": insts.T4, "t5": insts.T5, "t6": insts.T6, "t7": insts.T7,
	"s0": insts.S0, "s1": insts.S1, "s2": insts.S2, "s3": insts.S3,
	"s4": insts.S4, "s5": insts.S5, "s6": insts.S6, "s7": insts.S7,
	"t8": insts.T8, "t9": insts.T9,
	"k0": insts.K0, "k1": insts.K1,
	"gp": insts.GP, "sp": insts.SP, "fp": insts.FP, "ra": insts.RA,
}

// Assemble reads assembly text and produces encoded instruction words.
// Errors are reported with their 1-based source line number.
func Assemble(r io.Reader) ([]uint32, error) {
	var words []uint32

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		word, err := assembleLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		words = append(words, word)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// AssembleString assembles a program held in a string.
func AssembleString(src string) ([]uint32, error) {
	return Assemble(strings.NewReader(src))
}

func assembleLine(line string) (uint32, error) {
	name := line
	rest := ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		name, rest = line[:i], line[i+1:]
	}
	name = strings.ToLower(name)

	m, ok := mnemonics[name]
	if !ok {
		return 0, fmt.Errorf("unknown mnemonic %q", name)
	}

	ops, err := splitOperands(rest)
	if err != nil {
		return 0, err
	}

	switch m.form {
	case form3Reg:
		rd, rs, rt, err := threeRegs(name, ops)
		if err != nil {
			return 0, err
		}
		return insts.EncodeR(m.funct, rs, rt, rd, 0), nil

	case formShiftImm:
		if len(ops) != 3 {
			return 0, operandCountError(name, 3, len(ops))
		}
		rd, err := parseReg(ops[0])
		if err != nil {
			return 0, err
		}
		rt, err := parseReg(ops[1])
		if err != nil {
			return 0, err
		}
		shamt, err := parseShamt(ops[2])
		if err != nil {
			return 0, err
		}
		return insts.EncodeR(m.funct, insts.Zero, rt, rd, shamt), nil

	case formShiftReg:
		rd, rt, rs, err := threeRegs(name, ops)
		if err != nil {
			return 0, err
		}
		return insts.EncodeR(m.funct, rs, rt, rd, 0), nil

	case formNoArgs:
		if len(ops) != 0 {
			return 0, operandCountError(name, 0, len(ops))
		}
		return insts.EncodeSyscall(), nil

	case formImm:
		if len(ops) != 3 {
			return 0, operandCountError(name, 3, len(ops))
		}
		rt, err := parseReg(ops[0])
		if err != nil {
			return 0, err
		}
		rs, err := parseReg(ops[1])
		if err != nil {
			return 0, err
		}
		imm, err := parseImm(ops[2])
		if err != nil {
			return 0, err
		}
		return insts.EncodeI(m.opcode, rs, rt, imm), nil

	case formLui:
		if len(ops) != 2 {
			return 0, operandCountError(name, 2, len(ops))
		}
		rt, err := parseReg(ops[0])
		if err != nil {
			return 0, err
		}
		imm, err := parseImm(ops[1])
		if err != nil {
			return 0, err
		}
		return insts.EncodeI(m.opcode, insts.Zero, rt, imm), nil
	}

	return 0, fmt.Errorf("unknown mnemonic %q", name)
}

func splitOperands(rest string) ([]string, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, nil
	}

	parts := strings.Split(rest, ",")
	ops := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("empty operand in %q", rest)
		}
		ops = append(ops, p)
	}
	return ops, nil
}

func threeRegs(name string, ops []string) (a, b, c insts.Reg, err error) {
	if len(ops) != 3 {
		return 0, 0, 0, operandCountError(name, 3, len(ops))
	}
	if a, err = parseReg(ops[0]); err != nil {
		return 0, 0, 0, err
	}
	if b, err = parseReg(ops[1]); err != nil {
		return 0, 0, 0, err
	}
	if c, err = parseReg(ops[2]); err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}

func operandCountError(name string, want, got int) error {
	return fmt.Errorf("%s expects %d operands, got %d", name, want, got)
}

func parseReg(s string) (insts.Reg, error) {
	if !strings.HasPrefix(s, "$") {
		return 0, fmt.Errorf("bad register %q", s)
	}
	name := strings.ToLower(s[1:])

	if r, ok := regNames[name]; ok {
		return r, nil
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n < insts.NumRegs {
		return insts.Reg(n), nil
	}
	return 0, fmt.Errorf("bad register %q", s)
}

// parseImm accepts any strconv base prefix (decimal, 0x, 0b, 0o) and both
// signed and unsigned spellings of the 16 immediate bits.
func parseImm(s string) (uint16, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad immediate %q", s)
	}
	if v < -0x8000 || v > 0xFFFF {
		return 0, fmt.Errorf("immediate %d out of 16-bit range", v)
	}
	return uint16(v), nil
}

func parseShamt(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil || v > 31 {
		return 0, fmt.Errorf("bad shift amount %q", s)
	}
	return uint8(v), nil
}
