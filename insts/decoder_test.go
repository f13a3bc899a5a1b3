package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("Register-type instructions", func() {
		// add $t0, $t1, $t2 -> 0x012A4020
		It("should decode add with all register fields", func() {
			inst, err := decoder.Decode(0x012A4020)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Kind).To(Equal(insts.KindReg))
			Expect(inst.Funct).To(Equal(insts.FunctAdd))
			Expect(inst.Rs).To(Equal(insts.T1))
			Expect(inst.Rt).To(Equal(insts.T2))
			Expect(inst.Rd).To(Equal(insts.T0))
			Expect(inst.Shamt).To(Equal(uint8(0)))
		})

		// sll $t0, $t1, 4 -> 0x00094100
		It("should decode sll with its shift amount", func() {
			inst, err := decoder.Decode(0x00094100)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Funct).To(Equal(insts.FunctSll))
			Expect(inst.Rt).To(Equal(insts.T1))
			Expect(inst.Rd).To(Equal(insts.T0))
			Expect(inst.Shamt).To(Equal(uint8(4)))
		})

		It("should decode the all-zero word as a no-op shift, not an error", func() {
			inst, err := decoder.Decode(0x00000000)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Kind).To(Equal(insts.KindReg))
			Expect(inst.Funct).To(Equal(insts.FunctSll))
			Expect(inst.Rs).To(Equal(insts.Zero))
			Expect(inst.Rt).To(Equal(insts.Zero))
			Expect(inst.Rd).To(Equal(insts.Zero))
			Expect(inst.Shamt).To(Equal(uint8(0)))
		})

		It("should decode syscall", func() {
			inst, err := decoder.Decode(0x0000000C)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Kind).To(Equal(insts.KindReg))
			Expect(inst.Funct).To(Equal(insts.FunctSyscall))
		})

		It("should reject an unknown funct", func() {
			// funct 0b001101 (break) is not in the repertoire
			_, err := decoder.Decode(0x0000000D)

			Expect(err).To(MatchError(insts.InvalidFunctError{Funct: 0b001101}))
		})

		It("should reject funct 0b000001", func() {
			_, err := decoder.Decode(0x00000001)

			Expect(err).To(MatchError(insts.InvalidFunctError{Funct: 0b000001}))
		})
	})

	Describe("Immediate-type instructions", func() {
		// addi $t0, $zero, 1 -> 0x20080001
		It("should decode addi with rt as the destination field", func() {
			inst, err := decoder.Decode(0x20080001)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Kind).To(Equal(insts.KindImm))
			Expect(inst.Opcode).To(Equal(insts.OpcodeAddI))
			Expect(inst.Rs).To(Equal(insts.Zero))
			Expect(inst.Rt).To(Equal(insts.T0))
			Expect(inst.Imm).To(Equal(uint16(1)))
		})

		// lui $t0, 0x1234 -> 0x3C081234
		It("should decode lui", func() {
			inst, err := decoder.Decode(0x3C081234)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Opcode).To(Equal(insts.OpcodeLuI))
			Expect(inst.Rt).To(Equal(insts.T0))
			Expect(inst.Imm).To(Equal(uint16(0x1234)))
		})

		// ori $s0, $s1, 0xFFFF -> opcode 0b001101
		It("should keep the raw 16 immediate bits", func() {
			word := insts.EncodeI(insts.OpcodeOrI, insts.S1, insts.S0, 0xFFFF)
			inst, err := decoder.Decode(word)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Opcode).To(Equal(insts.OpcodeOrI))
			Expect(inst.Rs).To(Equal(insts.S1))
			Expect(inst.Rt).To(Equal(insts.S0))
			Expect(inst.Imm).To(Equal(uint16(0xFFFF)))
		})

		It("should reject an unknown opcode", func() {
			// top six bits all set
			_, err := decoder.Decode(0xFC000000)

			Expect(err).To(MatchError(insts.InvalidOpcodeError{Opcode: 0b111111}))
		})

		It("should reject the jump opcode", func() {
			// j is not in the repertoire; opcode 0b000010
			_, err := decoder.Decode(0x08000000)

			Expect(err).To(MatchError(insts.InvalidOpcodeError{Opcode: 0b000010}))
		})
	})

	Describe("Round trips", func() {
		It("should invert EncodeR", func() {
			word := insts.EncodeR(insts.FunctSraV, insts.A0, insts.A1, insts.A2, 0)
			inst, err := decoder.Decode(word)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Funct).To(Equal(insts.FunctSraV))
			Expect(inst.Rs).To(Equal(insts.A0))
			Expect(inst.Rt).To(Equal(insts.A1))
			Expect(inst.Rd).To(Equal(insts.A2))
		})

		It("should invert EncodeI", func() {
			word := insts.EncodeI(insts.OpcodeXorI, insts.T8, insts.T9, 0xBEEF)
			inst, err := decoder.Decode(word)

			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Opcode).To(Equal(insts.OpcodeXorI))
			Expect(inst.Rs).To(Equal(insts.T8))
			Expect(inst.Rt).To(Equal(insts.T9))
			Expect(inst.Imm).To(Equal(uint16(0xBEEF)))
		})
	})
})
