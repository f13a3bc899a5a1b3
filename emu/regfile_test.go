package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsim/emu"
	"github.com/sarchlab/mipsim/insts"
)

var _ = Describe("RegFile", func() {
	var regFile *emu.RegFile

	BeforeEach(func() {
		regFile = &emu.RegFile{}
	})

	It("should return a written value bit-identically through the matching view", func() {
		Expect(regFile.Write(insts.T0, 0xDEADBEEF)).To(Succeed())

		Expect(regFile.Read(insts.T0)).To(Equal(uint32(0xDEADBEEF)))
	})

	It("should alias the signed and unsigned views over the same storage", func() {
		Expect(regFile.WriteSigned(insts.S3, -1)).To(Succeed())
		Expect(regFile.Read(insts.S3)).To(Equal(uint32(0xFFFFFFFF)))

		Expect(regFile.Write(insts.S3, 0x80000000)).To(Succeed())
		Expect(regFile.ReadSigned(insts.S3)).To(Equal(int32(-2147483648)))
	})

	It("should always read $zero as 0", func() {
		Expect(regFile.Read(insts.Zero)).To(Equal(uint32(0)))
		Expect(regFile.ReadSigned(insts.Zero)).To(Equal(int32(0)))
	})

	It("should reject writes to $zero before any mutation", func() {
		before := regFile.Snapshot()

		Expect(regFile.Write(insts.Zero, 42)).To(MatchError(emu.ErrZeroRegisterWrite))
		Expect(regFile.WriteSigned(insts.Zero, -42)).To(MatchError(emu.ErrZeroRegisterWrite))

		Expect(regFile.Snapshot()).To(Equal(before))
	})

	It("should keep registers independent", func() {
		Expect(regFile.Write(insts.T0, 1)).To(Succeed())
		Expect(regFile.Write(insts.T1, 2)).To(Succeed())

		Expect(regFile.Read(insts.T0)).To(Equal(uint32(1)))
		Expect(regFile.Read(insts.T1)).To(Equal(uint32(2)))
	})
})

var _ = Describe("Memory", func() {
	var memory *emu.Memory

	BeforeEach(func() {
		memory = emu.NewMemory()
	})

	It("should read unmapped addresses as 0 without materializing them", func() {
		Expect(memory.Read32(0x1000)).To(Equal(uint32(0)))
		Expect(memory.Mapped()).To(Equal(0))
	})

	It("should materialize addresses on write", func() {
		memory.Write32(0x1000, 0xCAFEBABE)

		Expect(memory.Read32(0x1000)).To(Equal(uint32(0xCAFEBABE)))
		Expect(memory.Mapped()).To(Equal(1))
	})

	It("should snapshot a copy, not the live map", func() {
		memory.Write32(4, 7)

		snap := memory.Snapshot()
		snap[4] = 99

		Expect(memory.Read32(4)).To(Equal(uint32(7)))
	})
})
