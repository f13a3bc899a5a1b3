package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsim/emu"
)

var _ = Describe("DefaultSyscallHandler", func() {
	var handler *emu.DefaultSyscallHandler

	BeforeEach(func() {
		handler = emu.NewDefaultSyscallHandler()
	})

	It("should map exit to Halt", func() {
		effect, err := handler.Dispatch(emu.SyscallExit)

		Expect(err).NotTo(HaveOccurred())
		Expect(effect).To(Equal(emu.Halt))
	})

	It("should reject any other code, carrying it for diagnostics", func() {
		_, err := handler.Dispatch(7)

		var unsupported emu.UnsupportedSyscallError
		Expect(err).To(BeAssignableToTypeOf(unsupported))
		Expect(err).To(MatchError(emu.UnsupportedSyscallError{Code: 7}))
		Expect(err.Error()).To(ContainSubstring("$v0=7"))
	})
})
