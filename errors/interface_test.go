package errors_test

import (
	"errors"

	liberr "github.com/sabouaram/daemonconnector/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	testCode1 liberr.CodeError = liberr.MinAvailable + iota
	testCode2
	testCode3
)

var _ = Describe("Error", func() {
	BeforeEach(func() {
		if !liberr.ExistInMapMessage(testCode1) {
			liberr.RegisterIdFctMessage(testCode1, func(code liberr.CodeError) string {
				switch code {
				case testCode1:
					return "test error 1"
				case testCode2:
					return "test error 2"
				case testCode3:
					return "test error 3"
				default:
					return ""
				}
			})
		}
	})

	Describe("IsCode", func() {
		It("matches its own code", func() {
			err := testCode1.Error(nil)
			Expect(err.IsCode(testCode1)).To(BeTrue())
		})

		It("does not match an unrelated code", func() {
			err := testCode1.Error(nil)
			Expect(err.IsCode(testCode2)).To(BeFalse())
		})
	})

	Describe("HasCode", func() {
		It("finds a parent's code", func() {
			parent := testCode2.Error(nil)
			err := testCode1.Error(parent)
			Expect(err.HasCode(testCode2)).To(BeTrue())
		})

		It("returns false for a code absent from the whole chain", func() {
			err := testCode1.Error(nil)
			Expect(err.HasCode(testCode3)).To(BeFalse())
		})

		It("still matches its own code", func() {
			err := testCode1.Error(nil)
			Expect(err.HasCode(testCode1)).To(BeTrue())
		})
	})

	Describe("Error", func() {
		It("includes the parent's message", func() {
			parent := errors.New("dial tcp: refused")
			err := testCode1.Error(parent)
			Expect(err.Error()).To(ContainSubstring("test error 1"))
			Expect(err.Error()).To(ContainSubstring("dial tcp: refused"))
		})

		It("implements the standard error interface", func() {
			var _ error = testCode1.Error(nil)
		})
	})

	Describe("IfError", func() {
		It("returns nil when every parent is nil", func() {
			Expect(testCode1.IfError()).To(BeNil())
		})

		It("returns an Error when at least one parent is non-nil", func() {
			err := testCode1.IfError(errors.New("boom"))
			Expect(err).ToNot(BeNil())
			Expect(err.IsCode(testCode1)).To(BeTrue())
		})
	})
})
