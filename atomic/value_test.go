package atomic_test

import (
	libatm "github.com/sabouaram/daemonconnector/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value[T]", func() {
	It("returns the zero value before the first Store", func() {
		v := libatm.NewValue[bool]()
		Expect(v.Load()).To(BeFalse())
	})

	It("returns the configured default load value before the first Store", func() {
		v := libatm.NewValueDefault[int](7, 0)
		Expect(v.Load()).To(Equal(7))
	})

	It("round-trips a stored value, including the zero value of T", func() {
		v := libatm.NewValue[bool]()
		v.SetDefaultLoad(true)
		v.Store(true)
		Expect(v.Load()).To(BeTrue())

		v.Store(false)
		Expect(v.Load()).To(BeFalse())
	})

	It("substitutes the default store value when Store receives a zero T", func() {
		v := libatm.NewValueDefault[int](0, 42)
		v.Store(0)
		Expect(v.Load()).To(Equal(42))

		v.Store(5)
		Expect(v.Load()).To(Equal(5))
	})

	It("is safe to share across goroutines", func() {
		v := libatm.NewValue[int]()
		done := make(chan struct{})
		go func() { v.Store(1); close(done) }()
		v.Store(2)
		<-done
		Expect(v.Load()).To(BeNumerically(">", 0))
	})
})
