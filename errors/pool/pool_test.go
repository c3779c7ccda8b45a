package pool_test

import (
	"errors"
	"sync"

	"github.com/sabouaram/daemonconnector/errors/pool"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pool", func() {
	It("reports no error when empty", func() {
		p := pool.New()
		Expect(p.Len()).To(Equal(uint64(0)))
		Expect(p.Error()).To(BeNil())
	})

	It("ignores nil errors", func() {
		p := pool.New()
		p.Add(nil, nil)
		Expect(p.Len()).To(Equal(uint64(0)))
		Expect(p.Error()).To(BeNil())
	})

	It("counts and combines every non-nil error added", func() {
		p := pool.New()
		p.Add(errors.New("one"), errors.New("two"))
		Expect(p.Len()).To(Equal(uint64(2)))

		err := p.Error()
		Expect(err).ToNot(BeNil())
		Expect(err.Error()).To(ContainSubstring("one"))
		Expect(err.Error()).To(ContainSubstring("two"))
	})

	It("is safe for concurrent writers", func() {
		p := pool.New()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				p.Add(errors.New("err"))
				_ = n
			}(i)
		}
		wg.Wait()
		Expect(p.Len()).To(Equal(uint64(50)))
	})
})
