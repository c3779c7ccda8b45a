package atomic_test

import (
	libatm "github.com/sabouaram/daemonconnector/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MapTyped", func() {
	It("supports Store/Load/Delete", func() {
		m := libatm.NewMapTyped[string, int]()

		_, ok := m.Load("a")
		Expect(ok).To(BeFalse())

		m.Store("a", 1)
		v, ok := m.Load("a")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(1))

		m.Delete("a")
		_, ok = m.Load("a")
		Expect(ok).To(BeFalse())
	})

	It("ranges over every stored entry", func() {
		m := libatm.NewMapTyped[int, string]()
		m.Store(1, "one")
		m.Store(2, "two")

		seen := map[int]string{}
		m.Range(func(k int, v string) bool {
			seen[k] = v
			return true
		})
		Expect(seen).To(Equal(map[int]string{1: "one", 2: "two"}))
	})

	It("stops ranging when f returns false", func() {
		m := libatm.NewMapTyped[int, int]()
		for i := 0; i < 10; i++ {
			m.Store(i, i)
		}

		count := 0
		m.Range(func(int, int) bool {
			count++
			return count < 3
		})
		Expect(count).To(Equal(3))
	})

	It("is safe for concurrent writers", func() {
		m := libatm.NewMapTyped[int, int]()
		done := make(chan struct{})
		go func() {
			for i := 0; i < 50; i++ {
				m.Store(i, i)
			}
			close(done)
		}()
		for i := 50; i < 100; i++ {
			m.Store(i, i)
		}
		<-done

		n := 0
		m.Range(func(int, int) bool { n++; return true })
		Expect(n).To(Equal(100))
	})
})
