package pool

import (
	"sync/atomic"

	libatm "github.com/sabouaram/daemonconnector/atomic"
	liberr "github.com/sabouaram/daemonconnector/errors"
)

// mod is the concrete implementation of Pool: a sequence counter and a
// concurrent-safe index-to-error map.
type mod struct {
	s *atomic.Uint64
	l libatm.MapTyped[uint64, error]
}

func (o *mod) Add(e ...error) {
	for _, err := range e {
		if err != nil {
			o.l.Store(o.s.Add(1), err)
		}
	}
}

func (o *mod) Len() uint64 {
	var n uint64
	o.l.Range(func(_ uint64, err error) bool {
		if err != nil {
			n++
		}
		return true
	})
	return n
}

func (o *mod) Error() error {
	return liberr.UnknownError.IfError(o.slice()...)
}

func (o *mod) slice() []error {
	e := make([]error, 0)
	o.l.Range(func(_ uint64, err error) bool {
		e = append(e, err)
		return true
	})
	return e
}
