// Package pool collects errors raised while trying several candidates in
// turn (e.g. the idle daemons the connector probes before giving up
// and launching a new one), so the caller can report why every candidate
// was rejected instead of just the last failure.
package pool

import (
	"sync/atomic"

	libatm "github.com/sabouaram/daemonconnector/atomic"
)

// Pool is a thread-safe collection of errors with automatic indexing.
type Pool interface {
	// Add appends each non-nil error under the next sequential index.
	Add(e ...error)
	// Len returns the count of errors currently in the pool.
	Len() uint64
	// Error combines every error in the pool into one, or nil if empty.
	Error() error
}

// New returns an empty Pool.
func New() Pool {
	return &mod{
		s: new(atomic.Uint64),
		l: libatm.NewMapTyped[uint64, error](),
	}
}
