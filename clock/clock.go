// Package clock exposes the monotonic clock and sleep primitive the connector
// polls against, kept behind an interface so the canceled-daemon wait (spec
// scenario D/E) and the handshake poll can be driven by simulated time in
// tests instead of real wall-clock sleeps.
package clock

import (
	"context"
	"time"
)

// Clock is the suspension-point abstraction used by every poll loop in this
// module. Sleep returns early with ctx.Err() if ctx is canceled — the caller
// maps that to the fatal InterruptedError spec.md mandates for an interrupted
// sleep.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// Real is the production Clock, backed directly by the time package.
type Real struct{}

func NewReal() Real { return Real{} }

func (Real) Now() time.Time { return time.Now() }

func (Real) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
