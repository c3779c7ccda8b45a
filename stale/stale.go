// Package stale implements the Stale-Address Handler (spec.md §4.4): when a
// connect attempt against a registered daemon fails, the handler evicts the
// now-provably-dead record and appends a StopEvent for it.
package stale

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/sabouaram/daemonconnector/clock"
	"github.com/sabouaram/daemonconnector/daemon"
	"github.com/sabouaram/daemonconnector/registry"
)

// reason is the free-text StopEvent reason spec.md §4.4 mandates verbatim.
const reason = "by user or operating system"

// Handler is bound to a specific daemon id at construction, mirroring the
// "cyclic back-reference" design note in spec.md §9: the handler carries the
// DaemonInfo and the registry handle, and the resulting connection carries
// the handler — never the other way around.
type Handler struct {
	registry registry.Client
	clock    clock.Clock
	log      hclog.Logger
	info     daemon.Info
}

// New binds a Handler to one DaemonInfo.
func New(reg registry.Client, clk clock.Clock, log hclog.Logger, info daemon.Info) Handler {
	return Handler{registry: reg, clock: clk, log: log.Named("stale"), info: info}
}

// Evict records a StopEvent and removes the daemon's registry entry. It is
// best-effort and idempotent: a second call against an already-removed
// record is a no-op on the registry side (spec.md §8 invariant 5). Evict
// returns no error of its own (registry failures are only logged), so the
// original connect failure that triggered this call is never masked —
// callers re-raise their own error regardless.
func (h Handler) Evict(ctx context.Context, cause error) bool {
	if _, found, err := h.registry.Get(ctx, h.info.ID); err == nil && !found {
		h.log.Debug("stale daemon record already removed", "daemon_id", h.info.ID, "connect_error", cause)
		return true
	}

	event := daemon.StopEvent{
		DaemonID: h.info.ID,
		Time:     h.clock.Now(),
		Status:   nil,
		Reason:   reason,
	}

	if err := h.registry.StoreStopEvent(ctx, event); err != nil {
		h.log.Warn("failed to record stop event", "daemon_id", h.info.ID, "error", err)
	}

	if err := h.registry.Remove(ctx, h.info.ID); err != nil {
		h.log.Warn("failed to remove stale daemon record", "daemon_id", h.info.ID, "error", err)
	}

	h.log.Debug("evicted stale daemon address", "daemon_id", h.info.ID, "connect_error", cause)
	return true
}

// Info returns the DaemonInfo this handler is bound to.
func (h Handler) Info() daemon.Info { return h.info }
