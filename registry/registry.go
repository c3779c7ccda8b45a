// Package registry defines the small interface the connector consumes from
// the daemon registry (spec.md §4.2, §6.1) and a concurrency-safe in-memory
// reference implementation used by tests and by the embedded variant. The
// real mmap-backed, file-locked store is an external collaborator out of
// scope for this module (spec.md §1).
package registry

import (
	"context"

	"github.com/sabouaram/daemonconnector/daemon"
)

// Client is the registry surface the connector depends on. Every operation
// is atomic with respect to other clients; the connector is written to
// tolerate the registry changing arbitrarily between any two calls
// (spec.md §4.2).
type Client interface {
	GetAll(ctx context.Context) ([]daemon.Info, error)
	GetIdle(ctx context.Context) ([]daemon.Info, error)
	Get(ctx context.Context, id string) (daemon.Info, bool, error)
	Remove(ctx context.Context, id string) error

	GetStopEvents(ctx context.Context) ([]daemon.StopEvent, error)
	StoreStopEvent(ctx context.Context, e daemon.StopEvent) error
	RemoveStopEvents(ctx context.Context, events []daemon.StopEvent) error

	// Store installs or replaces a daemon record. Not in spec.md's consumed
	// operation list for the read/evict paths, but required so the Daemon
	// Launcher (and the embedded variant's startup) can publish the
	// initial Busy record a freshly spawned daemon writes for itself
	// (spec.md §3: "writing its record in Busy state").
	Store(ctx context.Context, info daemon.Info) error
}
