package connector

import (
	"context"
	"fmt"
	"time"

	libatm "github.com/sabouaram/daemonconnector/atomic"
	"github.com/sabouaram/daemonconnector/daemon"
	"github.com/sabouaram/daemonconnector/errcode"
)

const embeddedPollInterval = 50 * time.Millisecond
const embeddedStartupTimeout = 30 * time.Second

// EmbeddedServer hosts the daemon's own request loop inside the client
// process. spec.md §9 notes that in a systems-language rewrite the
// original's dynamic class loading becomes a build-time feature flag: the
// daemon core is linked in behind an interface, or the variant is omitted
// entirely. This module takes the former path but keeps the core itself
// out of scope (spec.md §1), so callers supply their own implementation.
type EmbeddedServer interface {
	// Run installs id as process-global configuration and runs until ctx
	// is canceled or the server dies; it must write its own Busy record to
	// the registry once ready, exactly like a spawned daemon would
	// (spec.md §3).
	Run(ctx context.Context, id string) error
}

// connectEmbedded is the no-daemon variant (spec.md §4.7).
func (o Orchestrator) connectEmbedded(ctx context.Context, constraint daemon.Constraint) (ClientConnection, error) {
	if o.NativeImage {
		return ClientConnection{}, errcode.Unsupported(fmt.Errorf("embedded daemon mode requested in native image"))
	}
	if o.Server == nil {
		return ClientConnection{}, errcode.Unsupported(fmt.Errorf("no embedded server configured"))
	}

	id := embeddedID(o.PID, o.Clock.Now())

	// alive is the shared atomic flag spec.md §5 describes: the background
	// thread flips it once on exit, the connector only ever reads it.
	alive := libatm.NewValue[bool]()
	alive.SetDefaultLoad(true)
	alive.Store(true)

	serverCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer alive.Store(false)
		if err := o.Server.Run(serverCtx, id); err != nil {
			o.Log.Warn("embedded daemon server exited", "daemon_id", id, "error", err)
		}
	}()

	start := o.Clock.Now()
	deadline := start.Add(embeddedStartupTimeout)

	for {
		info, found, err := o.Registry.Get(ctx, id)
		if err != nil {
			return ClientConnection{}, errcode.Connect(err)
		}
		if found {
			cc, err := o.connectToDaemon(ctx, info, true)
			if err == nil {
				return cc, nil
			}
			return ClientConnection{}, errcode.Connect(err)
		}

		if !alive.Load() || !o.Clock.Now().Before(deadline) {
			cause := fmt.Errorf("embedded daemon %s failed to register", id)
			return ClientConnection{}, errcode.Connect(fmt.Errorf("%s\n%w", timeoutHeadline, cause))
		}

		if err := o.Clock.Sleep(ctx, embeddedPollInterval); err != nil {
			return ClientConnection{}, errcode.Interrupted(err)
		}
	}
}

// embeddedID mints the "<pid>-<millis>" id spec.md §4.7 mandates.
func embeddedID(pid int, now time.Time) string {
	return fmt.Sprintf("%d-%d", pid, now.UnixMilli())
}
