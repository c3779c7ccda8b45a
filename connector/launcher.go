package connector

import (
	"context"

	"github.com/sabouaram/daemonconnector/launch"
)

// Handle is the orchestrator's view of a spawned daemon process: enough to
// poll liveness and locate its log for diagnostics, without depending on
// package launch's concrete *exec.Cmd-backed type. That indirection is what
// lets scenario F (spec.md §8: "child dies during handshake") drive a fake
// liveness signal instead of spawning a real subprocess.
type Handle struct {
	ID      string
	LogPath string
	alive   func() bool
}

// IsAlive reports whether the spawned process is still running.
func (h Handle) IsAlive() bool {
	if h.alive == nil {
		return false
	}
	return h.alive()
}

// NewHandle builds a Handle from a custom liveness probe, for Launcher
// implementations other than AdaptLauncher's *exec.Cmd-backed one (e.g. a
// supervisor that tracks a container or a remote process).
func NewHandle(id, logPath string, alive func() bool) Handle {
	return Handle{ID: id, LogPath: logPath, alive: alive}
}

// Launcher is the subset of the Daemon Launcher (spec.md §4.5) the
// orchestrator depends on.
type Launcher interface {
	Start(ctx context.Context, id string) (Handle, error)
}

// AdaptLauncher wraps a concrete launch.Launcher as a connector.Launcher.
func AdaptLauncher(l launch.Launcher) Launcher {
	return launcherAdapter{l}
}

type launcherAdapter struct {
	l launch.Launcher
}

func (a launcherAdapter) Start(ctx context.Context, id string) (Handle, error) {
	h, err := a.l.Start(ctx, id)
	if err != nil {
		return Handle{}, err
	}
	return Handle{ID: h.ID, LogPath: h.LogPath, alive: h.IsAlive}, nil
}
