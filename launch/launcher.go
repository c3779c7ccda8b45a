// Package launch implements the Daemon Launcher (spec.md §4.5): it
// assembles the daemon subprocess command line and spawns it detached from
// the client, without waiting for it or verifying readiness — that is the
// orchestrator's job (spec.md §4.6).
package launch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/sabouaram/daemonconnector/errcode"
)

// Launcher spawns daemon subprocesses for a fixed set of Options.
type Launcher struct {
	opts Options
	log  hclog.Logger
}

// New builds a Launcher. The subprocess is started in the client's own
// working directory.
func New(opts Options, log hclog.Logger) Launcher {
	return Launcher{opts: opts, log: log.Named("launcher")}
}

// Handle is the minimal process handle the orchestrator polls while
// waiting for first contact (spec.md §3: "the client holds the Process
// handle only long enough to poll is_alive").
type Handle struct {
	ID      string
	Cmd     *exec.Cmd
	LogPath string
}

// IsAlive reports whether the spawned process is still running. It never
// blocks or reaps the child; the OS-specific probe is defined in
// detach_unix.go / detach_windows.go.
func (h Handle) IsAlive() bool {
	if h.Cmd == nil || h.Cmd.Process == nil {
		return false
	}
	return processAlive(h.Cmd.Process)
}

// Start assembles the command line for daemon id and spawns it, detached
// from the client process, with stdout/stderr appended to its per-daemon
// log file. It does not wait for the child and does not verify readiness.
func (l Launcher) Start(ctx context.Context, id string) (Handle, error) {
	args, err := assembleArgs(id, l.opts)
	if err != nil {
		return Handle{}, err
	}

	exe := executablePath(l.opts.RuntimeHome)
	cmd := exec.CommandContext(context.Background(), exe, args...) // detached: must outlive ctx

	logPath := LogFilePath(l.opts.StorageDir, id)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Handle{}, l.startError(id, exe, args, err)
	}
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	configureDetached(cmd)

	l.log.Debug("spawning daemon", "daemon_id", id, "exe", exe, "args", len(args))

	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return Handle{}, l.startError(id, exe, args, err)
	}

	return Handle{ID: id, Cmd: cmd, LogPath: logPath}, nil
}

func (l Launcher) startError(id, exe string, args []string, cause error) error {
	cmdline := exe + " " + strings.Join(args, " ")
	wd, _ := os.Getwd()
	return errcode.Start(fmt.Errorf("daemon %s: working dir %q: command %q: %w", id, wd, cmdline, cause))
}
