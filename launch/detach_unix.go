//go:build !windows

package launch

import (
	"os"
	"os/exec"
	"syscall"
)

// configureDetached puts the daemon in its own process group so it
// survives the client exiting and signals sent to the client's group
// (spec.md §4.5: "the daemon must outlive the client that spawned it").
func configureDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

// processAlive probes liveness with signal 0, which the OS delivers to
// nothing but still reports ESRCH if the process is gone.
func processAlive(p *os.Process) bool {
	return p.Signal(syscall.Signal(0)) == nil
}
