//go:build windows

package launch

import (
	"os"
	"os/exec"
	"syscall"
)

// configureDetached starts the daemon in its own console group so closing
// the client's console does not signal it (spec.md §4.5).
func configureDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}

// processAlive asks the OS for the exit code without blocking; windows
// has no signal-0 probe, so a process that still reports STILL_ACTIVE is
// taken as running.
func processAlive(p *os.Process) bool {
	h, err := syscall.OpenProcess(syscall.PROCESS_QUERY_INFORMATION, false, uint32(p.Pid))
	if err != nil {
		return false
	}
	defer syscall.CloseHandle(h)

	var code uint32
	if err := syscall.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	return code == stillActive
}

// stillActive is the exit code windows reports for a running process.
const stillActive = 259
