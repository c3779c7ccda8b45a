package connector

import (
	"fmt"
	"os"
)

// errTimeoutf is the plain sentinel wrapped by Diagnose below; kept
// separate from errcode.Connect so Diagnose can attach the log tail to the
// original cause before the orchestrator wraps the whole thing as a
// ConnectError.
func errTimeoutf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Diagnose appends the tail of the daemon's own log file and a one-line OS
// process state summary to cause.
func Diagnose(handle Handle, cause error) error {
	tail := readLogTail(handle.LogPath, 4096)
	state := "no longer running"
	if handle.IsAlive() {
		state = "still running"
	}

	return fmt.Errorf("%w\ndaemon %s: process %s\n--- log tail (%s) ---\n%s",
		cause, handle.ID, state, handle.LogPath, tail)
}

// timeoutHeadline is the user-visible handshake-timeout message spec.md §7
// mandates, verbatim. timeoutWithDiagnostics prefixes it onto the
// diagnostics Diagnose produces so the literal sentence always opens the
// cause the orchestrator wraps as a ConnectError; the ConnectError's own
// text puts its code message and ": " in front of it.
const timeoutHeadline = "Timeout waiting to connect to the Maven daemon."

func timeoutWithDiagnostics(handle Handle, cause error) error {
	return fmt.Errorf("%s\n%w", timeoutHeadline, Diagnose(handle, cause))
}

// readLogTail best-effort reads the trailing portion of a daemon's log
// file; any read failure is reported inline rather than escalated, since
// this runs on an already-failing path.
func readLogTail(path string, max int64) string {
	if path == "" {
		return "(no log file)"
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("(could not open log: %v)", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Sprintf("(could not stat log: %v)", err)
	}

	size := info.Size()
	offset := int64(0)
	if size > max {
		offset = size - max
	}
	if _, err := f.Seek(offset, 0); err != nil {
		return fmt.Sprintf("(could not seek log: %v)", err)
	}

	buf := make([]byte, size-offset)
	n, _ := f.Read(buf)
	return string(buf[:n])
}
