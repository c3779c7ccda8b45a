// Package daemon defines the data model the connector reasons about: the
// registry record for one daemon process, its stop events, and the opaque
// Constraint the predicate in package compat checks records against. The
// verdict itself is compat.Result. The types
// here are pure data — no I/O, no locking — per spec.md §3.
package daemon

import "time"

// State is the lifecycle state of a registered daemon. Only Idle, Busy and
// Canceled matter to the connector; Stopped and Broken records are expected
// to already be filtered out upstream by the registry itself (spec.md §3).
type State string

const (
	Idle     State = "Idle"
	Busy     State = "Busy"
	Canceled State = "Canceled"
	Stopped  State = "Stopped"
	Broken   State = "Broken"
)

// Info is one registry record describing a live (or recently live) daemon.
type Info struct {
	ID string

	// Address is the loopback TCP port the daemon listens on.
	Address int

	// PID is informational only, used for diagnostics.
	PID int

	// RuntimeProfile is opaque to the connector; only the Compatibility
	// Predicate (package compat) interprets it.
	RuntimeProfile interface{}

	State State

	// LastSeen is updated by the daemon itself, not by the connector.
	LastSeen time.Time
}

// Constraint captures a caller's runtime requirements (e.g. JRE path,
// tuning options). It is opaque to the connector; only a caller-supplied
// compat.Matcher interprets it against an Info's RuntimeProfile.
type Constraint interface{}

// StopEvent is emitted whenever a daemon terminates or is evicted.
type StopEvent struct {
	DaemonID string
	Time     time.Time

	// Status is the fine-grained termination cause, if known.
	Status *string

	// Reason is a free-text human-readable explanation.
	Reason string
}

// StopEventRetention is the age past which a stop event is eligible for GC
// by the orchestrator (spec.md §3, §5).
const StopEventRetention = time.Hour
