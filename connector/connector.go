// Package connector implements the Connection Orchestrator (spec.md §4.6):
// the top-level policy that partitions the registry, tries idle daemons,
// waits out canceled ones, and launches a fresh daemon if none can be
// reused, polling it until it accepts a connection or the budget expires.
package connector

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/sabouaram/daemonconnector/clock"
	"github.com/sabouaram/daemonconnector/compat"
	"github.com/sabouaram/daemonconnector/daemon"
	"github.com/sabouaram/daemonconnector/dial"
	"github.com/sabouaram/daemonconnector/errcode"
	errpool "github.com/sabouaram/daemonconnector/errors/pool"
	"github.com/sabouaram/daemonconnector/registry"
	"github.com/sabouaram/daemonconnector/stale"
)

// CanceledWaitTimeout bounds the Canceled path (spec.md §5).
const CanceledWaitTimeout = 3 * time.Second

// DefaultConnectTimeout bounds the post-launch handshake poll (spec.md §5).
const DefaultConnectTimeout = 30 * time.Second

const handshakePollInterval = 200 * time.Millisecond

// ClientConnection is the orchestrator's result: an open, non-self-connected
// stream to a daemon whose registry record was consistent at connect time,
// plus enough context to report a later session death back through the same
// Stale-Address Handler (spec.md §9's "cyclic back-reference" note: the
// handler carries the daemon info and registry handle; the connection
// carries the handler, never the reverse).
type ClientConnection struct {
	Conn      net.Conn
	Daemon    daemon.Info
	NewDaemon bool
	stale     stale.Handler
}

// Close closes the underlying socket.
func (c ClientConnection) Close() error {
	if c.Conn == nil {
		return nil
	}
	return c.Conn.Close()
}

// StatusSink receives the two/three status-message shapes spec.md §6.4
// mandates verbatim, before the orchestrator does any blocking work.
type StatusSink func(msg string)

// Orchestrator wires together every collaborator the Connection Orchestrator
// depends on (spec.md §2's control-flow table).
type Orchestrator struct {
	Registry  registry.Client
	Predicate compat.Predicate
	Dialer    dial.Dialer
	Launcher  Launcher
	Clock     clock.Clock
	Log       hclog.Logger
	Status    StatusSink

	// Embedded, when true, requests the no-daemon variant (spec.md §4.7).
	Embedded bool
	// NativeImage, when true alongside Embedded, makes connect fail with
	// Unsupported (spec.md §4.7).
	NativeImage bool
	// Server hosts the in-process daemon for the embedded variant. Required
	// when Embedded is true.
	Server EmbeddedServer
	// PID seeds the embedded variant's "<pid>-<millis>" id.
	PID int
}

func (o Orchestrator) emit(msg string) {
	if o.Status != nil {
		o.Status(msg)
	}
}

func (o Orchestrator) newStaleHandler(info daemon.Info) stale.Handler {
	return stale.New(o.Registry, o.Clock, o.Log, info)
}

// Connect runs the full algorithm of spec.md §4.6.
func (o Orchestrator) Connect(ctx context.Context, constraint daemon.Constraint) (ClientConnection, error) {
	o.emit("Looking up daemon...")

	if o.Embedded {
		return o.connectEmbedded(ctx, constraint)
	}

	all, err := o.Registry.GetAll(ctx)
	if err != nil {
		return ClientConnection{}, errcode.Connect(err)
	}

	idle, busy := partitionIdle(all)

	if cc, ok, err := o.tryIdlePath(ctx, idle, constraint); err != nil {
		return ClientConnection{}, err
	} else if ok {
		return cc, nil
	}

	canceledCompatible := compatibleCanceled(busy, constraint, o.Predicate)
	if len(canceledCompatible) > 0 {
		if cc, ok, err := o.waitOutCanceled(ctx, constraint); err != nil {
			return ClientConnection{}, err
		} else if ok {
			return cc, nil
		}
	}

	return o.launchPath(ctx, constraint, all, idle, busy)
}

// tryIdlePath is the Idle path (spec.md §4.6 step 4): filter by
// compatibility, dial each candidate in snapshot order, evict-and-continue
// on failure, return the first success.
func (o Orchestrator) tryIdlePath(ctx context.Context, idle []daemon.Info, constraint daemon.Constraint) (ClientConnection, bool, error) {
	candidates := o.Predicate.Filter(idle, constraint)

	rejected := errpool.New()
	for _, info := range candidates {
		cc, err := o.connectToDaemon(ctx, info, false)
		if err == nil {
			return cc, true, nil
		}
		rejected.Add(fmt.Errorf("daemon %s: %w", info.ID, err))
	}
	if rejected.Len() > 0 {
		o.Log.Debug("no idle candidate accepted a connection", "rejected", rejected.Error())
	}
	return ClientConnection{}, false, nil
}

// waitOutCanceled is the Canceled path (spec.md §4.6 step 5): poll
// registry.GetIdle every 200ms for up to CanceledWaitTimeout, rerunning the
// idle path each round.
func (o Orchestrator) waitOutCanceled(ctx context.Context, constraint daemon.Constraint) (ClientConnection, bool, error) {
	deadline := o.Clock.Now().Add(CanceledWaitTimeout)

	for {
		idle, err := o.Registry.GetIdle(ctx)
		if err != nil {
			return ClientConnection{}, false, errcode.Connect(err)
		}
		if cc, ok, err := o.tryIdlePath(ctx, idle, constraint); err != nil {
			return ClientConnection{}, false, err
		} else if ok {
			return cc, true, nil
		}

		if !o.Clock.Now().Before(deadline) {
			return ClientConnection{}, false, nil
		}

		remaining := deadline.Sub(o.Clock.Now())
		wait := handshakePollInterval
		if remaining < wait {
			wait = remaining
		}
		if err := o.Clock.Sleep(ctx, wait); err != nil {
			return ClientConnection{}, false, errcode.Interrupted(err)
		}
	}
}

// launchPath is the Launch path (spec.md §4.6 step 6).
func (o Orchestrator) launchPath(ctx context.Context, constraint daemon.Constraint, all, idle, busy []daemon.Info) (ClientConnection, error) {
	if err := o.gcAndDedupStopEvents(ctx); err != nil {
		o.Log.Warn("stop event maintenance failed", "error", err)
	}

	stopEvents, err := o.Registry.GetStopEvents(ctx)
	if err != nil {
		return ClientConnection{}, errcode.Connect(err)
	}

	compatibleIdle := o.Predicate.Filter(idle, constraint)
	numBusy := len(busy)
	numIncompatible := len(compatibleIdle)
	numStopped := len(daemon.DedupStopEvents(stopEvents))

	id := daemon.NewID()
	o.emit(StatusMessage(id, numBusy, numIncompatible, numStopped))

	handle, err := o.Launcher.Start(ctx, id)
	if err != nil {
		return ClientConnection{}, err
	}

	return o.handshakePoll(ctx, id, handle)
}

// handshakePoll implements spec.md §4.6 step 7.
func (o Orchestrator) handshakePoll(ctx context.Context, id string, handle Handle) (ClientConnection, error) {
	start := o.Clock.Now()
	deadline := start.Add(DefaultConnectTimeout)

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
			return ClientConnection{}, errcode.Connect(Diagnose(handle, err))
		}

		if !handle.IsAlive() || !o.Clock.Now().Before(deadline) {
			return ClientConnection{}, errcode.Connect(timeoutWithDiagnostics(handle, errTimeout(handle, deadline)))
		}

		if err := o.Clock.Sleep(ctx, handshakePollInterval); err != nil {
			return ClientConnection{}, errcode.Interrupted(err)
		}
	}
}

func errTimeout(handle Handle, deadline time.Time) error {
	if !handle.IsAlive() {
		return errTimeoutf("daemon %s exited before accepting a connection", handle.ID)
	}
	return errTimeoutf("timed out waiting for daemon %s to register by %s", handle.ID, deadline)
}

// connectToDaemon is connect_to_daemon (spec.md §4.8).
func (o Orchestrator) connectToDaemon(ctx context.Context, info daemon.Info, newDaemon bool) (ClientConnection, error) {
	handler := o.newStaleHandler(info)

	conn, err := o.Dialer.Connect(ctx, info.Address)
	if err != nil {
		handler.Evict(ctx, err)
		return ClientConnection{}, err
	}

	return ClientConnection{
		Conn:      conn,
		Daemon:    info,
		NewDaemon: newDaemon,
		stale:     handler,
	}, nil
}

// gcAndDedupStopEvents GCs events past StopEventRetention and collapses the
// remainder to one per daemon id, per spec.md §4.6 step 6's trailing
// maintenance clause.
func (o Orchestrator) gcAndDedupStopEvents(ctx context.Context) error {
	events, err := o.Registry.GetStopEvents(ctx)
	if err != nil {
		return err
	}

	recent, stale := daemon.Recent(events, o.Clock.Now())
	if len(stale) > 0 {
		if err := o.Registry.RemoveStopEvents(ctx, stale); err != nil {
			return err
		}
	}

	deduped := daemon.DedupStopEvents(recent)
	if len(deduped) == len(recent) {
		return nil
	}

	dropped := make([]daemon.StopEvent, 0, len(recent)-len(deduped))
	kept := make(map[string]daemon.StopEvent, len(deduped))
	for _, e := range deduped {
		kept[e.DaemonID] = e
	}
	for _, e := range recent {
		if kept[e.DaemonID] != e {
			dropped = append(dropped, e)
		}
	}
	if len(dropped) == 0 {
		return nil
	}
	return o.Registry.RemoveStopEvents(ctx, dropped)
}

func partitionIdle(all []daemon.Info) (idle, busy []daemon.Info) {
	for _, info := range all {
		if info.State == daemon.Idle {
			idle = append(idle, info)
		} else {
			busy = append(busy, info)
		}
	}
	return idle, busy
}

func compatibleCanceled(busy []daemon.Info, constraint daemon.Constraint, p compat.Predicate) []daemon.Info {
	canceled := make([]daemon.Info, 0, len(busy))
	for _, info := range busy {
		if info.State == daemon.Canceled {
			canceled = append(canceled, info)
		}
	}
	return p.Filter(canceled, constraint)
}
