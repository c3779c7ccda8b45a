package registry

import (
	"context"
	"sync"

	libatm "github.com/sabouaram/daemonconnector/atomic"
	"github.com/sabouaram/daemonconnector/daemon"
)

// Memory is a Client backed by a typed atomic map (atomic.NewMapTyped).
// Stop events are append-only and protected by a plain mutex since they
// need slice-level compaction (GC, dedup) that a map alone doesn't give us.
type Memory struct {
	daemons libatm.MapTyped[string, daemon.Info]

	mu     sync.Mutex
	events []daemon.StopEvent
}

func NewMemory() *Memory {
	return &Memory{
		daemons: libatm.NewMapTyped[string, daemon.Info](),
	}
}

func (m *Memory) GetAll(ctx context.Context) ([]daemon.Info, error) {
	out := make([]daemon.Info, 0)
	m.daemons.Range(func(_ string, v daemon.Info) bool {
		out = append(out, v)
		return true
	})
	return out, nil
}

func (m *Memory) GetIdle(ctx context.Context) ([]daemon.Info, error) {
	all, err := m.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]daemon.Info, 0, len(all))
	for _, d := range all {
		if d.State == daemon.Idle {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Memory) Get(ctx context.Context, id string) (daemon.Info, bool, error) {
	v, ok := m.daemons.Load(id)
	return v, ok, nil
}

func (m *Memory) Remove(ctx context.Context, id string) error {
	m.daemons.Delete(id)
	return nil
}

func (m *Memory) Store(ctx context.Context, info daemon.Info) error {
	m.daemons.Store(info.ID, info)
	return nil
}

func (m *Memory) GetStopEvents(ctx context.Context) ([]daemon.StopEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]daemon.StopEvent, len(m.events))
	copy(out, m.events)
	return out, nil
}

func (m *Memory) StoreStopEvent(ctx context.Context, e daemon.StopEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, e)
	return nil
}

func (m *Memory) RemoveStopEvents(ctx context.Context, events []daemon.StopEvent) error {
	if len(events) == 0 {
		return nil
	}

	doomed := make(map[string]bool, len(events))
	for _, e := range events {
		doomed[e.DaemonID+"|"+e.Time.String()] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.events[:0:0]
	for _, e := range m.events {
		if !doomed[e.DaemonID+"|"+e.Time.String()] {
			kept = append(kept, e)
		}
	}
	m.events = kept
	return nil
}

var _ Client = (*Memory)(nil)
