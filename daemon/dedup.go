package daemon

import "time"

// Recent splits events into those still within the retention window and
// those eligible for GC (spec.md §3, §4.6).
func Recent(events []StopEvent, now time.Time) (recent, stale []StopEvent) {
	for _, e := range events {
		if now.Sub(e.Time) > StopEventRetention {
			stale = append(stale, e)
		} else {
			recent = append(recent, e)
		}
	}
	return recent, stale
}

// DedupStopEvents keeps, per daemon id, the single event whose Status sorts
// highest by statusWins. The ordering itself — non-null statuses precede
// null, and among non-null the lexicographically greater wins — is
// preserved verbatim from the source behavior per spec.md §9's design note;
// it is flagged there as possibly accidental rather than domain-meaningful,
// so this function never tries to "fix" it.
//
// Ties (identical Status) keep whichever event was encountered first in the
// input slice; the registry snapshot order is the only ordering the rest of
// this package relies on, so that choice is as good as any other.
func DedupStopEvents(events []StopEvent) []StopEvent {
	best := make(map[string]StopEvent, len(events))
	order := make([]string, 0, len(events))

	for _, e := range events {
		cur, ok := best[e.DaemonID]
		if !ok {
			best[e.DaemonID] = e
			order = append(order, e.DaemonID)
			continue
		}

		if statusWins(e.Status, cur.Status) {
			best[e.DaemonID] = e
		}
	}

	out := make([]StopEvent, 0, len(order))
	for _, id := range order {
		out = append(out, best[id])
	}
	return out
}

func statusWins(candidate, current *string) bool {
	if candidate == nil {
		return false
	}
	if current == nil {
		return true
	}
	return *candidate > *current
}
