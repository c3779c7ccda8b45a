// Package compat implements the Compatibility Predicate (spec.md §4.1): a
// pure, side-effect-free check of whether a daemon's recorded runtime
// profile satisfies a caller's Constraint.
package compat

import "github.com/sabouaram/daemonconnector/daemon"

// Result is the outcome of checking one DaemonInfo against one Constraint.
type Result struct {
	Compatible bool
	Why        string
}

// Matcher is supplied by the embedder and encodes the actual match rules,
// which spec.md §4.1 explicitly places outside this specification (e.g. JRE
// path equality, tuning-option equality). The connector only ever consumes
// the boolean and logs Why on mismatch.
type Matcher func(profile interface{}, constraint daemon.Constraint) (ok bool, why string)

// Predicate wraps a Matcher behind the small, pure interface the
// orchestrator depends on.
type Predicate struct {
	match Matcher
}

// New builds a Predicate from a caller-supplied Matcher. A nil Matcher is
// treated as "everything is compatible" — useful for the embedded variant
// and for tests that don't care about compatibility filtering.
func New(m Matcher) Predicate {
	if m == nil {
		m = func(interface{}, daemon.Constraint) (bool, string) { return true, "" }
	}
	return Predicate{match: m}
}

// Check evaluates one DaemonInfo against one Constraint.
func (p Predicate) Check(info daemon.Info, c daemon.Constraint) Result {
	ok, why := p.match(info.RuntimeProfile, c)
	return Result{Compatible: ok, Why: why}
}

// Filter returns the subset of infos this predicate considers compatible
// with c, preserving input order (spec.md §4.6: "no fairness or load
// distribution is attempted").
func (p Predicate) Filter(infos []daemon.Info, c daemon.Constraint) []daemon.Info {
	out := make([]daemon.Info, 0, len(infos))
	for _, info := range infos {
		if p.Check(info, c).Compatible {
			out = append(out, info)
		}
	}
	return out
}
