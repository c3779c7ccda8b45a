package daemon_test

import (
	"time"

	"github.com/sabouaram/daemonconnector/daemon"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func str(s string) *string { return &s }

var _ = Describe("DedupStopEvents", func() {
	now := time.Now()

	It("keeps exactly one event per daemon id", func() {
		events := []daemon.StopEvent{
			{DaemonID: "a", Time: now, Reason: "first"},
			{DaemonID: "b", Time: now, Reason: "only"},
			{DaemonID: "a", Time: now, Reason: "second"},
		}

		out := daemon.DedupStopEvents(events)
		Expect(out).To(HaveLen(2))
	})

	It("prefers a non-null status over a null one", func() {
		events := []daemon.StopEvent{
			{DaemonID: "a", Time: now, Status: nil, Reason: "no-status"},
			{DaemonID: "a", Time: now, Status: str("SIGKILL"), Reason: "has-status"},
		}

		out := daemon.DedupStopEvents(events)
		Expect(out).To(HaveLen(1))
		Expect(out[0].Status).ToNot(BeNil())
		Expect(*out[0].Status).To(Equal("SIGKILL"))
	})

	It("picks the lexicographically greatest among non-null statuses", func() {
		events := []daemon.StopEvent{
			{DaemonID: "a", Time: now, Status: str("ABORT")},
			{DaemonID: "a", Time: now, Status: str("SIGKILL")},
			{DaemonID: "a", Time: now, Status: str("KILLED")},
		}

		out := daemon.DedupStopEvents(events)
		Expect(out).To(HaveLen(1))
		Expect(*out[0].Status).To(Equal("SIGKILL"))
	})

	It("is order-independent for the winning status", func() {
		forward := daemon.DedupStopEvents([]daemon.StopEvent{
			{DaemonID: "a", Time: now, Status: str("AAA")},
			{DaemonID: "a", Time: now, Status: str("ZZZ")},
		})
		backward := daemon.DedupStopEvents([]daemon.StopEvent{
			{DaemonID: "a", Time: now, Status: str("ZZZ")},
			{DaemonID: "a", Time: now, Status: str("AAA")},
		})

		Expect(*forward[0].Status).To(Equal("ZZZ"))
		Expect(*backward[0].Status).To(Equal("ZZZ"))
	})
})

var _ = Describe("Recent", func() {
	It("splits events older than the retention window into stale", func() {
		now := time.Now()
		events := []daemon.StopEvent{
			{DaemonID: "fresh", Time: now.Add(-10 * time.Minute)},
			{DaemonID: "old", Time: now.Add(-2 * time.Hour)},
		}

		recent, stale := daemon.Recent(events, now)
		Expect(recent).To(HaveLen(1))
		Expect(recent[0].DaemonID).To(Equal("fresh"))
		Expect(stale).To(HaveLen(1))
		Expect(stale[0].DaemonID).To(Equal("old"))
	})
})

var _ = Describe("NewID", func() {
	It("produces 8 lowercase hex characters", func() {
		id := daemon.NewID()
		Expect(id).To(HaveLen(8))
		Expect(id).To(MatchRegexp("^[0-9a-f]{8}$"))
	})

	It("is not trivially constant across calls", func() {
		seen := map[string]bool{}
		for i := 0; i < 16; i++ {
			seen[daemon.NewID()] = true
		}
		Expect(len(seen)).To(BeNumerically(">", 1))
	})
})
