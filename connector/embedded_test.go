package connector_test

import (
	"context"

	"github.com/sabouaram/daemonconnector/daemon"
	"github.com/sabouaram/daemonconnector/registry"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeServer struct {
	run func(ctx context.Context, id string) error
}

func (f fakeServer) Run(ctx context.Context, id string) error {
	return f.run(ctx, id)
}

var _ = Describe("Orchestrator.Connect (embedded variant)", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("refuses when running in a native image", func() {
		reg := registry.NewMemory()
		o := baseOrchestrator(reg, neverLaunch(GinkgoT()))
		o.Embedded = true
		o.NativeImage = true
		o.Server = fakeServer{run: func(context.Context, string) error { return nil }}

		_, err := o.Connect(ctx, nil)
		Expect(err).To(HaveOccurred())
	})

	It("mints a pid-millis id and connects once the server registers", func() {
		reg := registry.NewMemory()
		l, port := listenLoopback()
		defer l.Close()
		acceptOnce(l)

		o := baseOrchestrator(reg, neverLaunch(GinkgoT()))
		o.Embedded = true
		o.PID = 4242
		o.Server = fakeServer{run: func(serverCtx context.Context, id string) error {
			Expect(reg.Store(ctx, daemon.Info{ID: id, Address: port, State: daemon.Busy})).To(Succeed())
			<-serverCtx.Done()
			return nil
		}}

		cc, err := o.Connect(ctx, nil)
		Expect(err).ToNot(HaveOccurred())
		defer cc.Close()
		Expect(cc.Daemon.ID).To(MatchRegexp(`^4242-\d+$`))
		Expect(cc.Daemon.PID).To(Equal(0)) // the embedded daemon's own PID, not the connector's
	})

	It("fails with the mandated timeout message when the server exits before registering", func() {
		reg := registry.NewMemory()
		o := baseOrchestrator(reg, neverLaunch(GinkgoT()))
		o.Embedded = true
		o.Server = fakeServer{run: func(context.Context, string) error { return nil }}

		_, err := o.Connect(ctx, nil)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Timeout waiting to connect to the Maven daemon."))
	})
})
