// Package dial implements the Socket Dialer (spec.md §4.3): a loopback TCP
// connect with a hard timeout and self-connect detection.
package dial

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/sabouaram/daemonconnector/errcode"
)

// DefaultTimeout is the per-socket connect timeout (spec.md §5).
const DefaultTimeout = 10 * time.Second

// Dialer opens loopback TCP connections on behalf of the connector.
type Dialer struct {
	Timeout time.Duration
}

// New returns a Dialer using DefaultTimeout.
func New() Dialer {
	return Dialer{Timeout: DefaultTimeout}
}

// Connect opens a TCP connection to 127.0.0.1:port. It fails with a
// ConnectError (errcode.Connect) on any lower-level I/O failure, and also on
// the self-connect condition some OSes exhibit when no listener is bound on
// the target port and the ephemeral source port happens to equal it
// (spec.md §4.3): in that case the socket is closed before returning.
func (d Dialer) Connect(ctx context.Context, port int) (net.Conn, error) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var nd net.Dialer
	conn, err := nd.DialContext(dialCtx, "tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, errcode.Connect(err)
	}

	if conn.LocalAddr().String() == conn.RemoteAddr().String() {
		_ = conn.Close()
		return nil, errcode.Connect(fmt.Errorf("self-connect detected on port %d", port))
	}

	return conn, nil
}
