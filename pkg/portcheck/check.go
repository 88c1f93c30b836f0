package portcheck

import (
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/vertti/hostcheck/pkg/check"
)

// Dialer abstracts network dialing for testability.
type Dialer interface {
	DialTimeout(network, address string, timeout time.Duration) (net.Conn, error)
}

// RealDialer uses the real net package.
type RealDialer struct{}

// DialTimeout dials the network address with a timeout.
func (d *RealDialer) DialTimeout(network, address string, timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout(network, address, timeout)
}

// DefaultPort is the management agent's BBC communication port.
const DefaultPort = 383

// DefaultTimeout is the fixed connect timeout for the port probe.
const DefaultTimeout = 2 * time.Second

// Check probes TCP connectivity to a host's BBC port.
type Check struct {
	Host    string
	Port    int           // port to connect to (default 383)
	Timeout time.Duration // connection timeout (default 2s)
	Dialer  Dialer        // injected for testing
}

// Run attempts the TCP connect and classifies the outcome as
// SUCCEEDED, TIMEOUT or REFUSED. A successful connection is closed
// immediately; no data is exchanged.
func (c *Check) Run() string {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	address := net.JoinHostPort(c.Host, strconv.Itoa(port))
	conn, err := c.Dialer.DialTimeout("tcp", address, timeout)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return check.PortTimeout
		}
		return check.PortRefused
	}
	_ = conn.Close()
	return check.PortSucceeded
}
