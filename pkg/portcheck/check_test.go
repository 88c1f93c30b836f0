package portcheck

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/vertti/hostcheck/pkg/check"
)

// MockDialer is a mock implementation of Dialer for testing.
type MockDialer struct {
	DialFunc func(network, address string, timeout time.Duration) (net.Conn, error)
}

func (m *MockDialer) DialTimeout(network, address string, timeout time.Duration) (net.Conn, error) {
	return m.DialFunc(network, address, timeout)
}

// MockConn is a minimal net.Conn implementation for testing.
type MockConn struct{ closed bool }

func (m *MockConn) Read(b []byte) (n int, err error)   { return 0, nil }
func (m *MockConn) Write(b []byte) (n int, err error)  { return len(b), nil }
func (m *MockConn) Close() error                       { m.closed = true; return nil }
func (m *MockConn) LocalAddr() net.Addr                { return nil }
func (m *MockConn) RemoteAddr() net.Addr               { return nil }
func (m *MockConn) SetDeadline(t time.Time) error      { return nil }
func (m *MockConn) SetReadDeadline(t time.Time) error  { return nil }
func (m *MockConn) SetWriteDeadline(t time.Time) error { return nil }

// timeoutError satisfies net.Error with Timeout() == true.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestPortCheck(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		dialFunc func(network, address string, timeout time.Duration) (net.Conn, error)
		want     string
	}{
		{
			name: "successful connection",
			host: "web01",
			dialFunc: func(network, address string, timeout time.Duration) (net.Conn, error) {
				return &MockConn{}, nil
			},
			want: check.PortSucceeded,
		},
		{
			name: "connection refused",
			host: "web01",
			dialFunc: func(network, address string, timeout time.Duration) (net.Conn, error) {
				return nil, errors.New("connect: connection refused")
			},
			want: check.PortRefused,
		},
		{
			name: "connection timed out",
			host: "10.255.255.1",
			dialFunc: func(network, address string, timeout time.Duration) (net.Conn, error) {
				return nil, &net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}}
			},
			want: check.PortTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Check{
				Host:   tt.host,
				Dialer: &MockDialer{DialFunc: tt.dialFunc},
			}
			if got := c.Run(); got != tt.want {
				t.Errorf("Run() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPortCheck_DefaultAddress(t *testing.T) {
	var gotAddress string
	var gotTimeout time.Duration

	c := &Check{
		Host: "web01",
		Dialer: &MockDialer{
			DialFunc: func(network, address string, timeout time.Duration) (net.Conn, error) {
				gotAddress = address
				gotTimeout = timeout
				return &MockConn{}, nil
			},
		},
	}
	c.Run()

	if gotAddress != "web01:383" {
		t.Errorf("address = %q, want %q", gotAddress, "web01:383")
	}
	if gotTimeout != 2*time.Second {
		t.Errorf("timeout = %v, want %v", gotTimeout, 2*time.Second)
	}
}

func TestPortCheck_ClosesConnection(t *testing.T) {
	conn := &MockConn{}
	c := &Check{
		Host: "web01",
		Port: 8443,
		Dialer: &MockDialer{
			DialFunc: func(network, address string, timeout time.Duration) (net.Conn, error) {
				if address != "web01:8443" {
					t.Errorf("address = %q, want %q", address, "web01:8443")
				}
				return conn, nil
			},
		},
	}
	c.Run()

	if !conn.closed {
		t.Error("connection was not closed after a successful probe")
	}
}
