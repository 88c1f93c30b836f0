package pingcheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vertti/hostcheck/pkg/check"
)

func TestPingCheck(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		runFunc func(ctx context.Context, name string, args ...string) (string, string, error)
		want    string
	}{
		{
			name: "reply received",
			host: "web01",
			runFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
				return "64 bytes from web01 (10.0.0.5): icmp_seq=1 ttl=64 time=0.3 ms\n1 packets transmitted, 1 received, 0% packet loss", "", nil
			},
			want: check.PingUp,
		},
		{
			name: "no reply",
			host: "10.255.255.1",
			runFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
				return "1 packets transmitted, 0 received, 100% packet loss", "", errors.New("exit status 1")
			},
			want: check.PingDown,
		},
		{
			name: "resolution failure",
			host: "nonexistent.invalid",
			runFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
				return "", "ping: nonexistent.invalid: Name or service not known", errors.New("exit status 2")
			},
			want: check.PingBadHostname,
		},
		{
			name: "macOS resolution failure",
			host: "nonexistent.invalid",
			runFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
				return "", "ping: cannot resolve nonexistent.invalid: Unknown host", errors.New("exit status 68")
			},
			want: check.PingBadHostname,
		},
		{
			name: "probe timed out",
			host: "10.255.255.1",
			runFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
				return "", "", context.DeadlineExceeded
			},
			want: check.PingDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Check{
				Host:   tt.host,
				Runner: &MockRunner{RunCommandContextFunc: tt.runFunc},
			}
			if got := c.Run(); got != tt.want {
				t.Errorf("Run() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPingCheck_Arguments(t *testing.T) {
	var gotName string
	var gotArgs []string

	c := &Check{
		Host:    "web01",
		Timeout: 5 * time.Second,
		Runner: &MockRunner{
			RunCommandContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
				gotName = name
				gotArgs = args
				return "", "", nil
			},
		},
	}
	c.Run()

	if gotName != "ping" {
		t.Errorf("command = %q, want %q", gotName, "ping")
	}
	want := []string{"-n", "-c", "1", "-W", "5", "web01"}
	if len(gotArgs) != len(want) {
		t.Fatalf("args = %v, want %v", gotArgs, want)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, gotArgs[i], want[i])
		}
	}
}

func TestPingCheck_DefaultTimeout(t *testing.T) {
	var gotArgs []string

	c := &Check{
		Host: "web01",
		Runner: &MockRunner{
			RunCommandContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
				gotArgs = args
				return "", "", nil
			},
		},
	}
	c.Run()

	// -W value should fall back to the 2 second default
	if len(gotArgs) < 5 || gotArgs[4] != "2" {
		t.Errorf("args = %v, want -W 2", gotArgs)
	}
}
