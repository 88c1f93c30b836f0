package pingcheck

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/vertti/hostcheck/pkg/check"
)

// DefaultTimeout is used when no ping timeout is configured.
const DefaultTimeout = 2 * time.Second

// Check sends a single ICMP echo request to a host by shelling out
// to the system ping utility.
type Check struct {
	Host    string
	Timeout time.Duration // per-probe timeout (default 2s)
	Runner  Runner        // injected for testing
}

// Run executes the ping probe and classifies the outcome as UP,
// DOWN or BADHOSTNAME. It never returns an error; a failed probe is
// a classification, not a fault.
func (c *Check) Run() string {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}

	// The context deadline backstops a ping binary that ignores -W.
	ctx, cancel := context.WithTimeout(context.Background(), timeout+time.Second)
	defer cancel()

	args := []string{"-n", "-c", "1", "-W", strconv.Itoa(secs), c.Host}
	stdout, stderr, err := c.Runner.RunCommandContext(ctx, "ping", args...)
	if err == nil {
		return check.PingUp
	}

	if isResolutionFailure(stdout + stderr) {
		return check.PingBadHostname
	}
	return check.PingDown
}

// isResolutionFailure reports whether ping's output indicates the
// hostname could not be resolved, as opposed to a lost packet.
func isResolutionFailure(output string) bool {
	out := strings.ToLower(output)
	for _, marker := range []string{
		"name or service not known",
		"unknown host",
		"cannot resolve",
		"temporary failure in name resolution",
	} {
		if strings.Contains(out, marker) {
			return true
		}
	}
	return false
}
