package agentcheck

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/vertti/hostcheck/pkg/check"
)

// DefaultPath is where the management agent ships its ping utility.
const DefaultPath = "/opt/OV/bin/bbcutil"

// DefaultTimeout bounds a single agent probe.
const DefaultTimeout = 1 * time.Second

// Result holds the parsed outcome of an agent probe.
type Result struct {
	Status   string // status token, or check.AgentUnavailable
	Version  string // appV token, empty if absent
	Outdated bool   // Version parsed below MinVersion
}

// Check probes a host's management agent by running the external
// agent-ping utility and parsing its key=value output.
type Check struct {
	Host       string
	Path       string          // utility path (default /opt/OV/bin/bbcutil)
	Timeout    time.Duration   // probe timeout (default 1s)
	MinVersion *semver.Version // oldest acceptable agent version, nil to skip
	Runner     Runner          // injected for testing
}

// Run executes the agent probe. A utility that fails, times out or
// produces no status token yields the HOST UNAVAILABLE sentinel; the
// probe itself never returns an error.
func (c *Check) Run() Result {
	path := c.Path
	if path == "" {
		path = DefaultPath
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// The utility reports per-host state in its output even on
	// nonzero exit, so the output is parsed regardless of err.
	stdout, stderr, _ := c.Runner.RunCommandContext(ctx, path, "-ping", c.Host)

	result := parseTokens(stdout + "\n" + stderr)
	if result.Status == "" {
		return Result{Status: check.AgentUnavailable}
	}

	if c.MinVersion != nil && result.Version != "" {
		if v, err := semver.NewVersion(result.Version); err == nil && v.LessThan(c.MinVersion) {
			result.Outdated = true
		}
	}
	return result
}

// parseTokens scans a whitespace-separated key=value stream for the
// status and appV tokens.
func parseTokens(output string) Result {
	var result Result
	for _, field := range strings.Fields(output) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch key {
		case "status":
			result.Status = value
		case "appV":
			result.Version = value
		}
	}
	return result
}
