package dnscheck

import (
	"context"
	"net"
	"strings"
	"time"
)

// Resolver abstracts name resolution for testability. RealResolver
// wraps the system resolver in production.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupCNAME(ctx context.Context, host string) (string, error)
}

// RealResolver uses the standard library's net.DefaultResolver, which
// follows the system resolver configuration.
type RealResolver struct{}

// LookupHost looks up the given host's addresses.
func (r *RealResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	return net.DefaultResolver.LookupHost(ctx, host)
}

// LookupCNAME returns the canonical name for the given host.
func (r *RealResolver) LookupCNAME(ctx context.Context, host string) (string, error) {
	return net.DefaultResolver.LookupCNAME(ctx, host)
}

// DefaultTimeout bounds a single resolution attempt.
const DefaultTimeout = 2 * time.Second

// Check resolves a host to its canonical name and first address.
type Check struct {
	Host     string
	Timeout  time.Duration // lookup timeout (default 2s)
	Resolver Resolver      // injected for testing
}

// Run resolves the host. Both return values are empty strings when
// resolution fails; resolution failure is never an error for the
// caller's report loop.
func (c *Check) Run() (fqdn, ip string) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	addrs, err := c.Resolver.LookupHost(ctx, c.Host)
	if err != nil || len(addrs) == 0 {
		return "", ""
	}
	ip = addrs[0]

	cname, err := c.Resolver.LookupCNAME(ctx, c.Host)
	if err != nil || cname == "" {
		// Address resolved but no canonical name; report the host as given.
		return c.Host, ip
	}
	return strings.TrimSuffix(cname, "."), ip
}
