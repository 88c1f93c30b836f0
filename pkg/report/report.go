// Package report renders host check results as CSV or verbose text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/hostcheck/pkg/check"
)

// CSVHeader is the first line of every CSV report.
const CSVHeader = "Server,Ping,FQDN,IP,PortCheck,BBCPing,AgentVer"

const divider = "----------------------------------------"

// StdoutColors reports whether stdout is a terminal that supports
// ANSI colors. File output is never colored.
func StdoutColors() bool {
	return supportscolor.Stdout().SupportsColor
}

// Printer writes host reports to a destination.
type Printer struct {
	w                 io.Writer
	green, red, reset string
}

// NewPrinter returns a Printer for w. Colors apply to verbose output
// only and only when colored is true.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{w: w}
	if colored {
		p.green = "\033[32m"
		p.red = "\033[31m"
		p.reset = "\033[0m"
	}
	return p
}

// WriteCSV writes the header line plus one comma-joined row per host.
func (p *Printer) WriteCSV(reports []check.HostReport) error {
	if _, err := fmt.Fprintln(p.w, CSVHeader); err != nil {
		return err
	}
	for _, r := range reports {
		row := strings.Join([]string{
			r.Server, r.Ping, r.FQDN, r.IP, r.Port, r.AgentStatus, r.AgentVersion,
		}, ",")
		if _, err := fmt.Fprintln(p.w, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteVerbose writes a labeled multi-line block per host, each block
// followed by a divider line and a blank line.
func (p *Printer) WriteVerbose(reports []check.HostReport) error {
	for _, r := range reports {
		version := r.AgentVersion
		if r.Outdated {
			version += " (below minimum)"
		}
		_, err := fmt.Fprintf(p.w,
			"Server:    %s\nPing:      %s\nFQDN:      %s\nIP:        %s\nPortCheck: %s\nBBCPing:   %s\nAgentVer:  %s\n%s\n\n",
			r.Server,
			p.colorize(r.Ping),
			r.FQDN,
			r.IP,
			p.colorize(r.Port),
			p.colorize(r.AgentStatus),
			version,
			divider,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// colorize wraps healthy statuses in green and failed ones in red.
func (p *Printer) colorize(status string) string {
	switch status {
	case check.PingUp, check.PortSucceeded:
		return p.green + status + p.reset
	case check.PingDown, check.PingBadHostname,
		check.PortRefused, check.PortTimeout,
		check.AgentUnavailable:
		return p.red + status + p.reset
	}
	return status
}
