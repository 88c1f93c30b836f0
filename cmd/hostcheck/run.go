package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/vertti/hostcheck/pkg/agentcheck"
	"github.com/vertti/hostcheck/pkg/check"
	"github.com/vertti/hostcheck/pkg/config"
	"github.com/vertti/hostcheck/pkg/dnscheck"
	"github.com/vertti/hostcheck/pkg/hostlist"
	"github.com/vertti/hostcheck/pkg/pingcheck"
	"github.com/vertti/hostcheck/pkg/portcheck"
	"github.com/vertti/hostcheck/pkg/report"
)

// probeSettings is the effective per-probe configuration after
// merging config file, environment and flags.
type probeSettings struct {
	pingTimeout  time.Duration
	portTimeout  time.Duration
	agentTimeout time.Duration
	port         int
	agentPath    string
	minVersion   *semver.Version
}

func runHostcheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	settings, err := mergeSettings(cmd, cfg)
	if err != nil {
		return err
	}

	hosts, err := hostlist.Load(args, inputFile, cfg.Hosts.File)
	if err != nil {
		return &ioError{err}
	}

	out, colored, err := openOutput()
	if err != nil {
		return &ioError{err}
	}
	if closer, ok := out.(io.Closer); ok && out != os.Stdout {
		defer func() { _ = closer.Close() }()
	}

	reports := make([]check.HostReport, 0, len(hosts))
	for _, host := range hosts {
		reports = append(reports, checkHost(host, settings))
	}

	p := report.NewPrinter(out, colored)
	if verboseOutput {
		return p.WriteVerbose(reports)
	}
	return p.WriteCSV(reports)
}

// mergeSettings applies flag values over config-provided defaults.
// -t covers both the ping and agent probes when given; their
// defaults differ (2s and 1s).
func mergeSettings(cmd *cobra.Command, cfg *config.Config) (probeSettings, error) {
	s := probeSettings{
		pingTimeout:  cfg.GetPingTimeout(),
		portTimeout:  cfg.GetPortTimeout(),
		agentTimeout: cfg.GetAgentTimeout(),
		port:         cfg.Agent.Port,
		agentPath:    cfg.Agent.Path,
	}

	if cmd.Flags().Changed("timeout") {
		s.pingTimeout = time.Duration(probeTimeout) * time.Second
		s.agentTimeout = s.pingTimeout
	}
	if bbcPort != 0 {
		s.port = bbcPort
	}
	if agentPath != "" {
		s.agentPath = agentPath
	}

	minVer := minAgentVersion
	if minVer == "" {
		minVer = cfg.Agent.MinVersion
	}
	if minVer != "" {
		v, err := semver.NewVersion(minVer)
		if err != nil {
			return s, fmt.Errorf("invalid --min-agent-version %q: %w", minVer, err)
		}
		s.minVersion = v
	}
	return s, nil
}

// openOutput returns the report destination. Color applies only when
// writing verbose output to a color-capable terminal.
func openOutput() (io.Writer, bool, error) {
	if outputFile == "" {
		return os.Stdout, verboseOutput && report.StdoutColors(), nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, false, fmt.Errorf("cannot write output: %w", err)
	}
	return f, false, nil
}

// checkHost runs the four probes for one host, sequentially. Probe
// failures become field sentinels, never errors; the caller always
// gets a complete report row.
func checkHost(host string, s probeSettings) check.HostReport {
	r := check.HostReport{Server: host}

	ping := &pingcheck.Check{Host: host, Timeout: s.pingTimeout, Runner: &pingcheck.RealRunner{}}
	r.Ping = ping.Run()

	dns := &dnscheck.Check{Host: host, Resolver: &dnscheck.RealResolver{}}
	r.FQDN, r.IP = dns.Run()

	port := &portcheck.Check{Host: host, Port: s.port, Timeout: s.portTimeout, Dialer: &portcheck.RealDialer{}}
	r.Port = port.Run()

	agent := &agentcheck.Check{
		Host:       host,
		Path:       s.agentPath,
		Timeout:    s.agentTimeout,
		MinVersion: s.minVersion,
		Runner:     &agentcheck.RealRunner{},
	}
	result := agent.Run()
	r.AgentStatus = result.Status
	r.AgentVersion = result.Version
	r.Outdated = result.Outdated

	return r
}
