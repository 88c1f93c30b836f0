package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Exit codes: 0 success/help, 1 bad options, 2 I/O error.
const (
	exitUsage = 1
	exitIO    = 2
)

// ioError marks failures that exit with the I/O error code.
type ioError struct{ err error }

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

var (
	verboseOutput   bool
	csvOutput       bool
	probeTimeout    int
	inputFile       string
	outputFile      string
	bbcPort         int
	agentPath       string
	minAgentVersion string
)

var rootCmd = &cobra.Command{
	Use:   "hostcheck [flags] [hosts...]",
	Short: "Check reachability and agent health of managed hosts",
	Long: "Hostcheck probes each host with ping, DNS resolution, a TCP connect to\n" +
		"the agent (BBC) port and the management agent's ping utility, and writes\n" +
		"a per-host status report in CSV or verbose text form.",
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	RunE:          runHostcheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verboseOutput, "verbose", "v", false, "verbose text output")
	rootCmd.Flags().BoolVarP(&csvOutput, "csv", "c", false, "CSV output (default)")
	rootCmd.Flags().IntVarP(&probeTimeout, "timeout", "t", 0, "timeout in seconds for the ping and agent probes")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "host list file (default: hosts.txt)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().IntVar(&bbcPort, "port", 0, "BBC port to probe (default: 383)")
	rootCmd.Flags().StringVar(&agentPath, "agent-path", "", "path to the agent ping utility")
	rootCmd.Flags().StringVar(&minAgentVersion, "min-agent-version", "", "flag hosts with an older agent version")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "csv")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hostcheck: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an execution error to the documented exit codes.
func exitCode(err error) int {
	var ioErr *ioError
	if errors.As(err, &ioErr) {
		return exitIO
	}
	return exitUsage
}
