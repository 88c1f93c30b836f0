// Package hostlist resolves the set of hosts to check from command
// line arguments, an explicit list file, or the default list file.
package hostlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load returns the hosts to check. Positional args win over an
// explicit file, which wins over the default file. An unreadable
// file is an error; the caller maps it to the I/O exit code.
func Load(args []string, file, defaultFile string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if file != "" {
		return ReadFile(file)
	}
	return ReadFile(defaultFile)
}

// ReadFile parses a host list file: one host per line, surrounding
// whitespace trimmed, blank lines and # comments skipped.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read host list: %w", err)
	}
	defer func() { _ = f.Close() }()

	var hosts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hosts = append(hosts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read host list: %w", err)
	}
	return hosts, nil
}
