package pingcheck

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner abstracts ping execution for testability.
type Runner interface {
	RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// RunCommandContext executes a command and returns its output.
func (r *RealRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunCommandContextFunc func(ctx context.Context, name string, args ...string) (string, string, error)
}

// RunCommandContext calls the mock function.
func (m *MockRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	return m.RunCommandContextFunc(ctx, name, args...)
}
