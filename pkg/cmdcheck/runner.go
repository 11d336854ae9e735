package cmdcheck

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// WaitDelay bounds how long a killed command may keep its output pipes
// open through child processes that outlive it.
const WaitDelay = time.Second

// Runner abstracts command execution for testability.
type Runner interface {
	RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// RunCommandContext executes a command and returns its output.
// The process is killed when ctx is done, and the call returns at most
// WaitDelay later even if descendants still hold its output.
func (r *RealRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	cmd.WaitDelay = WaitDelay
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunCommandFunc func(ctx context.Context, name string, args ...string) (string, string, error)
}

// RunCommandContext calls the mock function.
func (m *MockRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	return m.RunCommandFunc(ctx, name, args...)
}
