package cmdcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vertti/clustercheck/pkg/check"
)

// DefaultTimeout bounds every command unless a check overrides it.
const DefaultTimeout = 30 * time.Second

// TimeoutMessage is the diagnostic returned when a command runs out of time.
const TimeoutMessage = "Command timeout"

// Exec runs argv and reports whether it exited with status zero.
// On success output is the trimmed stdout; on failure it is a short diagnostic.
// Exec never panics: a missing binary, a non-zero exit and a timeout all
// come back as ok=false.
func Exec(runner Runner, timeout time.Duration, argv []string) (ok bool, output string) {
	if len(argv) == 0 {
		return false, "empty command"
	}
	if runner == nil {
		runner = &RealRunner{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := runner.RunCommandContext(ctx, argv[0], argv[1:]...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			slog.Debug("command timed out",
				slog.Any("argv", argv),
				slog.Duration("timeout", timeout),
			)
			return false, TimeoutMessage
		}
		slog.Debug("command failed",
			slog.Any("argv", argv),
			slog.String("stderr", strings.TrimSpace(stderr)),
			slog.Any("error", err),
		)
		if msg := strings.TrimSpace(stderr); msg != "" {
			return false, msg
		}
		return false, err.Error()
	}

	slog.Debug("command succeeded", slog.Any("argv", argv))
	return true, strings.TrimSpace(stdout)
}

var _ check.Checker = (*Check)(nil)

// Check passes when a command exits successfully.
// Only the exit status is inspected, never the output.
type Check struct {
	Name       string        // report name, e.g. "Cluster connectivity"
	Argv       []string      // command and arguments
	PassDetail string        // detail shown on success
	FailDetail string        // detail shown on failure
	Timeout    time.Duration // default: DefaultTimeout
	Runner     Runner        // injected for testing
}

// Run executes the command check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: c.Name,
	}

	ok, output := Exec(c.Runner, c.Timeout, c.Argv)
	if !ok {
		return result.Fail(c.FailDetail, fmt.Errorf("%s: %s", strings.Join(c.Argv, " "), output))
	}
	return result.Pass(c.PassDetail)
}
