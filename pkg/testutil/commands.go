package testutil

import (
	"context"
	"errors"
	"strings"

	"github.com/vertti/clustercheck/pkg/cmdcheck"
)

// CommandOutput is the canned outcome of one command line.
type CommandOutput struct {
	Stdout string
	Stderr string
	Err    error
}

// ErrNotFound is returned by CommandRunner for unknown command lines.
var ErrNotFound = errors.New("exit status 1")

// CommandRunner answers commands by their space-joined command line.
// Unknown command lines fail with ErrNotFound. Every invocation is
// appended to calls when calls is non-nil.
func CommandRunner(outputs map[string]CommandOutput, calls *[]string) *cmdcheck.MockRunner {
	return &cmdcheck.MockRunner{
		RunCommandFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			line := strings.Join(append([]string{name}, args...), " ")
			if calls != nil {
				*calls = append(*calls, line)
			}
			out, ok := outputs[line]
			if !ok {
				return "", "not found", ErrNotFound
			}
			return out.Stdout, out.Stderr, out.Err
		},
	}
}
