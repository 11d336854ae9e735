// Package kubecheck runs checks against a Kubernetes cluster through
// command-line clients (kubectl, flux) and decodes their JSON output into
// typed records.
package kubecheck

import (
	"time"

	"github.com/vertti/clustercheck/pkg/cmdcheck"
)

// CLI builds and runs invocations of a cluster client binary.
// Kubeconfig and Context are forwarded as global flags when set;
// kubectl and flux both accept them.
type CLI struct {
	Binary     string
	Kubeconfig string
	Context    string
	Timeout    time.Duration   // default: cmdcheck.DefaultTimeout
	Runner     cmdcheck.Runner // injected for testing
}

// Argv returns the full command line for args.
func (c CLI) Argv(args ...string) []string {
	argv := []string{c.Binary}
	if c.Kubeconfig != "" {
		argv = append(argv, "--kubeconfig", c.Kubeconfig)
	}
	if c.Context != "" {
		argv = append(argv, "--context", c.Context)
	}
	return append(argv, args...)
}

// Run executes the client with args. See cmdcheck.Exec.
func (c CLI) Run(args ...string) (ok bool, output string) {
	return cmdcheck.Exec(c.Runner, c.Timeout, c.Argv(args...))
}

// Command returns an exit-status check for the client invoked with args.
func (c CLI) Command(name, passDetail, failDetail string, args ...string) *cmdcheck.Check {
	return &cmdcheck.Check{
		Name:       name,
		Argv:       c.Argv(args...),
		PassDetail: passDetail,
		FailDetail: failDetail,
		Timeout:    c.Timeout,
		Runner:     c.Runner,
	}
}
