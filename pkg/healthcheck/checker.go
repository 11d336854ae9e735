// Package healthcheck runs the full ordered sequence of cluster health
// checks and prints the report.
//
// Every check is independent: a failure is recorded and the next check
// runs. Only the final tally decides the overall outcome.
package healthcheck

import (
	"log/slog"
	"time"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/cmdcheck"
	"github.com/vertti/clustercheck/pkg/config"
	"github.com/vertti/clustercheck/pkg/httpcheck"
	"github.com/vertti/clustercheck/pkg/kubecheck"
	"github.com/vertti/clustercheck/pkg/output"
)

// Checker owns one run: its configuration, its external clients and the
// tally. It is not safe for concurrent use.
type Checker struct {
	Config  *config.Config
	Runner  cmdcheck.Runner      // runs kubectl and flux
	Client  httpcheck.HTTPClient // issues HTTP probes
	Printer *output.Printer
	Now     func() time.Time

	tally check.Tally
}

// New returns a Checker using real subprocesses and HTTP.
func New(cfg *config.Config, printer *output.Printer) *Checker {
	return &Checker{
		Config:  cfg,
		Runner:  &cmdcheck.RealRunner{},
		Client:  &httpcheck.RealHTTPClient{Timeout: cfg.Timeouts.HTTP},
		Printer: printer,
		Now:     time.Now,
	}
}

// Tally returns the counts accumulated so far.
func (c *Checker) Tally() check.Tally {
	return c.tally
}

// RunAll runs every check in order, prints the summary and reports
// whether no check failed.
func (c *Checker) RunAll() bool {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	c.Printer.Banner(c.Config.Title, now())

	c.CheckKubernetesCluster()
	c.CheckFluxSystem()
	c.CheckInfrastructureComponents()
	c.CheckDatabaseCluster()
	c.CheckApplication()
	c.CheckMonitoringStack()
	c.CheckIngressConnectivity()
	c.CheckResourceUsage()

	c.Printer.Summary(&c.tally)

	slog.Info("health check finished",
		slog.Int("passed", c.tally.Passed),
		slog.Int("failed", c.tally.Failed),
		slog.Int("warnings", len(c.tally.Warnings)),
	)
	return c.tally.Healthy()
}

func (c *Checker) record(r check.Result) {
	c.tally.Record(r)
	c.Printer.PrintResult(r)
	if !r.OK() {
		slog.Debug("check failed", slog.String("check", r.Name), slog.Any("error", r.Err))
	}
}

func (c *Checker) warn(msg string) {
	c.tally.Warn(msg)
	c.Printer.PrintWarning(msg)
}

func (c *Checker) kubectl() kubecheck.CLI {
	return c.cli(c.Config.Clients.Kubectl)
}

func (c *Checker) flux() kubecheck.CLI {
	return c.cli(c.Config.Clients.Flux)
}

func (c *Checker) cli(binary string) kubecheck.CLI {
	return kubecheck.CLI{
		Binary:     binary,
		Kubeconfig: c.Config.Clients.Kubeconfig,
		Context:    c.Config.Clients.Context,
		Timeout:    c.Config.Timeouts.Command,
		Runner:     c.Runner,
	}
}
