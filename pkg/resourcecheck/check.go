package resourcecheck

import (
	"fmt"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/kubecheck"
)

// Default utilization limits in percent.
const (
	DefaultUnhealthyPercent = 80
	DefaultWarningPercent   = 90
)

// UnavailableWarning is emitted when node metrics cannot be read at all.
const UnavailableWarning = "Cannot get node resource usage (metrics-server might not be available)"

// NodeOutcome is the result for one node and its warning, if any.
type NodeOutcome struct {
	Result  check.Result
	Warning string
}

// Outcome holds what a usage check reports. Warning is set when node
// metrics could not be read at all.
type Outcome struct {
	Nodes   []NodeOutcome
	Warning string
}

// Warnings returns every warning in report order.
func (o Outcome) Warnings() []string {
	var warnings []string
	for _, n := range o.Nodes {
		if n.Warning != "" {
			warnings = append(warnings, n.Warning)
		}
	}
	if o.Warning != "" {
		warnings = append(warnings, o.Warning)
	}
	return warnings
}

// Check verifies node CPU and memory utilization.
// A node fails when either metric reaches UnhealthyPercent; a warning is
// added when either exceeds WarningPercent. Missing node metrics are
// optional telemetry and only produce a warning.
type Check struct {
	UnhealthyPercent int // default: DefaultUnhealthyPercent
	WarningPercent   int // default: DefaultWarningPercent
	Kubectl          kubecheck.CLI
}

// Run executes the resource usage check.
func (c *Check) Run() Outcome {
	var out Outcome

	ok, output := c.Kubectl.Run("top", "nodes", "--no-headers")
	if !ok {
		out.Warning = UnavailableWarning
		return out
	}

	for _, row := range ParseTopNodes(output) {
		res, warn := c.evaluate(row)
		out.Nodes = append(out.Nodes, NodeOutcome{Result: res, Warning: warn})
	}
	return out
}

func (c *Check) evaluate(row NodeUsage) (check.Result, string) {
	result := check.Result{
		Name: "Node " + row.Node,
	}

	unhealthy := c.UnhealthyPercent
	if unhealthy == 0 {
		unhealthy = DefaultUnhealthyPercent
	}
	warning := c.WarningPercent
	if warning == 0 {
		warning = DefaultWarningPercent
	}

	cpu, memory, err := row.Percentages()
	if err != nil {
		return result.Fail("Cannot parse usage: "+err.Error(), err), ""
	}

	result.Set(cpu < unhealthy && memory < unhealthy,
		fmt.Sprintf("CPU: %s, Memory: %s", row.CPUPercent, row.MemoryPercent))

	if cpu > warning || memory > warning {
		return result, "High resource usage on " + row.Node
	}
	return result, ""
}
