package resourcecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/kubecheck"
	"github.com/vertti/clustercheck/pkg/testutil"
)

const topLine = "kubectl top nodes --no-headers"

func checkWithTop(output string) *Check {
	return &Check{
		Kubectl: kubecheck.CLI{
			Binary: "kubectl",
			Runner: testutil.CommandRunner(map[string]testutil.CommandOutput{
				topLine: {Stdout: output},
			}, nil),
		},
	}
}

func TestResourceCheckThresholds(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantStatus  check.Status
		wantMessage string
		wantWarning bool
	}{
		{"healthy node", "node-a 100m 20% 500Mi 30%", check.StatusOK, "CPU: 20%, Memory: 30%", false},
		{"cpu 85 fails without warning", "node-a 3400m 85% 500Mi 50%", check.StatusFail, "CPU: 85%, Memory: 50%", false},
		{"cpu 95 fails with warning", "node-a 3800m 95% 500Mi 50%", check.StatusFail, "CPU: 95%, Memory: 50%", true},
		{"memory 91 fails with warning", "node-a 100m 10% 7Gi 91%", check.StatusFail, "CPU: 10%, Memory: 91%", true},
		{"exactly 80 fails", "node-a 100m 80% 1Gi 10%", check.StatusFail, "CPU: 80%, Memory: 10%", false},
		{"79 passes", "node-a 100m 79% 1Gi 79%", check.StatusOK, "CPU: 79%, Memory: 79%", false},
		{"exactly 90 does not warn", "node-a 100m 90% 1Gi 10%", check.StatusFail, "CPU: 90%, Memory: 10%", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := checkWithTop(tt.line).Run()

			require.Len(t, out.Nodes, 1)
			r := out.Nodes[0].Result
			assert.Equal(t, "Node node-a", r.Name)
			assert.Equal(t, tt.wantStatus, r.Status)
			assert.Equal(t, tt.wantMessage, r.Message())
			if tt.wantWarning {
				assert.Equal(t, []string{"High resource usage on node-a"}, out.Warnings())
			} else {
				assert.Empty(t, out.Warnings())
			}
		})
	}
}

func TestResourceCheckMultipleNodes(t *testing.T) {
	out := checkWithTop("a 1m 1% 1Mi 1%\nb 1m 96% 1Mi 1%\nc 1m 1% 1Mi 99%\n").Run()

	require.Len(t, out.Nodes, 3)
	assert.True(t, out.Nodes[0].Result.OK())
	assert.False(t, out.Nodes[1].Result.OK())
	assert.False(t, out.Nodes[2].Result.OK())
	assert.Equal(t, []string{"High resource usage on b", "High resource usage on c"}, out.Warnings())
}

func TestResourceCheckUnknownMetrics(t *testing.T) {
	out := checkWithTop("node-a <unknown> <unknown> <unknown> <unknown>").Run()

	require.Len(t, out.Nodes, 1)
	assert.Equal(t, check.StatusFail, out.Nodes[0].Result.Status)
	assert.True(t, testutil.ContainsDetail(out.Nodes[0].Result.Details, "Cannot parse usage"))
	assert.Empty(t, out.Warnings())
}

func TestResourceCheckCommandFailureIsWarningOnly(t *testing.T) {
	c := &Check{
		Kubectl: kubecheck.CLI{
			Binary: "kubectl",
			Runner: testutil.CommandRunner(map[string]testutil.CommandOutput{}, nil),
		},
	}

	out := c.Run()

	assert.Empty(t, out.Nodes)
	assert.Equal(t, []string{UnavailableWarning}, out.Warnings())
}

func TestResourceCheckCustomThresholds(t *testing.T) {
	c := checkWithTop("node-a 1m 60% 1Mi 10%")
	c.UnhealthyPercent = 50
	c.WarningPercent = 55

	out := c.Run()

	require.Len(t, out.Nodes, 1)
	assert.False(t, out.Nodes[0].Result.OK())
	assert.Equal(t, []string{"High resource usage on node-a"}, out.Warnings())
}
