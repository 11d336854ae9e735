package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vertti/clustercheck/pkg/check"
)

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name   string
		result check.Result
		want   string
	}{
		{
			name:   "pass",
			result: check.Result{Name: "Cluster connectivity", Status: check.StatusOK, Details: []string{"Connected"}},
			want:   "✅ PASS | Cluster connectivity           | Connected\n",
		},
		{
			name:   "fail",
			result: check.Result{Name: "monitoring/grafana", Status: check.StatusFail, Details: []string{"0/1 replicas ready"}},
			want:   "❌ FAIL | monitoring/grafana             | 0/1 replicas ready\n",
		},
		{
			name:   "long name is not truncated",
			result: check.Result{Name: "cnpg-system/cnpg-controller-manager", Status: check.StatusOK, Details: []string{"1/1 replicas ready"}},
			want:   "✅ PASS | cnpg-system/cnpg-controller-manager | 1/1 replicas ready\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, false).PrintResult(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintResultColor(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).PrintResult(check.Result{Name: "x", Status: check.StatusFail})
	assert.Contains(t, buf.String(), "\033[31mFAIL\033[0m")
}

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).PrintWarning("High resource usage on node-a")
	assert.Equal(t, "⚠️  WARN | High resource usage on node-a\n", buf.String())
}

func TestBannerAndSection(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.Banner("Phoenix GitOps Homelab Health Check", time.Date(2026, 10, 18, 9, 5, 3, 0, time.UTC))
	p.Section("🔧 Kubernetes Cluster Health")

	want := "🏥 Phoenix GitOps Homelab Health Check\n" +
		"Started at: 2026-10-18 09:05:03\n" +
		strings.Repeat("=", 80) + "\n" +
		"\n🔧 Kubernetes Cluster Health\n" +
		strings.Repeat("=", 50) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestSummaryHealthy(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Summary(&check.Tally{Passed: 20})

	out := buf.String()
	assert.Contains(t, out, "✅ Passed: 20\n")
	assert.Contains(t, out, "❌ Failed: 0\n")
	assert.Contains(t, out, "⚠️  Warnings: 0\n")
	assert.NotContains(t, out, "   - ")
	assert.True(t, strings.HasSuffix(out, "Overall Status: 🟢 HEALTHY\n"))
}

func TestSummaryWithFailuresAndWarnings(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Summary(&check.Tally{
		Passed:   3,
		Failed:   2,
		Warnings: []string{"High resource usage on node-a", "High resource usage on node-b"},
	})

	out := buf.String()
	assert.Contains(t, out, "❌ Failed: 2\n")
	assert.Contains(t, out, "⚠️  Warnings: 2\n")
	assert.Contains(t, out, "   - High resource usage on node-a\n   - High resource usage on node-b\n")
	assert.True(t, strings.HasSuffix(out, "Overall Status: 🔴 ISSUES DETECTED\n"))
}
