// Package output renders the health report.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jwalton/go-supportscolor"
	"github.com/mattn/go-runewidth"

	"github.com/vertti/clustercheck/pkg/check"
)

const (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

// NameWidth is the display width of the check name column.
const NameWidth = 30

// ColorSupported reports whether stdout accepts ANSI colors.
func ColorSupported() bool {
	return supportscolor.Stdout().SupportsColor
}

// Printer writes report lines to Out.
type Printer struct {
	Out   io.Writer
	Color bool
}

// New returns a printer for w.
func New(w io.Writer, color bool) *Printer {
	return &Printer{Out: w, Color: color}
}

func (p *Printer) paint(color, s string) string {
	if !p.Color {
		return s
	}
	return color + s + reset
}

func (p *Printer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.Out, format, args...)
}

// Banner prints the report title and start time.
func (p *Printer) Banner(title string, started time.Time) {
	p.printf("🏥 %s\n", title)
	p.printf("Started at: %s\n", started.Format("2006-01-02 15:04:05"))
	p.printf("%s\n", strings.Repeat("=", 80))
}

// Section prints a section header preceded by a blank line.
func (p *Printer) Section(title string) {
	p.printf("\n%s\n%s\n", title, strings.Repeat("=", 50))
}

// PrintResult outputs a check result with colored status.
func (p *Printer) PrintResult(r check.Result) {
	status := "✅ " + p.paint(green, "PASS")
	if !r.OK() {
		status = "❌ " + p.paint(red, "FAIL")
	}
	p.printf("%s | %s | %s\n", status, runewidth.FillRight(r.Name, NameWidth), r.Message())
}

// PrintWarning outputs a warning line.
func (p *Printer) PrintWarning(msg string) {
	p.printf("⚠️  %s | %s\n", p.paint(yellow, "WARN"), msg)
}

// Summary prints the final counts, the collected warnings and the
// overall status.
func (p *Printer) Summary(t *check.Tally) {
	p.Section("📋 Health Check Summary")
	p.printf("✅ Passed: %d\n", t.Passed)
	p.printf("❌ Failed: %d\n", t.Failed)
	p.printf("⚠️  Warnings: %d\n", len(t.Warnings))

	if len(t.Warnings) > 0 {
		p.printf("\n⚠️  Warnings:\n")
		for _, w := range t.Warnings {
			p.printf("   - %s\n", w)
		}
	}

	overall := "🟢 " + p.paint(green, "HEALTHY")
	if !t.Healthy() {
		overall = "🔴 " + p.paint(red, "ISSUES DETECTED")
	}
	p.printf("\nOverall Status: %s\n", overall)
}
