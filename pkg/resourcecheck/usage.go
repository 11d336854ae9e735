package resourcecheck

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeUsage is one row of `kubectl top nodes --no-headers`.
// Values are kept as printed, e.g. "250m", "12%", "1024Mi".
type NodeUsage struct {
	Node          string
	CPU           string
	CPUPercent    string
	Memory        string
	MemoryPercent string
}

// ParseTopNodes splits top output into rows. Blank lines and lines with
// fewer than five columns are skipped; extra columns are ignored.
func ParseTopNodes(output string) []NodeUsage {
	var rows []NodeUsage
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		rows = append(rows, NodeUsage{
			Node:          fields[0],
			CPU:           fields[1],
			CPUPercent:    fields[2],
			Memory:        fields[3],
			MemoryPercent: fields[4],
		})
	}
	return rows
}

// Percentages returns the CPU and memory utilization as integers.
// Nodes without metrics print "<unknown>", which is an error here.
func (u NodeUsage) Percentages() (cpu, memory int, err error) {
	cpu, err = parsePercent(u.CPUPercent)
	if err != nil {
		return 0, 0, fmt.Errorf("cpu: %w", err)
	}
	memory, err = parsePercent(u.MemoryPercent)
	if err != nil {
		return 0, 0, fmt.Errorf("memory: %w", err)
	}
	return cpu, memory, nil
}

func parsePercent(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimRight(s, "%"))
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", s)
	}
	return n, nil
}
