package trace

import (
	"fmt"
	"strings"
)

// Summary aggregates the final state of a run for display.
type Summary struct {
	Cycles                int64
	TotalProcessed        int
	AverageProcessingTime float64 // cycles
	SystemUtilization     float64 // percent, at end of run
	QueueLen              int     // at end of run
	Discarded             int     // in-flight requests lost to pool shrinks
	ServerStats           []string
}

// String formats the summary as the end-of-run report block.
func (s Summary) String() string {
	var sb strings.Builder
	sb.WriteString("=== Simulation Complete ===\n")
	sb.WriteString("Final Statistics:\n")
	fmt.Fprintf(&sb, "- Total requests processed: %d\n", s.TotalProcessed)
	fmt.Fprintf(&sb, "- Average processing time: %.2f cycles\n", s.AverageProcessingTime)
	fmt.Fprintf(&sb, "- Final system utilization: %.1f%%\n", s.SystemUtilization)
	fmt.Fprintf(&sb, "- Final queue size: %d\n", s.QueueLen)
	fmt.Fprintf(&sb, "- Requests lost to scale-down: %d\n", s.Discarded)
	sb.WriteString("\nServer Statistics:\n")
	for _, stat := range s.ServerStats {
		fmt.Fprintf(&sb, "  %s\n", stat)
	}
	return sb.String()
}
