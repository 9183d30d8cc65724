// Package trace records periodic simulation statistics for log-file output
// and end-of-run summaries. It stores pure data types and has no dependency
// on the sim package.
package trace

// CycleRecord captures system state at the end of one sampled cycle.
type CycleRecord struct {
	Cycle             int64
	Servers           int
	QueueLen          int
	Processed         int // cumulative completions
	SystemUtilization float64 // percent
	QueueUtilization  float64 // percent
	Overloaded        bool
}

// RunHeader describes the run a trace belongs to, for the log-file preamble.
type RunHeader struct {
	Servers int
	Cycles  int64
}
