// Tracks run-wide statistics: admission outcomes, queue wait times,
// completions, and peak pool/queue depths.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for evaluating scaling behavior and debugging dispatch over time.
type Metrics struct {
	Cycles       int // number of ProcessCycle calls observed
	Submitted    int // requests offered to the admission queue
	Rejected     int // submissions refused (blocked origin or full queue)
	Dispatched   int // requests placed on a server
	Completed    int // requests that ran to completion
	ShrinkLosses int // in-flight requests discarded by pool shrinks

	PeakQueueLen int // deepest admission queue observed after dispatch
	PeakPoolSize int // largest server pool observed

	// WaitCycles holds, per dispatched request, the cycles it spent queued.
	WaitCycles []float64
}

// NewMetrics creates an empty Metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordSubmit counts one submission and whether it was admitted.
func (m *Metrics) RecordSubmit(admitted bool) {
	m.Submitted++
	if !admitted {
		m.Rejected++
	}
}

// RecordDispatch counts one placement and the cycles the request waited.
func (m *Metrics) RecordDispatch(waitCycles int64) {
	m.Dispatched++
	m.WaitCycles = append(m.WaitCycles, float64(waitCycles))
}

// RecordShrinkLoss counts requests discarded by a pool shrink.
func (m *Metrics) RecordShrinkLoss(lost int) {
	m.ShrinkLosses += lost
}

// RecordCycle folds one cycle's completions and post-dispatch state into the
// running aggregates.
func (m *Metrics) RecordCycle(completed, queueLen, poolSize int) {
	m.Cycles++
	m.Completed += completed
	if queueLen > m.PeakQueueLen {
		m.PeakQueueLen = queueLen
	}
	if poolSize > m.PeakPoolSize {
		m.PeakPoolSize = poolSize
	}
}

// MeanWait returns the mean queue wait in cycles across dispatched requests,
// or 0 if none were dispatched.
func (m *Metrics) MeanWait() float64 {
	if len(m.WaitCycles) == 0 {
		return 0.0
	}
	return stat.Mean(m.WaitCycles, nil)
}

// WaitPercentile returns the p-th percentile (p in [0, 100]) of queue waits
// in cycles, or 0 if none were dispatched.
func (m *Metrics) WaitPercentile(p float64) float64 {
	if len(m.WaitCycles) == 0 {
		return 0.0
	}
	sorted := make([]float64, len(m.WaitCycles))
	copy(sorted, m.WaitCycles)
	sort.Float64s(sorted)
	return stat.Quantile(p/100.0, stat.Empirical, sorted, nil)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Cycles               : %d\n", m.Cycles)
	fmt.Printf("Submitted            : %d\n", m.Submitted)
	fmt.Printf("Rejected             : %d\n", m.Rejected)
	fmt.Printf("Dispatched           : %d\n", m.Dispatched)
	fmt.Printf("Completed            : %d\n", m.Completed)
	fmt.Printf("Lost to shrinks      : %d\n", m.ShrinkLosses)
	fmt.Printf("Peak queue depth     : %d\n", m.PeakQueueLen)
	fmt.Printf("Peak pool size       : %d\n", m.PeakPoolSize)
	if len(m.WaitCycles) > 0 {
		fmt.Printf("Queue wait mean      : %.2f cycles\n", m.MeanWait())
		fmt.Printf("Queue wait p50       : %.2f cycles\n", m.WaitPercentile(50))
		fmt.Printf("Queue wait p99       : %.2f cycles\n", m.WaitPercentile(99))
	}
}
