package sim

import (
	"testing"
)

func TestMetrics_RecordSubmit_CountsRejections(t *testing.T) {
	m := NewMetrics()
	m.RecordSubmit(true)
	m.RecordSubmit(false)
	m.RecordSubmit(true)

	if m.Submitted != 3 {
		t.Errorf("Submitted: got %d, want 3", m.Submitted)
	}
	if m.Rejected != 1 {
		t.Errorf("Rejected: got %d, want 1", m.Rejected)
	}
}

func TestMetrics_RecordCycle_TracksPeaks(t *testing.T) {
	m := NewMetrics()
	m.RecordCycle(2, 7, 3)
	m.RecordCycle(1, 4, 5)
	m.RecordCycle(0, 6, 4)

	if m.Cycles != 3 {
		t.Errorf("Cycles: got %d, want 3", m.Cycles)
	}
	if m.Completed != 3 {
		t.Errorf("Completed: got %d, want 3", m.Completed)
	}
	if m.PeakQueueLen != 7 {
		t.Errorf("PeakQueueLen: got %d, want 7", m.PeakQueueLen)
	}
	if m.PeakPoolSize != 5 {
		t.Errorf("PeakPoolSize: got %d, want 5", m.PeakPoolSize)
	}
}

func TestMetrics_WaitStatistics(t *testing.T) {
	// GIVEN dispatched requests that waited 0, 2, 4, 6, 8 cycles
	m := NewMetrics()
	for _, w := range []int64{8, 0, 4, 2, 6} {
		m.RecordDispatch(w)
	}

	// THEN the mean is 4 and the median is the empirical middle sample
	if got := m.MeanWait(); got != 4.0 {
		t.Errorf("MeanWait: got %v, want 4", got)
	}
	if got := m.WaitPercentile(50); got != 4.0 {
		t.Errorf("WaitPercentile(50): got %v, want 4", got)
	}
	if got := m.WaitPercentile(100); got != 8.0 {
		t.Errorf("WaitPercentile(100): got %v, want 8", got)
	}
}

func TestMetrics_WaitStatistics_Empty(t *testing.T) {
	m := NewMetrics()
	if got := m.MeanWait(); got != 0.0 {
		t.Errorf("MeanWait with no samples: got %v, want 0", got)
	}
	if got := m.WaitPercentile(99); got != 0.0 {
		t.Errorf("WaitPercentile with no samples: got %v, want 0", got)
	}
}
