package trace

// SimulationTrace collects cycle records sampled at a fixed interval.
type SimulationTrace struct {
	Interval int64
	Records  []CycleRecord
}

// NewSimulationTrace creates a trace that samples every interval cycles.
// An interval <= 0 is treated as 1 (sample every cycle).
func NewSimulationTrace(interval int64) *SimulationTrace {
	if interval <= 0 {
		interval = 1
	}
	return &SimulationTrace{
		Interval: interval,
		Records:  make([]CycleRecord, 0),
	}
}

// ShouldSample reports whether the given cycle falls on the sampling
// interval. The final cycle of a run is always worth recording; callers
// handle that case themselves since the trace does not know the horizon.
func (t *SimulationTrace) ShouldSample(cycle int64) bool {
	return cycle%t.Interval == 0
}

// Record appends one cycle record.
func (t *SimulationTrace) Record(rec CycleRecord) {
	t.Records = append(t.Records, rec)
}

// Last returns the most recent record, or a zero record if none exist.
func (t *SimulationTrace) Last() CycleRecord {
	if len(t.Records) == 0 {
		return CycleRecord{}
	}
	return t.Records[len(t.Records)-1]
}
