// Package workload generates synthetic request traffic for the simulator.
// A WorkloadSpec (loaded from YAML or built from defaults) describes the
// traffic shape; a Generator turns it into a deterministic request stream.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Seed int64 `yaml:"seed"`

	// InitialBurst is the number of requests enqueued before the first cycle.
	// 0 means fill the admission queue to capacity.
	InitialBurst int `yaml:"initial_burst,omitempty"`

	// ArrivalChance is the per-cycle probability of one new request arriving.
	ArrivalChance float64 `yaml:"arrival_chance"`

	// ArrivalCutoff is the fraction of the horizon after which arrivals stop,
	// letting the system drain toward the end of the run.
	ArrivalCutoff float64 `yaml:"arrival_cutoff"`

	// Methods are the verb tags requests are drawn from.
	Methods []string `yaml:"methods,omitempty"`

	PriorityMin int `yaml:"priority_min"`
	PriorityMax int `yaml:"priority_max"`

	// Service configures the service duration distribution.
	Service DistSpec `yaml:"service_distribution"`
}

// DistSpec configures a service duration distribution.
type DistSpec struct {
	Kind   string  `yaml:"kind"` // "uniform", "gaussian", "exponential"
	Min    int     `yaml:"min,omitempty"`
	Max    int     `yaml:"max,omitempty"`
	Mean   float64 `yaml:"mean,omitempty"`
	StdDev float64 `yaml:"stddev,omitempty"`
}

// DefaultSpec returns the traffic shape the original simulator used: a 5%
// chance of a new request each cycle until 80% of the horizon, uniform
// service durations of 5-50 cycles, priorities 1-10, and the four common
// HTTP verbs.
func DefaultSpec() *WorkloadSpec {
	return &WorkloadSpec{
		Seed:          42,
		ArrivalChance: 0.05,
		ArrivalCutoff: 0.8,
		Methods:       []string{"GET", "POST", "PUT", "DELETE"},
		PriorityMin:   1,
		PriorityMax:   10,
		Service:       DistSpec{Kind: "uniform", Min: 5, Max: 50},
	}
}

// LoadWorkloadSpec reads and validates a WorkloadSpec from a YAML file.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	spec := DefaultSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec %s: %w", path, err)
	}
	return spec, nil
}

// Validate checks the spec for out-of-range values.
func (s *WorkloadSpec) Validate() error {
	if s.ArrivalChance < 0.0 || s.ArrivalChance > 1.0 {
		return fmt.Errorf("arrival_chance must be in [0, 1], got %v", s.ArrivalChance)
	}
	if s.ArrivalCutoff < 0.0 || s.ArrivalCutoff > 1.0 {
		return fmt.Errorf("arrival_cutoff must be in [0, 1], got %v", s.ArrivalCutoff)
	}
	if len(s.Methods) == 0 {
		return fmt.Errorf("methods must not be empty")
	}
	if s.PriorityMin < 1 || s.PriorityMax < s.PriorityMin {
		return fmt.Errorf("priority range [%d, %d] is invalid", s.PriorityMin, s.PriorityMax)
	}
	if s.InitialBurst < 0 {
		return fmt.Errorf("initial_burst must be >= 0, got %d", s.InitialBurst)
	}
	return s.Service.Validate()
}

// Validate checks the distribution parameters for the configured kind.
func (d *DistSpec) Validate() error {
	switch d.Kind {
	case "uniform":
		if d.Min < 1 || d.Max < d.Min {
			return fmt.Errorf("uniform service range [%d, %d] is invalid", d.Min, d.Max)
		}
	case "gaussian":
		if d.Mean <= 0 || d.StdDev < 0 {
			return fmt.Errorf("gaussian service distribution needs mean > 0 and stddev >= 0")
		}
		if d.Min < 1 || d.Max < d.Min {
			return fmt.Errorf("gaussian service clamp range [%d, %d] is invalid", d.Min, d.Max)
		}
	case "exponential":
		if d.Mean <= 0 {
			return fmt.Errorf("exponential service distribution needs mean > 0")
		}
	default:
		return fmt.Errorf("unknown service distribution kind %q", d.Kind)
	}
	return nil
}
