package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// ServiceSampler generates service duration samples.
type ServiceSampler interface {
	// Sample returns a positive cycle count (>= 1).
	Sample(rng *rand.Rand) int
}

// NewServiceSampler builds a sampler for a validated DistSpec.
func NewServiceSampler(spec DistSpec) (ServiceSampler, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	switch spec.Kind {
	case "uniform":
		return &UniformSampler{min: spec.Min, max: spec.Max}, nil
	case "gaussian":
		return &GaussianSampler{mean: spec.Mean, stdDev: spec.StdDev, min: spec.Min, max: spec.Max}, nil
	case "exponential":
		return &ExponentialSampler{mean: spec.Mean}, nil
	default:
		return nil, fmt.Errorf("unknown service distribution kind %q", spec.Kind)
	}
}

// UniformSampler draws durations uniformly from [min, max].
type UniformSampler struct {
	min, max int
}

func (s *UniformSampler) Sample(rng *rand.Rand) int {
	return s.min + rng.Intn(s.max-s.min+1)
}

// GaussianSampler produces clamped Gaussian durations.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	result := int(math.Round(clamped))
	if result < 1 {
		return 1
	}
	return result
}

// ExponentialSampler produces exponentially-distributed durations.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int {
	val := rng.ExpFloat64() * s.mean
	result := int(math.Round(val))
	if result < 1 {
		return 1
	}
	return result
}
