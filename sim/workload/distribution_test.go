package workload

import (
	"math/rand"
	"testing"
)

func TestUniformSampler_StaysInRange(t *testing.T) {
	sampler, err := NewServiceSampler(DistSpec{Kind: "uniform", Min: 5, Max: 50})
	if err != nil {
		t.Fatalf("NewServiceSampler: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		got := sampler.Sample(rng)
		if got < 5 || got > 50 {
			t.Fatalf("sample %d out of [5, 50]: %d", i, got)
		}
	}
}

func TestGaussianSampler_ClampsToRange(t *testing.T) {
	sampler, err := NewServiceSampler(DistSpec{Kind: "gaussian", Mean: 10, StdDev: 30, Min: 1, Max: 20})
	if err != nil {
		t.Fatalf("NewServiceSampler: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		got := sampler.Sample(rng)
		if got < 1 || got > 20 {
			t.Fatalf("sample %d out of [1, 20]: %d", i, got)
		}
	}
}

func TestExponentialSampler_AlwaysPositive(t *testing.T) {
	sampler, err := NewServiceSampler(DistSpec{Kind: "exponential", Mean: 0.5})
	if err != nil {
		t.Fatalf("NewServiceSampler: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		if got := sampler.Sample(rng); got < 1 {
			t.Fatalf("sample %d below 1: %d", i, got)
		}
	}
}

func TestNewServiceSampler_UnknownKind(t *testing.T) {
	if _, err := NewServiceSampler(DistSpec{Kind: "zipf"}); err == nil {
		t.Fatalf("NewServiceSampler with unknown kind: got nil error")
	}
}
