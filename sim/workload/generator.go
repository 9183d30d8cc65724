package workload

import (
	"fmt"
	"math/rand"

	"github.com/lbsim/lbsim/sim"
)

// Generator produces a deterministic synthetic request stream from a
// WorkloadSpec. Request content (origin, verb, priority, duration) and
// arrival coin flips draw from separate RNG subsystems so that changing the
// arrival pattern does not perturb request content for the same seed.
type Generator struct {
	spec    *WorkloadSpec
	sampler ServiceSampler

	contentRNG *rand.Rand
	arrivalRNG *rand.Rand

	horizon int64 // total cycles in the run
	cutoff  int64 // cycle after which no more arrivals are produced
	nextID  int64
}

// NewGenerator builds a generator for a run of horizon cycles.
func NewGenerator(spec *WorkloadSpec, horizon int64) (*Generator, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	sampler, err := NewServiceSampler(spec.Service)
	if err != nil {
		return nil, err
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	return &Generator{
		spec:       spec,
		sampler:    sampler,
		contentRNG: rng.ForSubsystem(sim.SubsystemWorkload),
		arrivalRNG: rng.ForSubsystem(sim.SubsystemArrival),
		horizon:    horizon,
		cutoff:     int64(float64(horizon) * spec.ArrivalCutoff),
		nextID:     1,
	}, nil
}

// Next generates one request with random origin, verb, priority, and service
// duration, and a sequential ID.
func (g *Generator) Next() *sim.Request {
	id := g.nextID
	g.nextID++

	ip := randomIP(g.contentRNG)
	method := g.spec.Methods[g.contentRNG.Intn(len(g.spec.Methods))]
	priority := g.spec.PriorityMin + g.contentRNG.Intn(g.spec.PriorityMax-g.spec.PriorityMin+1)
	duration := g.sampler.Sample(g.contentRNG)

	return sim.NewRequest(id, ip, method, priority, duration)
}

// Burst generates n requests for seeding the admission queue before cycle 1.
func (g *Generator) Burst(n int) []*sim.Request {
	requests := make([]*sim.Request, 0, n)
	for i := 0; i < n; i++ {
		requests = append(requests, g.Next())
	}
	return requests
}

// MaybeArrival flips the per-cycle arrival coin and returns a new request on
// success, or nil. Arrivals stop once the cycle passes the cutoff fraction of
// the horizon so the system drains before the run ends.
func (g *Generator) MaybeArrival(cycle int64) *sim.Request {
	if cycle >= g.cutoff {
		return nil
	}
	if g.arrivalRNG.Float64() >= g.spec.ArrivalChance {
		return nil
	}
	return g.Next()
}

// randomIP draws a dotted-quad origin address with octets in [1, 254].
func randomIP(rng *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+rng.Intn(254), 1+rng.Intn(254), 1+rng.Intn(254), 1+rng.Intn(254))
}
