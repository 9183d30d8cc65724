// Package sim provides the core discrete-time simulation engine for the
// load balancer simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - request.go: the Request value (origin, verb, priority, service cycles)
//   - server.go: per-server capacity model and the per-cycle countdown loop
//   - balancer.go: round-robin dispatch and the autoscaling heuristic
//
// # Architecture
//
// The sim package owns all mutable simulation state; collaborators live in
// sub-packages:
//   - sim/workload/: synthetic request generation (YAML specs, samplers)
//   - sim/trace/: periodic cycle records, log-file output, run summaries
//
// One call to LoadBalancer.ProcessCycle advances the whole system by one
// simulated cycle: every active server counts down its in-flight requests,
// the admission queue is drained round-robin into servers with free slots,
// and the pool is grown or shrunk by the scaling heuristic. Everything is
// synchronous and single-owner; callers with real concurrency must serialize
// all mutating calls to a LoadBalancer.
//
// # Key Types
//
//   - Request: one unit of simulated work, measured in whole cycles
//   - AdmissionQueue: bounded FIFO with an origin-IP blocklist
//   - Server: capacity-limited processor with a FIFO of in-flight requests
//   - LoadBalancer: owns the servers and the queue, performs dispatch/scaling
//   - Metrics: run-level counters and wait-time samples
//
// Expected failures (queue full, blocked origin, server at capacity, pool at
// a bound) are reported through boolean or nil returns, never through errors
// or panics.
package sim
