package sim

import (
	"testing"
)

// newTestBalancer builds a LoadBalancer from cfg and fails the test on a
// config error.
func newTestBalancer(t *testing.T, cfg Config) *LoadBalancer {
	t.Helper()
	lb, err := NewLoadBalancer(cfg)
	if err != nil {
		t.Fatalf("NewLoadBalancer(%+v): %v", cfg, err)
	}
	return lb
}

// testRequest builds a request with fixed origin and verb and the given
// service duration.
func testRequest(id int64, serviceCycles int) *Request {
	return NewRequest(id, "10.0.0.1", "GET", 5, serviceCycles)
}

// inflightTotal sums the in-flight load across all servers in the pool.
func inflightTotal(lb *LoadBalancer) int {
	total := 0
	for _, srv := range lb.servers {
		total += srv.Load()
	}
	return total
}
