// Implements the LoadBalancer, which owns the admission queue and the server
// pool. One ProcessCycle call advances every server, drains the queue into
// servers round-robin, and runs the autoscaling heuristic, in that order.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// queueBacklogLimit is the queue depth above which the balancer scales up
// regardless of server utilization.
const queueBacklogLimit = 10

// scaleDownSlack is the number of servers the pool must hold above the
// minimum before the balancer considers shrinking. Together with the empty
// queue requirement and the very low utilization floor, this keeps the pool
// from flapping on single-cycle dips.
const scaleDownSlack = 3

// LoadBalancer distributes requests across a dynamically sized server pool.
// The server slice order defines the round-robin rotation; nextIdx marks
// where the next placement scan begins and persists across cycles.
type LoadBalancer struct {
	servers []*Server
	queue   *AdmissionQueue
	nextIdx int

	minServers     int
	maxServers     int
	serverCapacity int
	threshold      float64

	clock         int64
	processed     int // cumulative completions across all servers
	serviceCycles int // cumulative original service cycles of completions
	discarded     int // requests lost to pool shrinks

	// Metrics collects run-level samples for final reporting.
	Metrics *Metrics
}

// NewLoadBalancer creates a balancer with cfg.InitialServers active servers.
// Returns an error if the configuration is invalid.
func NewLoadBalancer(cfg Config) (*LoadBalancer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid load balancer config: %w", err)
	}

	lb := &LoadBalancer{
		queue:          NewAdmissionQueue(cfg.QueueCapacity),
		minServers:     cfg.MinServers,
		maxServers:     cfg.MaxServers,
		serverCapacity: cfg.ServerCapacity,
		threshold:      cfg.ScaleThreshold,
		Metrics:        NewMetrics(),
	}
	for i := 0; i < cfg.InitialServers; i++ {
		lb.AddServer()
	}
	return lb, nil
}

// serverAddr derives a server address from its creation-order identity.
func serverAddr(id int) string {
	return fmt.Sprintf("192.168.1.%d", id)
}

// AddServer appends one new active server to the pool. Returns false if the
// pool is already at its maximum size. Identities are sequential in creation
// order and are reused after a shrink.
func (lb *LoadBalancer) AddServer() bool {
	if len(lb.servers) >= lb.maxServers {
		return false
	}
	id := len(lb.servers) + 1
	lb.servers = append(lb.servers, NewServer(id, serverAddr(id), lb.serverCapacity))
	logrus.Debugf("[cycle %07d] added server %d, pool size %d", lb.clock, id, len(lb.servers))
	return true
}

// RemoveServer removes the most recently added server. Returns false if the
// pool is already at its minimum size. Any in-flight requests the server
// held are discarded, not requeued; the loss is counted in Discarded.
func (lb *LoadBalancer) RemoveServer() bool {
	if len(lb.servers) <= lb.minServers {
		return false
	}
	last := lb.servers[len(lb.servers)-1]
	if lost := last.Load(); lost > 0 {
		lb.discarded += lost
		lb.Metrics.RecordShrinkLoss(lost)
		logrus.Debugf("[cycle %07d] removed server %d, discarding %d in-flight requests", lb.clock, last.ID(), lost)
	} else {
		logrus.Debugf("[cycle %07d] removed server %d", lb.clock, last.ID())
	}
	lb.servers[len(lb.servers)-1] = nil
	lb.servers = lb.servers[:len(lb.servers)-1]
	if lb.nextIdx >= len(lb.servers) {
		lb.nextIdx = 0
	}
	return true
}

// Submit stamps the request with the current cycle and offers it to the
// admission queue. Returns false if the origin is blocked or the queue is
// full.
func (lb *LoadBalancer) Submit(r *Request) bool {
	r.ArrivalCycle = lb.clock
	admitted := lb.queue.Enqueue(r)
	lb.Metrics.RecordSubmit(admitted)
	return admitted
}

// ProcessCycle advances the whole system by one simulated cycle and returns
// the number of requests completed. Servers are advanced before new work is
// placed so that completions free capacity for same-cycle dispatch.
func (lb *LoadBalancer) ProcessCycle() int {
	completed := 0
	for _, srv := range lb.servers {
		if !srv.Active() {
			continue
		}
		before := srv.BusyCycles()
		completed += srv.ProcessCycle()
		lb.serviceCycles += srv.BusyCycles() - before
	}
	lb.processed += completed

	lb.distribute()
	lb.autoscale()

	lb.Metrics.RecordCycle(completed, lb.queue.Len(), len(lb.servers))
	lb.clock++
	return completed
}

// distribute drains the admission queue into servers using round robin.
// At most 2 x pool-size placements are attempted per cycle; a full scan that
// finds no server with free capacity halts dispatch until the next cycle.
func (lb *LoadBalancer) distribute() {
	if lb.queue.Len() == 0 || len(lb.servers) == 0 {
		return
	}

	maxAttempts := len(lb.servers) * 2
	for attempts := 0; attempts < maxAttempts && lb.queue.Len() > 0; attempts++ {
		placed := false
		for i := 0; i < len(lb.servers); i++ {
			idx := (lb.nextIdx + i) % len(lb.servers)
			srv := lb.servers[idx]
			if !srv.CanAccept() {
				continue
			}
			r := lb.queue.Next()
			if srv.Accept(r) {
				lb.Metrics.RecordDispatch(lb.clock - r.ArrivalCycle)
				lb.nextIdx = (idx + 1) % len(lb.servers)
				placed = true
			}
			break
		}
		if !placed {
			return
		}
	}
}

// autoscale grows or shrinks the pool based on mean utilization of active
// servers and queue depth. Scale-up reacts to a single excursion above the
// threshold or a queue backlog; scale-down additionally requires an empty
// queue and scaleDownSlack servers above the minimum. Scale-up is evaluated
// first; both conditions are checked every cycle.
func (lb *LoadBalancer) autoscale() {
	if len(lb.servers) == 0 {
		return
	}

	meanUtil := lb.SystemUtilization() / 100.0
	queueLen := lb.queue.Len()

	if (meanUtil > lb.threshold || queueLen > queueBacklogLimit) && len(lb.servers) < lb.maxServers {
		lb.AddServer()
	}

	if meanUtil < lb.threshold*0.05 && queueLen == 0 && len(lb.servers) > lb.minServers+scaleDownSlack {
		lb.RemoveServer()
	}
}

// Block adds an origin address to the admission blocklist.
func (lb *LoadBalancer) Block(ip string) {
	lb.queue.Block(ip)
}

// Unblock removes an origin address from the admission blocklist.
func (lb *LoadBalancer) Unblock(ip string) {
	lb.queue.Unblock(ip)
}

// Clock returns the number of cycles processed so far.
func (lb *LoadBalancer) Clock() int64 {
	return lb.clock
}

// ServerCount returns the current pool size.
func (lb *LoadBalancer) ServerCount() int {
	return len(lb.servers)
}

// ActiveServerCount returns the number of servers currently online.
func (lb *LoadBalancer) ActiveServerCount() int {
	active := 0
	for _, srv := range lb.servers {
		if srv.Active() {
			active++
		}
	}
	return active
}

// QueueSize returns the number of requests waiting in the admission queue.
func (lb *LoadBalancer) QueueSize() int {
	return lb.queue.Len()
}

// TotalProcessed returns the cumulative number of completed requests.
func (lb *LoadBalancer) TotalProcessed() int {
	return lb.processed
}

// Discarded returns the cumulative number of in-flight requests lost to
// pool shrinks.
func (lb *LoadBalancer) Discarded() int {
	return lb.discarded
}

// AverageProcessingTime returns the mean original service duration of
// completed requests in cycles, or 0 if none completed.
func (lb *LoadBalancer) AverageProcessingTime() float64 {
	if lb.processed == 0 {
		return 0.0
	}
	return float64(lb.serviceCycles) / float64(lb.processed)
}

// SystemUtilization returns the mean utilization percentage across active
// servers, or 0 if none are active.
func (lb *LoadBalancer) SystemUtilization() float64 {
	total := 0.0
	active := 0
	for _, srv := range lb.servers {
		if srv.Active() {
			total += srv.Utilization()
			active++
		}
	}
	if active == 0 {
		return 0.0
	}
	return total / float64(active)
}

// QueueUtilization returns admission queue fill as a percentage in [0, 100].
func (lb *LoadBalancer) QueueUtilization() float64 {
	return lb.queue.Utilization() * 100.0
}

// IsOverloaded reports whether the system is overloaded: mean server
// utilization above 90% or queue utilization above 80%.
func (lb *LoadBalancer) IsOverloaded() bool {
	return lb.SystemUtilization() > 90.0 || lb.QueueUtilization() > 80.0
}

// ServerStats returns one human-readable status line per server, in pool
// order.
func (lb *LoadBalancer) ServerStats() []string {
	stats := make([]string, 0, len(lb.servers))
	for _, srv := range lb.servers {
		stats = append(stats, srv.Stats())
	}
	return stats
}
