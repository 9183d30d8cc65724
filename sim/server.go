// Implements the Server, a capacity-limited processor of requests. Every
// in-flight request is advanced by one cycle per ProcessCycle call; this is
// cooperative time-slicing, not real concurrency.

package sim

import (
	"fmt"
)

// Server processes requests assigned to it by the load balancer. Capacity is
// a logical slot count: all in-flight requests advance together each cycle,
// one unit of service per request per cycle regardless of how many share the
// server. Load always equals the length of the in-flight FIFO.
type Server struct {
	id       int
	addr     string
	capacity int        // maximum concurrent requests
	inflight []*Request // FIFO of in-flight requests
	active   bool

	completed  int // cumulative completions on this server
	busyCycles int // cumulative original service cycles of completed requests
}

// NewServer creates an active server with the given identity and capacity.
func NewServer(id int, addr string, capacity int) *Server {
	return &Server{
		id:       id,
		addr:     addr,
		capacity: capacity,
		active:   true,
	}
}

// ID returns the server's identifier.
func (s *Server) ID() int { return s.id }

// Addr returns the server's address.
func (s *Server) Addr() string { return s.addr }

// Capacity returns the maximum number of concurrent requests.
func (s *Server) Capacity() int { return s.capacity }

// Load returns the number of in-flight requests.
func (s *Server) Load() int { return len(s.inflight) }

// Active reports whether the server is online.
func (s *Server) Active() bool { return s.active }

// SetActive toggles the server online or offline. Deactivation does not evict
// in-flight requests; they stay frozen until the server is reactivated.
func (s *Server) SetActive(active bool) { s.active = active }

// Completed returns the cumulative number of requests this server finished.
func (s *Server) Completed() int { return s.completed }

// BusyCycles returns the cumulative service cycles consumed by completed
// requests, counted at their original durations.
func (s *Server) BusyCycles() int { return s.busyCycles }

// CanAccept reports whether the server can take one more request.
func (s *Server) CanAccept() bool {
	return s.active && len(s.inflight) < s.capacity
}

// Accept assigns a request to this server. Returns false if the server is
// inactive or already at capacity.
func (s *Server) Accept(r *Request) bool {
	if !s.CanAccept() {
		return false
	}
	s.inflight = append(s.inflight, r)
	return true
}

// ProcessCycle advances every in-flight request by one cycle and returns the
// number of completions. Each request is visited exactly once, in FIFO order;
// requests that finish are removed, the rest keep their relative order for
// the next cycle. A deactivated or idle server is a no-op.
func (s *Server) ProcessCycle() int {
	if !s.active || len(s.inflight) == 0 {
		return 0
	}

	completed := 0
	kept := s.inflight[:0]
	for _, r := range s.inflight {
		r.Remaining--
		if r.Done() {
			completed++
			s.completed++
			s.busyCycles += r.ServiceCycles
		} else {
			kept = append(kept, r)
		}
	}
	// Clear trailing slots so completed requests are not retained.
	for i := len(kept); i < len(s.inflight); i++ {
		s.inflight[i] = nil
	}
	s.inflight = kept

	return completed
}

// Utilization returns load over capacity as a percentage in [0, 100].
// Returns 0 when capacity is 0.
func (s *Server) Utilization() float64 {
	if s.capacity == 0 {
		return 0.0
	}
	return float64(len(s.inflight)) / float64(s.capacity) * 100.0
}

// AverageServiceCycles returns the mean original duration of completed
// requests, or 0 if none completed.
func (s *Server) AverageServiceCycles() float64 {
	if s.completed == 0 {
		return 0.0
	}
	return float64(s.busyCycles) / float64(s.completed)
}

// Stats returns a one-line human-readable status summary.
func (s *Server) Stats() string {
	activeStr := "No"
	if s.active {
		activeStr = "Yes"
	}
	return fmt.Sprintf("Server %d (%s): Load: %d/%d (%.1f%%) | Processed: %d | Active: %s",
		s.id, s.addr, len(s.inflight), s.capacity, s.Utilization(), s.completed, activeStr)
}
