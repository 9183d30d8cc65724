// Defines the Request struct that models a single synthetic client request.
// Tracks origin address, verb, priority, and remaining service cycles.

package sim

import (
	"fmt"
)

// Request models one unit of simulated work. Each request has:
// - a client origin address and an HTTP-style verb tag
// - a priority level (carried, never consulted by dispatch)
// - a fixed original service duration and a countdown of cycles still owed
// - the cycle at which it entered the system
//
// A request is owned by exactly one component at a time: the admission queue
// first, then the server it is dispatched to, until completion.
type Request struct {
	ID int64 // Unique identifier for the request

	ClientIP string // Origin address of the client
	Method   string // Verb tag (GET, POST, PUT, DELETE)

	// Priority level 1-10. Carried for interface compatibility with the
	// request generator; no dispatch or scaling decision reads it.
	Priority int

	ServiceCycles int   // Original service duration in cycles, fixed at creation
	Remaining     int   // Cycles of service still owed; done when <= 0
	ArrivalCycle  int64 // Cycle at which the request entered the system
}

// NewRequest creates a request owing serviceCycles full cycles of work.
func NewRequest(id int64, clientIP, method string, priority, serviceCycles int) *Request {
	return &Request{
		ID:            id,
		ClientIP:      clientIP,
		Method:        method,
		Priority:      priority,
		ServiceCycles: serviceCycles,
		Remaining:     serviceCycles,
	}
}

// Done reports whether the request has consumed all its service cycles.
func (r *Request) Done() bool {
	return r.Remaining <= 0
}

// This method returns a human-readable string representation of a Request.
func (r Request) String() string {
	return fmt.Sprintf("Request: (ID: %d, From: %s, Method: %s, Remaining: %d/%d)",
		r.ID, r.ClientIP, r.Method, r.Remaining, r.ServiceCycles)
}
