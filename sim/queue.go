// Implements the AdmissionQueue, the bounded FIFO that gatekeeps what enters
// the system. Requests from blocked origin addresses are never admitted.

package sim

import (
	"fmt"
	"strings"
)

// AdmissionQueue is a capacity-bounded FIFO of requests waiting to be
// dispatched to a server. Insertion order is service order. An origin
// blocklist rejects requests before capacity is even considered; blocking
// an address does not evict requests already queued from it.
type AdmissionQueue struct {
	queue    []*Request // FIFO queue of requests
	capacity int
	admitted int // cumulative count of successful Enqueue calls
	removed  int // cumulative count of successful Next calls
	blocked  map[string]struct{}
}

// NewAdmissionQueue creates an empty queue holding at most capacity requests.
func NewAdmissionQueue(capacity int) *AdmissionQueue {
	return &AdmissionQueue{
		capacity: capacity,
		blocked:  make(map[string]struct{}),
	}
}

// Enqueue adds a request to the back of the queue. It returns false, and the
// request is discarded, if the origin is blocked or the queue is full.
func (q *AdmissionQueue) Enqueue(r *Request) bool {
	if q.Blocked(r.ClientIP) {
		return false
	}
	if len(q.queue) >= q.capacity {
		return false
	}
	q.queue = append(q.queue, r)
	q.admitted++
	return true
}

// Next removes and returns the request at the front of the queue.
// Returns nil if the queue is empty.
func (q *AdmissionQueue) Next() *Request {
	if len(q.queue) == 0 {
		return nil
	}
	head := q.queue[0]
	q.queue = q.queue[1:]
	q.removed++
	return head
}

// Peek returns the request at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *AdmissionQueue) Peek() *Request {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of requests currently queued.
func (q *AdmissionQueue) Len() int {
	return len(q.queue)
}

// Cap returns the maximum number of requests the queue can hold.
func (q *AdmissionQueue) Cap() int {
	return q.capacity
}

// Admitted returns the cumulative number of requests admitted.
func (q *AdmissionQueue) Admitted() int {
	return q.admitted
}

// Removed returns the cumulative number of requests dequeued.
func (q *AdmissionQueue) Removed() int {
	return q.removed
}

// Block adds an origin address to the blocklist. Idempotent.
func (q *AdmissionQueue) Block(ip string) {
	q.blocked[ip] = struct{}{}
}

// Unblock removes an origin address from the blocklist. Idempotent.
func (q *AdmissionQueue) Unblock(ip string) {
	delete(q.blocked, ip)
}

// Blocked reports whether an origin address is on the blocklist.
func (q *AdmissionQueue) Blocked(ip string) bool {
	_, ok := q.blocked[ip]
	return ok
}

// Utilization returns queue fill as a fraction in [0, 1].
// Returns 0 when capacity is 0.
func (q *AdmissionQueue) Utilization() float64 {
	if q.capacity == 0 {
		return 0.0
	}
	return float64(len(q.queue)) / float64(q.capacity)
}

func (q *AdmissionQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, r := range q.queue {
		sb.WriteString(fmt.Sprint(r))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
