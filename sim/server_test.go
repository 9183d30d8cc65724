package sim

import (
	"strings"
	"testing"
)

func TestServer_Accept_CapacityBound(t *testing.T) {
	// GIVEN a server with capacity 2
	s := NewServer(1, "192.168.1.1", 2)

	// WHEN requests are accepted up to capacity
	if !s.Accept(testRequest(1, 5)) || !s.Accept(testRequest(2, 5)) {
		t.Fatalf("Accept within capacity failed")
	}

	// THEN the next accept is refused and load stays at capacity
	if s.Accept(testRequest(3, 5)) {
		t.Errorf("Accept at capacity: got true, want false")
	}
	if s.Load() != 2 {
		t.Errorf("Load: got %d, want 2", s.Load())
	}
	if s.CanAccept() {
		t.Errorf("CanAccept at capacity: got true, want false")
	}
}

func TestServer_Accept_InactiveRefuses(t *testing.T) {
	s := NewServer(1, "192.168.1.1", 5)
	s.SetActive(false)

	if s.Accept(testRequest(1, 5)) {
		t.Errorf("Accept on inactive server: got true, want false")
	}
	if s.CanAccept() {
		t.Errorf("CanAccept on inactive server: got true, want false")
	}
}

func TestServer_ProcessCycle_CountdownAndCompletion(t *testing.T) {
	// GIVEN a server holding one request owing 3 cycles
	s := NewServer(1, "192.168.1.1", 5)
	s.Accept(testRequest(1, 3))

	// THEN the first two cycles complete nothing
	for cycle := 1; cycle <= 2; cycle++ {
		if got := s.ProcessCycle(); got != 0 {
			t.Errorf("cycle %d completions: got %d, want 0", cycle, got)
		}
	}

	// AND the third cycle completes it exactly, freeing the slot
	if got := s.ProcessCycle(); got != 1 {
		t.Errorf("cycle 3 completions: got %d, want 1", got)
	}
	if s.Load() != 0 {
		t.Errorf("Load after completion: got %d, want 0", s.Load())
	}
	if s.Completed() != 1 {
		t.Errorf("Completed: got %d, want 1", s.Completed())
	}
}

func TestServer_ProcessCycle_AllInflightAdvanceTogether(t *testing.T) {
	// GIVEN a server sharing its slots between a short and a long request
	s := NewServer(1, "192.168.1.1", 5)
	short := testRequest(1, 2)
	long := testRequest(2, 4)
	s.Accept(short)
	s.Accept(long)

	// WHEN two cycles pass
	if got := s.ProcessCycle(); got != 0 {
		t.Errorf("cycle 1 completions: got %d, want 0", got)
	}
	if got := s.ProcessCycle(); got != 1 {
		t.Errorf("cycle 2 completions: got %d, want 1", got)
	}

	// THEN both advanced every cycle: the short one is done, the long one
	// owes exactly two more cycles
	if long.Remaining != 2 {
		t.Errorf("long request remaining: got %d, want 2", long.Remaining)
	}
	if s.Load() != 1 {
		t.Errorf("Load after short completion: got %d, want 1", s.Load())
	}
}

func TestServer_ProcessCycle_PreservesFIFOOrder(t *testing.T) {
	// GIVEN three in-flight requests where the middle one finishes first
	s := NewServer(1, "192.168.1.1", 5)
	first := testRequest(1, 3)
	second := testRequest(2, 1)
	third := testRequest(3, 3)
	s.Accept(first)
	s.Accept(second)
	s.Accept(third)

	// WHEN one cycle completes the middle request
	if got := s.ProcessCycle(); got != 1 {
		t.Fatalf("completions: got %d, want 1", got)
	}

	// THEN the survivors keep their relative order
	if s.inflight[0] != first || s.inflight[1] != third {
		t.Errorf("inflight order after completion: got [%v %v], want [first third]",
			s.inflight[0].ID, s.inflight[1].ID)
	}
}

func TestServer_ProcessCycle_InactiveFreezesWork(t *testing.T) {
	// GIVEN an inactive server holding a request
	s := NewServer(1, "192.168.1.1", 5)
	req := testRequest(1, 3)
	s.Accept(req)
	s.SetActive(false)

	// WHEN cycles pass
	if got := s.ProcessCycle(); got != 0 {
		t.Errorf("inactive completions: got %d, want 0", got)
	}

	// THEN the in-flight request did not advance and was not evicted
	if req.Remaining != 3 {
		t.Errorf("remaining while inactive: got %d, want 3", req.Remaining)
	}
	if s.Load() != 1 {
		t.Errorf("Load while inactive: got %d, want 1", s.Load())
	}

	// AND reactivation resumes the countdown
	s.SetActive(true)
	s.ProcessCycle()
	if req.Remaining != 2 {
		t.Errorf("remaining after reactivation: got %d, want 2", req.Remaining)
	}
}

func TestServer_BusyCycles_CountOriginalDuration(t *testing.T) {
	// GIVEN a request that takes 4 cycles
	s := NewServer(1, "192.168.1.1", 5)
	s.Accept(testRequest(1, 4))

	// WHEN it runs to completion
	for i := 0; i < 4; i++ {
		s.ProcessCycle()
	}

	// THEN the processing-time counter holds the original duration,
	// not the mutated countdown value
	if s.BusyCycles() != 4 {
		t.Errorf("BusyCycles: got %d, want 4", s.BusyCycles())
	}
	if got := s.AverageServiceCycles(); got != 4.0 {
		t.Errorf("AverageServiceCycles: got %v, want 4", got)
	}
}

func TestServer_Utilization(t *testing.T) {
	s := NewServer(1, "192.168.1.1", 4)
	s.Accept(testRequest(1, 5))
	if got := s.Utilization(); got != 25.0 {
		t.Errorf("Utilization at 1/4: got %v, want 25", got)
	}

	zero := NewServer(2, "192.168.1.2", 0)
	if got := zero.Utilization(); got != 0.0 {
		t.Errorf("Utilization at capacity 0: got %v, want 0", got)
	}
}

func TestServer_Stats_Format(t *testing.T) {
	s := NewServer(3, "192.168.1.3", 5)
	s.Accept(testRequest(1, 5))
	s.Accept(testRequest(2, 5))

	got := s.Stats()
	want := "Server 3 (192.168.1.3): Load: 2/5 (40.0%) | Processed: 0 | Active: Yes"
	if got != want {
		t.Errorf("Stats:\n got %q\nwant %q", got, want)
	}

	s.SetActive(false)
	if !strings.Contains(s.Stats(), "Active: No") {
		t.Errorf("Stats after deactivation: %q does not report Active: No", s.Stats())
	}
}
