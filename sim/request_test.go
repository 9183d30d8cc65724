package sim

import (
	"strings"
	"testing"
)

func TestNewRequest_OwesFullDuration(t *testing.T) {
	req := NewRequest(7, "1.2.3.4", "POST", 9, 12)

	if req.Remaining != 12 || req.ServiceCycles != 12 {
		t.Errorf("durations: got remaining %d / service %d, want 12 / 12",
			req.Remaining, req.ServiceCycles)
	}
	if req.Done() {
		t.Errorf("Done on fresh request: got true")
	}
}

func TestRequest_Done(t *testing.T) {
	req := NewRequest(1, "1.2.3.4", "GET", 5, 1)
	req.Remaining--
	if !req.Done() {
		t.Errorf("Done at 0 remaining: got false")
	}
}

func TestRequest_String(t *testing.T) {
	req := NewRequest(3, "1.2.3.4", "GET", 5, 10)
	got := req.String()
	for _, want := range []string{"ID: 3", "From: 1.2.3.4", "Method: GET", "Remaining: 10/10"} {
		if !strings.Contains(got, want) {
			t.Errorf("String %q missing %q", got, want)
		}
	}
}
