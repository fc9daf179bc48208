package jobs

import (
	"testing"
	"time"

	"github.com/smartqr/reviewd/constants"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	if _, known := r.State("missing"); known {
		t.Error("unknown job reported as known")
	}
	if r.Done("missing") != nil {
		t.Error("Done for unknown job should be nil")
	}

	r.Begin("j1")
	if state, known := r.State("j1"); !known || state != constants.JobStateRunning {
		t.Fatalf("state = %v, %v", state, known)
	}

	done := r.Done("j1")
	select {
	case <-done:
		t.Fatal("done channel closed before resolution")
	default:
	}

	r.Resolve("j1")
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done channel not closed on resolve")
	}
	if state, _ := r.State("j1"); state != constants.JobStateResolved {
		t.Errorf("state = %v, want resolved", state)
	}
}

func TestRegistryFail(t *testing.T) {
	r := NewRegistry()
	r.Begin("j1")
	r.Fail("j1")

	if state, _ := r.State("j1"); state != constants.JobStateUnresolved {
		t.Errorf("state = %v, want unresolved", state)
	}

	// Terminal states are sticky.
	r.Resolve("j1")
	if state, _ := r.State("j1"); state != constants.JobStateUnresolved {
		t.Errorf("state flipped after terminal: %v", state)
	}
}

func TestRegistryDoubleResolveDoesNotPanic(t *testing.T) {
	r := NewRegistry()
	r.Begin("j1")
	r.Resolve("j1")
	r.Resolve("j1")
	r.Fail("j1")
}

func TestRegistryPrune(t *testing.T) {
	r := NewRegistry()
	r.Begin("done-old")
	r.Resolve("done-old")
	r.Begin("running")

	// doneAt was just set; a zero max age makes the resolved entry stale.
	time.Sleep(10 * time.Millisecond)
	if n := r.Prune(time.Millisecond); n != 1 {
		t.Errorf("Prune removed %d, want 1", n)
	}
	if _, known := r.State("done-old"); known {
		t.Error("pruned job still known")
	}
	if _, known := r.State("running"); !known {
		t.Error("running job must survive prune")
	}
}
