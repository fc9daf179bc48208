package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/constants"
	"github.com/smartqr/reviewd/internal/dedup"
	"github.com/smartqr/reviewd/internal/entity"
	"github.com/smartqr/reviewd/internal/genai"
	"github.com/smartqr/reviewd/internal/store"
)

type scriptedGenerator struct {
	mu    sync.Mutex
	errs  []error
	calls int
}

func (g *scriptedGenerator) GenerateReview(_ context.Context, businessName, _ string) (genai.Candidate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	call := g.calls
	g.calls++
	if call < len(g.errs) && g.errs[call] != nil {
		return genai.Candidate{}, g.errs[call]
	}
	return genai.Candidate{
		Text:     fmt.Sprintf("%s was great, visit %d", businessName, call),
		Language: "english",
		Rating:   5,
	}, nil
}

func (g *scriptedGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type scriptedFilter struct {
	mu       sync.Mutex
	verdicts []dedup.Verdict
	err      error
	calls    int
}

func (f *scriptedFilter) Check(_ context.Context, _ string, _ uuid.UUID) (dedup.Verdict, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := f.calls
	f.calls++
	if f.err != nil {
		return dedup.Accept, f.err
	}
	if call < len(f.verdicts) {
		return f.verdicts[call], nil
	}
	return dedup.Accept, nil
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []entity.ScanLogEntry
	err     error
}

func (a *recordingAudit) Append(_ context.Context, e entity.ScanLogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, e)
	return nil
}

func (a *recordingAudit) actions() []constants.ScanAction {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []constants.ScanAction
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

type dispatcherHarness struct {
	gen      *scriptedGenerator
	filter   *scriptedFilter
	results  *store.Memory
	audit    *recordingAudit
	registry *Registry
	d        *Dispatcher
}

func newHarness(t *testing.T, filter *scriptedFilter, gen *scriptedGenerator, audit *recordingAudit) *dispatcherHarness {
	t.Helper()
	h := &dispatcherHarness{
		gen:      gen,
		filter:   filter,
		results:  store.NewMemory(),
		audit:    audit,
		registry: NewRegistry(),
	}
	h.d = NewDispatcher(h.gen, h.filter, h.results, h.audit, h.registry,
		Options{MaxAttempts: 3, ResultTTL: 30 * time.Minute}, nil,
		WithWorkers(1), WithQueueSize(4), WithRunTimeout(5*time.Second))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		h.d.Shutdown(ctx)
	})
	return h
}

func (h *dispatcherHarness) dispatchAndWait(t *testing.T) string {
	t.Helper()
	qr := &entity.QRCode{ID: uuid.New(), BusinessName: "Chai Point"}
	jobID, err := h.d.Dispatch(context.Background(), qr, "session-1")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	select {
	case <-h.registry.Done(jobID):
	case <-time.After(2 * time.Second):
		t.Fatal("job did not reach a terminal state")
	}
	return jobID
}

func TestDispatcherAcceptFirstAttempt(t *testing.T) {
	h := newHarness(t, &scriptedFilter{}, &scriptedGenerator{}, &recordingAudit{})

	jobID := h.dispatchAndWait(t)

	if state, _ := h.registry.State(jobID); state != constants.JobStateResolved {
		t.Fatalf("state = %v, want resolved", state)
	}
	tmp, err := h.results.Get(context.Background(), jobID)
	if err != nil {
		t.Fatalf("result missing: %v", err)
	}
	if tmp.Hash != dedup.Hash(tmp.ReviewText) {
		t.Error("stored hash does not match the text")
	}
	if tmp.SessionID != "session-1" || tmp.Rating != 5 {
		t.Errorf("stored row = %+v", tmp)
	}
	if !tmp.ExpiresAt.After(tmp.CreatedAt) {
		t.Error("expiry must be after creation")
	}
	if got := h.audit.actions(); len(got) != 1 || got[0] != constants.ActionReviewGenerated {
		t.Errorf("audit actions = %v", got)
	}
}

func TestDispatcherBackendFailureKillsJob(t *testing.T) {
	gen := &scriptedGenerator{errs: []error{errors.New("all providers failed")}}
	h := newHarness(t, &scriptedFilter{}, gen, &recordingAudit{})

	jobID := h.dispatchAndWait(t)

	if state, _ := h.registry.State(jobID); state != constants.JobStateUnresolved {
		t.Fatalf("state = %v, want unresolved", state)
	}
	// No retry on backend failure: one generation call, nothing stored.
	if n := gen.callCount(); n != 1 {
		t.Errorf("generation calls = %d, want 1", n)
	}
	if _, err := h.results.Get(context.Background(), jobID); err == nil {
		t.Error("no result should be stored for a failed job")
	}
	if got := h.audit.actions(); len(got) != 0 {
		t.Errorf("audit actions = %v, want none", got)
	}
}

func TestDispatcherRetriesRejections(t *testing.T) {
	filter := &scriptedFilter{verdicts: []dedup.Verdict{dedup.RejectExact, dedup.RejectSimilar, dedup.Accept}}
	gen := &scriptedGenerator{}
	h := newHarness(t, filter, gen, &recordingAudit{})

	jobID := h.dispatchAndWait(t)

	if state, _ := h.registry.State(jobID); state != constants.JobStateResolved {
		t.Fatalf("state = %v, want resolved after retries", state)
	}
	if n := gen.callCount(); n != 3 {
		t.Errorf("generation calls = %d, want 3", n)
	}
}

func TestDispatcherExhaustsAttempts(t *testing.T) {
	filter := &scriptedFilter{verdicts: []dedup.Verdict{dedup.RejectSimilar, dedup.RejectSimilar, dedup.RejectSimilar}}
	gen := &scriptedGenerator{}
	h := newHarness(t, filter, gen, &recordingAudit{})

	jobID := h.dispatchAndWait(t)

	if state, _ := h.registry.State(jobID); state != constants.JobStateUnresolved {
		t.Fatalf("state = %v, want unresolved", state)
	}
	if n := gen.callCount(); n != 3 {
		t.Errorf("generation calls = %d, want exactly 3", n)
	}
	if _, err := h.results.Get(context.Background(), jobID); err == nil {
		t.Error("nothing should be stored when every attempt is rejected")
	}
}

func TestDispatcherFilterErrorKillsJob(t *testing.T) {
	filter := &scriptedFilter{err: errors.New("db down")}
	h := newHarness(t, filter, &scriptedGenerator{}, &recordingAudit{})

	jobID := h.dispatchAndWait(t)

	if state, _ := h.registry.State(jobID); state != constants.JobStateUnresolved {
		t.Fatalf("state = %v, want unresolved", state)
	}
}

func TestDispatcherRejectsAfterShutdown(t *testing.T) {
	h := newHarness(t, &scriptedFilter{}, &scriptedGenerator{}, &recordingAudit{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	h.d.Shutdown(ctx)

	qr := &entity.QRCode{ID: uuid.New(), BusinessName: "Chai Point"}
	if _, err := h.d.Dispatch(context.Background(), qr, "session-1"); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("Dispatch after shutdown = %v, want ErrQueueClosed", err)
	}
	// The registry entry must be terminal, not left running forever. A
	// terminal entry is prunable at any age.
	if n := h.registry.Prune(0); n != 1 {
		t.Errorf("pruned %d entries, want the failed dispatch's entry", n)
	}
}

func TestDispatcherAuditFailureStillResolves(t *testing.T) {
	audit := &recordingAudit{err: errors.New("scan_log unavailable")}
	h := newHarness(t, &scriptedFilter{}, &scriptedGenerator{}, audit)

	jobID := h.dispatchAndWait(t)

	if state, _ := h.registry.State(jobID); state != constants.JobStateResolved {
		t.Fatalf("state = %v, want resolved despite audit failure", state)
	}
	if _, err := h.results.Get(context.Background(), jobID); err != nil {
		t.Errorf("result missing: %v", err)
	}
}
