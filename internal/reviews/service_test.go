package reviews

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/constants"
	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/entity"
	"github.com/smartqr/reviewd/internal/store"
)

type memWriter struct {
	mu      sync.Mutex
	created []*entity.Review
	err     error
}

func (w *memWriter) Create(_ context.Context, r *entity.Review) (*entity.Review, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return nil, w.err
	}
	cp := *r
	w.created = append(w.created, &cp)
	return &cp, nil
}

type nopAudit struct {
	mu      sync.Mutex
	entries []entity.ScanLogEntry
	err     error
}

func (a *nopAudit) Append(_ context.Context, e entity.ScanLogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, e)
	return nil
}

func seedResult(t *testing.T, results *store.Memory, jobID string) *entity.TempReview {
	t.Helper()
	now := time.Now()
	tmp := &entity.TempReview{
		ID:         uuid.New(),
		JobID:      jobID,
		QRCodeID:   uuid.New(),
		ReviewText: "generated text with a typo",
		Language:   "hinglish",
		Rating:     4,
		Hash:       "abc",
		CreatedAt:  now,
		ExpiresAt:  now.Add(30 * time.Minute),
	}
	if err := results.Put(context.Background(), tmp); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return tmp
}

func TestFinalizeUsesCallerTextAndStoredMetadata(t *testing.T) {
	results := store.NewMemory()
	writer := &memWriter{}
	audit := &nopAudit{}
	svc := NewService(results, writer, audit, nil)

	tmp := seedResult(t, results, "job-1")

	review, err := svc.Finalize(context.Background(), "job-1", "edited text without the typo")
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if review.ReviewText != "edited text without the typo" {
		t.Errorf("review text = %q, want the caller's edit", review.ReviewText)
	}
	if review.Language != tmp.Language || review.Rating != tmp.Rating {
		t.Errorf("metadata = %q/%d, want stored %q/%d",
			review.Language, review.Rating, tmp.Language, tmp.Rating)
	}
	if review.QRCodeID != tmp.QRCodeID {
		t.Error("review must inherit the stored entity id")
	}
	if review.Source != constants.ReviewSourceGenerated {
		t.Errorf("source = %q", review.Source)
	}

	// The ephemeral row is consumed.
	if _, err := results.Get(context.Background(), "job-1"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("temp review should be gone, got %v", err)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != constants.ActionReviewSubmitted {
		t.Errorf("audit entries = %+v", audit.entries)
	}
}

func TestFinalizeValidatesInput(t *testing.T) {
	svc := NewService(store.NewMemory(), &memWriter{}, &nopAudit{}, nil)

	for _, tc := range []struct{ jobID, text string }{
		{"", "text"},
		{"job-1", ""},
		{"  ", "  "},
	} {
		_, err := svc.Finalize(context.Background(), tc.jobID, tc.text)
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("Finalize(%q, %q) = %v, want invalid input", tc.jobID, tc.text, err)
		}
	}
}

func TestFinalizeUnknownJob(t *testing.T) {
	svc := NewService(store.NewMemory(), &memWriter{}, &nopAudit{}, nil)

	_, err := svc.Finalize(context.Background(), "nope", "text")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Finalize = %v, want not found", err)
	}
}

func TestFinalizeExpiredResult(t *testing.T) {
	results := store.NewMemory()
	clock := time.Now()
	results.SetClock(func() time.Time { return clock })
	svc := NewService(results, &memWriter{}, &nopAudit{}, nil)

	seedResult(t, results, "job-1")
	clock = clock.Add(31 * time.Minute)

	_, err := svc.Finalize(context.Background(), "job-1", "too late")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Finalize on expired result = %v, want not found", err)
	}
}

func TestFinalizeDoubleSubmit(t *testing.T) {
	results := store.NewMemory()
	writer := &memWriter{}
	svc := NewService(results, writer, &nopAudit{}, nil)

	seedResult(t, results, "job-1")

	if _, err := svc.Finalize(context.Background(), "job-1", "first"); err != nil {
		t.Fatalf("first Finalize: %v", err)
	}
	_, err := svc.Finalize(context.Background(), "job-1", "second")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("second Finalize = %v, want not found", err)
	}
	if len(writer.created) != 1 {
		t.Errorf("reviews created = %d, want exactly 1", len(writer.created))
	}
}

func TestFinalizeConcurrentSubmitsCreateOneReview(t *testing.T) {
	results := store.NewMemory()
	writer := &memWriter{}
	svc := NewService(results, writer, &nopAudit{}, nil)

	seedResult(t, results, "job-1")

	const callers = 8
	var wg sync.WaitGroup
	successes := make(chan struct{}, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Finalize(context.Background(), "job-1", "race text"); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	won := 0
	for range successes {
		won++
	}
	if won != 1 {
		t.Errorf("winners = %d, want exactly 1", won)
	}
	if len(writer.created) != 1 {
		t.Errorf("reviews created = %d, want exactly 1", len(writer.created))
	}
}

func TestFinalizeWriterFailure(t *testing.T) {
	results := store.NewMemory()
	writer := &memWriter{err: errors.New("insert failed")}
	svc := NewService(results, writer, &nopAudit{}, nil)

	seedResult(t, results, "job-1")

	if _, err := svc.Finalize(context.Background(), "job-1", "text"); err == nil {
		t.Fatal("expected error when the writer fails")
	}
}

func TestFinalizeAuditFailureStillSucceeds(t *testing.T) {
	results := store.NewMemory()
	writer := &memWriter{}
	audit := &nopAudit{err: errors.New("scan_log down")}
	svc := NewService(results, writer, audit, nil)

	seedResult(t, results, "job-1")

	review, err := svc.Finalize(context.Background(), "job-1", "text")
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if review == nil || len(writer.created) != 1 {
		t.Error("review should be created despite the audit failure")
	}
}
