package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/internal/entity"
)

type fakeHistory struct {
	hashes map[string]bool
	recent []*entity.TempReview

	lastSince time.Time
}

func (f *fakeHistory) HasHash(_ context.Context, hash string) (bool, error) {
	return f.hashes[hash], nil
}

func (f *fakeHistory) ListRecent(_ context.Context, _ uuid.UUID, since time.Time) ([]*entity.TempReview, error) {
	f.lastSince = since
	var out []*entity.TempReview
	for _, r := range f.recent {
		if !r.CreatedAt.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestFilterRejectsExactDuplicate(t *testing.T) {
	text := "Amazing dosa, crispy and fresh."
	h := &fakeHistory{hashes: map[string]bool{Hash(text): true}}
	f := NewFilter(h, 0, nil)

	v, err := f.Check(context.Background(), text, uuid.New())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if v != RejectExact {
		t.Errorf("verdict = %v, want reject_exact", v)
	}
}

func TestFilterExactMatchIgnoresCase(t *testing.T) {
	h := &fakeHistory{hashes: map[string]bool{Hash("great place"): true}}
	f := NewFilter(h, 0, nil)

	v, err := f.Check(context.Background(), "  GREAT Place ", uuid.New())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if v != RejectExact {
		t.Errorf("verdict = %v, want reject_exact", v)
	}
}

func TestFilterRejectsNearDuplicateInWindow(t *testing.T) {
	now := time.Now()
	h := &fakeHistory{
		hashes: map[string]bool{},
		recent: []*entity.TempReview{{
			JobID:      "prior",
			ReviewText: "the coffee was excellent and the staff were friendly and kind",
			CreatedAt:  now.Add(-24 * time.Hour),
		}},
	}
	f := NewFilter(h, 90*24*time.Hour, nil)

	v, err := f.Check(context.Background(),
		"the coffee was excellent and the staff were friendly and kind today", uuid.New())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if v != RejectSimilar {
		t.Errorf("verdict = %v, want reject_similar", v)
	}
}

func TestFilterAcceptsDistinctText(t *testing.T) {
	h := &fakeHistory{
		hashes: map[string]bool{},
		recent: []*entity.TempReview{{
			JobID:      "prior",
			ReviewText: "the coffee was excellent and the staff were friendly",
			CreatedAt:  time.Now().Add(-time.Hour),
		}},
	}
	f := NewFilter(h, 90*24*time.Hour, nil)

	v, err := f.Check(context.Background(),
		"terrible parking but the samosas made up for everything honestly", uuid.New())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if v != Accept {
		t.Errorf("verdict = %v, want accept", v)
	}
}

func TestFilterWindowCutoff(t *testing.T) {
	now := time.Now()
	h := &fakeHistory{
		hashes: map[string]bool{},
		// Near-identical prior review, but created outside the window.
		recent: []*entity.TempReview{{
			JobID:      "ancient",
			ReviewText: "the paneer tikka here is absolutely wonderful every single time",
			CreatedAt:  now.Add(-120 * 24 * time.Hour),
		}},
	}
	window := 90 * 24 * time.Hour
	f := NewFilter(h, window, nil)

	v, err := f.Check(context.Background(),
		"the paneer tikka here is absolutely wonderful every single time friends", uuid.New())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if v != Accept {
		t.Errorf("verdict = %v, want accept for prior outside window", v)
	}

	wantCutoff := now.Add(-window)
	if diff := h.lastSince.Sub(wantCutoff); diff < -time.Minute || diff > time.Minute {
		t.Errorf("window cutoff = %v, want ~%v", h.lastSince, wantCutoff)
	}
}

func TestVerdictString(t *testing.T) {
	if Accept.String() != "accept" || RejectExact.String() != "reject_exact" || RejectSimilar.String() != "reject_similar" {
		t.Error("verdict strings changed")
	}
}
