package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/dedup"
	"github.com/smartqr/reviewd/internal/entity"
)

func row(jobID string, qrCodeID uuid.UUID, createdAt time.Time, ttl time.Duration) *entity.TempReview {
	text := "review for " + jobID
	return &entity.TempReview{
		ID:         uuid.New(),
		JobID:      jobID,
		QRCodeID:   qrCodeID,
		ReviewText: text,
		Language:   "english",
		Rating:     5,
		Hash:       dedup.Hash(text),
		CreatedAt:  createdAt,
		ExpiresAt:  createdAt.Add(ttl),
	}
}

func TestMemoryPutGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Now()

	if err := m.Put(ctx, row("j1", uuid.New(), now, 30*time.Minute)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := m.Get(ctx, "j1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.JobID != "j1" || got.Rating != 5 {
		t.Errorf("got %+v", got)
	}

	removed, err := m.Delete(ctx, "j1")
	if err != nil || !removed {
		t.Fatalf("Delete = %v, %v; want true, nil", removed, err)
	}
	if _, err := m.Get(ctx, "j1"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryDuplicateJobID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Now()

	if err := m.Put(ctx, row("j1", uuid.New(), now, time.Hour)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := m.Put(ctx, row("j1", uuid.New(), now, time.Hour)); err == nil {
		t.Error("second Put for same job id should fail")
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	clock := time.Now()
	m.SetClock(func() time.Time { return clock })

	if err := m.Put(ctx, row("j1", uuid.New(), clock, 30*time.Minute)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	clock = clock.Add(31 * time.Minute)

	if _, err := m.Get(ctx, "j1"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Get on expired row = %v, want ErrNotFound", err)
	}
	if removed, _ := m.Delete(ctx, "j1"); removed {
		t.Error("Delete on expired row should report false")
	}
}

func TestMemoryDeleteIsExclusive(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Put(ctx, row("j1", uuid.New(), time.Now(), time.Hour)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	first, _ := m.Delete(ctx, "j1")
	second, _ := m.Delete(ctx, "j1")
	if !first || second {
		t.Errorf("Delete twice = %v, %v; want true, false", first, second)
	}
}

func TestMemoryHistoryOutlivesExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	clock := time.Now()
	m.SetClock(func() time.Time { return clock })

	qrID := uuid.New()
	r := row("j1", qrID, clock, 30*time.Minute)
	if err := m.Put(ctx, r); err != nil {
		t.Fatalf("Put: %v", err)
	}

	clock = clock.Add(time.Hour)

	// Expired for delivery, still visible to dedup.
	if ok, _ := m.HasHash(ctx, r.Hash); !ok {
		t.Error("expired row should still answer HasHash")
	}
	recent, _ := m.ListRecent(ctx, qrID, clock.Add(-24*time.Hour))
	if len(recent) != 1 {
		t.Errorf("ListRecent = %d rows, want 1", len(recent))
	}
}

func TestMemorySweep(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	clock := time.Now()
	m.SetClock(func() time.Time { return clock })

	qrID := uuid.New()
	window := 90 * 24 * time.Hour

	// Expired and older than the window: swept.
	old := row("old", qrID, clock.Add(-100*24*time.Hour), 30*time.Minute)
	// Expired but still inside the window: kept for dedup.
	mid := row("mid", qrID, clock.Add(-24*time.Hour), 30*time.Minute)
	// Live row: kept.
	live := row("live", qrID, clock, time.Hour)

	for _, r := range []*entity.TempReview{old, mid, live} {
		if err := m.Put(ctx, r); err != nil {
			t.Fatalf("Put(%s): %v", r.JobID, err)
		}
	}

	if n := m.Sweep(window); n != 1 {
		t.Errorf("Sweep removed %d rows, want 1", n)
	}
	if ok, _ := m.HasHash(ctx, old.Hash); ok {
		t.Error("swept row should be gone from the history")
	}
	if ok, _ := m.HasHash(ctx, mid.Hash); !ok {
		t.Error("expired row inside the window must survive the sweep")
	}
	if _, err := m.Get(ctx, "live"); err != nil {
		t.Errorf("live row should survive the sweep: %v", err)
	}
}
