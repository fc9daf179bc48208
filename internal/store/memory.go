package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/entity"
)

// Memory is a mutex-guarded in-process ResultStore. It doubles as the dedup
// history: rows stay visible to hash/similarity checks after expiry, until
// Sweep retires them. Used in dev mode and by tests; the database-backed
// store is the production path.
type Memory struct {
	mu   sync.RWMutex
	rows map[string]*entity.TempReview // keyed by job id
	now  func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		rows: make(map[string]*entity.TempReview),
		now:  time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (m *Memory) SetClock(now func() time.Time) { m.now = now }

func (m *Memory) Put(_ context.Context, r *entity.TempReview) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.rows[r.JobID]; exists {
		return fmt.Errorf("job %s already has a result", r.JobID)
	}
	cp := *r
	m.rows[r.JobID] = &cp
	return nil
}

func (m *Memory) Get(_ context.Context, jobID string) (*entity.TempReview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rows[jobID]
	if !ok || r.Expired(m.now()) {
		return nil, common.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *Memory) Delete(_ context.Context, jobID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[jobID]
	if !ok || r.Expired(m.now()) {
		return false, nil
	}
	delete(m.rows, jobID)
	return true, nil
}

// HasHash implements dedup.History over every stored row, live or expired.
func (m *Memory) HasHash(_ context.Context, hash string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.rows {
		if r.Hash == hash {
			return true, nil
		}
	}
	return false, nil
}

// ListRecent implements dedup.History for one entity within the window.
func (m *Memory) ListRecent(_ context.Context, qrCodeID uuid.UUID, since time.Time) ([]*entity.TempReview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*entity.TempReview
	for _, r := range m.rows {
		if r.QRCodeID == qrCodeID && !r.CreatedAt.Before(since) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Sweep drops rows that are both expired and outside the dedup window, and
// returns how many were removed. Expired rows inside the window stay: the
// similarity scan still needs them.
func (m *Memory) Sweep(window time.Duration) int {
	now := m.now()
	cutoff := now.Add(-window)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for jobID, r := range m.rows {
		if r.Expired(now) && r.CreatedAt.Before(cutoff) {
			delete(m.rows, jobID)
			removed++
		}
	}
	return removed
}
