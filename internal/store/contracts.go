package store

import (
	"context"

	"github.com/smartqr/reviewd/internal/entity"
)

// ResultStore holds accepted-but-not-yet-finalized reviews, keyed by job id.
// Implementations must never let a reader observe a partially written row.
type ResultStore interface {
	// Put stores the result. One write per job id; a duplicate job id is an error.
	Put(ctx context.Context, r *entity.TempReview) error
	// Get returns the live result for jobID. Rows past their expiry time are
	// absent even if not physically removed yet: common.ErrNotFound either way.
	Get(ctx context.Context, jobID string) (*entity.TempReview, error)
	// Delete removes the live row for jobID and reports whether anything was
	// removed. Expired rows do not count: this is the finalize race primitive,
	// so exactly one caller may observe true.
	Delete(ctx context.Context, jobID string) (bool, error)
}
