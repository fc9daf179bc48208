package dedup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/internal/entity"
)

// Verdict is the outcome of a dedup check.
type Verdict int

const (
	Accept Verdict = iota
	RejectExact
	RejectSimilar
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case RejectExact:
		return "reject_exact"
	case RejectSimilar:
		return "reject_similar"
	default:
		return "unknown"
	}
}

// History is the slice of stored candidates the filter compares against.
// HasHash looks across every stored row regardless of age or entity;
// ListRecent is scoped to one entity and a creation-time cutoff.
type History interface {
	HasHash(ctx context.Context, hash string) (bool, error)
	ListRecent(ctx context.Context, qrCodeID uuid.UUID, since time.Time) ([]*entity.TempReview, error)
}

const similarityThreshold = 0.85

// Filter gates generated candidates against prior ones. The exact-hash check
// runs first; the similarity scan is limited to the trailing window and stops
// at the first offender.
type Filter struct {
	history History
	window  time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

func NewFilter(history History, window time.Duration, logger *slog.Logger) *Filter {
	if window <= 0 {
		window = 90 * 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Filter{history: history, window: window, logger: logger, now: time.Now}
}

// Check decides whether candidateText may be stored for the given entity.
func (f *Filter) Check(ctx context.Context, candidateText string, qrCodeID uuid.UUID) (Verdict, error) {
	hash := Hash(candidateText)

	exact, err := f.history.HasHash(ctx, hash)
	if err != nil {
		return Accept, fmt.Errorf("dedup hash lookup: %w", err)
	}
	if exact {
		f.logger.Info("dedup.reject_exact", "qr_code_id", qrCodeID, "hash", hash)
		return RejectExact, nil
	}

	cutoff := f.now().Add(-f.window)
	recent, err := f.history.ListRecent(ctx, qrCodeID, cutoff)
	if err != nil {
		return Accept, fmt.Errorf("dedup window scan: %w", err)
	}
	for _, prior := range recent {
		if score := Jaccard(prior.ReviewText, candidateText); score > similarityThreshold {
			f.logger.Info("dedup.reject_similar",
				"qr_code_id", qrCodeID, "score", score, "prior_job_id", prior.JobID)
			return RejectSimilar, nil
		}
	}
	return Accept, nil
}
