package reviews

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/constants"
	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/entity"
	"github.com/smartqr/reviewd/internal/store"
)

// Writer persists permanent reviews.
type Writer interface {
	Create(ctx context.Context, r *entity.Review) (*entity.Review, error)
}

// AuditLog appends to the scan_log trail.
type AuditLog interface {
	Append(ctx context.Context, e entity.ScanLogEntry) error
}

// Service is the finalizer: the only path that produces durable reviews.
type Service struct {
	results store.ResultStore
	writer  Writer
	audit   AuditLog
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(results store.ResultStore, writer Writer, audit AuditLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		results: results,
		writer:  writer,
		audit:   audit,
		logger:  logger,
		now:     time.Now,
	}
}

// Finalize promotes the job's ephemeral result to a permanent review carrying
// the caller's (possibly edited) text but the stored language and rating.
// The conditional delete is the arbiter: of any concurrent finalize calls for
// one job id, exactly one observes the removal and creates the review; every
// other caller gets NotFound.
func (s *Service) Finalize(ctx context.Context, jobID, finalText string) (*entity.Review, error) {
	if strings.TrimSpace(jobID) == "" || strings.TrimSpace(finalText) == "" {
		return nil, common.InvalidInputError("jobId and reviewText are required")
	}

	tmp, err := s.results.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("review not found or expired")
		}
		return nil, common.WrapError(err, "read temp review")
	}

	removed, err := s.results.Delete(ctx, jobID)
	if err != nil {
		return nil, common.WrapError(err, "delete temp review")
	}
	if !removed {
		// Lost the race against another finalize or against expiry.
		s.logger.Info("finalize.lost_race", "job_id", jobID)
		return nil, common.NotFoundError("review not found or expired")
	}

	review, err := s.writer.Create(ctx, &entity.Review{
		ID:         uuid.New(),
		QRCodeID:   tmp.QRCodeID,
		ReviewText: finalText,
		Language:   tmp.Language,
		Rating:     tmp.Rating,
		Source:     constants.ReviewSourceGenerated,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, common.WrapError(err, "create review")
	}

	if err := s.audit.Append(ctx, entity.ScanLogEntry{
		QRCodeID:  tmp.QRCodeID,
		JobID:     jobID,
		Action:    constants.ActionReviewSubmitted,
		Timestamp: s.now(),
	}); err != nil {
		s.logger.Warn("finalize.audit_failed", "job_id", jobID, "error", err)
	}

	s.logger.Info("finalize.ok",
		"job_id", jobID,
		"review_id", review.ID,
		"qr_code_id", review.QRCodeID,
		"rating", review.Rating,
	)
	return review, nil
}
