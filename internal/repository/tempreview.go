package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/gen/ent"
	"github.com/smartqr/reviewd/gen/ent/tempreview"
	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/entity"
)

// TempReviewRepository is the database-backed ephemeral result store. It also
// serves the dedup history: expired rows stay queryable for hash/similarity
// checks until SweepExpired retires them.
type TempReviewRepository interface {
	Put(ctx context.Context, r *entity.TempReview) error
	Get(ctx context.Context, jobID string) (*entity.TempReview, error)
	Delete(ctx context.Context, jobID string) (bool, error)
	HasHash(ctx context.Context, hash string) (bool, error)
	ListRecent(ctx context.Context, qrCodeID uuid.UUID, since time.Time) ([]*entity.TempReview, error)
	SweepExpired(ctx context.Context, window time.Duration) (int, error)
}

type tempReviewRepository struct {
	client *ent.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewTempReviewRepository(client *ent.Client, logger *slog.Logger) TempReviewRepository {
	return &tempReviewRepository{client: client, logger: logger, now: time.Now}
}

func (r *tempReviewRepository) Put(ctx context.Context, t *entity.TempReview) error {
	_, err := r.client.TempReview.Create().
		SetID(t.ID).
		SetJobID(t.JobID).
		SetQrCodeID(t.QRCodeID).
		SetReviewText(t.ReviewText).
		SetLanguage(t.Language).
		SetRating(t.Rating).
		SetHash(t.Hash).
		SetSessionID(t.SessionID).
		SetCreatedAt(t.CreatedAt).
		SetExpiresAt(t.ExpiresAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("temp review put failed", "job_id", t.JobID, "error", err)
		return err
	}
	r.logger.Info("temp review stored",
		"job_id", t.JobID, "qr_code_id", t.QRCodeID, "expires_at", t.ExpiresAt)
	return nil
}

// Get applies logical expiry: rows past expires_at are absent even while they
// still exist physically for the dedup history.
func (r *tempReviewRepository) Get(ctx context.Context, jobID string) (*entity.TempReview, error) {
	row, err := r.client.TempReview.Query().
		Where(
			tempreview.JobID(jobID),
			tempreview.ExpiresAtGT(r.now()),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("temp review get failed", "job_id", jobID, "error", err)
		return nil, err
	}
	return toTempReview(row), nil
}

// Delete removes the live row for jobID. The affected-row count is the race
// arbiter between concurrent finalize calls: at most one caller sees true.
func (r *tempReviewRepository) Delete(ctx context.Context, jobID string) (bool, error) {
	n, err := r.client.TempReview.Delete().
		Where(
			tempreview.JobID(jobID),
			tempreview.ExpiresAtGT(r.now()),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("temp review delete failed", "job_id", jobID, "error", err)
		return false, err
	}
	return n > 0, nil
}

// HasHash looks across every stored row, expired included.
func (r *tempReviewRepository) HasHash(ctx context.Context, hash string) (bool, error) {
	return r.client.TempReview.Query().
		Where(tempreview.Hash(hash)).
		Exist(ctx)
}

func (r *tempReviewRepository) ListRecent(ctx context.Context, qrCodeID uuid.UUID, since time.Time) ([]*entity.TempReview, error) {
	rows, err := r.client.TempReview.Query().
		Where(
			tempreview.QrCodeID(qrCodeID),
			tempreview.CreatedAtGTE(since),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("temp review window scan failed", "qr_code_id", qrCodeID, "error", err)
		return nil, err
	}
	out := make([]*entity.TempReview, len(rows))
	for i, row := range rows {
		out[i] = toTempReview(row)
	}
	return out, nil
}

// SweepExpired purges rows that are expired AND already outside the dedup
// window, bounding table growth without shrinking what dedup compares against.
func (r *tempReviewRepository) SweepExpired(ctx context.Context, window time.Duration) (int, error) {
	now := r.now()
	n, err := r.client.TempReview.Delete().
		Where(
			tempreview.ExpiresAtLT(now),
			tempreview.CreatedAtLT(now.Add(-window)),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("temp review sweep failed", "error", err)
		return 0, err
	}
	if n > 0 {
		r.logger.Info("temp review sweep", "removed", n)
	}
	return n, nil
}

func toTempReview(row *ent.TempReview) *entity.TempReview {
	return &entity.TempReview{
		ID:         row.ID,
		JobID:      row.JobID,
		QRCodeID:   row.QrCodeID,
		ReviewText: row.ReviewText,
		Language:   row.Language,
		Rating:     row.Rating,
		Hash:       row.Hash,
		SessionID:  row.SessionID,
		CreatedAt:  row.CreatedAt,
		ExpiresAt:  row.ExpiresAt,
	}
}
