package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/gen/ent"
	"github.com/smartqr/reviewd/gen/ent/review"
	"github.com/smartqr/reviewd/internal/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) (*entity.Review, error)
	ListByQRCode(ctx context.Context, qrCodeID uuid.UUID) ([]*entity.Review, error)
}

type reviewRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReviewRepository(client *ent.Client, logger *slog.Logger) ReviewRepository {
	return &reviewRepository{client: client, logger: logger}
}

func (r *reviewRepository) Create(ctx context.Context, rev *entity.Review) (*entity.Review, error) {
	row, err := r.client.Review.Create().
		SetID(rev.ID).
		SetQrCodeID(rev.QRCodeID).
		SetReviewText(rev.ReviewText).
		SetLanguage(rev.Language).
		SetRating(rev.Rating).
		SetSource(rev.Source).
		SetCreatedAt(rev.CreatedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("review create failed", "qr_code_id", rev.QRCodeID, "error", err)
		return nil, err
	}
	r.logger.Info("review created", "review_id", row.ID, "qr_code_id", row.QrCodeID)
	return toReview(row), nil
}

func (r *reviewRepository) ListByQRCode(ctx context.Context, qrCodeID uuid.UUID) ([]*entity.Review, error) {
	rows, err := r.client.Review.Query().
		Where(review.QrCodeID(qrCodeID)).
		Order(review.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("review list failed", "qr_code_id", qrCodeID, "error", err)
		return nil, err
	}
	out := make([]*entity.Review, len(rows))
	for i, row := range rows {
		out[i] = toReview(row)
	}
	return out, nil
}

func toReview(row *ent.Review) *entity.Review {
	return &entity.Review{
		ID:         row.ID,
		QRCodeID:   row.QrCodeID,
		ReviewText: row.ReviewText,
		Language:   row.Language,
		Rating:     row.Rating,
		Source:     row.Source,
		CreatedAt:  row.CreatedAt,
	}
}
