package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/gen/ent"
	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/entity"
)

type QRCodeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error)
	Create(ctx context.Context, businessName, productSummary, mapsLink string) (*entity.QRCode, error)
	List(ctx context.Context) ([]*entity.QRCode, error)
}

type qrCodeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQRCodeRepository(client *ent.Client, logger *slog.Logger) QRCodeRepository {
	return &qrCodeRepository{client: client, logger: logger}
}

func (r *qrCodeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.QRCode, error) {
	row, err := r.client.QRCode.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("qr code lookup failed", "qr_code_id", id, "error", err)
		return nil, err
	}
	return toQRCode(row), nil
}

func (r *qrCodeRepository) Create(ctx context.Context, businessName, productSummary, mapsLink string) (*entity.QRCode, error) {
	builder := r.client.QRCode.Create().
		SetBusinessName(businessName)
	if productSummary != "" {
		builder = builder.SetProductSummary(productSummary)
	}
	if mapsLink != "" {
		builder = builder.SetMapsLink(mapsLink)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("qr code create failed", "business_name", businessName, "error", err)
		return nil, err
	}
	r.logger.Info("qr code created", "qr_code_id", row.ID, "business_name", row.BusinessName)
	return toQRCode(row), nil
}

func (r *qrCodeRepository) List(ctx context.Context) ([]*entity.QRCode, error) {
	rows, err := r.client.QRCode.Query().All(ctx)
	if err != nil {
		r.logger.Error("qr code list failed", "error", err)
		return nil, err
	}
	out := make([]*entity.QRCode, len(rows))
	for i, row := range rows {
		out[i] = toQRCode(row)
	}
	return out, nil
}

func toQRCode(row *ent.QRCode) *entity.QRCode {
	return &entity.QRCode{
		ID:             row.ID,
		BusinessName:   row.BusinessName,
		ProductSummary: row.ProductSummary,
		MapsLink:       row.MapsLink,
		CreatedAt:      row.CreatedAt,
	}
}
