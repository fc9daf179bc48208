package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/smartqr/reviewd/internal/repository"
)

// Service is a tiny façade over the review repository that produces XLSX
// bytes for the admin export.
type Service struct {
	reviewsRepo repository.ReviewRepository
	logger      *slog.Logger
}

func NewService(reviewsRepo repository.ReviewRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reviewsRepo: reviewsRepo, logger: logger}
}

// ExportReviewsXLSX returns an XLSX workbook (as bytes) with every permanent
// review for the given entity.
func (s *Service) ExportReviewsXLSX(ctx context.Context, qrCodeID uuid.UUID) ([]byte, error) {
	start := time.Now()

	recs, err := s.reviewsRepo.ListByQRCode(ctx, qrCodeID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Reviews"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Created At",
		"Rating",
		"Language",
		"Source",
		"Review Text",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		values := []any{
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.Rating,
			r.Language,
			r.Source,
			r.ReviewText,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.reviews.ok",
		"qr_code_id", qrCodeID,
		"rows", len(recs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
