package repository

import (
	"context"
	"log/slog"

	"github.com/smartqr/reviewd/gen/ent"
	"github.com/smartqr/reviewd/internal/entity"
)

// ScanLogRepository appends audit facts. There is deliberately no update or
// delete surface here.
type ScanLogRepository interface {
	Append(ctx context.Context, e entity.ScanLogEntry) error
}

type scanLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewScanLogRepository(client *ent.Client, logger *slog.Logger) ScanLogRepository {
	return &scanLogRepository{client: client, logger: logger}
}

func (r *scanLogRepository) Append(ctx context.Context, e entity.ScanLogEntry) error {
	builder := r.client.ScanLog.Create().
		SetQrCodeID(e.QRCodeID).
		SetAction(string(e.Action)).
		SetTimestamp(e.Timestamp)
	if e.JobID != "" {
		builder = builder.SetJobID(e.JobID)
	}
	if e.DeviceID != "" {
		builder = builder.SetDeviceID(e.DeviceID)
	}

	if _, err := builder.Save(ctx); err != nil {
		r.logger.Error("scan log append failed",
			"qr_code_id", e.QRCodeID, "action", e.Action, "error", err)
		return err
	}
	return nil
}
