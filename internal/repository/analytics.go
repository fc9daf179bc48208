package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/smartqr/reviewd/internal/entity"
)

// AnalyticsRepository runs read-only aggregations over scan_log. Built as raw
// SQL: grouping and min/max over the audit trail is simpler outside ent.
type AnalyticsRepository interface {
	ActionStats(ctx context.Context, qrCodeID uuid.UUID) (*entity.ActionStats, error)
}

type analyticsRepository struct {
	db          *sql.DB
	placeholder sq.PlaceholderFormat
	logger      *slog.Logger
}

func NewAnalyticsRepository(db *DB, logger *slog.Logger) AnalyticsRepository {
	return &analyticsRepository{db: db.SQL, placeholder: db.Placeholder(), logger: logger}
}

func (r *analyticsRepository) ActionStats(ctx context.Context, qrCodeID uuid.UUID) (*entity.ActionStats, error) {
	query, args, err := sq.
		Select("action", "count(*)", "min(timestamp)", "max(timestamp)").
		From("scan_log").
		Where(sq.Eq{"qr_code_id": qrCodeID}).
		GroupBy("action").
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("action stats query failed", "qr_code_id", qrCodeID, "error", err)
		return nil, err
	}
	defer rows.Close()

	stats := &entity.ActionStats{QRCodeID: qrCodeID, Counts: make(map[string]int64)}
	for rows.Next() {
		var (
			action     string
			count      int64
			first, last time.Time
		)
		if err := rows.Scan(&action, &count, &first, &last); err != nil {
			return nil, err
		}
		stats.Counts[action] = count
		if stats.FirstSeen == nil || first.Before(*stats.FirstSeen) {
			f := first
			stats.FirstSeen = &f
		}
		if stats.LastSeen == nil || last.After(*stats.LastSeen) {
			l := last
			stats.LastSeen = &l
		}
	}
	return stats, rows.Err()
}
