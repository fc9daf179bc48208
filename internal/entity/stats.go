package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionStats is the per-entity audit aggregation served to the admin surface.
type ActionStats struct {
	QRCodeID  uuid.UUID        `json:"qr_code_id"`
	Counts    map[string]int64 `json:"counts"`
	FirstSeen *time.Time       `json:"first_seen,omitempty"`
	LastSeen  *time.Time       `json:"last_seen,omitempty"`
}
