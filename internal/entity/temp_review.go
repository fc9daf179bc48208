package entity

import (
	"time"

	"github.com/google/uuid"
)

// TempReview is an accepted candidate held until the user confirms it or it
// expires. At most one live row per job id.
type TempReview struct {
	ID         uuid.UUID `json:"id"`
	JobID      string    `json:"job_id"`
	QRCodeID   uuid.UUID `json:"qr_code_id"`
	ReviewText string    `json:"review_text"`
	Language   string    `json:"language"`
	Rating     int       `json:"rating"`
	Hash       string    `json:"hash"`
	SessionID  string    `json:"session_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the row is logically absent at the given instant.
func (t *TempReview) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
