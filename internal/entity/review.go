package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is the permanent record produced by finalize. Immutable.
type Review struct {
	ID         uuid.UUID `json:"id"`
	QRCodeID   uuid.UUID `json:"qr_code_id"`
	ReviewText string    `json:"review_text"`
	Language   string    `json:"language"`
	Rating     int       `json:"rating"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}
