package entity

import (
	"time"

	"github.com/google/uuid"
)

// QRCode is the business a review is generated about. Registered out of band;
// the generation core only ever reads it.
type QRCode struct {
	ID             uuid.UUID `json:"id"`
	BusinessName   string    `json:"business_name"`
	ProductSummary string    `json:"product_summary,omitempty"`
	MapsLink       string    `json:"maps_link,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
