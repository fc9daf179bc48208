package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/constants"
)

// ScanLogEntry is one append-only audit fact.
type ScanLogEntry struct {
	QRCodeID  uuid.UUID            `json:"qr_code_id"`
	JobID     string               `json:"job_id,omitempty"`
	DeviceID  string               `json:"device_id,omitempty"`
	Action    constants.ScanAction `json:"action"`
	Timestamp time.Time            `json:"timestamp"`
}
