package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/smartqr/reviewd/constants"
	"github.com/smartqr/reviewd/internal/common"
	"github.com/smartqr/reviewd/internal/entity"
)

type scanRequest struct {
	QRID      string `json:"qrId"`
	DeviceID  string `json:"deviceId"`
	SessionID string `json:"sessionId"`
}

type scanResponse struct {
	Status   string `json:"status"`
	JobID    string `json:"jobId"`
	MapsLink string `json:"mapsLink,omitempty"`
}

// handleScan is the pipeline entry point: record the scan, kick off a
// generation job, and answer immediately with the job id.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	if req.QRID == "" {
		s.writeError(w, r, http.StatusBadRequest, "qrId is required")
		return
	}
	qrID, err := uuid.Parse(req.QRID)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "qrId must be a valid uuid")
		return
	}

	qr, err := s.directory.GetByID(r.Context(), qrID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.writeError(w, r, http.StatusNotFound, "QR code not found")
			return
		}
		s.writeAppError(w, r, err)
		return
	}

	// The scan fact is worth keeping even if dispatch fails below.
	if err := s.audit.Append(r.Context(), entity.ScanLogEntry{
		QRCodeID:  qr.ID,
		DeviceID:  req.DeviceID,
		Action:    constants.ActionScan,
		Timestamp: s.now(),
	}); err != nil {
		s.logger.Warn("scan.audit_failed", "qr_code_id", qr.ID, "error", err)
	}

	jobID, err := s.dispatcher.Dispatch(r.Context(), qr, req.SessionID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	s.logger.Info("scan.accepted",
		"req_id", common.RequestIDFromContext(r.Context()),
		"qr_code_id", qr.ID,
		"job_id", jobID,
	)
	s.writeJSON(w, http.StatusAccepted, scanResponse{
		Status:   "accepted",
		JobID:    jobID,
		MapsLink: qr.MapsLink,
	})
}
