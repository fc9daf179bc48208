package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/smartqr/reviewd/internal/common"
)

type createQRCodeRequest struct {
	BusinessName   string `json:"businessName"`
	ProductSummary string `json:"productSummary"`
	MapsLink       string `json:"mapsLink"`
}

func (s *Server) handleCreateQRCode(w http.ResponseWriter, r *http.Request) {
	var req createQRCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	if strings.TrimSpace(req.BusinessName) == "" {
		s.writeError(w, r, http.StatusBadRequest, "businessName is required")
		return
	}

	qr, err := s.directory.Create(r.Context(), req.BusinessName, req.ProductSummary, req.MapsLink)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, qr)
}

func (s *Server) handleListQRCodes(w http.ResponseWriter, r *http.Request) {
	list, err := s.directory.List(r.Context())
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

// adminQRCodeID parses the {id} path variable and confirms the entity exists.
func (s *Server) adminQRCodeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "id must be a valid uuid")
		return uuid.Nil, false
	}
	if _, err := s.directory.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.writeError(w, r, http.StatusNotFound, "QR code not found")
		} else {
			s.writeAppError(w, r, err)
		}
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := s.adminQRCodeID(w, r)
	if !ok {
		return
	}
	list, err := s.reviews.ListByQRCode(r.Context(), id)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	id, ok := s.adminQRCodeID(w, r)
	if !ok {
		return
	}
	stats, err := s.stats.ActionStats(r.Context(), id)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.adminQRCodeID(w, r)
	if !ok {
		return
	}
	blob, err := s.exporter.ExportReviewsXLSX(r.Context(), id)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "reviews-"+id.String()+".xlsx"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(blob); err != nil {
		s.logger.Error("export.write_failed", "qr_code_id", id, "error", err)
	}
}
