package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/smartqr/reviewd/internal/common"
)

type submitRequest struct {
	JobID      string `json:"jobId"`
	ReviewText string `json:"reviewText"`
}

type submitResponse struct {
	Success  bool   `json:"success"`
	ReviewID string `json:"reviewId"`
}

// handleSubmit finalizes a job's result into a permanent review. The text is
// the caller's, possibly edited; language and rating come from the stored
// result.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeAppError(w, r, err)
		return
	}

	review, err := s.finalizer.Finalize(r.Context(), req.JobID, req.ReviewText)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	s.logger.Info("submit.ok",
		"req_id", common.RequestIDFromContext(r.Context()),
		"job_id", req.JobID,
		"review_id", review.ID,
	)
	s.writeJSON(w, http.StatusOK, submitResponse{
		Success:  true,
		ReviewID: review.ID.String(),
	})
}

type jobStatusResponse struct {
	JobID string `json:"jobId"`
	State string `json:"state"`
}

// handleJobStatus exposes the job state machine for non-streaming clients.
func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	state, known := s.registry.State(jobID)
	if !known {
		s.writeError(w, r, http.StatusNotFound, "unknown job")
		return
	}
	s.writeJSON(w, http.StatusOK, jobStatusResponse{
		JobID: jobID,
		State: string(state),
	})
}
