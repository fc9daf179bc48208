package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/smartqr/reviewd/internal/common"
)

type streamEvent struct {
	Type       string `json:"type"`
	JobID      string `json:"jobId,omitempty"`
	ReviewText string `json:"reviewText,omitempty"`
	Language   string `json:"language,omitempty"`
	Rating     int    `json:"rating,omitempty"`
}

func writeSSE(w http.ResponseWriter, payload any) error {
	blob, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", blob); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}

// handleStream is the delivery channel: an SSE stream that emits exactly one
// data event, review_ready when the job's result lands or timeout when the
// window closes. Job failures are deliberately silent; the client only ever
// learns "ready" or "not yet".
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("jobId")
	if jobID == "" {
		s.writeError(w, r, http.StatusBadRequest, "jobId is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, r, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	flusher.Flush()

	s.logger.Info("stream.open",
		"req_id", common.RequestIDFromContext(r.Context()),
		"job_id", jobID,
	)

	// Wake on the registry's done signal when the job is known, and poll as a
	// fallback either way.
	done := s.registry.Done(jobID)
	ticker := time.NewTicker(s.stream.PollInterval)
	defer ticker.Stop()
	deadline := time.NewTimer(s.stream.Timeout)
	defer deadline.Stop()

	for {
		if emitted, ok := s.tryEmitReady(w, r, jobID); emitted || !ok {
			return
		}

		select {
		case <-r.Context().Done():
			s.logger.Info("stream.client_gone", "job_id", jobID)
			return
		case <-deadline.C:
			_ = writeSSE(w, streamEvent{Type: "timeout"})
			s.logger.Info("stream.timeout", "job_id", jobID)
			return
		case <-done:
			// Terminal state reached. If the next result check misses, the
			// job died without a result; fall back to waiting out the clock.
			done = nil
		case <-ticker.C:
		}
	}
}

// tryEmitReady checks the result store once. It reports whether the ready
// event was written, and ok=false when the stream should close without one.
// Store read errors are treated like a miss: the client keeps the poll loop,
// and the deadline stays the only silent exit.
func (s *Server) tryEmitReady(w http.ResponseWriter, r *http.Request, jobID string) (emitted, ok bool) {
	tmp, err := s.results.Get(r.Context(), jobID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn("stream.poll_failed", "job_id", jobID, "error", err)
		}
		return false, true
	}

	if err := writeSSE(w, streamEvent{
		Type:       "review_ready",
		JobID:      tmp.JobID,
		ReviewText: tmp.ReviewText,
		Language:   tmp.Language,
		Rating:     tmp.Rating,
	}); err != nil {
		return false, false
	}
	s.logger.Info("stream.review_ready", "job_id", jobID, "rating", tmp.Rating)
	return true, true
}
