package server

import (
	"encoding/json"
	"net/http"

	"github.com/smartqr/reviewd/internal/common"
)

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("http.write_failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.logger.Info("http.error",
		"req_id", common.RequestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"message", message,
	)
	s.writeJSON(w, status, errorBody{Error: message})
}

// writeAppError maps domain errors onto status codes, hiding internals behind
// a generic message.
func (s *Server) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := common.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("http.internal",
			"req_id", common.RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		message = "internal error"
	}
	s.writeError(w, r, status, message)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return common.InvalidInputErrorf("invalid request body: %v", err)
	}
	return nil
}
