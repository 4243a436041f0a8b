package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mesa-decision/internal/core/domain"
	"mesa-decision/internal/core/frequency"
)

type errorResponse struct {
	Error      string                  `json:"error"`
	Violations []domain.FieldViolation `json:"violations,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// the status line is already out, nothing left to report to the client
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, frequency.ErrUnknownEventType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLedgerContention):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDecisionTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes it as JSON. Internal errors are not echoed
// to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	resp := errorResponse{Error: err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Violations = verr.Violations
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error(op+" failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		if status == http.StatusInternalServerError {
			resp.Error = "internal error"
		}
	} else {
		h.logger.Debug(op+" rejected", slog.String("path", r.URL.Path), slog.Int("status", status), slog.Any("error", err))
	}
	writeJSON(w, status, resp)
}

// decode reads a JSON body into v. Malformed payloads become a validation
// error on the body itself.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &domain.ValidationError{Violations: []domain.FieldViolation{{Field: "body", Rule: "json"}}}
	}
	return nil
}
