package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-decision/internal/core/domain"
)

// handleAdClick counts a click on the ad served for {request_id} and
// redirects to its landing URL. Unknown requests, no-fill requests and
// internal errors all answer 404 so nothing about the failure leaks.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "request_id")
	landingURL, err := h.svc.RegisterClick(r.Context(), requestID)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.writeError(w, r, "click", err)
			return
		}
		h.logger.Warn("click error", slog.String("request_id", requestID), slog.Any("error", err))
		http.NotFound(w, r)
		return
	}
	if landingURL == "" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, landingURL, http.StatusFound)
}
