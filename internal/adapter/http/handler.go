package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-decision/internal/core/port"
)

// Handler is the inbound HTTP adapter of the decision engine. It decodes
// payloads, calls the DecisionUseCase and maps its errors to status codes.
type Handler struct {
	svc    port.DecisionUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. metrics serves
// /metrics and may be nil.
func NewHandler(svc port.DecisionUseCase, metrics http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(tracing)

	r.Get("/healthz", h.handleHealth)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ad/decision", h.handleDecision)
		r.Get("/ad/click/{request_id}", h.handleAdClick)

		r.Post("/targeting/evaluate", h.handleEvaluateTargeting)
		r.Post("/bids/calculate", h.handleCalculateBid)
		r.Post("/auction/simulate", h.handleSimulateAuction)

		r.Get("/frequency/check", h.handleCheckFrequency)
		r.Post("/frequency/events", h.handleRecordEvent)
		r.Get("/campaigns/{id}/recommended-caps", h.handleRecommendedCaps)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
