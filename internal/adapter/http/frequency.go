package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mesa-decision/internal/core/domain"
)

type capStatusResponse struct {
	domain.CapStatus
	TimeRemainingMs int64 `json:"time_remaining_ms"`
}

// handleCheckFrequency answers
// GET /frequency/check?user_id=&ad_id=&event_type=&campaign_id=.
func (h *Handler) handleCheckFrequency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var p params
	key := domain.FrequencyKey{
		UserID:    q.Get("user_id"),
		AdID:      p.parseInt(q.Get("ad_id"), "ad_id"),
		EventType: domain.EventType(q.Get("event_type")),
	}
	campaignID := p.parseInt(q.Get("campaign_id"), "campaign_id")
	if err := p.err(); err != nil {
		h.writeError(w, r, "check frequency", err)
		return
	}

	status, err := h.svc.CheckFrequency(r.Context(), key, campaignID)
	if err != nil {
		h.writeError(w, r, "check frequency", err)
		return
	}
	writeJSON(w, http.StatusOK, capStatusResponse{CapStatus: status, TimeRemainingMs: status.TimeRemainingMillis()})
}

func (h *Handler) handleRecordEvent(w http.ResponseWriter, r *http.Request) {
	var ev domain.FrequencyEvent
	if err := decode(r, &ev); err != nil {
		h.writeError(w, r, "record event", err)
		return
	}
	rec, err := h.svc.RecordEvent(r.Context(), ev)
	if err != nil {
		h.writeError(w, r, "record event", err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// handleRecommendedCaps answers
// GET /campaigns/{id}/recommended-caps?organization_id=.
func (h *Handler) handleRecommendedCaps(w http.ResponseWriter, r *http.Request) {
	var p params
	campaignID := p.parseInt(chi.URLParam(r, "id"), "id")
	organizationID := p.parseInt(r.URL.Query().Get("organization_id"), "organization_id")
	if err := p.err(); err != nil {
		h.writeError(w, r, "recommend caps", err)
		return
	}

	caps, err := h.svc.RecommendCaps(r.Context(), campaignID, organizationID)
	if err != nil {
		h.writeError(w, r, "recommend caps", err)
		return
	}
	writeJSON(w, http.StatusOK, caps)
}

// params collects query and path parsing failures.
type params struct {
	violations []domain.FieldViolation
}

func (p *params) parseInt(raw, field string) int64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.violations = append(p.violations, domain.FieldViolation{Field: field, Rule: "int"})
	}
	return v
}

func (p *params) err() error {
	if len(p.violations) == 0 {
		return nil
	}
	return &domain.ValidationError{Violations: p.violations}
}
