package httpadapter

import (
	"net/http"

	"mesa-decision/internal/core/domain"
)

// handleDecision runs one ad request through the engine. A request without
// eligible ads is answered with 200 and success=false.
func (h *Handler) handleDecision(w http.ResponseWriter, r *http.Request) {
	var req domain.AdRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "decision", err)
		return
	}
	decision, err := h.svc.RequestDecision(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "decision", err)
		return
	}
	writeJSON(w, http.StatusOK, decision)
}
