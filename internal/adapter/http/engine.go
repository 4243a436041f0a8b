package httpadapter

import (
	"net/http"

	"mesa-decision/internal/core/domain"
	"mesa-decision/internal/core/port"
)

type evaluateRequest struct {
	AdID    int64                 `json:"ad_id"`
	Context domain.RequestContext `json:"context"`
}

func (h *Handler) handleEvaluateTargeting(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "evaluate targeting", err)
		return
	}
	res, err := h.svc.EvaluateTargeting(r.Context(), req.AdID, req.Context)
	if err != nil {
		h.writeError(w, r, "evaluate targeting", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleCalculateBid(w http.ResponseWriter, r *http.Request) {
	var req port.BidRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "calculate bid", err)
		return
	}
	bid, err := h.svc.CalculateBid(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "calculate bid", err)
		return
	}
	writeJSON(w, http.StatusOK, bid)
}

func (h *Handler) handleSimulateAuction(w http.ResponseWriter, r *http.Request) {
	var req port.SimulationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, "simulate auction", err)
		return
	}
	res, err := h.svc.SimulateAuction(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "simulate auction", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
