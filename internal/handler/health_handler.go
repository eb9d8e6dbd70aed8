package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status      string         `json:"status"`
	Collections map[string]int `json:"collections,omitempty"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	counts, err := h.StatsRepo.CollectionCounts(r.Context())
	if err != nil {
		writeSuccess(w, HealthResponse{Status: "degraded"}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok", Collections: counts}, http.StatusOK)
}
