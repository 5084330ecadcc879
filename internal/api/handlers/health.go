package handlers

import (
	"net/http"
	"village-delivery-sim/internal/village"
)

type HealthHandler struct {
	Map *village.Map
}

// Health reports liveness and the size of the loaded village.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]any{
		"status":    "ok",
		"locations": len(h.Map.Graph.Locations()),
	}
	writeJSON(w, r, http.StatusOK, res)
}
