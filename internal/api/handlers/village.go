package handlers

import (
	"net/http"
	"strings"
	"village-delivery-sim/internal/api/dto"
	"village-delivery-sim/internal/services"
	"village-delivery-sim/internal/village"
)

// MapHandler exposes the road network and shortest routes on it.
type MapHandler struct {
	Map *village.Map
}

func (h *MapHandler) Roads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	places := h.Map.Graph.Locations()
	res := dto.RoadsResponse{
		Locations: places,
		Roads:     make(map[string][]string, len(places)),
		MailRoute: append([]string{}, h.Map.MailRoute...),
	}
	for _, p := range places {
		nbrs, err := h.Map.Graph.Neighbors(p)
		if err != nil {
			writeServiceError(w, r, "list roads", err)
			return
		}
		res.Roads[p] = nbrs
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MapHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	route, err := services.FindRoute(h.Map.Graph, from, to)
	if err != nil {
		writeServiceError(w, r, "find route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		From:  from,
		To:    to,
		Route: append([]string{}, route...),
		Steps: len(route),
	})
}
