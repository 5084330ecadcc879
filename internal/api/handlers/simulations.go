package handlers

import (
	"net/http"
	"village-delivery-sim/internal/api/dto"
	"village-delivery-sim/internal/services"
	"village-delivery-sim/internal/village"
)

const (
	maxParcelCount = 100
	maxTrials      = 10000

	// Runs requested over HTTP are always bounded.
	defaultMaxTurns = 10000
	maxMaxTurns     = 100000
)

// resolveMaxTurns applies the server-side turn limit. It writes a 400
// response and returns false when n is out of range.
func resolveMaxTurns(w http.ResponseWriter, r *http.Request, n int) (int, bool) {
	if n < 0 || n > maxMaxTurns {
		writeError(w, r, http.StatusBadRequest, "max_turns must be between 0 and 100000")
		return 0, false
	}
	if n == 0 {
		return defaultMaxTurns, true
	}
	return n, true
}

type SimulationHandler struct {
	Map *village.Map
}

// Run generates a random village state and drives one robot to completion.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SimulationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Robot == "" {
		req.Robot = services.RobotGoal
	}
	if req.ParcelCount < 0 || req.ParcelCount > maxParcelCount {
		writeError(w, r, http.StatusBadRequest, "parcel_count must be between 0 and 100")
		return
	}
	maxTurns, ok := resolveMaxTurns(w, r, req.MaxTurns)
	if !ok {
		return
	}

	sim, err := services.Simulate(r.Context(), services.SimulationRequest{
		Robot:       req.Robot,
		ParcelCount: req.ParcelCount,
		Start:       req.Start,
		Seed:        req.Seed,
		MaxTurns:    maxTurns,
	}, h.Map)
	if err != nil {
		writeServiceError(w, r, "simulate", err)
		return
	}

	res := dto.SimulationResponse{
		Robot:   sim.Robot,
		Start:   sim.Initial.Place,
		Parcels: make([]dto.ParcelResponse, 0, len(sim.Initial.Parcels)),
		Turns:   sim.Result.Turns,
		Moves:   sim.Result.Moves,
	}
	for _, p := range sim.Initial.Parcels {
		res.Parcels = append(res.Parcels, dto.ParcelResponse{Place: p.Place, Address: p.Address})
	}

	writeJSON(w, r, http.StatusOK, res)
}
