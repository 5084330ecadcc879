package handlers

import (
	"net/http"
	"strconv"
	"village-delivery-sim/internal/api/dto"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/ports"
	"village-delivery-sim/internal/services"
	"village-delivery-sim/internal/village"
)

type ComparisonHandler struct {
	Map   *village.Map
	Repo  ports.RunRepository
	Cache ports.ComparisonCache
}

// Handle serves POST (run a comparison) and GET (list stored runs).
func (h *ComparisonHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.Compare(w, r)
	case http.MethodGet:
		h.List(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req dto.ComparisonRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.RobotA == "" {
		req.RobotA = services.RobotRoute
	}
	if req.RobotB == "" {
		req.RobotB = services.RobotGoal
	}
	if req.Trials < 0 || req.Trials > maxTrials {
		writeError(w, r, http.StatusBadRequest, "trials must be between 0 and 10000")
		return
	}
	if req.ParcelCount < 0 || req.ParcelCount > maxParcelCount {
		writeError(w, r, http.StatusBadRequest, "parcel_count must be between 0 and 100")
		return
	}
	maxTurns, ok := resolveMaxTurns(w, r, req.MaxTurns)
	if !ok {
		return
	}

	run, err := services.RecordComparison(r.Context(), services.ComparisonRequest{
		RobotA:      req.RobotA,
		RobotB:      req.RobotB,
		Trials:      req.Trials,
		ParcelCount: req.ParcelCount,
		Start:       req.Start,
		Seed:        req.Seed,
		MaxTurns:    maxTurns,
	}, h.Map, h.Repo, h.Cache)
	if err != nil {
		writeServiceError(w, r, "compare robots", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toComparisonResponse(run))
}

func (h *ComparisonHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeJSON(w, r, http.StatusOK, dto.ListComparisonsResponse{Comparisons: []dto.ComparisonResponse{}})
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	runs, err := h.Repo.ListRuns(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, "list comparisons", err)
		return
	}

	res := dto.ListComparisonsResponse{Comparisons: make([]dto.ComparisonResponse, 0, len(runs))}
	for _, run := range runs {
		res.Comparisons = append(res.Comparisons, toComparisonResponse(run))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toComparisonResponse(run *domain.ComparisonRun) dto.ComparisonResponse {
	return dto.ComparisonResponse{
		ID:          run.ID,
		RobotA:      run.RobotA,
		RobotB:      run.RobotB,
		Trials:      run.Trials,
		ParcelCount: run.ParcelCount,
		Start:       run.Start,
		Seed:        run.Seed,
		MaxTurns:    run.MaxTurns,
		AverageA:    run.AverageA,
		AverageB:    run.AverageB,
		CreatedAt:   run.CreatedAt,
	}
}
