package api

import (
	"net/http"
	"village-delivery-sim/internal/api/handlers"
	"village-delivery-sim/internal/ports"
	"village-delivery-sim/internal/village"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// repo and cache may be nil; comparisons are then neither stored nor cached.
func NewRouter(m *village.Map, repo ports.RunRepository, cache ports.ComparisonCache) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Map: m}
	mapHandler := &handlers.MapHandler{Map: m}
	simHandler := &handlers.SimulationHandler{Map: m}
	cmpHandler := &handlers.ComparisonHandler{Map: m, Repo: repo, Cache: cache}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/roads", mapHandler.Roads)
	mux.HandleFunc("/route", mapHandler.Route)
	mux.HandleFunc("/simulations", simHandler.Run)
	mux.HandleFunc("/comparisons", cmpHandler.Handle)

	return requestIDMiddleware(loggingMiddleware(mux))
}
