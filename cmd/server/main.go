package main

import (
	"log"
	"net/http"
	"time"
	"village-delivery-sim/internal/adapters/cache"
	"village-delivery-sim/internal/adapters/repositories"
	"village-delivery-sim/internal/api"
	"village-delivery-sim/internal/config"
	"village-delivery-sim/internal/platform/db"
	"village-delivery-sim/internal/ports"
	"village-delivery-sim/internal/village"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, optional Redis) behind ports
// and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	m, err := village.Load(cfg.RoadsPath)
	if err != nil {
		log.Fatal(err)
	}

	repo, closeDB, err := openRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	var comparisonCache ports.ComparisonCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		comparisonCache = cache.NewRedisComparisonCache(client, 24*time.Hour)
		log.Printf("Comparison cache enabled addr=%s", cfg.RedisAddr)
	}

	router := api.NewRouter(m, repo, comparisonCache)

	log.Printf("Server listening addr=:%s locations=%d", cfg.Port, len(m.Graph.Locations()))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openRepository prefers Postgres when DATABASE_URL is set and falls back
// to the SQLite file at DB_PATH.
func openRepository(cfg *config.Config) (ports.RunRepository, func(), error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLRunRepository(conn), func() { conn.Close() }, nil
	}

	conn, err := db.OpenSqlite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	// Create the schema on startup for local runs.
	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return repositories.NewSqliteRunRepository(conn), func() { conn.Close() }, nil
}
