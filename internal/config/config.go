// Package config reads runtime settings from the environment, loading a
// .env file first when one exists.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every setting used by the commands.
type Config struct {
	Port        string
	DBPath      string
	DatabaseURL string
	RedisAddr   string
	RoadsPath   string
	Seed        int64
	Trials      int
	ParcelCount int
	StartPlace  string
}

// Load a .env file if present and read the configuration from the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seed, err := GetInt64("SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	trials, err := GetInt("TRIALS", 100)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	parcels, err := GetInt("PARCEL_COUNT", 5)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &Config{
		Port:        Get("PORT", "8080"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisAddr:   Get("REDIS_ADDR", ""),
		RoadsPath:   Get("ROADS_PATH", ""),
		Seed:        seed,
		Trials:      trials,
		ParcelCount: parcels,
		StartPlace:  Get("START_PLACE", "Post Office"),
	}, nil
}

// Return the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return n, nil
}

func GetInt64(key string, fallback int64) (int64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return n, nil
}
