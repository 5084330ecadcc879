package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

// RedisComparisonCache stores comparison runs as JSON under their key.
// Keys are expected to be fully qualified by the caller.
type RedisComparisonCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisComparisonCache(client *redis.Client, ttl time.Duration) *RedisComparisonCache {
	return &RedisComparisonCache{Client: client, TTL: ttl}
}

type cachedRun struct {
	ID          string    `json:"id"`
	RobotA      string    `json:"robot_a"`
	RobotB      string    `json:"robot_b"`
	Trials      int       `json:"trials"`
	ParcelCount int       `json:"parcel_count"`
	Start       string    `json:"start"`
	Seed        int64     `json:"seed"`
	MaxTurns    int       `json:"max_turns"`
	TotalA      int       `json:"total_a"`
	TotalB      int       `json:"total_b"`
	AverageA    float64   `json:"average_a"`
	AverageB    float64   `json:"average_b"`
	CreatedAt   time.Time `json:"created_at"`
}

// Fetch the cached run for key.
func (c *RedisComparisonCache) Get(ctx context.Context, key string) (_ *domain.ComparisonRun, _ bool, err error) {
	defer obs.Time(ctx, "comparison.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("comparison cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get comparison cache: key must not be empty")
	}

	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get comparison cache key=%q: %w", key, err)
	}

	var v cachedRun
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, fmt.Errorf("get comparison cache key=%q: decode: %w", key, err)
	}

	return &domain.ComparisonRun{
		ID:          v.ID,
		RobotA:      v.RobotA,
		RobotB:      v.RobotB,
		Trials:      v.Trials,
		ParcelCount: v.ParcelCount,
		Start:       v.Start,
		Seed:        v.Seed,
		MaxTurns:    v.MaxTurns,
		TotalA:      v.TotalA,
		TotalB:      v.TotalB,
		AverageA:    v.AverageA,
		AverageB:    v.AverageB,
		CreatedAt:   v.CreatedAt,
	}, true, nil
}

// Store run under key. A zero TTL keeps the entry until evicted.
func (c *RedisComparisonCache) Put(ctx context.Context, key string, run *domain.ComparisonRun) error {
	if c.Client == nil {
		return errors.New("comparison cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert comparison cache: key must not be empty")
	}
	if run == nil {
		return errors.New("insert comparison cache: run is nil")
	}

	raw, err := json.Marshal(cachedRun{
		ID:          run.ID,
		RobotA:      run.RobotA,
		RobotB:      run.RobotB,
		Trials:      run.Trials,
		ParcelCount: run.ParcelCount,
		Start:       run.Start,
		Seed:        run.Seed,
		MaxTurns:    run.MaxTurns,
		TotalA:      run.TotalA,
		TotalB:      run.TotalB,
		AverageA:    run.AverageA,
		AverageB:    run.AverageB,
		CreatedAt:   run.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert comparison cache key=%q: encode: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert comparison cache key=%q: %w", key, err)
	}

	return nil
}
