package ports

import (
	"context"
	"village-delivery-sim/internal/domain"
)

// Contract for caching reproducible comparison results by key.
type ComparisonCache interface {
	// Return the cached run for key; ok is false on a miss.
	Get(ctx context.Context, key string) (run *domain.ComparisonRun, ok bool, err error)
	Put(ctx context.Context, key string, run *domain.ComparisonRun) error
}
