package ports

import (
	"context"
	"village-delivery-sim/internal/domain"
)

// Port: a boundary for storing and reading comparison runs.
type RunRepository interface {
	// Persist a finished comparison run.
	SaveRun(ctx context.Context, run *domain.ComparisonRun) error
	// Return up to limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]*domain.ComparisonRun, error)
}
