package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/platform/obs"
)

// SQLRunRepository is a Postgres-backed RunRepository.
type SQLRunRepository struct {
	DB *sql.DB
}

func NewSQLRunRepository(db *sql.DB) *SQLRunRepository {
	return &SQLRunRepository{DB: db}
}

func (s *SQLRunRepository) SaveRun(ctx context.Context, run *domain.ComparisonRun) (err error) {
	defer obs.Time(ctx, "runs.repo.SaveRun")(&err)

	if s.DB == nil {
		return errors.New("run repository: db is nil")
	}
	if run == nil {
		return errors.New("save run: run is nil")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO comparison_runs (
		run_id, robot_a, robot_b, trials, parcel_count, start_place, seed, max_turns,
		total_a, total_b, average_a, average_b, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (run_id) DO UPDATE
	SET total_a = EXCLUDED.total_a,
		total_b = EXCLUDED.total_b,
		average_a = EXCLUDED.average_a,
		average_b = EXCLUDED.average_b;
	`,
		run.ID, run.RobotA, run.RobotB, run.Trials, run.ParcelCount, run.Start, run.Seed, run.MaxTurns,
		run.TotalA, run.TotalB, run.AverageA, run.AverageB, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save run: insert run_id=%s: %w", run.ID, err)
	}

	return nil
}

func (s *SQLRunRepository) ListRuns(ctx context.Context, limit int) (_ []*domain.ComparisonRun, err error) {
	defer obs.Time(ctx, "runs.repo.ListRuns")(&err)

	if s.DB == nil {
		return nil, errors.New("run repository: db is nil")
	}
	if limit <= 0 {
		return []*domain.ComparisonRun{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT run_id, robot_a, robot_b, trials, parcel_count, start_place, seed, max_turns,
		total_a, total_b, average_a, average_b, created_at
	FROM comparison_runs
	ORDER BY created_at DESC, run_id
	LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query comparison_runs table: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.ComparisonRun, 0, limit)
	for rows.Next() {
		var run domain.ComparisonRun
		if err := rows.Scan(
			&run.ID, &run.RobotA, &run.RobotB, &run.Trials, &run.ParcelCount, &run.Start, &run.Seed, &run.MaxTurns,
			&run.TotalA, &run.TotalB, &run.AverageA, &run.AverageB, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan rows: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return runs, nil
}
