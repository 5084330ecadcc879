package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/platform/obs"
)

// createdAtLayout is fixed width so that text order matches time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite-backed implementation of the RunRepository port.
type SqliteRunRepository struct{ DB *sql.DB }

func NewSqliteRunRepository(db *sql.DB) *SqliteRunRepository {
	return &SqliteRunRepository{DB: db}
}

// Store a comparison run. Saving the same run id twice replaces it.
func (s *SqliteRunRepository) SaveRun(ctx context.Context, run *domain.ComparisonRun) (err error) {
	defer obs.Time(ctx, "runs.repo.SaveRun")(&err)

	if s.DB == nil {
		return errors.New("sqlite run repository: DB is nil")
	}
	if run == nil {
		return errors.New("save run: run is nil")
	}

	query := `
	INSERT OR REPLACE INTO comparison_runs (
		run_id,
		robot_a,
		robot_b,
		trials,
		parcel_count,
		start_place,
		seed,
		max_turns,
		total_a,
		total_b,
		average_a,
		average_b,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		run.ID, run.RobotA, run.RobotB, run.Trials, run.ParcelCount, run.Start, run.Seed, run.MaxTurns,
		run.TotalA, run.TotalB, run.AverageA, run.AverageB,
		run.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("save run: insert run_id=%s: %w", run.ID, err)
	}

	return nil
}

// Return up to limit runs stored in the database, newest first.
func (s *SqliteRunRepository) ListRuns(ctx context.Context, limit int) (_ []*domain.ComparisonRun, err error) {
	defer obs.Time(ctx, "runs.repo.ListRuns")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite run repository: DB is nil")
	}
	if limit <= 0 {
		return []*domain.ComparisonRun{}, nil
	}

	query := `
	SELECT
		run_id,
		robot_a,
		robot_b,
		trials,
		parcel_count,
		start_place,
		seed,
		max_turns,
		total_a,
		total_b,
		average_a,
		average_b,
		created_at
	FROM comparison_runs
	ORDER BY created_at DESC, run_id
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query comparison_runs table: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.ComparisonRun, 0, limit)
	for rows.Next() {
		var run domain.ComparisonRun
		var createdAt string
		err := rows.Scan(
			&run.ID, &run.RobotA, &run.RobotB, &run.Trials, &run.ParcelCount, &run.Start, &run.Seed, &run.MaxTurns,
			&run.TotalA, &run.TotalB, &run.AverageA, &run.AverageB, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list runs: scan row: %w", err)
		}

		run.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list runs: parse created_at of run_id=%s: %w", run.ID, err)
		}
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return runs, nil
}
