package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS comparison_runs (
		run_id TEXT PRIMARY KEY,
		robot_a TEXT NOT NULL,
		robot_b TEXT NOT NULL,
		trials INTEGER NOT NULL,
		parcel_count INTEGER NOT NULL,
		start_place TEXT NOT NULL,
		seed INTEGER NOT NULL,
		max_turns INTEGER NOT NULL DEFAULT 0,
		total_a INTEGER NOT NULL,
		total_b INTEGER NOT NULL,
		average_a REAL NOT NULL,
		average_b REAL NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_comparison_runs_created_at
	ON comparison_runs(created_at);
	`

	return execSchema(db, "init schema", createRunsQuery, createIndexQuery)
}

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS comparison_runs (
		run_id UUID PRIMARY KEY,
		robot_a TEXT NOT NULL,
		robot_b TEXT NOT NULL,
		trials INTEGER NOT NULL,
		parcel_count INTEGER NOT NULL,
		start_place TEXT NOT NULL,
		seed BIGINT NOT NULL,
		max_turns INTEGER NOT NULL DEFAULT 0,
		total_a INTEGER NOT NULL,
		total_b INTEGER NOT NULL,
		average_a DOUBLE PRECISION NOT NULL,
		average_b DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_comparison_runs_created_at
	ON comparison_runs(created_at);
	`

	return execSchema(db, "init postgres schema", createRunsQuery, createIndexQuery)
}

func execSchema(db *sql.DB, op string, statements ...string) error {
	if db == nil {
		return fmt.Errorf("%s: %w", op, errors.New("DB is nil"))
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%s: exec statement #%d: %w", op, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit tx: %w", op, err)
	}

	return nil
}
