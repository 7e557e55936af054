// Package db provides PostgreSQL persistence for finalizer runs. Persistence
// is optional: the pipeline runs to completion without it.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Run represents a stored finalizer run
type Run struct {
	ID          uuid.UUID  `json:"id"`
	InputDir    string     `json:"input_dir"`
	Status      string     `json:"status"`
	Processed   int        `json:"processed"`
	Errors      int        `json:"errors"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun records a new finalizer run and returns its ID
func (db *DB) CreateRun(ctx context.Context, inputDir string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO finalizer_runs (input_dir, status)
		 VALUES ($1, 'running')
		 RETURNING id`,
		inputDir,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a finalizer run as completed with its final counts
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, processed, errors int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE finalizer_runs
		 SET status = $1, processed = $2, errors = $3, completed_at = NOW()
		 WHERE id = $4`,
		status, processed, errors, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveCatalog stores the finalized catalog for a run
func (db *DB) SaveCatalog(ctx context.Context, runID uuid.UUID, catalog *types.Catalog) error {
	jsonBytes, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO run_catalogs (run_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET content = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// SaveRejections stores the per-file rejections for a run
func (db *DB) SaveRejections(ctx context.Context, runID uuid.UUID, rejections []types.Rejection) error {
	for _, rej := range rejections {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO run_rejections (run_id, source, kind, reason)
			 VALUES ($1, $2, $3, $4)`,
			runID, rej.Source, string(rej.Kind), rej.Reason,
		)
		if err != nil {
			return fmt.Errorf("failed to save rejection for %s: %w", rej.Source, err)
		}
	}
	return nil
}

// GetRun retrieves a finalizer run by ID
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, input_dir, status, processed, errors, created_at, completed_at
		 FROM finalizer_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.InputDir, &run.Status, &run.Processed, &run.Errors, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// GetCatalog retrieves the stored catalog for a run, or nil when absent
func (db *DB) GetCatalog(ctx context.Context, runID uuid.UUID) (*types.Catalog, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM run_catalogs WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	var catalog types.Catalog
	if err := json.Unmarshal(content, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	return &catalog, nil
}

// ListRuns retrieves recent finalizer runs
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, input_dir, status, processed, errors, created_at, completed_at
		 FROM finalizer_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.InputDir, &run.Status, &run.Processed, &run.Errors, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
