package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tajir/domain/analysis"
	"tajir/domain/core"
	"tajir/ports"

	"github.com/jmoiron/sqlx"
)

// analysisRepository implements the ResultRepository port. Results are
// persisted verbatim as opaque JSON; the store never interprets payloads.
type analysisRepository struct {
	db *sqlx.DB
}

// NewAnalysisRepository creates a new analysis result repository
func NewAnalysisRepository(db *sqlx.DB) ports.ResultRepository {
	return &analysisRepository{db: db}
}

// Save persists one analysis result
func (r *analysisRepository) Save(ctx context.Context, datasetID core.DatasetID, result analysis.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	query := `INSERT INTO analysis_results (id, dataset_id, kind, has_error, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.db.ExecContext(ctx, query,
		result.ID.String(), datasetID.String(), string(result.Kind), result.Failed(), resultJSON, result.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis result: %w", err)
	}
	return nil
}

// Get retrieves one analysis result by ID
func (r *analysisRepository) Get(ctx context.Context, id core.AnalysisID) (*analysis.Result, error) {
	var resultJSON []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT result FROM analysis_results WHERE id = $1`, id.String(),
	).Scan(&resultJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("analysis", id.String())
		}
		return nil, fmt.Errorf("failed to get analysis result: %w", err)
	}
	return unmarshalResult(resultJSON)
}

// ListByDataset returns a dataset's results newest first
func (r *analysisRepository) ListByDataset(ctx context.Context, datasetID core.DatasetID) ([]analysis.Result, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT result FROM analysis_results WHERE dataset_id = $1 ORDER BY created_at DESC`,
		datasetID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis results: %w", err)
	}
	defer rows.Close()

	var results []analysis.Result
	for rows.Next() {
		var resultJSON []byte
		if err := rows.Scan(&resultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		result, err := unmarshalResult(resultJSON)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

// unmarshalResult decodes a stored result. The payload comes back as
// generic JSON; typed payload structs exist only on the write path.
func unmarshalResult(data []byte) (*analysis.Result, error) {
	var result analysis.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &result, nil
}

// Migrate creates the storage schema when it does not exist yet
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS datasets (
			id TEXT PRIMARY KEY,
			original_filename TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT 'upload',
			columns JSONB NOT NULL DEFAULT '[]',
			record_count INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'processing',
			error_message TEXT,
			records JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS analysis_results (
			id TEXT PRIMARY KEY,
			dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			has_error BOOLEAN NOT NULL DEFAULT FALSE,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_results_dataset
			ON analysis_results (dataset_id, created_at DESC)`,
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
