package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"tajir/domain/core"
	"tajir/domain/dataset"
	"tajir/domain/record"
	"tajir/ports"

	"github.com/jmoiron/sqlx"
)

// datasetRepository implements the DatasetRepository port
type datasetRepository struct {
	db *sqlx.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sqlx.DB) ports.DatasetRepository {
	return &datasetRepository{db: db}
}

// Save inserts (or replaces) a dataset registration together with its raw
// records, stored as one JSONB blob. Records are the only long-lived
// entity the engine reads; analysis results are written separately.
func (r *datasetRepository) Save(ctx context.Context, ds *dataset.Dataset, records []record.Record) error {
	columnsJSON, err := json.Marshal(ds.Columns)
	if err != nil {
		return fmt.Errorf("failed to marshal columns: %w", err)
	}
	recordsJSON, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	query := `INSERT INTO datasets (
		id, original_filename, display_name, source, columns, record_count,
		status, error_message, records, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO UPDATE SET
		display_name = EXCLUDED.display_name,
		columns = EXCLUDED.columns,
		record_count = EXCLUDED.record_count,
		status = EXCLUDED.status,
		error_message = EXCLUDED.error_message,
		records = EXCLUDED.records,
		updated_at = EXCLUDED.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		ds.ID.String(), ds.OriginalFilename, ds.DisplayName, ds.Source, columnsJSON, ds.RecordCount,
		ds.Status, ds.ErrorMessage, recordsJSON, ds.CreatedAt.Time(), ds.UpdatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save dataset: %w", err)
	}
	return nil
}

// Get retrieves a dataset registration and its raw records
func (r *datasetRepository) Get(ctx context.Context, id core.DatasetID) (*dataset.Dataset, []record.Record, error) {
	query := `SELECT
		id, original_filename, display_name, source, columns, record_count,
		status, COALESCE(error_message, '') AS error_message, records, created_at, updated_at
	FROM datasets WHERE id = $1`

	var (
		ds                       dataset.Dataset
		idStr                    string
		columnsJSON, recordsJSON []byte
		createdAt, updatedAt     time.Time
	)
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&idStr, &ds.OriginalFilename, &ds.DisplayName, &ds.Source, &columnsJSON, &ds.RecordCount,
		&ds.Status, &ds.ErrorMessage, &recordsJSON, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, core.NewNotFoundError("dataset", id.String())
		}
		return nil, nil, fmt.Errorf("failed to get dataset: %w", err)
	}

	ds.ID = core.DatasetID(idStr)
	ds.CreatedAt = core.NewTimestamp(createdAt)
	ds.UpdatedAt = core.NewTimestamp(updatedAt)
	if err := json.Unmarshal(columnsJSON, &ds.Columns); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal columns: %w", err)
	}

	var rawRows []map[string]interface{}
	if err := json.Unmarshal(recordsJSON, &rawRows); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal records: %w", err)
	}
	records := make([]record.Record, len(rawRows))
	for i, row := range rawRows {
		records[i] = record.FromRow(row)
	}
	return &ds, records, nil
}

// List returns dataset registrations newest first, without their records
func (r *datasetRepository) List(ctx context.Context, limit int) ([]dataset.Dataset, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT
		id, original_filename, display_name, source, columns, record_count,
		status, COALESCE(error_message, '') AS error_message, created_at, updated_at
	FROM datasets ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	var datasets []dataset.Dataset
	for rows.Next() {
		var (
			ds                   dataset.Dataset
			idStr                string
			columnsJSON          []byte
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(
			&idStr, &ds.OriginalFilename, &ds.DisplayName, &ds.Source, &columnsJSON, &ds.RecordCount,
			&ds.Status, &ds.ErrorMessage, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dataset row: %w", err)
		}
		ds.ID = core.DatasetID(idStr)
		ds.CreatedAt = core.NewTimestamp(createdAt)
		ds.UpdatedAt = core.NewTimestamp(updatedAt)
		if err := json.Unmarshal(columnsJSON, &ds.Columns); err != nil {
			return nil, fmt.Errorf("failed to unmarshal columns: %w", err)
		}
		datasets = append(datasets, ds)
	}
	return datasets, rows.Err()
}

// Delete removes a dataset and, via cascade, its analysis results
func (r *datasetRepository) Delete(ctx context.Context, id core.DatasetID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM datasets WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrDatasetNotFound
	}
	return nil
}
