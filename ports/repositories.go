package ports

import (
	"context"

	"tajir/domain/analysis"
	"tajir/domain/core"
	"tajir/domain/dataset"
	"tajir/domain/record"
)

// DatasetRepository persists dataset registrations and their raw records.
// The engine never writes here; only the upload and dispatch layers do.
type DatasetRepository interface {
	Save(ctx context.Context, ds *dataset.Dataset, records []record.Record) error
	Get(ctx context.Context, id core.DatasetID) (*dataset.Dataset, []record.Record, error)
	List(ctx context.Context, limit int) ([]dataset.Dataset, error)
	Delete(ctx context.Context, id core.DatasetID) error
}

// ResultRepository persists analysis results as opaque JSON blobs, exactly
// as the engine produced them.
type ResultRepository interface {
	Save(ctx context.Context, datasetID core.DatasetID, result analysis.Result) error
	Get(ctx context.Context, id core.AnalysisID) (*analysis.Result, error)
	ListByDataset(ctx context.Context, datasetID core.DatasetID) ([]analysis.Result, error)
}

// RecordReader produces records from an external source (file upload,
// webhook payload). Implementations own the file-format concerns; the
// engine only ever sees the record shape.
type RecordReader interface {
	Read() ([]record.Record, []string, error)
}
