package dataset

import (
	"tajir/domain/core"
)

// DatasetStatus represents the processing state of a dataset
type DatasetStatus string

const (
	StatusProcessing DatasetStatus = "processing"
	StatusReady      DatasetStatus = "ready"
	StatusFailed     DatasetStatus = "failed"
)

// Dataset is the long-lived entity: an uploaded record sequence plus its
// registration metadata. The raw records are owned by the record store;
// everything the analyzers derive from them is transient.
type Dataset struct {
	ID               core.DatasetID `json:"id"`
	OriginalFilename string         `json:"original_filename"`
	DisplayName      string         `json:"display_name"`
	Source           string         `json:"source"` // "upload", "csv", "xlsx", "api"

	// Columns preserves the upload's left-to-right header order; role
	// detection tiebreaks depend on it.
	Columns     []string `json:"columns"`
	RecordCount int      `json:"record_count"`

	Status       DatasetStatus `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`

	CreatedAt core.Timestamp `json:"created_at"`
	UpdatedAt core.Timestamp `json:"updated_at"`
}

// NewDataset creates a dataset registration with default values
func NewDataset(originalFilename, source string) *Dataset {
	return &Dataset{
		ID:               core.DatasetID(core.NewID()),
		OriginalFilename: originalFilename,
		Source:           source,
		Status:           StatusProcessing,
		CreatedAt:        core.Now(),
		UpdatedAt:        core.Now(),
	}
}

// IsReady returns true if the dataset is ready for analysis
func (d *Dataset) IsReady() bool {
	return d.Status == StatusReady
}

// GetDisplayName returns the display name or falls back to the filename
func (d *Dataset) GetDisplayName() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.OriginalFilename
}
