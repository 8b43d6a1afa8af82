package analysis

import (
	"tajir/domain/core"
	"tajir/domain/roles"
)

// Kind selects which analysis the dispatch layer runs
type Kind string

const (
	KindRevenue   Kind = "ecommerce-revenue"
	KindProducts  Kind = "ecommerce-products"
	KindRFM       Kind = "ecommerce-rfm"
	KindCustomers Kind = "ecommerce-customers"
	KindCohorts   Kind = "ecommerce-cohorts"
	KindForecast  Kind = "ecommerce-forecast"
	KindOutliers  Kind = "outliers"
	KindTrends    Kind = "trends"
	KindQuality   Kind = "quality"
	KindSummary   Kind = "summary"
)

// AllKinds lists every dispatchable analysis kind
var AllKinds = []Kind{
	KindRevenue, KindProducts, KindRFM, KindCustomers, KindCohorts,
	KindForecast, KindOutliers, KindTrends, KindQuality, KindSummary,
}

// IsValid reports whether k names a known analysis
func (k Kind) IsValid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Result is the terminal artifact of one analysis invocation. Immutable
// after creation; ownership passes to the result store for persistence.
// Failures are data, not Go errors: a computation that cannot proceed
// (missing columns, empty dataset, insufficient history) still returns a
// Result, with Error set and Payload nil, so the caller can render partial
// dashboards.
type Result struct {
	ID              core.AnalysisID     `json:"id"`
	DatasetID       core.DatasetID      `json:"dataset_id,omitempty"`
	Kind            Kind                `json:"kind"`
	DetectedColumns roles.ColumnRoleMap `json:"detectedColumns"`
	Error           string              `json:"error,omitempty"`
	Payload         interface{}         `json:"payload,omitempty"`
	CreatedAt       core.Timestamp      `json:"created_at"`
}

// NewResult creates a successful result envelope
func NewResult(kind Kind, detected roles.ColumnRoleMap, payload interface{}) Result {
	return Result{
		ID:              core.AnalysisID(core.NewID()),
		Kind:            kind,
		DetectedColumns: detected,
		Payload:         payload,
		CreatedAt:       core.Now(),
	}
}

// NewFailure creates a result carrying a data-shaped failure
func NewFailure(kind Kind, detected roles.ColumnRoleMap, err error) Result {
	return Result{
		ID:              core.AnalysisID(core.NewID()),
		Kind:            kind,
		DetectedColumns: detected,
		Error:           err.Error(),
		CreatedAt:       core.Now(),
	}
}

// Failed reports whether the analysis could not be computed
func (r Result) Failed() bool {
	return r.Error != ""
}

// Direction classifies a series trend
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionStable     Direction = "stable"
)
