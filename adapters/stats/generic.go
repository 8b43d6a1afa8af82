package stats

import (
	"sort"

	"tajir/domain/analysis"
	"tajir/domain/record"
)

// GenericAnalyzer holds the legacy role-agnostic analyses: IQR outlier
// detection, a null/uniqueness quality report, and a before/after trend
// comparison over arbitrary numeric columns.
type GenericAnalyzer struct {
	config GenericConfig
}

// GenericConfig defines the generic analyzer thresholds
type GenericConfig struct {
	NumericThreshold float64 `json:"numeric_threshold"` // ratio that must parse for a column to count as numeric
	MinTrendPoints   int     `json:"min_trend_points"`  // rows needed before the halves comparison is meaningful
	MaxOutlierSample int     `json:"max_outlier_sample"`
}

// DefaultGenericConfig returns the built-in thresholds
func DefaultGenericConfig() GenericConfig {
	return GenericConfig{
		NumericThreshold: 0.8,
		MinTrendPoints:   4,
		MaxOutlierSample: 10,
	}
}

// NewGenericAnalyzer creates a generic analyzer
func NewGenericAnalyzer(config GenericConfig) *GenericAnalyzer {
	return &GenericAnalyzer{config: config}
}

// columnOrder reconstructs a deterministic column order from the first
// record when the caller did not supply one
func columnOrder(records []record.Record, columns []string) []string {
	if len(columns) > 0 || len(records) == 0 {
		return columns
	}
	columns = make([]string, 0, len(records[0]))
	for name := range records[0] {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}

// numericColumn extracts the parseable floats of a column in row order,
// returning ok when enough of the non-blank values parsed
func (a *GenericAnalyzer) numericColumn(records []record.Record, column string) ([]float64, bool) {
	var values []float64
	nonBlank := 0
	for _, rec := range records {
		v, ok := rec[column]
		if !ok || v.IsBlank() {
			continue
		}
		nonBlank++
		if f, ok := record.AsFloat(v); ok {
			values = append(values, f)
		}
	}
	if nonBlank == 0 {
		return nil, false
	}
	return values, float64(len(values))/float64(nonBlank) >= a.config.NumericThreshold
}

// Outliers flags values outside Q1-1.5*IQR .. Q3+1.5*IQR per numeric
// column, reporting at most MaxOutlierSample sample values each. Quartile
// indices follow the fixed floor(n*0.25)/floor(n*0.75) convention.
func (a *GenericAnalyzer) Outliers(records []record.Record, columns []string) analysis.OutlierReport {
	report := analysis.OutlierReport{Columns: []analysis.ColumnOutliers{}}
	for _, column := range columnOrder(records, columns) {
		values, ok := a.numericColumn(records, column)
		if !ok || len(values) < 4 {
			continue
		}

		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)
		q1, q3 := quartiles(sorted)
		iqr := q3 - q1
		lower := q1 - 1.5*iqr
		upper := q3 + 1.5*iqr

		out := analysis.ColumnOutliers{
			Name:       column,
			Q1:         q1,
			Q3:         q3,
			LowerBound: lower,
			UpperBound: upper,
			Samples:    []float64{},
		}
		for _, v := range values {
			if v < lower || v > upper {
				out.OutlierCount++
				if len(out.Samples) < a.config.MaxOutlierSample {
					out.Samples = append(out.Samples, v)
				}
			}
		}
		report.Columns = append(report.Columns, out)
	}
	return report
}

// Quality reports null counts, uniqueness and duplicates per column.
// Blank and null cells collapse to a single missing token in the
// duplicate arithmetic: duplicates = total values minus the size of the
// unique set where that set counts all missing cells once. The reported
// unique count covers distinct non-missing values only.
func (a *GenericAnalyzer) Quality(records []record.Record, columns []string) analysis.QualityReport {
	report := analysis.QualityReport{RowCount: len(records), Columns: []analysis.ColumnQuality{}}
	for _, column := range columnOrder(records, columns) {
		total := 0
		nulls := 0
		unique := make(map[string]bool)
		for _, rec := range records {
			v, ok := rec[column]
			if !ok {
				continue
			}
			total++
			if v.IsBlank() {
				nulls++
				continue
			}
			unique[record.AsString(v)] = true
		}
		if total == 0 {
			continue
		}

		uniqueSetSize := len(unique)
		if nulls > 0 {
			uniqueSetSize++
		}
		quality := analysis.ColumnQuality{
			Name:           column,
			NullCount:      nulls,
			NullPercent:    float64(nulls) / float64(total) * 100,
			UniqueCount:    len(unique),
			DuplicateCount: total - uniqueSetSize,
		}
		report.Columns = append(report.Columns, quality)
	}
	return report
}

// Trends compares first-half and second-half averages per numeric column
// in row order, with the same ±5% direction thresholds as the revenue
// analyzer.
func (a *GenericAnalyzer) Trends(records []record.Record, columns []string) analysis.TrendReport {
	report := analysis.TrendReport{Columns: []analysis.ColumnTrend{}}
	for _, column := range columnOrder(records, columns) {
		values, ok := a.numericColumn(records, column)
		if !ok || len(values) < a.config.MinTrendPoints {
			continue
		}
		direction, growth := trendOf(values)
		half := len(values) / 2
		report.Columns = append(report.Columns, analysis.ColumnTrend{
			Name:          column,
			Direction:     direction,
			GrowthRate:    growth,
			FirstHalfAvg:  mean(values[:half]),
			SecondHalfAvg: mean(values[half:]),
		})
	}
	return report
}
