package stats

import (
	"sort"
	"strings"

	"tajir/domain/analysis"
	"tajir/domain/record"
	"tajir/domain/roles"

	mstats "github.com/montanaflynn/stats"
)

// Summarizer computes per-column descriptive statistics independent of any
// e-commerce semantics. Columns come from the first record; rows are
// assumed column-consistent, and a key absent from a later row is simply
// not tracked for that row.
type Summarizer struct {
	config SummaryConfig
}

// SummaryConfig defines the type-inference thresholds
type SummaryConfig struct {
	DateThreshold    float64 `json:"date_threshold"`    // ratio of non-null values that must parse as dates
	NumericThreshold float64 `json:"numeric_threshold"` // ratio of non-null values that must parse as finite floats
	BoolThreshold    float64 `json:"bool_threshold"`    // ratio of non-null values that must parse as booleans
}

// DefaultSummaryConfig returns the built-in thresholds
func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{
		DateThreshold:    0.7,
		NumericThreshold: 0.8,
		BoolThreshold:    0.9,
	}
}

// NewSummarizer creates a summarizer with the given thresholds
func NewSummarizer(config SummaryConfig) *Summarizer {
	return &Summarizer{config: config}
}

// Summarize computes one ColumnStat per column. columns fixes output
// order; when empty it is reconstructed from the first record's keys in
// lexical order.
func (s *Summarizer) Summarize(records []record.Record, columns []string) analysis.SummaryReport {
	report := analysis.SummaryReport{RowCount: len(records), ColumnStats: []analysis.ColumnStat{}}
	if len(records) == 0 {
		return report
	}

	if len(columns) == 0 {
		columns = make([]string, 0, len(records[0]))
		for name := range records[0] {
			columns = append(columns, name)
		}
		sort.Strings(columns)
	}

	for _, column := range columns {
		report.ColumnStats = append(report.ColumnStats, s.summarizeColumn(records, column))
	}
	return report
}

func (s *Summarizer) summarizeColumn(records []record.Record, column string) analysis.ColumnStat {
	stat := analysis.ColumnStat{Name: column}

	var values []record.CellValue
	unique := make(map[string]bool)
	for _, rec := range records {
		v, ok := rec[column]
		if !ok {
			continue
		}
		stat.Count++
		if v.IsBlank() {
			stat.NullCount++
			continue
		}
		values = append(values, v)
		unique[record.AsString(v)] = true
	}
	stat.UniqueCount = len(unique)

	stat.InferredType = s.inferType(column, values)
	switch stat.InferredType {
	case analysis.TypeNumeric:
		s.fillNumericStats(&stat, values)
	case analysis.TypeText:
		s.fillTextStats(&stat, values)
	}
	return stat
}

// inferType classifies the column: date when the name matches a date
// keyword or enough values parse as dates, then boolean, then numeric,
// else text. Thresholds apply over non-null values only.
func (s *Summarizer) inferType(column string, values []record.CellValue) analysis.InferredType {
	if len(values) == 0 {
		return analysis.TypeText
	}

	lowered := strings.ToLower(column)
	for _, keyword := range roles.DefaultKeywords()[roles.RoleDate] {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return analysis.TypeDate
		}
	}

	dates, bools, numbers := 0, 0, 0
	for _, v := range values {
		if _, ok := record.AsTime(v); ok {
			dates++
		}
		if isBoolToken(v) {
			bools++
		}
		if _, ok := record.AsFloat(v); ok {
			numbers++
		}
	}

	total := float64(len(values))
	if float64(dates)/total >= s.config.DateThreshold {
		return analysis.TypeDate
	}
	if float64(bools)/total >= s.config.BoolThreshold {
		return analysis.TypeBoolean
	}
	if float64(numbers)/total >= s.config.NumericThreshold {
		return analysis.TypeNumeric
	}
	return analysis.TypeText
}

func isBoolToken(v record.CellValue) bool {
	if v.Type == record.ValueTypeBool {
		return true
	}
	switch strings.ToLower(record.AsString(v)) {
	case "true", "false", "yes", "no":
		return true
	}
	return false
}

// fillNumericStats computes min/max/mean/stddev over the parseable subset
// only; non-numeric stragglers stay counted in Count but are silently
// excluded from the aggregates. The median uses the lower-middle index
// convention from series.go.
func (s *Summarizer) fillNumericStats(stat *analysis.ColumnStat, values []record.CellValue) {
	var numbers []float64
	for _, v := range values {
		if f, ok := record.AsFloat(v); ok {
			numbers = append(numbers, f)
		}
	}
	if len(numbers) == 0 {
		return
	}

	minVal, _ := mstats.Min(numbers)
	maxVal, _ := mstats.Max(numbers)
	meanVal, _ := mstats.Mean(numbers)
	stdDev, _ := mstats.StandardDeviation(numbers)

	sorted := append([]float64(nil), numbers...)
	sort.Float64s(sorted)
	median := lowerMedian(sorted)

	stat.Min = &minVal
	stat.Max = &maxVal
	stat.Mean = &meanVal
	stat.Median = &median
	stat.StdDev = &stdDev
}

func (s *Summarizer) fillTextStats(stat *analysis.ColumnStat, values []record.CellValue) {
	if len(values) == 0 {
		return
	}
	minLen, maxLen, totalLen := -1, 0, 0
	for _, v := range values {
		length := len([]rune(record.AsString(v)))
		if minLen == -1 || length < minLen {
			minLen = length
		}
		if length > maxLen {
			maxLen = length
		}
		totalLen += length
	}
	avgLen := float64(totalLen) / float64(len(values))
	stat.MinLength = &minLen
	stat.MaxLength = &maxLen
	stat.AvgLength = &avgLen
}
