package detect

import (
	"sort"
	"strings"

	"tajir/domain/record"
	"tajir/domain/roles"
)

// Detector classifies dataset columns into semantic roles using bilingual
// name-pattern matching with content sniffing as a fallback. Detection is
// heuristic: ambiguous matches resolve by column order, leftmost wins.
type Detector struct {
	config   Config
	keywords map[roles.Role][]string
}

// Config defines detection thresholds
type Config struct {
	SampleSize       int     `json:"sample_size"`       // rows inspected for content sniffing
	NumericThreshold float64 `json:"numeric_threshold"` // ratio of sampled values that must parse as finite numbers
	DateThreshold    float64 `json:"date_threshold"`    // ratio of sampled values that must parse as dates
}

// DefaultConfig returns the detection thresholds the engine ships with
func DefaultConfig() Config {
	return Config{
		SampleSize:       50,
		NumericThreshold: 0.8,
		DateThreshold:    0.7,
	}
}

// NewDetector creates a detector with the given thresholds and keyword table
func NewDetector(config Config, keywords map[roles.Role][]string) *Detector {
	return &Detector{config: config, keywords: keywords}
}

// NewDefaultDetector creates a detector with built-in thresholds and the
// default bilingual keyword table
func NewDefaultDetector() *Detector {
	return NewDetector(DefaultConfig(), roles.DefaultKeywords())
}

// Detect resolves a ColumnRoleMap for the dataset. columns fixes the
// left-to-right column order; when empty it is reconstructed from the first
// record's keys in lexical order so detection stays deterministic. hints
// pre-claims roles supplied by the caller: detection is skipped for those,
// and their columns cannot be claimed by another role.
func (d *Detector) Detect(records []record.Record, columns []string, hints roles.ColumnRoleMap) roles.ColumnRoleMap {
	detected := make(roles.ColumnRoleMap)
	if len(records) == 0 && len(hints) == 0 {
		return detected
	}

	if len(columns) == 0 && len(records) > 0 {
		columns = make([]string, 0, len(records[0]))
		for name := range records[0] {
			columns = append(columns, name)
		}
		sort.Strings(columns)
	}

	claimed := make(map[string]bool)
	for role, column := range hints {
		detected[role] = column
		claimed[column] = true
	}

	sample := records
	if len(sample) > d.config.SampleSize {
		sample = sample[:d.config.SampleSize]
	}

	// Name matching resolves every role first. Content sniffing is a
	// fallback for revenue and date only, and runs after all name matches
	// so the sniff cannot claim a column whose header a later role would
	// have matched by keyword.
	for _, role := range roles.DetectionOrder {
		if _, ok := detected[role]; ok {
			continue
		}
		if column, ok := d.matchByName(role, columns, claimed); ok {
			detected[role] = column
			claimed[column] = true
		}
	}

	if _, ok := detected[roles.RoleRevenue]; !ok {
		if column, ok := d.sniffColumn(sample, columns, claimed, d.config.NumericThreshold, sniffNumeric); ok {
			detected[roles.RoleRevenue] = column
			claimed[column] = true
		}
	}
	if _, ok := detected[roles.RoleDate]; !ok {
		if column, ok := d.sniffColumn(sample, columns, claimed, d.config.DateThreshold, sniffDate); ok {
			detected[roles.RoleDate] = column
			claimed[column] = true
		}
	}

	return detected
}

// matchByName tests the role's patterns in priority order against every
// unclaimed column. For a given pattern the leftmost matching column wins.
func (d *Detector) matchByName(role roles.Role, columns []string, claimed map[string]bool) (string, bool) {
	for _, pattern := range d.keywords[role] {
		pattern = strings.ToLower(pattern)
		for _, column := range columns {
			if claimed[column] {
				continue
			}
			if strings.Contains(strings.ToLower(column), pattern) {
				return column, true
			}
		}
	}
	return "", false
}

type sniffFunc func(record.CellValue) bool

func sniffNumeric(v record.CellValue) bool {
	_, ok := record.AsFloat(v)
	return ok
}

func sniffDate(v record.CellValue) bool {
	_, ok := record.AsTime(v)
	return ok
}

// sniffColumn returns the leftmost unclaimed column whose sampled non-blank
// values pass the sniff at or above the threshold
func (d *Detector) sniffColumn(sample []record.Record, columns []string, claimed map[string]bool, threshold float64, sniff sniffFunc) (string, bool) {
	for _, column := range columns {
		if claimed[column] {
			continue
		}
		total, hits := 0, 0
		for _, rec := range sample {
			v, ok := rec[column]
			if !ok || v.IsBlank() {
				continue
			}
			total++
			if sniff(v) {
				hits++
			}
		}
		if total > 0 && float64(hits)/float64(total) >= threshold {
			return column, true
		}
	}
	return "", false
}
