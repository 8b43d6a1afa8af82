package stats

import (
	"fmt"
	"testing"

	"tajir/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCohortAnalyze(t *testing.T) {
	records := []record.Record{
		// c1: first purchase January, a later order in March still accrues
		// to the January cohort.
		orderRow(map[string]string{"customer": "c1", "date": "2024-01-10", "total": "100"}),
		orderRow(map[string]string{"customer": "c1", "date": "2024-03-05", "total": "50"}),
		// c2 joins January too.
		orderRow(map[string]string{"customer": "c2", "date": "2024-01-20", "total": "200"}),
		// c3 joins February.
		orderRow(map[string]string{"customer": "c3", "date": "2024-02-01", "total": "80"}),
	}

	report := NewCohortAnalyzer().Analyze(records, "customer", "date", "total")

	require.Equal(t, 2, report.TotalCohorts)

	jan := report.Cohorts[0]
	assert.Equal(t, "2024-01", jan.CohortMonth)
	assert.Equal(t, 2, jan.CustomerCount)
	assert.InDelta(t, 350.0, jan.CumulativeRevenue, 1e-9)
	assert.InDelta(t, 175.0, jan.AvgRevenuePerCustomer, 1e-9)

	feb := report.Cohorts[1]
	assert.Equal(t, "2024-02", feb.CohortMonth)
	assert.Equal(t, 1, feb.CustomerCount)
	assert.InDelta(t, 80.0, feb.CumulativeRevenue, 1e-9)
}

func TestCohortAnalyze_KeepsLastTwelveMonths(t *testing.T) {
	var records []record.Record
	for month := 1; month <= 15; month++ {
		records = append(records, orderRow(map[string]string{
			"customer": fmt.Sprintf("c%02d", month),
			"date":     fmt.Sprintf("2023-%02d-01", (month-1)%12+1),
			"total":    "10",
		}))
	}
	// Spread the last three over 2024 so there are 15 distinct months.
	records[12]["date"] = record.NewStringValue("2024-01-01")
	records[13]["date"] = record.NewStringValue("2024-02-01")
	records[14]["date"] = record.NewStringValue("2024-03-01")

	report := NewCohortAnalyzer().Analyze(records, "customer", "date", "total")

	require.Equal(t, 12, report.TotalCohorts)
	assert.Equal(t, "2023-04", report.Cohorts[0].CohortMonth)
	assert.Equal(t, "2024-03", report.Cohorts[11].CohortMonth)
}

func TestCohortAnalyze_UndatedCustomerExcluded(t *testing.T) {
	records := []record.Record{
		orderRow(map[string]string{"customer": "c1", "date": "2024-01-10", "total": "100"}),
		orderRow(map[string]string{"customer": "c2", "date": "no date", "total": "999"}),
	}

	report := NewCohortAnalyzer().Analyze(records, "customer", "date", "total")
	require.Equal(t, 1, report.TotalCohorts)
	assert.Equal(t, 1, report.Cohorts[0].CustomerCount)
	assert.InDelta(t, 100.0, report.Cohorts[0].CumulativeRevenue, 1e-9)
}
