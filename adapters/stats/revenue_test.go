package stats

import (
	"fmt"
	"testing"

	"tajir/domain/analysis"
	"tajir/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueAnalyze(t *testing.T) {
	records := []record.Record{
		orderRow(map[string]string{"total": "100", "date": "2024-01-01"}),
		orderRow(map[string]string{"total": "150", "date": "2024-01-01"}),
		orderRow(map[string]string{"total": "100", "date": "2024-01-02"}),
	}

	report := NewRevenueAnalyzer().Analyze(records, "total", "date")

	assert.InDelta(t, 350.0, report.TotalRevenue, 1e-9)
	assert.Equal(t, 3, report.TotalOrders)
	assert.InDelta(t, 350.0/3.0, report.AverageOrderValue, 1e-9)

	require.Len(t, report.Trends.DailySeries, 2)
	assert.Equal(t, analysis.DailyRevenue{Date: "2024-01-01", Revenue: 250, Orders: 2}, report.Trends.DailySeries[0])
	assert.Equal(t, analysis.DailyRevenue{Date: "2024-01-02", Revenue: 100, Orders: 1}, report.Trends.DailySeries[1])
}

func TestRevenueAnalyze_UnparsableRevenueCountsAsOrder(t *testing.T) {
	records := []record.Record{
		orderRow(map[string]string{"total": "100", "date": "2024-01-01"}),
		orderRow(map[string]string{"total": "oops", "date": "2024-01-01"}),
	}

	report := NewRevenueAnalyzer().Analyze(records, "total", "date")

	assert.InDelta(t, 100.0, report.TotalRevenue, 1e-9)
	assert.Equal(t, 2, report.TotalOrders)
	assert.InDelta(t, 50.0, report.AverageOrderValue, 1e-9)
}

func TestRevenueAnalyze_TrendDirection(t *testing.T) {
	var records []record.Record
	// First week flat at 100/day, second week flat at 200/day.
	for day := 1; day <= 14; day++ {
		revenue := "100"
		if day > 7 {
			revenue = "200"
		}
		records = append(records, orderRow(map[string]string{
			"total": revenue,
			"date":  fmt.Sprintf("2024-01-%02d", day),
		}))
	}

	report := NewRevenueAnalyzer().Analyze(records, "total", "date")
	assert.Equal(t, analysis.DirectionIncreasing, report.Trends.Direction)
	assert.InDelta(t, 100.0, report.Trends.GrowthRate, 1e-9)
}

func TestRevenueAnalyze_Empty(t *testing.T) {
	report := NewRevenueAnalyzer().Analyze(nil, "total", "date")
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.TotalOrders)
	assert.Empty(t, report.Trends.DailySeries)
	assert.Equal(t, analysis.DirectionStable, report.Trends.Direction)
}

func TestRevenueAnalyze_SARFormattedCells(t *testing.T) {
	records := []record.Record{
		orderRow(map[string]string{"total": "١٠٠ ر.س", "date": "2024-01-01"}),
		orderRow(map[string]string{"total": "50.50 SAR", "date": "2024-01-01"}),
	}

	report := NewRevenueAnalyzer().Analyze(records, "total", "date")
	assert.InDelta(t, 150.50, report.TotalRevenue, 1e-9)
}
