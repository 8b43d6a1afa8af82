package stats

import (
	"tajir/domain/analysis"
	"tajir/domain/record"
)

// RevenueAnalyzer aggregates revenue by day and derives totals, average
// order value and the trend direction of the daily series.
type RevenueAnalyzer struct{}

// NewRevenueAnalyzer creates a revenue analyzer
func NewRevenueAnalyzer() *RevenueAnalyzer {
	return &RevenueAnalyzer{}
}

// Analyze computes the revenue report. Every row counts as one order;
// rows whose revenue cell fails to parse contribute zero to the total so
// one malformed cell never skews the order count.
func (a *RevenueAnalyzer) Analyze(records []record.Record, revenueCol, dateCol string) analysis.RevenueReport {
	report := analysis.RevenueReport{
		Trends: analysis.RevenueTrends{Direction: analysis.DirectionStable, DailySeries: []analysis.DailyRevenue{}},
	}
	if len(records) == 0 {
		return report
	}

	for _, rec := range records {
		if revenue, ok := record.AsFloat(rec[revenueCol]); ok {
			report.TotalRevenue += revenue
		}
	}
	report.TotalOrders = len(records)
	report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)

	series := aggregateDaily(records, revenueCol, dateCol)
	values := make([]float64, len(series))
	for i, point := range series {
		values[i] = point.revenue
		report.Trends.DailySeries = append(report.Trends.DailySeries, analysis.DailyRevenue{
			Date:    point.day.Format("2006-01-02"),
			Revenue: point.revenue,
			Orders:  point.orders,
		})
	}
	report.Trends.Direction, report.Trends.GrowthRate = trendOf(values)

	return report
}
