package stats

import (
	"math"

	"tajir/domain/analysis"
	"tajir/domain/core"
	"tajir/domain/record"

	"gonum.org/v1/gonum/stat"
)

// Forecaster fits a least-squares line over the historical daily revenue
// series and projects it forward. Forecasting from too few points is
// extrapolating noise, so short histories fail with a structured error
// instead of producing a fit.
type Forecaster struct{}

// NewForecaster creates a forecaster
func NewForecaster() *Forecaster {
	return &Forecaster{}
}

const (
	// minForecastDays is the minimum number of distinct historical days
	// required before a trend fit is considered reliable
	minForecastDays = 7

	// DefaultHorizonDays is the projection length when the caller does
	// not specify one
	DefaultHorizonDays = 30
)

// Forecast aggregates to daily revenue (same grouping as the revenue
// analyzer), fits a line over day offsets, and projects horizon additional
// days. Predicted values are clamped at zero; revenue cannot be forecast
// negative. Returns core.ErrInsufficientHistory when fewer than
// minForecastDays distinct days exist.
func (f *Forecaster) Forecast(records []record.Record, dateCol, revenueCol string, horizon int) (analysis.ForecastReport, error) {
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}

	series := aggregateDaily(records, revenueCol, dateCol)
	if len(series) < minForecastDays {
		return analysis.ForecastReport{}, core.ErrInsufficientHistory
	}

	// Day offsets from the first observed day keep calendar gaps in the
	// fit instead of compressing them away.
	first := series[0].day
	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, point := range series {
		xs[i] = point.day.Sub(first).Hours() / 24
		ys[i] = point.revenue
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	report := analysis.ForecastReport{Forecast: make([]analysis.ForecastPoint, 0, horizon)}
	report.Trend, report.GrowthRate = trendOf(ys)

	last := series[len(series)-1].day
	lastOffset := xs[len(xs)-1]
	for i := 1; i <= horizon; i++ {
		predicted := alpha + beta*(lastOffset+float64(i))
		if predicted < 0 || math.IsNaN(predicted) || math.IsInf(predicted, 0) {
			predicted = 0
		}
		report.Forecast = append(report.Forecast, analysis.ForecastPoint{
			Date:             last.AddDate(0, 0, i).Format("2006-01-02"),
			PredictedRevenue: predicted,
		})
	}
	return report, nil
}
