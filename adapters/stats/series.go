package stats

import (
	"sort"
	"time"

	"tajir/domain/analysis"
	"tajir/domain/core"
	"tajir/domain/record"
)

// Shared aggregation helpers for the time-series analyzers. Revenue
// analytics and the forecaster group on the same daily series; the trend
// thresholds here are the convention every analyzer uses.

// growthThresholdPct is the ±5% band outside which a first-half/second-half
// delta counts as a trend rather than noise
const growthThresholdPct = 5.0

type dailyPoint struct {
	day     time.Time
	revenue float64
	orders  int
}

// aggregateDaily groups records by calendar day and sums revenue per day.
// Rows whose date fails to parse are dropped from the series; rows whose
// revenue fails to parse keep their order slot but contribute zero.
// The returned series is sorted chronologically.
func aggregateDaily(records []record.Record, revenueCol, dateCol string) []dailyPoint {
	byDay := make(map[string]*dailyPoint)
	for _, rec := range records {
		t, ok := record.AsTime(rec[dateCol])
		if !ok {
			continue
		}
		day := t.UTC().Truncate(24 * time.Hour)
		key := core.NewTimestamp(t).DayKey()
		point, ok := byDay[key]
		if !ok {
			point = &dailyPoint{day: day}
			byDay[key] = point
		}
		if revenue, ok := record.AsFloat(rec[revenueCol]); ok {
			point.revenue += revenue
		}
		point.orders++
	}

	series := make([]dailyPoint, 0, len(byDay))
	for _, point := range byDay {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].day.Before(series[j].day) })
	return series
}

// mean over a possibly empty slice
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// trendOf compares the averages of the first and second halves of an
// ordered series: >+5% is increasing, <-5% decreasing, else stable.
// The growth rate is returned in percent.
func trendOf(values []float64) (analysis.Direction, float64) {
	if len(values) < 2 {
		return analysis.DirectionStable, 0
	}
	half := len(values) / 2
	firstAvg := mean(values[:half])
	secondAvg := mean(values[half:])

	if firstAvg == 0 {
		if secondAvg > 0 {
			return analysis.DirectionIncreasing, 100
		}
		return analysis.DirectionStable, 0
	}

	growth := (secondAvg - firstAvg) / firstAvg * 100
	switch {
	case growth > growthThresholdPct:
		return analysis.DirectionIncreasing, growth
	case growth < -growthThresholdPct:
		return analysis.DirectionDecreasing, growth
	default:
		return analysis.DirectionStable, growth
	}
}

// lowerMedian returns sorted[floor(n/2)]. Even-length inputs do not
// average the two middle values; downstream consumers depend on the
// exact index convention, so it is preserved rather than corrected.
func lowerMedian(sorted []float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)/2]
}

// quartiles returns sorted[floor(n*0.25)] and sorted[floor(n*0.75)].
// Same compatibility note as lowerMedian: the index formula is the
// contract, not a textbook quantile method.
func quartiles(sorted []float64) (q1, q3 float64) {
	if len(sorted) == 0 {
		return 0, 0
	}
	n := len(sorted)
	q1 = sorted[n*25/100]
	q3 = sorted[n*75/100]
	return q1, q3
}
