package stats

import (
	"sort"
	"time"

	"tajir/domain/analysis"
	"tajir/domain/core"
	"tajir/domain/record"
)

// CohortAnalyzer buckets customers by the calendar month of their first
// purchase. Revenue attribution is lifetime-by-cohort: every order of a
// cohort member accrues to the cohort no matter when it happened. This is
// deliberately not a month-by-month retention matrix.
type CohortAnalyzer struct{}

// NewCohortAnalyzer creates a cohort analyzer
func NewCohortAnalyzer() *CohortAnalyzer {
	return &CohortAnalyzer{}
}

// cohortLimit keeps only the most recent cohorts in the report
const cohortLimit = 12

// Analyze computes the cohort report. A customer belongs to exactly one
// cohort for the lifetime of the dataset snapshot; rows whose date fails
// to parse still contribute revenue to the customer but cannot define the
// cohort month.
func (a *CohortAnalyzer) Analyze(records []record.Record, customerCol, dateCol, revenueCol string) analysis.CohortReport {
	report := analysis.CohortReport{Cohorts: []analysis.CohortBucket{}}

	type customerBucket struct {
		firstOrder time.Time
		revenue    float64
	}
	byCustomer := make(map[string]*customerBucket)
	for _, rec := range records {
		customerID := record.AsString(rec[customerCol])
		if customerID == "" {
			continue
		}
		b, ok := byCustomer[customerID]
		if !ok {
			b = &customerBucket{}
			byCustomer[customerID] = b
		}
		if revenue, ok := record.AsFloat(rec[revenueCol]); ok {
			b.revenue += revenue
		}
		if t, ok := record.AsTime(rec[dateCol]); ok {
			if b.firstOrder.IsZero() || t.Before(b.firstOrder) {
				b.firstOrder = t
			}
		}
	}

	type cohortAgg struct {
		customers int
		revenue   float64
	}
	byMonth := make(map[string]*cohortAgg)
	for _, b := range byCustomer {
		if b.firstOrder.IsZero() {
			continue
		}
		month := core.NewTimestamp(b.firstOrder).MonthKey()
		agg, ok := byMonth[month]
		if !ok {
			agg = &cohortAgg{}
			byMonth[month] = agg
		}
		agg.customers++
		agg.revenue += b.revenue
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)
	if len(months) > cohortLimit {
		months = months[len(months)-cohortLimit:]
	}

	for _, month := range months {
		agg := byMonth[month]
		report.Cohorts = append(report.Cohorts, analysis.CohortBucket{
			CohortMonth:           month,
			CustomerCount:         agg.customers,
			CumulativeRevenue:     agg.revenue,
			AvgRevenuePerCustomer: agg.revenue / float64(agg.customers),
		})
	}
	report.TotalCohorts = len(report.Cohorts)
	return report
}
