package stats

import (
	"sort"
	"time"

	"tajir/domain/analysis"
	"tajir/domain/record"
)

// RFMAnalyzer scores every customer on recency, frequency and monetary
// value and assigns one of the named segments. Scores are quintile ranks
// over the current customer population and are recomputed in full on every
// invocation — never incrementally updated.
type RFMAnalyzer struct{}

// NewRFMAnalyzer creates an RFM analyzer
func NewRFMAnalyzer() *RFMAnalyzer {
	return &RFMAnalyzer{}
}

type rfmAccumulator struct {
	customerID string
	lastOrder  time.Time
	frequency  int
	monetary   float64
	recency    int
	r, f, m    int
}

// Analyze computes the RFM report. Recency is measured against the most
// recent parseable order date in the whole dataset; a customer with no
// parseable date at all ranks staler than every dated customer.
func (a *RFMAnalyzer) Analyze(records []record.Record, customerCol, dateCol, revenueCol string) analysis.RFMReport {
	report := analysis.RFMReport{Customers: []analysis.CustomerRFM{}, SegmentCounts: map[string]int{}}

	byCustomer := make(map[string]*rfmAccumulator)
	var latest time.Time
	for _, rec := range records {
		customerID := record.AsString(rec[customerCol])
		if customerID == "" {
			continue
		}
		acc, ok := byCustomer[customerID]
		if !ok {
			acc = &rfmAccumulator{customerID: customerID}
			byCustomer[customerID] = acc
		}
		acc.frequency++
		if revenue, ok := record.AsFloat(rec[revenueCol]); ok {
			acc.monetary += revenue
		}
		if t, ok := record.AsTime(rec[dateCol]); ok {
			if t.After(acc.lastOrder) {
				acc.lastOrder = t
			}
			if t.After(latest) {
				latest = t
			}
		}
	}
	if len(byCustomer) == 0 {
		return report
	}

	customers := make([]*rfmAccumulator, 0, len(byCustomer))
	maxRecency := 0
	for _, acc := range byCustomer {
		if !acc.lastOrder.IsZero() {
			acc.recency = int(latest.Sub(acc.lastOrder).Hours() / 24)
			if acc.recency > maxRecency {
				maxRecency = acc.recency
			}
		}
		customers = append(customers, acc)
	}
	for _, acc := range customers {
		if acc.lastOrder.IsZero() {
			acc.recency = maxRecency + 1
		}
	}

	scoreQuintiles(customers,
		func(c *rfmAccumulator) float64 { return -float64(c.recency) },
		func(c *rfmAccumulator, s int) { c.r = s })
	scoreQuintiles(customers,
		func(c *rfmAccumulator) float64 { return float64(c.frequency) },
		func(c *rfmAccumulator, s int) { c.f = s })
	scoreQuintiles(customers,
		func(c *rfmAccumulator) float64 { return c.monetary },
		func(c *rfmAccumulator, s int) { c.m = s })

	for _, acc := range customers {
		segment := assignSegment(acc.r, acc.f, acc.m)
		report.SegmentCounts[segment]++
		report.Customers = append(report.Customers, analysis.CustomerRFM{
			CustomerID:    acc.customerID,
			RecencyDays:   acc.recency,
			Frequency:     acc.frequency,
			MonetaryTotal: acc.monetary,
			RScore:        acc.r,
			FScore:        acc.f,
			MScore:        acc.m,
			Segment:       segment,
		})
	}

	sort.Slice(report.Customers, func(i, j int) bool {
		if report.Customers[i].MonetaryTotal != report.Customers[j].MonetaryTotal {
			return report.Customers[i].MonetaryTotal > report.Customers[j].MonetaryTotal
		}
		return report.Customers[i].CustomerID < report.Customers[j].CustomerID
	})
	report.TotalCustomers = len(report.Customers)
	return report
}

// scoreQuintiles rank-orders customers by the metric ascending and maps
// positions onto scores 1-5, so a strictly higher metric never earns a
// strictly lower score. Ties break by customer ID for determinism.
func scoreQuintiles(customers []*rfmAccumulator, metric func(*rfmAccumulator) float64, assign func(*rfmAccumulator, int)) {
	ranked := append([]*rfmAccumulator(nil), customers...)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := metric(ranked[i]), metric(ranked[j])
		if a != b {
			return a < b
		}
		return ranked[i].customerID < ranked[j].customerID
	})
	n := len(ranked)
	for i, c := range ranked {
		assign(c, i*5/n+1)
	}
}

// assignSegment evaluates the segment rule table in priority order.
// Every customer lands in exactly one segment.
func assignSegment(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return analysis.SegmentChampions
	case f >= 4 && m >= 3:
		return analysis.SegmentLoyal
	case m >= 4:
		return analysis.SegmentBigSpenders
	case r >= 4 && f <= 2:
		return analysis.SegmentNew
	case r <= 2 && f >= 3:
		return analysis.SegmentAtRisk
	case r <= 2 && f <= 2 && m <= 2:
		return analysis.SegmentLost
	default:
		return analysis.SegmentOther
	}
}
