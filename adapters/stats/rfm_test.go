package stats

import (
	"fmt"
	"testing"

	"tajir/domain/analysis"
	"tajir/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignSegment(t *testing.T) {
	// Rule priority, one case per rule in order.
	assert.Equal(t, analysis.SegmentChampions, assignSegment(4, 4, 4))
	assert.Equal(t, analysis.SegmentLoyal, assignSegment(3, 4, 3))
	assert.Equal(t, analysis.SegmentBigSpenders, assignSegment(3, 3, 4))
	assert.Equal(t, analysis.SegmentNew, assignSegment(4, 2, 1))
	assert.Equal(t, analysis.SegmentAtRisk, assignSegment(2, 3, 3))
	assert.Equal(t, analysis.SegmentLost, assignSegment(1, 1, 1))
	assert.Equal(t, analysis.SegmentOther, assignSegment(3, 3, 3))

	// Earlier rules shadow later ones: f>=4,m>=3 is Loyal even with r<=2.
	assert.Equal(t, analysis.SegmentLoyal, assignSegment(2, 4, 3))
	// m>=4 is Big Spenders even when recency is terrible.
	assert.Equal(t, analysis.SegmentBigSpenders, assignSegment(1, 1, 4))
}

func TestRFMAnalyze(t *testing.T) {
	records := []record.Record{
		// Frequent, recent, big spender.
		orderRow(map[string]string{"customer": "whale", "date": "2024-03-01", "total": "500"}),
		orderRow(map[string]string{"customer": "whale", "date": "2024-03-10", "total": "500"}),
		orderRow(map[string]string{"customer": "whale", "date": "2024-03-20", "total": "500"}),
		// One old small order.
		orderRow(map[string]string{"customer": "ghost", "date": "2024-01-01", "total": "10"}),
		// Middle of the pack.
		orderRow(map[string]string{"customer": "mid", "date": "2024-02-15", "total": "100"}),
		orderRow(map[string]string{"customer": "mid", "date": "2024-02-20", "total": "100"}),
	}

	report := NewRFMAnalyzer().Analyze(records, "customer", "date", "total")

	require.Equal(t, 3, report.TotalCustomers)
	require.Len(t, report.Customers, 3)

	// Sorted by monetary descending.
	assert.Equal(t, "whale", report.Customers[0].CustomerID)
	assert.Equal(t, "mid", report.Customers[1].CustomerID)
	assert.Equal(t, "ghost", report.Customers[2].CustomerID)

	whale := report.Customers[0]
	assert.Equal(t, 0, whale.RecencyDays) // latest order in the dataset
	assert.Equal(t, 3, whale.Frequency)
	assert.InDelta(t, 1500.0, whale.MonetaryTotal, 1e-9)

	counts := 0
	for _, n := range report.SegmentCounts {
		counts += n
	}
	assert.Equal(t, report.TotalCustomers, counts)
}

// A strictly higher metric can never earn a strictly lower score.
func TestRFMScoresAreMonotonic(t *testing.T) {
	var records []record.Record
	for i := 0; i < 20; i++ {
		customerID := fmt.Sprintf("c%02d", i)
		// Customer i places i+1 orders of 100 each, most recent on day i+1.
		for j := 0; j <= i; j++ {
			records = append(records, orderRow(map[string]string{
				"customer": customerID,
				"date":     fmt.Sprintf("2024-01-%02d", i+1),
				"total":    "100",
			}))
		}
	}

	report := NewRFMAnalyzer().Analyze(records, "customer", "date", "total")
	require.Len(t, report.Customers, 20)

	byID := make(map[string]analysis.CustomerRFM)
	for _, c := range report.Customers {
		byID[c.CustomerID] = c
	}
	for i := 1; i < 20; i++ {
		cur := byID[fmt.Sprintf("c%02d", i)]
		prev := byID[fmt.Sprintf("c%02d", i-1)]
		// Higher index means more orders, more revenue and a fresher date.
		assert.GreaterOrEqual(t, cur.FScore, prev.FScore)
		assert.GreaterOrEqual(t, cur.MScore, prev.MScore)
		assert.GreaterOrEqual(t, cur.RScore, prev.RScore)
		assert.True(t, cur.RScore >= 1 && cur.RScore <= 5)
		assert.True(t, cur.FScore >= 1 && cur.FScore <= 5)
		assert.True(t, cur.MScore >= 1 && cur.MScore <= 5)
	}
}

func TestRFMAnalyze_UndatedCustomerRanksStalest(t *testing.T) {
	records := []record.Record{
		orderRow(map[string]string{"customer": "dated", "date": "2024-01-10", "total": "100"}),
		orderRow(map[string]string{"customer": "undated", "date": "unknown", "total": "100"}),
	}

	report := NewRFMAnalyzer().Analyze(records, "customer", "date", "total")
	byID := make(map[string]analysis.CustomerRFM)
	for _, c := range report.Customers {
		byID[c.CustomerID] = c
	}
	assert.Greater(t, byID["undated"].RecencyDays, byID["dated"].RecencyDays)
}

func TestRFMAnalyze_Empty(t *testing.T) {
	report := NewRFMAnalyzer().Analyze(nil, "customer", "date", "total")
	assert.Zero(t, report.TotalCustomers)
	assert.Empty(t, report.Customers)
	assert.Empty(t, report.SegmentCounts)
}
