package stats

import (
	"testing"

	"tajir/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerAnalyze(t *testing.T) {
	records := []record.Record{
		orderRow(map[string]string{"customer": "c1", "total": "100"}),
		orderRow(map[string]string{"customer": "c1", "total": "200"}),
		orderRow(map[string]string{"customer": "c2", "total": "50"}),
		orderRow(map[string]string{"customer": "c3", "total": "150"}),
	}

	report := NewCustomerAnalyzer().Analyze(records, "customer", "total")

	assert.Equal(t, 3, report.TotalCustomers)
	assert.Equal(t, 2, report.NewCustomers)       // c2, c3: one order each
	assert.Equal(t, 1, report.ReturningCustomers) // c1
	assert.InDelta(t, 500.0/3.0, report.AverageCLV, 1e-9)
	assert.InDelta(t, 100.0/3.0, report.RepeatPurchaseRate, 1e-9)

	require.Len(t, report.TopCustomers, 3)
	assert.Equal(t, "c1", report.TopCustomers[0].CustomerID)
	assert.InDelta(t, 300.0, report.TopCustomers[0].Revenue, 1e-9)
	assert.Equal(t, 2, report.TopCustomers[0].Orders)
	assert.Equal(t, "c3", report.TopCustomers[1].CustomerID)
	assert.Equal(t, "c2", report.TopCustomers[2].CustomerID)
}

func TestCustomerAnalyze_BlankCustomerRowsSkipped(t *testing.T) {
	records := []record.Record{
		orderRow(map[string]string{"customer": "c1", "total": "100"}),
		orderRow(map[string]string{"customer": "", "total": "999"}),
	}

	report := NewCustomerAnalyzer().Analyze(records, "customer", "total")
	assert.Equal(t, 1, report.TotalCustomers)
	assert.InDelta(t, 100.0, report.AverageCLV, 1e-9)
}

func TestCustomerAnalyze_Empty(t *testing.T) {
	report := NewCustomerAnalyzer().Analyze(nil, "customer", "total")
	assert.Zero(t, report.TotalCustomers)
	assert.Empty(t, report.TopCustomers)
}
