package stats

import (
	"sort"

	"tajir/domain/analysis"
	"tajir/domain/record"
)

// CustomerAnalyzer computes lifetime value and the new-versus-returning
// split. "New" is snapshot-relative: exactly one order in this dataset,
// not any external customer-since date.
type CustomerAnalyzer struct{}

// NewCustomerAnalyzer creates a customer analyzer
func NewCustomerAnalyzer() *CustomerAnalyzer {
	return &CustomerAnalyzer{}
}

// topCustomerLimit caps the revenue leaderboard
const topCustomerLimit = 10

// Analyze computes the customer metrics report
func (a *CustomerAnalyzer) Analyze(records []record.Record, customerCol, revenueCol string) analysis.CustomerReport {
	report := analysis.CustomerReport{TopCustomers: []analysis.TopCustomer{}}

	type bucket struct {
		revenue float64
		orders  int
	}
	byCustomer := make(map[string]*bucket)
	for _, rec := range records {
		customerID := record.AsString(rec[customerCol])
		if customerID == "" {
			continue
		}
		b, ok := byCustomer[customerID]
		if !ok {
			b = &bucket{}
			byCustomer[customerID] = b
		}
		b.orders++
		if revenue, ok := record.AsFloat(rec[revenueCol]); ok {
			b.revenue += revenue
		}
	}
	if len(byCustomer) == 0 {
		return report
	}

	totalRevenue := 0.0
	for customerID, b := range byCustomer {
		totalRevenue += b.revenue
		if b.orders == 1 {
			report.NewCustomers++
		} else {
			report.ReturningCustomers++
		}
		report.TopCustomers = append(report.TopCustomers, analysis.TopCustomer{
			CustomerID: customerID,
			Revenue:    b.revenue,
			Orders:     b.orders,
		})
	}

	report.TotalCustomers = len(byCustomer)
	total := float64(report.TotalCustomers)
	report.NewCustomerPercent = float64(report.NewCustomers) / total * 100
	report.ReturningCustomerPercent = float64(report.ReturningCustomers) / total * 100
	report.AverageCLV = totalRevenue / total
	report.RepeatPurchaseRate = float64(report.ReturningCustomers) / total * 100

	sort.Slice(report.TopCustomers, func(i, j int) bool {
		if report.TopCustomers[i].Revenue != report.TopCustomers[j].Revenue {
			return report.TopCustomers[i].Revenue > report.TopCustomers[j].Revenue
		}
		return report.TopCustomers[i].CustomerID < report.TopCustomers[j].CustomerID
	})
	if len(report.TopCustomers) > topCustomerLimit {
		report.TopCustomers = report.TopCustomers[:topCustomerLimit]
	}
	return report
}
