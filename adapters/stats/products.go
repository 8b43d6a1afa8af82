package stats

import (
	"sort"

	"tajir/domain/analysis"
	"tajir/domain/record"
)

// ProductAnalyzer groups rows by product and ranks performers by revenue.
type ProductAnalyzer struct{}

// NewProductAnalyzer creates a product analyzer
func NewProductAnalyzer() *ProductAnalyzer {
	return &ProductAnalyzer{}
}

// unknownProduct buckets rows with a blank product name. Dropping them
// would break revenue conservation against the revenue report.
const unknownProduct = "Unknown"

// topProductLimit caps the ranked list
const topProductLimit = 10

// Analyze aggregates revenue, orders and quantity per product and returns
// the top performers by revenue. quantityCol may be empty; the order count
// then stands in for units sold.
func (a *ProductAnalyzer) Analyze(records []record.Record, productCol, revenueCol, quantityCol string) analysis.ProductReport {
	type bucket struct {
		revenue  float64
		orders   int
		quantity float64
	}
	buckets := make(map[string]*bucket)

	for _, rec := range records {
		name := record.AsString(rec[productCol])
		if name == "" {
			name = unknownProduct
		}
		b, ok := buckets[name]
		if !ok {
			b = &bucket{}
			buckets[name] = b
		}
		b.orders++
		if revenue, ok := record.AsFloat(rec[revenueCol]); ok {
			b.revenue += revenue
		}
		if quantityCol != "" {
			if qty, ok := record.AsFloat(rec[quantityCol]); ok {
				b.quantity += qty
			}
		}
	}

	products := make([]analysis.ProductPerformance, 0, len(buckets))
	for name, b := range buckets {
		quantity := b.quantity
		if quantityCol == "" {
			quantity = float64(b.orders)
		}
		products = append(products, analysis.ProductPerformance{
			Name:         name,
			Revenue:      b.revenue,
			Orders:       b.orders,
			Quantity:     quantity,
			AveragePrice: b.revenue / float64(b.orders),
		})
	}

	// Revenue descending, name ascending on ties for stable output
	sort.Slice(products, func(i, j int) bool {
		if products[i].Revenue != products[j].Revenue {
			return products[i].Revenue > products[j].Revenue
		}
		return products[i].Name < products[j].Name
	})

	report := analysis.ProductReport{TotalProducts: len(products), TopProducts: products}
	if len(report.TopProducts) > topProductLimit {
		report.TopProducts = report.TopProducts[:topProductLimit]
	}
	if report.TopProducts == nil {
		report.TopProducts = []analysis.ProductPerformance{}
	}
	return report
}
