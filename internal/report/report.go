package report

import (
	"fmt"
	"strings"

	"tajir/domain/analysis"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Digest renders an analysis result as a short markdown report for the
// dashboard. The UI embeds the HTML form; the markdown form goes out to
// chat-style consumers verbatim.

// Markdown produces the markdown digest for a result
func Markdown(result analysis.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title(result.Kind))

	if result.Failed() {
		fmt.Fprintf(&b, "**Could not compute:** %s\n", result.Error)
		return b.String()
	}

	switch payload := result.Payload.(type) {
	case analysis.RevenueReport:
		fmt.Fprintf(&b, "- Total revenue: %.2f\n", payload.TotalRevenue)
		fmt.Fprintf(&b, "- Orders: %d\n", payload.TotalOrders)
		fmt.Fprintf(&b, "- Average order value: %.2f\n", payload.AverageOrderValue)
		fmt.Fprintf(&b, "- Trend: %s (%.1f%%)\n", payload.Trends.Direction, payload.Trends.GrowthRate)
	case analysis.ProductReport:
		fmt.Fprintf(&b, "%d products. Top performers:\n\n", payload.TotalProducts)
		fmt.Fprintf(&b, "| Product | Revenue | Orders |\n|---|---|---|\n")
		for _, p := range payload.TopProducts {
			fmt.Fprintf(&b, "| %s | %.2f | %d |\n", p.Name, p.Revenue, p.Orders)
		}
	case analysis.RFMReport:
		fmt.Fprintf(&b, "%d customers segmented.\n\n", payload.TotalCustomers)
		fmt.Fprintf(&b, "| Segment | Customers |\n|---|---|\n")
		for _, segment := range segmentOrder {
			if count, ok := payload.SegmentCounts[segment]; ok {
				fmt.Fprintf(&b, "| %s | %d |\n", segment, count)
			}
		}
	case analysis.CustomerReport:
		fmt.Fprintf(&b, "- Customers: %d (%d new / %d returning)\n",
			payload.TotalCustomers, payload.NewCustomers, payload.ReturningCustomers)
		fmt.Fprintf(&b, "- Average CLV: %.2f\n", payload.AverageCLV)
		fmt.Fprintf(&b, "- Repeat purchase rate: %.1f%%\n", payload.RepeatPurchaseRate)
	case analysis.CohortReport:
		fmt.Fprintf(&b, "%d cohorts.\n\n", payload.TotalCohorts)
		fmt.Fprintf(&b, "| Cohort | Customers | Lifetime revenue |\n|---|---|---|\n")
		for _, c := range payload.Cohorts {
			fmt.Fprintf(&b, "| %s | %d | %.2f |\n", c.CohortMonth, c.CustomerCount, c.CumulativeRevenue)
		}
	case analysis.ForecastReport:
		fmt.Fprintf(&b, "- Trend: %s (%.1f%%)\n", payload.Trend, payload.GrowthRate)
		fmt.Fprintf(&b, "- Projected days: %d\n", len(payload.Forecast))
	case analysis.SummaryReport:
		fmt.Fprintf(&b, "%d rows, %d columns profiled.\n", payload.RowCount, len(payload.ColumnStats))
	case analysis.QualityReport:
		fmt.Fprintf(&b, "%d rows checked across %d columns.\n", payload.RowCount, len(payload.Columns))
	case analysis.OutlierReport:
		fmt.Fprintf(&b, "%d numeric columns scanned for outliers.\n", len(payload.Columns))
	case analysis.TrendReport:
		fmt.Fprintf(&b, "%d numeric columns compared.\n", len(payload.Columns))
	default:
		fmt.Fprintf(&b, "Analysis complete.\n")
	}
	return b.String()
}

// HTML renders the markdown digest to an HTML fragment for the dashboard
func HTML(result analysis.Result) string {
	md := Markdown(result)
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(md), p, renderer))
}

// segmentOrder fixes the segment listing order in digests
var segmentOrder = []string{
	analysis.SegmentChampions,
	analysis.SegmentLoyal,
	analysis.SegmentBigSpenders,
	analysis.SegmentNew,
	analysis.SegmentAtRisk,
	analysis.SegmentLost,
	analysis.SegmentOther,
}

func title(kind analysis.Kind) string {
	switch kind {
	case analysis.KindRevenue:
		return "Revenue"
	case analysis.KindProducts:
		return "Product Performance"
	case analysis.KindRFM:
		return "RFM Segmentation"
	case analysis.KindCustomers:
		return "Customer Metrics"
	case analysis.KindCohorts:
		return "Cohorts"
	case analysis.KindForecast:
		return "Revenue Forecast"
	case analysis.KindOutliers:
		return "Outliers"
	case analysis.KindTrends:
		return "Trends"
	case analysis.KindQuality:
		return "Data Quality"
	case analysis.KindSummary:
		return "Summary"
	default:
		return string(kind)
	}
}
