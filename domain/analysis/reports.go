package analysis

// Typed payloads, one per analysis kind. All fields are plain
// JSON-serializable values; nothing here is mutated after creation.

// InferredType classifies a column for descriptive statistics
type InferredType string

const (
	TypeNumeric InferredType = "numeric"
	TypeText    InferredType = "text"
	TypeDate    InferredType = "date"
	TypeBoolean InferredType = "boolean"
)

// ColumnStat is the per-column descriptive summary. Numeric fields are
// pointers so text columns serialize without zero-valued noise.
type ColumnStat struct {
	Name         string       `json:"name"`
	InferredType InferredType `json:"inferredType"`
	Count        int          `json:"count"`
	UniqueCount  int          `json:"uniqueCount"`
	NullCount    int          `json:"nullCount"`

	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Mean   *float64 `json:"mean,omitempty"`
	Median *float64 `json:"median,omitempty"`
	StdDev *float64 `json:"stdDev,omitempty"`

	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	AvgLength *float64 `json:"avgLength,omitempty"`
}

// SummaryReport holds one ColumnStat per column of the dataset
type SummaryReport struct {
	RowCount    int          `json:"rowCount"`
	ColumnStats []ColumnStat `json:"columnStats"`
}

// DailyRevenue is one point of the aggregated daily series
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// RevenueTrends carries the first-half/second-half comparison over the
// chronologically sorted daily series
type RevenueTrends struct {
	Direction   Direction      `json:"direction"`
	GrowthRate  float64        `json:"growthRate"`
	DailySeries []DailyRevenue `json:"dailySeries"`
}

// RevenueReport is the ecommerce-revenue payload
type RevenueReport struct {
	TotalRevenue      float64       `json:"totalRevenue"`
	TotalOrders       int           `json:"totalOrders"`
	AverageOrderValue float64       `json:"averageOrderValue"`
	Trends            RevenueTrends `json:"trends"`
}

// ProductPerformance aggregates one product's rows
type ProductPerformance struct {
	Name         string  `json:"name"`
	Revenue      float64 `json:"revenue"`
	Orders       int     `json:"orders"`
	Quantity     float64 `json:"quantity"`
	AveragePrice float64 `json:"averagePrice"`
}

// ProductReport is the ecommerce-products payload
type ProductReport struct {
	TopProducts   []ProductPerformance `json:"topProducts"`
	TotalProducts int                  `json:"totalProducts"`
}

// RFM segment names assigned by the rule table
const (
	SegmentChampions   = "Champions"
	SegmentLoyal       = "Loyal Customers"
	SegmentBigSpenders = "Big Spenders"
	SegmentNew         = "New Customers"
	SegmentAtRisk      = "At Risk"
	SegmentLost        = "Lost Customers"
	SegmentOther       = "Other"
)

// CustomerRFM is one customer's recency/frequency/monetary record.
// Scores are quintile ranks over the current customer population,
// recomputed in full on every invocation.
type CustomerRFM struct {
	CustomerID    string  `json:"customerId"`
	RecencyDays   int     `json:"recencyDays"`
	Frequency     int     `json:"frequency"`
	MonetaryTotal float64 `json:"monetaryTotal"`
	RScore        int     `json:"rScore"`
	FScore        int     `json:"fScore"`
	MScore        int     `json:"mScore"`
	Segment       string  `json:"segment"`
}

// RFMReport is the ecommerce-rfm payload
type RFMReport struct {
	Customers      []CustomerRFM  `json:"customers"`
	SegmentCounts  map[string]int `json:"segmentCounts"`
	TotalCustomers int            `json:"totalCustomers"`
}

// TopCustomer is one entry of the revenue leaderboard
type TopCustomer struct {
	CustomerID string  `json:"customerId"`
	Revenue    float64 `json:"revenue"`
	Orders     int     `json:"orders"`
}

// CustomerReport is the ecommerce-customers payload. "New" means exactly
// one order in this dataset snapshot; "returning" means two or more.
type CustomerReport struct {
	TotalCustomers           int           `json:"totalCustomers"`
	NewCustomers             int           `json:"newCustomers"`
	ReturningCustomers       int           `json:"returningCustomers"`
	NewCustomerPercent       float64       `json:"newCustomerPercent"`
	ReturningCustomerPercent float64       `json:"returningCustomerPercent"`
	AverageCLV               float64       `json:"averageCLV"`
	RepeatPurchaseRate       float64       `json:"repeatPurchaseRate"`
	TopCustomers             []TopCustomer `json:"topCustomers"`
}

// CohortBucket groups the customers whose first purchase fell in
// CohortMonth. Revenue is lifetime: every later order of a cohort member
// accrues here, regardless of when it happened.
type CohortBucket struct {
	CohortMonth           string  `json:"cohortMonth"`
	CustomerCount         int     `json:"customerCount"`
	CumulativeRevenue     float64 `json:"cumulativeRevenue"`
	AvgRevenuePerCustomer float64 `json:"avgRevenuePerCustomer"`
}

// CohortReport is the ecommerce-cohorts payload
type CohortReport struct {
	Cohorts      []CohortBucket `json:"cohorts"`
	TotalCohorts int            `json:"totalCohorts"`
}

// ForecastPoint is one projected future day
type ForecastPoint struct {
	Date             string  `json:"date"`
	PredictedRevenue float64 `json:"predictedRevenue"`
}

// ForecastReport is the ecommerce-forecast payload
type ForecastReport struct {
	Trend      Direction       `json:"trend"`
	GrowthRate float64         `json:"growthRate"`
	Forecast   []ForecastPoint `json:"forecast"`
}

// ColumnOutliers reports IQR bounds and flagged values for one column
type ColumnOutliers struct {
	Name         string    `json:"name"`
	Q1           float64   `json:"q1"`
	Q3           float64   `json:"q3"`
	LowerBound   float64   `json:"lowerBound"`
	UpperBound   float64   `json:"upperBound"`
	OutlierCount int       `json:"outlierCount"`
	Samples      []float64 `json:"samples"`
}

// OutlierReport is the outliers payload
type OutlierReport struct {
	Columns []ColumnOutliers `json:"columns"`
}

// ColumnQuality reports null/uniqueness figures for one column
type ColumnQuality struct {
	Name           string  `json:"name"`
	NullCount      int     `json:"nullCount"`
	NullPercent    float64 `json:"nullPercent"`
	UniqueCount    int     `json:"uniqueCount"`
	DuplicateCount int     `json:"duplicateCount"`
}

// QualityReport is the quality payload
type QualityReport struct {
	RowCount int             `json:"rowCount"`
	Columns  []ColumnQuality `json:"columns"`
}

// ColumnTrend reports the before/after comparison for one numeric column
type ColumnTrend struct {
	Name          string    `json:"name"`
	Direction     Direction `json:"direction"`
	GrowthRate    float64   `json:"growthRate"`
	FirstHalfAvg  float64   `json:"firstHalfAvg"`
	SecondHalfAvg float64   `json:"secondHalfAvg"`
}

// TrendReport is the trends payload
type TrendReport struct {
	Columns []ColumnTrend `json:"columns"`
}
