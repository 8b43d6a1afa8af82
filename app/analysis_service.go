package app

import (
	"context"

	"tajir/adapters/clean"
	"tajir/adapters/detect"
	"tajir/adapters/stats"
	"tajir/domain/analysis"
	"tajir/domain/core"
	"tajir/domain/record"
	"tajir/domain/roles"

	"golang.org/x/sync/errgroup"
)

// AnalysisService is the dispatch layer over the analytics engine: detect
// column roles, clean, then run the requested analysis. Every invocation
// is pure and idempotent over its inputs; failures come back inside the
// Result, never as a Go error, so the caller can render partial
// dashboards.
type AnalysisService struct {
	detector   *detect.Detector
	cleaner    *clean.Cleaner
	summarizer *stats.Summarizer
	revenue    *stats.RevenueAnalyzer
	products   *stats.ProductAnalyzer
	rfm        *stats.RFMAnalyzer
	customers  *stats.CustomerAnalyzer
	cohorts    *stats.CohortAnalyzer
	forecaster *stats.Forecaster
	generic    *stats.GenericAnalyzer

	// defaultHorizon applies when a forecast request leaves HorizonDays
	// unset
	defaultHorizon int
}

// Config tunes the deployment-adjustable engine knobs
type Config struct {
	// DetectSampleSize is the number of rows the detector sniffs for
	// content-based role fallback
	DetectSampleSize int
	// ForecastHorizonDays is the projection length used when a request
	// does not specify one
	ForecastHorizonDays int
}

// DefaultConfig returns the tuning the engine ships with
func DefaultConfig() Config {
	return Config{
		DetectSampleSize:    detect.DefaultConfig().SampleSize,
		ForecastHorizonDays: stats.DefaultHorizonDays,
	}
}

// NewAnalysisService wires the engine with default configurations
func NewAnalysisService() *AnalysisService {
	return NewConfiguredAnalysisService(DefaultConfig())
}

// NewConfiguredAnalysisService wires the engine with the given tuning.
// Zero or negative knobs fall back to the defaults.
func NewConfiguredAnalysisService(cfg Config) *AnalysisService {
	detectCfg := detect.DefaultConfig()
	if cfg.DetectSampleSize > 0 {
		detectCfg.SampleSize = cfg.DetectSampleSize
	}
	horizon := cfg.ForecastHorizonDays
	if horizon <= 0 {
		horizon = stats.DefaultHorizonDays
	}
	return &AnalysisService{
		detector:       detect.NewDetector(detectCfg, roles.DefaultKeywords()),
		cleaner:        clean.NewCleaner(),
		summarizer:     stats.NewSummarizer(stats.DefaultSummaryConfig()),
		revenue:        stats.NewRevenueAnalyzer(),
		products:       stats.NewProductAnalyzer(),
		rfm:            stats.NewRFMAnalyzer(),
		customers:      stats.NewCustomerAnalyzer(),
		cohorts:        stats.NewCohortAnalyzer(),
		forecaster:     stats.NewForecaster(),
		generic:        stats.NewGenericAnalyzer(stats.DefaultGenericConfig()),
		defaultHorizon: horizon,
	}
}

// Request describes one analysis invocation
type Request struct {
	Kind    analysis.Kind
	Records []record.Record
	// Columns fixes left-to-right column order for detection tiebreaks
	// and output ordering; optional.
	Columns []string
	// Hints pre-claims roles the caller already knows; detection is
	// skipped for those roles.
	Hints roles.ColumnRoleMap
	// HorizonDays applies to the forecast kind only; zero means default.
	HorizonDays int
}

// requiredRoles maps each e-commerce analysis to the semantic roles it
// cannot run without. Generic analyses need none.
var requiredRoles = map[analysis.Kind][]roles.Role{
	analysis.KindRevenue:   {roles.RoleRevenue, roles.RoleDate},
	analysis.KindProducts:  {roles.RoleProduct, roles.RoleRevenue},
	analysis.KindRFM:       {roles.RoleCustomer, roles.RoleDate, roles.RoleRevenue},
	analysis.KindCustomers: {roles.RoleCustomer, roles.RoleRevenue},
	analysis.KindCohorts:   {roles.RoleCustomer, roles.RoleDate, roles.RoleRevenue},
	analysis.KindForecast:  {roles.RoleDate, roles.RoleRevenue},
}

// Run executes one analysis and always returns a Result. Unknown kinds,
// missing role columns, empty datasets and short forecast histories all
// come back as result-level errors.
func (s *AnalysisService) Run(ctx context.Context, req Request) analysis.Result {
	if !req.Kind.IsValid() {
		return analysis.NewFailure(req.Kind, roles.ColumnRoleMap{}, core.ErrUnknownAnalysisKind)
	}

	detected := s.detector.Detect(req.Records, req.Columns, req.Hints)

	required := requiredRoles[req.Kind]
	if len(required) > 0 {
		if missing := detected.Missing(required...); len(missing) > 0 {
			return analysis.NewFailure(req.Kind, detected, core.NewMissingColumnsError(missing))
		}
	}

	cleaned := s.cleaner.Clean(req.Records, detected)

	switch req.Kind {
	case analysis.KindSummary:
		return analysis.NewResult(req.Kind, detected, s.summarizer.Summarize(cleaned, req.Columns))
	case analysis.KindOutliers:
		return analysis.NewResult(req.Kind, detected, s.generic.Outliers(cleaned, req.Columns))
	case analysis.KindQuality:
		return analysis.NewResult(req.Kind, detected, s.generic.Quality(cleaned, req.Columns))
	case analysis.KindTrends:
		return analysis.NewResult(req.Kind, detected, s.generic.Trends(cleaned, req.Columns))
	case analysis.KindRevenue:
		revenueCol, _ := detected.Column(roles.RoleRevenue)
		dateCol, _ := detected.Column(roles.RoleDate)
		return analysis.NewResult(req.Kind, detected, s.revenue.Analyze(cleaned, revenueCol, dateCol))
	case analysis.KindProducts:
		productCol, _ := detected.Column(roles.RoleProduct)
		revenueCol, _ := detected.Column(roles.RoleRevenue)
		quantityCol, _ := detected.Column(roles.RoleQuantity)
		return analysis.NewResult(req.Kind, detected, s.products.Analyze(cleaned, productCol, revenueCol, quantityCol))
	case analysis.KindRFM:
		customerCol, _ := detected.Column(roles.RoleCustomer)
		dateCol, _ := detected.Column(roles.RoleDate)
		revenueCol, _ := detected.Column(roles.RoleRevenue)
		return analysis.NewResult(req.Kind, detected, s.rfm.Analyze(cleaned, customerCol, dateCol, revenueCol))
	case analysis.KindCustomers:
		customerCol, _ := detected.Column(roles.RoleCustomer)
		revenueCol, _ := detected.Column(roles.RoleRevenue)
		return analysis.NewResult(req.Kind, detected, s.customers.Analyze(cleaned, customerCol, revenueCol))
	case analysis.KindCohorts:
		customerCol, _ := detected.Column(roles.RoleCustomer)
		dateCol, _ := detected.Column(roles.RoleDate)
		revenueCol, _ := detected.Column(roles.RoleRevenue)
		return analysis.NewResult(req.Kind, detected, s.cohorts.Analyze(cleaned, customerCol, dateCol, revenueCol))
	case analysis.KindForecast:
		dateCol, _ := detected.Column(roles.RoleDate)
		revenueCol, _ := detected.Column(roles.RoleRevenue)
		horizon := req.HorizonDays
		if horizon <= 0 {
			horizon = s.defaultHorizon
		}
		report, err := s.forecaster.Forecast(cleaned, dateCol, revenueCol, horizon)
		if err != nil {
			return analysis.NewFailure(req.Kind, detected, err)
		}
		return analysis.NewResult(req.Kind, detected, report)
	default:
		return analysis.NewFailure(req.Kind, detected, core.ErrUnknownAnalysisKind)
	}
}

// RunDashboard executes several analyses over one dataset concurrently.
// The analyses share no mutable state, so each runs in its own goroutine;
// results come back in the order the kinds were requested.
func (s *AnalysisService) RunDashboard(ctx context.Context, records []record.Record, columns []string, hints roles.ColumnRoleMap, kinds []analysis.Kind) []analysis.Result {
	results := make([]analysis.Result, len(kinds))
	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			results[i] = s.Run(ctx, Request{
				Kind:    kind,
				Records: records,
				Columns: columns,
				Hints:   hints,
			})
			return nil
		})
	}
	// Workers never return errors; failures are data inside each Result.
	_ = g.Wait()
	return results
}
