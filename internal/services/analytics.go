package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"retail-dashboard/internal/analytics"
	"retail-dashboard/internal/datasource"
	"retail-dashboard/internal/models"
)

// Snapshot holds every report table computed from one dataset load. Reports
// are precomputed once so query methods are lock-guarded slice reads.
type Snapshot struct {
	CountryDemand []models.CountryDemand     `json:"country_demand"`
	RegionDemand  []models.RegionDemand      `json:"region_demand"`
	TopCountries  []models.CountryQuantity   `json:"top_countries"`
	CountryValue  []models.CountryValue      `json:"country_value"`
	ValueRollup   models.CountryValueRollup  `json:"value_rollup"`
	CountryAOV    []models.CountryAOV        `json:"country_aov"`
	ContinentAOV  []models.ContinentAOV      `json:"continent_aov"`
	KPIs          models.KPISummary          `json:"kpis"`
	Retention     models.RetentionReport     `json:"retention"`
	Pareto        models.ParetoReport        `json:"pareto"`
	Quality       models.DataQuality         `json:"quality"`
	LastModified  time.Time                  `json:"last_modified"`
	RecordCount   int64                      `json:"record_count"`
}

type Analytics struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	logger   *slog.Logger
}

func NewAnalytics(logger *slog.Logger) *Analytics {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analytics{
		snapshot: &Snapshot{},
		logger:   logger,
	}
}

// Load pulls the dataset from the source and recomputes every report.
// The previous snapshot stays visible until the new one is complete.
func (a *Analytics) Load(ctx context.Context, src datasource.Source) error {
	start := time.Now()

	rows, quality, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	snap, err := a.compute(ctx, rows)
	if err != nil {
		return fmt.Errorf("compute reports: %w", err)
	}
	snap.Quality.SkippedRows = quality.SkippedRows

	a.mu.Lock()
	a.snapshot = snap
	a.mu.Unlock()

	a.logger.Info("analytics refresh complete",
		"records", snap.RecordCount,
		"countries", len(snap.CountryValue),
		"duration", time.Since(start))
	return nil
}

// SetData recomputes reports from an in-memory dataset, bypassing any
// source. Used by tests and by callers that already hold the rows.
func (a *Analytics) SetData(rows []models.Transaction) {
	snap, _ := a.compute(context.Background(), rows)

	a.mu.Lock()
	a.snapshot = snap
	a.mu.Unlock()
}

// compute runs the independent report builders concurrently. Each goroutine
// writes a distinct snapshot field, so the snapshot needs no locking until
// it is published.
func (a *Analytics) compute(ctx context.Context, rows []models.Transaction) (*Snapshot, error) {
	snap := &Snapshot{
		RecordCount:  int64(len(rows)),
		LastModified: time.Now(),
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap.CountryDemand = analytics.DemandByCountry(rows)
		return nil
	})
	g.Go(func() error {
		snap.RegionDemand = analytics.DemandByRegion(rows)
		return nil
	})
	g.Go(func() error {
		snap.TopCountries = analytics.TopCountriesByQuantity(rows, defaultTopCountries)
		return nil
	})
	g.Go(func() error {
		snap.CountryValue = analytics.ValueByCountry(rows)
		snap.ValueRollup = analytics.RollupCountryValue(snap.CountryValue, defaultTopCountries)
		return nil
	})
	g.Go(func() error {
		countryAOV := analytics.AOVByCountry(rows)
		snap.CountryAOV = countryAOV
		snap.ContinentAOV = analytics.AOVByContinent(countryAOV)
		return nil
	})
	g.Go(func() error {
		snap.KPIs = analytics.KPIs(rows)
		return nil
	})
	g.Go(func() error {
		snap.Retention = analytics.Retention(rows)
		return nil
	})
	g.Go(func() error {
		snap.Pareto = analytics.Pareto(rows, analytics.DefaultParetoThreshold)
		return nil
	})
	g.Go(func() error {
		snap.Quality = analytics.Quality(rows)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

const defaultTopCountries = 10

// Query methods return precomputed slices; callers must not mutate them.

func (a *Analytics) CountryDemand() []models.CountryDemand {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.CountryDemand
}

func (a *Analytics) RegionDemand() []models.RegionDemand {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.RegionDemand
}

func (a *Analytics) TopCountries(limit int) []models.CountryQuantity {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if limit <= 0 || len(a.snapshot.TopCountries) <= limit {
		return a.snapshot.TopCountries
	}
	return a.snapshot.TopCountries[:limit]
}

func (a *Analytics) CountryValue() []models.CountryValue {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.CountryValue
}

func (a *Analytics) CountryValueRollup() models.CountryValueRollup {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.ValueRollup
}

func (a *Analytics) CountryAOV(limit int) []models.CountryAOV {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if limit <= 0 || len(a.snapshot.CountryAOV) <= limit {
		return a.snapshot.CountryAOV
	}
	return a.snapshot.CountryAOV[:limit]
}

func (a *Analytics) ContinentAOV() []models.ContinentAOV {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.ContinentAOV
}

func (a *Analytics) KPIs() models.KPISummary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.KPIs
}

func (a *Analytics) Retention() models.RetentionReport {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Retention
}

func (a *Analytics) Pareto() models.ParetoReport {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Pareto
}

func (a *Analytics) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return *a.snapshot
}

// Stats reports dataset shape for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return map[string]any{
		"record_count":      a.snapshot.RecordCount,
		"last_processed":    a.snapshot.LastModified,
		"countries":         len(a.snapshot.CountryValue),
		"regions":           len(a.snapshot.RegionDemand),
		"pareto_products":   a.snapshot.Pareto.ProductCount,
		"retained_customers": a.snapshot.Retention.RetainedCount,
		"skipped_rows":      a.snapshot.Quality.SkippedRows,
		"inconsistent_rows": a.snapshot.Quality.InconsistentRows,
	}
}
