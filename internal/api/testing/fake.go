// Package testing provides test doubles for the api package.
package testing

import (
	"context"
	"sync"
	"time"

	"github.com/pulseboard/pulse/internal/metrics"
)

// FakeClient simulates the dashboard service for testing.
// It records calls and returns configured results; the zero-configured
// fake succeeds with canned data.
type FakeClient struct {
	mu sync.Mutex

	// Configured results. Nil values fall back to canned defaults.
	Record  *metrics.Record
	Sources []metrics.SourceStatus
	Advice  []metrics.Insight
	Series  *metrics.Series

	// Per-capability failures.
	MetricsErr  error
	HealthErr   error
	InsightsErr error
	SeriesErr   error

	// Call tracking.
	MetricsCalls  int
	HealthCalls   int
	InsightsCalls int
	SeriesCalls   int
}

// NewFakeClient creates a fake client that succeeds with canned data.
func NewFakeClient() *FakeClient {
	return &FakeClient{}
}

// Metrics returns the configured record or canned defaults.
func (f *FakeClient) Metrics(ctx context.Context) (*metrics.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.MetricsCalls++
	if f.MetricsErr != nil {
		return nil, f.MetricsErr
	}
	if f.Record != nil {
		return f.Record, nil
	}
	return metrics.NewRecord(map[metrics.Key]float64{
		metrics.KeyRevenueGrowth:    12.5,
		metrics.KeyClientHealth:     87.3,
		metrics.KeySalesEfficiency:  64.0,
		metrics.KeyAITaskCompletion: 91.2,
	}, time.Now()), nil
}

// Health returns the configured sources or canned defaults.
func (f *FakeClient) Health(ctx context.Context) ([]metrics.SourceStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.HealthCalls++
	if f.HealthErr != nil {
		return nil, f.HealthErr
	}
	if f.Sources != nil {
		return f.Sources, nil
	}
	return []metrics.SourceStatus{
		{Name: "CRM", Status: metrics.StatusOK},
		{Name: "Billing", Status: metrics.StatusOK},
		{Name: "Warehouse", Status: metrics.StatusError},
	}, nil
}

// Insights returns the configured insights or canned defaults.
func (f *FakeClient) Insights(ctx context.Context) ([]metrics.Insight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.InsightsCalls++
	if f.InsightsErr != nil {
		return nil, f.InsightsErr
	}
	if f.Advice != nil {
		return f.Advice, nil
	}
	return []metrics.Insight{
		{Category: metrics.CategoryRisk, Title: "Churn risk", Body: "Two key accounts went quiet this week."},
		{Category: metrics.CategoryOpportunity, Title: "Upsell window", Body: "Usage doubled for the Meridian account."},
	}, nil
}

// RevenueSeries returns the configured series or canned defaults.
func (f *FakeClient) RevenueSeries(ctx context.Context) (*metrics.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.SeriesCalls++
	if f.SeriesErr != nil {
		return nil, f.SeriesErr
	}
	if f.Series != nil {
		return f.Series, nil
	}
	return &metrics.Series{
		Labels:  []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Revenue: []float64{120, 135, 128, 152, 161, 178},
	}, nil
}

// SetMetricsFail configures the metrics capability to fail.
func (f *FakeClient) SetMetricsFail(err error) *FakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MetricsErr = err
	return f
}

// SetHealthFail configures the health capability to fail.
func (f *FakeClient) SetHealthFail(err error) *FakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.HealthErr = err
	return f
}

// SetSeriesFail configures the revenue capability to fail.
func (f *FakeClient) SetSeriesFail(err error) *FakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SeriesErr = err
	return f
}
