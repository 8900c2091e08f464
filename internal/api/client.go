// Package api implements the client for the external dashboard service.
// The Client interface is the capability injected into the TUI and the
// one-shot commands; HTTPClient is the production implementation and
// testing.FakeClient the test double.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/pulseboard/pulse/internal/errors"
	"github.com/pulseboard/pulse/internal/logger"
	"github.com/pulseboard/pulse/internal/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// API paths served by the dashboard service.
const (
	pathMetrics  = "/api/v1/metrics"
	pathHealth   = "/api/v1/health"
	pathInsights = "/api/v1/insights"
	pathRevenue  = "/api/v1/revenue"
)

// Client is the dashboard-service capability. Every method is a single GET
// that returns a fresh snapshot; callers own refresh cadence and
// cancellation via ctx.
type Client interface {
	Metrics(ctx context.Context) (*metrics.Record, error)
	Health(ctx context.Context) ([]metrics.SourceStatus, error)
	Insights(ctx context.Context) ([]metrics.Insight, error)
	RevenueSeries(ctx context.Context) (*metrics.Series, error)
}

// HTTPClient talks to the dashboard service over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// NewHTTPClient creates a client for the service at baseURL.
// A zero timeout falls back to 10s.
func NewHTTPClient(baseURL string, timeout time.Duration, log logger.Logger) *HTTPClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.Noop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// metricsPayload is the wire shape of the metrics endpoint.
type metricsPayload struct {
	RevenueGrowth     *float64 `json:"revenue_growth"`
	ClientHealthScore *float64 `json:"client_health_score"`
	SalesEfficiency   *float64 `json:"sales_efficiency"`
	AITaskCompletion  *float64 `json:"ai_task_completion_rate"`
}

// Metrics fetches the current KPI snapshot.
func (c *HTTPClient) Metrics(ctx context.Context) (*metrics.Record, error) {
	var payload metricsPayload
	if err := c.getJSON(ctx, pathMetrics, &payload); err != nil {
		return nil, err
	}

	values := make(map[metrics.Key]float64, 4)
	for _, f := range []struct {
		key metrics.Key
		val *float64
	}{
		{metrics.KeyRevenueGrowth, payload.RevenueGrowth},
		{metrics.KeyClientHealth, payload.ClientHealthScore},
		{metrics.KeySalesEfficiency, payload.SalesEfficiency},
		{metrics.KeyAITaskCompletion, payload.AITaskCompletion},
	} {
		if f.val != nil {
			values[f.key] = *f.val
		}
	}

	record := metrics.NewRecord(values, time.Now())
	if err := record.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDecode,
			"Metrics response is incomplete",
			"The dashboard service should return all four KPI fields")
	}
	return record, nil
}

// sourcePayload is the wire shape of one health entry.
type sourcePayload struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Health fetches the ordered source health list. Unrecognized status
// strings map to unknown rather than failing the whole strip.
func (c *HTTPClient) Health(ctx context.Context) ([]metrics.SourceStatus, error) {
	var payload []sourcePayload
	if err := c.getJSON(ctx, pathHealth, &payload); err != nil {
		return nil, err
	}

	sources := make([]metrics.SourceStatus, 0, len(payload))
	for _, p := range payload {
		status := metrics.ParseStatus(p.Status)
		if status == metrics.StatusUnknown && p.Status != "" && p.Status != "unknown" {
			c.log.Warn("unrecognized status %q for source %q, treating as unknown", p.Status, p.Name)
		}
		sources = append(sources, metrics.SourceStatus{Name: p.Name, Status: status})
	}
	return sources, nil
}

// insightPayload is the wire shape of one insight entry.
type insightPayload struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// Insights fetches the advisory messages. Entries with an unknown category
// are dropped with a warning instead of being assigned a guessed severity.
func (c *HTTPClient) Insights(ctx context.Context) ([]metrics.Insight, error) {
	var payload []insightPayload
	if err := c.getJSON(ctx, pathInsights, &payload); err != nil {
		return nil, err
	}

	insights := make([]metrics.Insight, 0, len(payload))
	for _, p := range payload {
		category, ok := metrics.ParseInsightCategory(p.Category)
		if !ok {
			c.log.Warn("dropping insight %q with unknown category %q", p.Title, p.Category)
			continue
		}
		insights = append(insights, metrics.Insight{
			Category: category,
			Title:    p.Title,
			Body:     p.Body,
		})
	}
	return insights, nil
}

// seriesPayload is the wire shape of the revenue endpoint.
type seriesPayload struct {
	Labels  []string  `json:"labels"`
	Revenue []float64 `json:"revenue"`
}

// RevenueSeries fetches the revenue chart series. A length mismatch is
// rejected at this boundary so the chart never sees invalid data.
func (c *HTTPClient) RevenueSeries(ctx context.Context) (*metrics.Series, error) {
	var payload seriesPayload
	if err := c.getJSON(ctx, pathRevenue, &payload); err != nil {
		return nil, err
	}

	series := &metrics.Series{Labels: payload.Labels, Revenue: payload.Revenue}
	if err := series.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDecode,
			"Revenue series is malformed",
			"labels and revenue must be equal-length, non-empty arrays")
	}
	return series, nil
}

// getJSON performs a GET against path and decodes the body into out.
func (c *HTTPClient) getJSON(ctx context.Context, path string, out interface{}) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFetch,
			"Invalid dashboard API request",
			"Check the api.url setting in .pulse.yaml")
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("GET %s", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFetch,
			fmt.Sprintf("Can't reach the dashboard API at %s", c.baseURL),
			"Check the service is running and api.url is correct")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return errors.New(errors.ErrFetch,
			fmt.Sprintf("Dashboard API returned %s for %s", resp.Status, path),
			"Check the service logs for details")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrFetch,
			"Failed reading the dashboard API response", "")
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCode(err, errors.ErrDecode,
			fmt.Sprintf("Dashboard API returned invalid JSON for %s", path),
			"The service may be misconfigured or an incompatible version")
	}
	return nil
}
