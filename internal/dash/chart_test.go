package dash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulseboard/pulse/internal/metrics"
)

func TestRenderRevenueChart(t *testing.T) {
	series := &metrics.Series{
		Labels:  []string{"Jan", "Feb"},
		Revenue: []float64{100, 200},
	}

	out := RenderRevenueChart(series, 40, 4)

	assert.NotEmpty(t, out)
	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "Feb")

	// Labels keep series order: Jan before Feb
	assert.Less(t, strings.Index(out, "Jan"), strings.Index(out, "Feb"))

	// 4 plot rows plus the axis row
	assert.Len(t, strings.Split(out, "\n"), 5)
}

func TestRenderRevenueChart_NilSeries(t *testing.T) {
	assert.Empty(t, RenderRevenueChart(nil, 40, 4))
}

func TestRenderRevenueChart_EmptySeries(t *testing.T) {
	assert.Empty(t, RenderRevenueChart(&metrics.Series{}, 40, 4))
}

func TestRenderRevenueChart_ZeroDimensions(t *testing.T) {
	series := &metrics.Series{
		Labels:  []string{"Jan"},
		Revenue: []float64{100},
	}

	assert.Empty(t, RenderRevenueChart(series, 0, 4))
	assert.Empty(t, RenderRevenueChart(series, 40, 0))
}

func TestRenderChartLegend(t *testing.T) {
	series := &metrics.Series{
		Labels:  []string{"Jan", "Feb", "Mar"},
		Revenue: []float64{150, 120, 178},
	}

	out := renderChartLegend(series)

	assert.Contains(t, out, "low 120")
	assert.Contains(t, out, "high 178")
	assert.Empty(t, renderChartLegend(nil))
}

func TestRenderAxisLabels(t *testing.T) {
	out := renderAxisLabels([]string{"Jan", "Feb", "Mar"}, 30)

	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "Mar")
	assert.Less(t, strings.Index(out, "Jan"), strings.Index(out, "Mar"))
}

func TestRenderAxisLabels_SingleLabel(t *testing.T) {
	out := renderAxisLabels([]string{"Q1"}, 10)
	assert.Contains(t, out, "Q1")
}

func TestRenderAxisLabels_Empty(t *testing.T) {
	assert.Empty(t, renderAxisLabels(nil, 10))
}
