package dash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pulseboard/pulse/internal/metrics"
)

func record(growth, health, sales, ai float64) *metrics.Record {
	return metrics.NewRecord(map[metrics.Key]float64{
		metrics.KeyRevenueGrowth:    growth,
		metrics.KeyClientHealth:     health,
		metrics.KeySalesEfficiency:  sales,
		metrics.KeyAITaskCompletion: ai,
	}, time.Now())
}

func TestHistoryPushAndTrend(t *testing.T) {
	h := NewHistory(10)

	h.Push(record(1, 80, 60, 90))
	h.Push(record(2, 81, 61, 91))
	h.Push(record(3, 82, 62, 92))

	assert.Equal(t, []float64{1, 2, 3}, h.Trend(metrics.KeyRevenueGrowth, 10))
	assert.Equal(t, []float64{81, 82}, h.Trend(metrics.KeyClientHealth, 2))
	assert.Equal(t, 3, h.Count(metrics.KeySalesEfficiency))
}

func TestHistoryWrapsAround(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		h.Push(record(float64(i), 80, 60, 90))
	}

	// Only the newest 3 samples survive, oldest first.
	assert.Equal(t, []float64{3, 4, 5}, h.Trend(metrics.KeyRevenueGrowth, 10))
	assert.Equal(t, 3, h.Count(metrics.KeyRevenueGrowth))
}

func TestHistorySkipsMissingKeys(t *testing.T) {
	h := NewHistory(10)

	h.Push(metrics.NewRecord(map[metrics.Key]float64{
		metrics.KeyRevenueGrowth: 4.2,
	}, time.Now()))

	assert.Equal(t, []float64{4.2}, h.Trend(metrics.KeyRevenueGrowth, 10))
	assert.Nil(t, h.Trend(metrics.KeyClientHealth, 10))
}

func TestHistoryNilRecord(t *testing.T) {
	h := NewHistory(10)
	h.Push(nil)
	assert.Equal(t, 0, h.Count(metrics.KeyRevenueGrowth))
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(10)
	h.Push(record(1, 80, 60, 90))
	h.Clear()

	assert.Equal(t, 0, h.Count(metrics.KeyRevenueGrowth))
	assert.Nil(t, h.Trend(metrics.KeyRevenueGrowth, 10))
}

func TestHistoryDefaultSize(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, DefaultHistorySize, h.size)
}
