package dash

import (
	"sync"

	"github.com/pulseboard/pulse/internal/metrics"
)

// DefaultHistorySize is the default number of snapshots to retain per KPI.
const DefaultHistorySize = 60

// History manages KPI trend history using per-key ring buffers.
// It provides thread-safe access to historical data for sparkline rendering.
type History struct {
	mu   sync.RWMutex
	size int
	keys map[metrics.Key]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a new history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size: size,
		keys: make(map[metrics.Key]*ringBuffer),
	}
}

// Push records one value per KPI key from a metrics snapshot.
// Keys missing from the record are skipped so their trend is not distorted.
func (h *History) Push(record *metrics.Record) {
	if record == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, k := range metrics.Keys() {
		v, ok := record.Value(k)
		if !ok {
			continue
		}
		buf, ok := h.keys[k]
		if !ok {
			buf = newRingBuffer(h.size)
			h.keys[k] = buf
		}
		buf.push(v)
	}
}

// Trend returns the last count values for a KPI in chronological order
// (oldest first). Returns fewer values if not enough history is available.
func (h *History) Trend(key metrics.Key, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.keys[key]
	if !ok {
		return nil
	}

	return buf.getLast(count)
}

// Count returns the number of stored samples for a KPI.
func (h *History) Count(key metrics.Key) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.keys[key]
	if !ok {
		return 0
	}

	return buf.count
}

// Clear removes all stored history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys = make(map[metrics.Key]*ringBuffer)
}

// newRingBuffer creates a new ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value
	// is at head-1. We want count values ending there.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}
