// Package metrics defines the domain model for the dashboard: the closed
// set of KPI keys, the metrics snapshot, source health, insights, and the
// revenue series. All types are plain values constructed by a fetch, held
// for the render pass, and replaced wholesale on refresh.
package metrics

import (
	"fmt"
	"time"
)

// Key identifies one of the dashboard KPIs. The set is closed: anything
// outside the four known keys fails ParseKey rather than rendering as an
// empty card.
type Key string

const (
	KeyRevenueGrowth    Key = "revenue_growth"
	KeyClientHealth     Key = "client_health_score"
	KeySalesEfficiency  Key = "sales_efficiency"
	KeyAITaskCompletion Key = "ai_task_completion_rate"
)

// Keys returns the KPI keys in fixed display order.
func Keys() []Key {
	return []Key{
		KeyRevenueGrowth,
		KeyClientHealth,
		KeySalesEfficiency,
		KeyAITaskCompletion,
	}
}

// ParseKey converts a wire key to a Key. Returns ok=false for keys outside
// the closed set.
func ParseKey(s string) (Key, bool) {
	switch Key(s) {
	case KeyRevenueGrowth, KeyClientHealth, KeySalesEfficiency, KeyAITaskCompletion:
		return Key(s), true
	default:
		return "", false
	}
}

// Label returns the human-readable title for the key's metric card.
func (k Key) Label() string {
	switch k {
	case KeyRevenueGrowth:
		return "Revenue Growth"
	case KeyClientHealth:
		return "Client Health"
	case KeySalesEfficiency:
		return "Sales Efficiency"
	case KeyAITaskCompletion:
		return "AI Task Completion"
	default:
		return string(k)
	}
}

// Format renders a value for display with the key's unit suffix.
// Percentage metrics get a "%" suffix; the client health score is a bare
// number.
func (k Key) Format(v float64) string {
	switch k {
	case KeyClientHealth:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.1f%%", v)
	}
}

// Record is a snapshot of the four dashboard KPI values at fetch time.
// It is immutable once built; refreshes produce a new Record.
type Record struct {
	Values  map[Key]float64
	TakenAt time.Time
}

// NewRecord builds a Record from the given values, stamped with now.
func NewRecord(values map[Key]float64, now time.Time) *Record {
	copied := make(map[Key]float64, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Record{Values: copied, TakenAt: now}
}

// Value returns the value for a key and whether it is present.
func (r *Record) Value(k Key) (float64, bool) {
	if r == nil {
		return 0, false
	}
	v, ok := r.Values[k]
	return v, ok
}

// Validate checks that every key of the closed set is present.
func (r *Record) Validate() error {
	if r == nil {
		return fmt.Errorf("nil metrics record")
	}
	for _, k := range Keys() {
		if _, ok := r.Values[k]; !ok {
			return fmt.Errorf("metrics record missing %q", k)
		}
	}
	return nil
}
