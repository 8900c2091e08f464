package metrics

import "fmt"

// Series is a labeled revenue series for the chart: paired labels and
// values defining a single line. Built once per fetch; never mutated.
type Series struct {
	Labels  []string
	Revenue []float64
}

// Validate enforces the series invariant: labels and revenue must be the
// same non-zero length.
func (s *Series) Validate() error {
	if s == nil {
		return fmt.Errorf("nil series")
	}
	if len(s.Labels) == 0 {
		return fmt.Errorf("empty series")
	}
	if len(s.Labels) != len(s.Revenue) {
		return fmt.Errorf("series length mismatch: %d labels, %d values",
			len(s.Labels), len(s.Revenue))
	}
	return nil
}

// Len returns the number of points in the series.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Labels)
}
