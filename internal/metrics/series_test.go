package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeries_Validate(t *testing.T) {
	tests := []struct {
		name    string
		series  *Series
		wantErr bool
	}{
		{
			name: "matched lengths",
			series: &Series{
				Labels:  []string{"Jan", "Feb", "Mar"},
				Revenue: []float64{100, 200, 150},
			},
			wantErr: false,
		},
		{
			name: "more labels than values",
			series: &Series{
				Labels:  []string{"Jan", "Feb"},
				Revenue: []float64{100},
			},
			wantErr: true,
		},
		{
			name: "more values than labels",
			series: &Series{
				Labels:  []string{"Jan"},
				Revenue: []float64{100, 200},
			},
			wantErr: true,
		},
		{
			name:    "empty series",
			series:  &Series{},
			wantErr: true,
		},
		{
			name:    "nil series",
			series:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeries_Len(t *testing.T) {
	s := &Series{Labels: []string{"Jan", "Feb"}, Revenue: []float64{100, 200}}
	assert.Equal(t, 2, s.Len())

	var nilSeries *Series
	assert.Equal(t, 0, nilSeries.Len())
}

func TestParseInsightCategory(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect InsightCategory
		ok     bool
	}{
		{
			name:   "risk",
			input:  "risk",
			expect: CategoryRisk,
			ok:     true,
		},
		{
			name:   "opportunity",
			input:  "opportunity",
			expect: CategoryOpportunity,
			ok:     true,
		},
		{
			name:  "unknown category rejected",
			input: "fyi",
			ok:    false,
		},
		{
			name:  "empty rejected",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInsightCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expect, got)
			}
		})
	}
}
