package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect Status
	}{
		{
			name:   "ok",
			input:  "ok",
			expect: StatusOK,
		},
		{
			name:   "error",
			input:  "error",
			expect: StatusError,
		},
		{
			name:   "unknown passes through as unknown",
			input:  "unknown",
			expect: StatusUnknown,
		},
		{
			name:   "unrecognized falls back to unknown",
			input:  "degraded",
			expect: StatusUnknown,
		},
		{
			name:   "empty falls back to unknown",
			input:  "",
			expect: StatusUnknown,
		},
		{
			name:   "case sensitive: OK is not ok",
			input:  "OK",
			expect: StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseStatus(tt.input))
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
}
