package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "default config is valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing api url",
			mutate:  func(c *Config) { c.API.URL = "" },
			wantErr: "api.url is required",
		},
		{
			name:    "url without scheme",
			mutate:  func(c *Config) { c.API.URL = "localhost:8080" },
			wantErr: "not a valid URL",
		},
		{
			name:    "refresh below minimum",
			mutate:  func(c *Config) { c.Refresh = 200 * time.Millisecond },
			wantErr: "too short",
		},
		{
			name:   "zero refresh allowed (uses default downstream)",
			mutate: func(c *Config) { c.Refresh = 0 },
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.API.Timeout = -time.Second },
			wantErr: "cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	assert.Error(t, Validate(nil))
}
