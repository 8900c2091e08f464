package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/pulseboard/pulse/internal/errors"
)

// MinRefresh is the shortest allowed refresh interval. Anything faster
// just hammers the dashboard service without changing what a human sees.
const MinRefresh = time.Second

// Validate checks a config for problems that would break the dashboard.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig, "No configuration provided", "")
	}

	if cfg.API.URL == "" {
		return errors.New(errors.ErrConfig,
			"api.url is required",
			"Set the dashboard service URL, e.g. http://localhost:8080")
	}

	u, err := url.Parse(cfg.API.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("api.url %q is not a valid URL", cfg.API.URL),
			"Use a full URL including scheme, e.g. https://dash.example.com")
	}

	if cfg.Refresh != 0 && cfg.Refresh < MinRefresh {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("refresh interval %s is too short", cfg.Refresh),
			"Use at least 1s, e.g. refresh: 30s")
	}

	if cfg.API.Timeout < 0 {
		return errors.New(errors.ErrConfig,
			"api.timeout cannot be negative",
			"Use a positive duration like 10s, or omit it for the default")
	}

	return nil
}
