package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .pulse.yaml configuration file.
type Config struct {
	Version   int           `yaml:"version" mapstructure:"version"`
	Workspace string        `yaml:"workspace" mapstructure:"workspace"`
	User      string        `yaml:"user" mapstructure:"user"`
	API       APIConfig     `yaml:"api" mapstructure:"api"`
	Refresh   time.Duration `yaml:"refresh" mapstructure:"refresh"`
}

// APIConfig holds the connection settings for the dashboard service.
type APIConfig struct {
	// URL is the base URL of the dashboard service (no trailing path).
	URL string `yaml:"url" mapstructure:"url"`

	// Timeout bounds each fetch request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Default returns a config with sensible defaults applied.
func Default() *Config {
	return &Config{
		Version:   CurrentConfigVersion,
		Workspace: "My Workspace",
		API: APIConfig{
			URL:     "http://localhost:8080",
			Timeout: 10 * time.Second,
		},
		Refresh: 30 * time.Second,
	}
}
