// Package config handles configuration for the client binary, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the user-management CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - StatusTTL: how long transient status banners stay visible.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	StatusTTL      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.StatusTTL = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
