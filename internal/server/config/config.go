// Package config handles configuration for the server component, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the user-management server.
//
// Fields:
//   - EndpointAddr: bind address for the REST endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty means the in-memory store.
//   - ShutdownTimeout: how long a graceful shutdown may drain requests.
type Config struct {
	EndpointAddr    string
	DatabaseDSN     string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
