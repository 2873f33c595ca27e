package config

import "time"

// Config holds runtime settings for the EduFunds CLI.
//
// Units: all durations are time.Duration values.
type Config struct {
	// BaseURL is the origin of the EduFunds backend, without the
	// /api/v1 prefix.
	BaseURL string

	// DatabasePath is the sqlite file holding session state and the
	// offline funding cache.
	DatabasePath string

	RequestTimeout  time.Duration
	GenerateTimeout time.Duration
	SearchDebounce  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.DatabasePath = "edufunds.db"
	c.RequestTimeout = 15 * time.Second
	c.GenerateTimeout = 3 * time.Minute
	c.SearchDebounce = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), an optional
// JSON file, and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
