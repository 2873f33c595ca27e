package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by parseEnv. A .env file in the
// working directory is loaded first; real environment variables win over
// file entries.
const (
	envBaseURL        = "EDUFUNDS_API_URL"
	envDatabasePath   = "EDUFUNDS_DB_PATH"
	envRequestTimeout = "EDUFUNDS_REQUEST_TIMEOUT"
)

// parseEnv overlays Config with values from the environment. Missing or
// malformed variables leave the current value untouched.
func parseEnv(cfg *Config) {
	// godotenv never overrides variables already set in the process.
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
