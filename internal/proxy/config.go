package proxy

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

const (
	envListenAddr = "EDUFUNDS_PROXY_ADDR"
	envBackendURL = "BACKEND_URL"

	defaultListenAddr = ":8080"
)

// Config holds the proxy's runtime settings.
type Config struct {
	// ListenAddr is the host:port the proxy binds to.
	ListenAddr string

	// BackendURL is the origin all requests are forwarded to.
	BackendURL string
}

// LoadConfig reads the proxy configuration from the environment,
// including a .env file if present. BACKEND_URL is mandatory.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr: defaultListenAddr,
		BackendURL: os.Getenv(envBackendURL),
	}
	if v := os.Getenv(envListenAddr); v != "" {
		cfg.ListenAddr = v
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("%s must be set", envBackendURL)
	}
	if u, err := url.Parse(cfg.BackendURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s %q must be an absolute URL", envBackendURL, cfg.BackendURL)
	}
	return cfg, nil
}
