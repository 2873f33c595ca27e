// Package api is the HTTP client for the EduFunds backend: one configured
// request pipeline (auth header attachment, request ids, forced logout on
// 401) and typed endpoint modules grouped by resource. No endpoint module
// builds raw requests or does its own auth.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Annomy111/foerder-finder/internal/client/session"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

const (
	defaultRequestTimeout = 15 * time.Second

	// Draft generation calls an LLM on the backend and routinely takes
	// over a minute.
	defaultGenerateTimeout = 3 * time.Minute
)

// Config for the client. BaseURL is the backend origin
// ("https://api.edufunds.example"); the /api/v1 prefix is appended here
// and fixed for the client's lifetime.
type Config struct {
	BaseURL         string
	RequestTimeout  time.Duration
	GenerateTimeout time.Duration

	// Transport overrides the base round tripper (test seam).
	Transport http.RoundTripper
}

// Client dispatches all backend traffic. Construct with New; the zero
// value is not usable.
type Client struct {
	baseURL         *url.URL
	http            *http.Client
	session         *session.Store
	log             logging.Logger
	requestTimeout  time.Duration
	generateTimeout time.Duration

	Auth         *AuthService
	Funding      *FundingService
	Applications *ApplicationsService
	Drafts       *DraftsService
	Search       *SearchService
}

type service struct {
	client *Client
}

func New(cfg Config, store *session.Store, log logging.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must include scheme and host", cfg.BaseURL)
	}

	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	log = log.With("component", "api")

	c := &Client{
		baseURL:         u.JoinPath("api", "v1"),
		session:         store,
		log:             log,
		requestTimeout:  cfg.RequestTimeout,
		generateTimeout: cfg.GenerateTimeout,
	}
	if c.requestTimeout <= 0 {
		c.requestTimeout = defaultRequestTimeout
	}
	if c.generateTimeout <= 0 {
		c.generateTimeout = defaultGenerateTimeout
	}

	c.http = &http.Client{
		Transport: Chain(base,
			RequestID(),
			BearerAuth(store),
			ForceLogoutOn401(store.Logout),
			Logging(log),
		),
	}

	c.Auth = &AuthService{service{c}}
	c.Funding = &FundingService{service{c}}
	c.Applications = &ApplicationsService{service{c}}
	c.Drafts = &DraftsService{service{c}}
	c.Search = &SearchService{service{c}}

	return c, nil
}

// HealthStatus is the backend liveness payload.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Ping checks backend liveness.
func (c *Client) Ping(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.do(ctx, http.MethodGet, "health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do runs one request through the pipeline. path is relative to /api/v1.
// A default timeout applies unless ctx already carries a deadline.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	u := c.baseURL.JoinPath(path)
	if strings.HasSuffix(path, "/") && !strings.HasSuffix(u.Path, "/") {
		// The backend's collection routes require the trailing slash.
		u.Path += "/"
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// mapError collapses non-2xx responses to the error taxonomy: sentinel
// errors for 401/404/5xx and *APIError for the remaining client errors.
func (c *Client) mapError(resp *http.Response) error {
	message := readErrorMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		if message == "" {
			message = resp.Status
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, message)
	default:
		return &APIError{Status: resp.StatusCode, Message: message}
	}
}

// readErrorMessage extracts the human-readable message from an error body.
// FastAPI uses {"detail": ...}; the edge proxy uses {"error": ..., "details": ...}.
func readErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(body) == 0 {
		return ""
	}

	var envelope struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return strings.TrimSpace(string(body))
	}
	switch {
	case envelope.Detail != "":
		return envelope.Detail
	case envelope.Error != "" && envelope.Details != "":
		return envelope.Error + ": " + envelope.Details
	case envelope.Error != "":
		return envelope.Error
	default:
		return ""
	}
}
