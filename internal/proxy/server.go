// Package proxy implements the CORS edge in front of the EduFunds
// backend. Every request, regardless of path, is forwarded to the
// backend origin; responses come back with permissive CORS headers so
// browser clients on other origins can talk to the API.
package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Annomy111/foerder-finder/internal/logging"
)

// The fixed CORS contract. Browsers cache the preflight response, so
// these values never vary per request.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS, PATCH"
	corsAllowHeaders = "Authorization, Content-Type, Accept"
)

// hop-by-hop headers are meaningful only for a single transport link and
// must not be forwarded (RFC 7230, section 6.1).
var hopByHopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Server forwards requests to one backend origin.
type Server struct {
	backend *url.URL
	client  *http.Client
	log     logging.Logger
}

func NewServer(cfg *Config, log logging.Logger) (*Server, error) {
	backend, err := url.Parse(cfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}

	return &Server{
		backend: backend,
		client: &http.Client{
			// Draft generation can run for minutes; the proxy must not
			// cut it off earlier than the backend would.
			Timeout: 5 * time.Minute,

			// Redirects are passed through to the caller untouched.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log.With("component", "proxy"),
	}, nil
}

// Routes builds the chi router: CORS on everything, preflights answered
// locally, all other requests forwarded.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(corsHeaders)

	r.HandleFunc("/*", s.forward)
	return r
}

// corsHeaders attaches the CORS contract to every response and answers
// preflight requests with 204 without touching the backend.
func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// forward replays the incoming request against the backend and streams
// the response back. Path, query, method, headers, and body survive
// unchanged; only the origin is rewritten.
func (s *Server) forward(w http.ResponseWriter, r *http.Request) {
	target := *s.backend
	target.Path = r.URL.Path
	target.RawQuery = r.URL.RawQuery

	var body io.Reader
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		body = r.Body
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), body)
	if err != nil {
		s.writeBadGateway(w, r, err)
		return
	}
	copyHeaders(req.Header, r.Header)
	req.Host = s.backend.Host

	resp, err := s.client.Do(req)
	if err != nil {
		s.writeBadGateway(w, r, err)
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		s.log.Warn(r.Context(), "response copy aborted", "error", err)
	}
}

// writeBadGateway reports a backend failure in the error envelope
// clients know how to parse. The CORS middleware has already set its
// headers, so even failures are readable cross-origin.
func (s *Server) writeBadGateway(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error(r.Context(), "backend unreachable", "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "Backend request failed",
		"details": err.Error(),
	})
}

func copyHeaders(dst, src http.Header) {
	for name, values := range src {
		if isHopByHop(name) {
			continue
		}
		for _, v := range values {
			dst.Add(name, v)
		}
	}
}

func isHopByHop(name string) bool {
	for _, h := range hopByHopHeaders {
		if http.CanonicalHeaderKey(name) == h {
			return true
		}
	}
	return false
}
