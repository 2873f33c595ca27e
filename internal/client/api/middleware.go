package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Annomy111/foerder-finder/internal/logging"
)

// Middleware is one stage of the request pipeline. Stages wrap an
// http.RoundTripper and must not mutate the caller's request; they clone
// before annotating.
type Middleware func(http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Chain wraps base with the given stages. The first stage is outermost:
// it sees the request first and the response last.
func Chain(base http.RoundTripper, stages ...Middleware) http.RoundTripper {
	rt := base
	for i := len(stages) - 1; i >= 0; i-- {
		rt = stages[i](rt)
	}
	return rt
}

// TokenSource yields the bearer token for outgoing requests.
// ok must be false for anonymous sessions; the session store satisfies this.
type TokenSource interface {
	Token() (token string, ok bool)
}

// RequestID tags every request with a fresh X-Request-Id.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			req = req.Clone(req.Context())
			req.Header.Set("X-Request-Id", uuid.NewString())
			return next.RoundTrip(req)
		})
	}
}

// BearerAuth attaches "Authorization: Bearer <token>" when the session is
// authenticated. When it is not, the header is omitted entirely, never
// sent empty.
func BearerAuth(tokens TokenSource) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if token, ok := tokens.Token(); ok {
				req = req.Clone(req.Context())
				req.Header.Set("Authorization", "Bearer "+token)
			}
			return next.RoundTrip(req)
		})
	}
}

// ForceLogoutOn401 clears the session the moment any response comes back
// 401, before the caller sees the error. The response still propagates so
// the originating call fails as usual.
func ForceLogoutOn401(logout func(ctx context.Context) error) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if resp != nil && resp.StatusCode == http.StatusUnauthorized {
				_ = logout(req.Context())
			}
			return resp, err
		})
	}
}

// Logging emits one debug line per round trip.
func Logging(log logging.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			if err != nil {
				log.Warn(req.Context(), "request failed",
					"method", req.Method, "path", req.URL.Path, "error", err)
				return resp, err
			}
			log.Debug(req.Context(), "request done",
				"method", req.Method, "path", req.URL.Path,
				"status", resp.StatusCode, "duration", time.Since(start))
			return resp, err
		})
	}
}
