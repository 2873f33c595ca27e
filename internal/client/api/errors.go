package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized maps any 401; by the time a caller sees it the
	// session has already been cleared.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound maps a 404 on a by-id fetch.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable maps network failures, timeouts and 5xx responses.
	// Callers may offer a manual retry; this layer never retries.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError carries a backend-supplied message for client errors that are
// not covered by a sentinel (validation failures and the like).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}
