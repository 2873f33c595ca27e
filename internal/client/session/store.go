// Package session is the single source of truth for "who is logged in".
// The current user and bearer token live here, survive restarts through
// the metadata repository, and change only via Login/Logout/UpdateUser.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Annomy111/foerder-finder/internal/client/models"
	"github.com/Annomy111/foerder-finder/internal/client/repositories/metadata"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

// metadataKey is the single durable key holding the serialized session.
const metadataKey = "session"

// Session is the persisted shape. Invariant: IsAuthenticated is true iff
// Token is non-empty; the store normalizes any stored value that says
// otherwise.
type Session struct {
	User            *models.User `json:"user,omitempty"`
	Token           string       `json:"token,omitempty"`
	IsAuthenticated bool         `json:"is_authenticated"`
}

// Store holds the process-wide session state. All reads and writes go
// through its methods; nothing else touches the persisted value.
type Store struct {
	mu       sync.RWMutex
	repo     metadata.Repository
	log      logging.Logger
	cur      Session
	onLogout func()
}

func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("component", "session")}
}

// SetOnLogout registers the hook invoked when the session transitions from
// Authenticated to Anonymous, including forced logout on a 401. Set once
// at wiring time, before any requests run.
func (s *Store) SetOnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

// Restore loads the persisted session. A missing value or one whose token
// is empty restores as Anonymous.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, metadataKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if raw == nil {
		return nil
	}

	var stored Session
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Warn(ctx, "discarding unreadable stored session", "error", err)
		return nil
	}

	stored.IsAuthenticated = stored.Token != ""
	if !stored.IsAuthenticated {
		stored = Session{}
	}

	s.mu.Lock()
	s.cur = stored
	s.mu.Unlock()
	return nil
}

// Login unconditionally overwrites the session and persists it.
func (s *Store) Login(ctx context.Context, user models.User, token string) error {
	s.mu.Lock()
	u := user
	s.cur = Session{User: &u, Token: token, IsAuthenticated: token != ""}
	s.mu.Unlock()

	return s.persist(ctx)
}

// Logout resets the session to Anonymous and persists the cleared state.
// Idempotent: logging out twice is a no-op the second time, and the
// OnLogout hook fires only on the actual transition.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	wasAuthenticated := s.cur.IsAuthenticated
	s.cur = Session{}
	hook := s.onLogout
	s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		return err
	}
	if wasAuthenticated && hook != nil {
		hook()
	}
	return nil
}

// UpdateUser shallow-merges patch into the current user. No-op when the
// session is anonymous.
func (s *Store) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	if s.cur.User == nil {
		s.mu.Unlock()
		return nil
	}
	merged := s.cur.User.Merge(patch)
	s.cur.User = &merged
	s.mu.Unlock()

	return s.persist(ctx)
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.cur
	if s.cur.User != nil {
		u := *s.cur.User
		out.User = &u
	}
	return out
}

// Token returns the bearer token and whether it may be attached to a
// request. ok is false for an anonymous session.
func (s *Store) Token() (token string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.cur.IsAuthenticated || s.cur.Token == "" {
		return "", false
	}
	return s.cur.Token, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// TokenExpiry reads the exp claim of the bearer token without verifying
// the signature (the client has no key material; the backend remains the
// authority). Returns false for anonymous sessions and opaque tokens.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token, ok := s.Token()
	if !ok {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Store) persist(ctx context.Context) error {
	snapshot := s.Snapshot()

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, metadataKey, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
