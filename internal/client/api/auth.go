package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Annomy111/foerder-finder/internal/client/models"
)

// AuthService handles login and registration. A successful login writes
// the session store; Logout clears it. No other module touches the
// session directly.
type AuthService struct {
	service
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

type RegisterRequest struct {
	Email      string      `json:"email"`
	Password   string      `json:"password"`
	SchoolName string      `json:"school_name"`
	Role       models.Role `json:"role,omitempty"`
}

type RegisterResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	SchoolID   string `json:"school_id"`
	SchoolName string `json:"school_name"`
	Role       string `json:"role"`
}

// Login authenticates and, on success, stores user and token in the
// session so subsequent requests carry the bearer header.
// No validation beyond presence happens client-side.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var out LoginResponse
	if err := s.client.do(ctx, http.MethodPost, "auth/login", nil, body, &out); err != nil {
		return nil, err
	}

	if err := s.client.session.Login(ctx, out.User, out.AccessToken); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &out, nil
}

// Register creates a new account. The caller still has to log in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := s.client.do(ctx, http.MethodPost, "auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout clears the local session. Purely client-side: the backend keeps
// no session state for bearer tokens.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.session.Logout(ctx)
}
