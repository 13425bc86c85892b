package services

import (
	"context"
	"errors"
	"net/http"

	"dramahub/internal/api"
	"dramahub/internal/models"
)

// ErrNotAdmin is the console's own business rule, distinct from an HTTP-level
// rejection: the API may authenticate any user, but only admins get a session
// here.
var ErrNotAdmin = errors.New("access denied: this console is for administrators only")

// SessionSink is what LoginAdmin needs from the session store.
type SessionSink interface {
	Login(user *models.User, token string) error
}

type AuthService struct {
	api *api.Client
}

func NewAuthService(c *api.Client) *AuthService {
	return &AuthService{api: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// LoginAdmin authenticates against the API and, only when the account is an
// admin, populates the session. A non-admin authentication succeeds server-side
// but leaves the sink untouched and returns ErrNotAdmin.
func (s *AuthService) LoginAdmin(ctx context.Context, sink SessionSink, email, password string) (*models.User, error) {
	var resp loginResponse
	err := s.api.Do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	if !resp.User.IsAdmin() {
		return nil, ErrNotAdmin
	}

	if err := sink.Login(resp.User, resp.Token); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Me returns the account behind the current token.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.api.Do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
