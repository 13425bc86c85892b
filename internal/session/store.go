package session

// store.go is the one piece of state that outlives a screen: the current user
// and token. Login and Logout are the only mutators. The store is constructed
// explicitly and injected into the API client, never read from globals.

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"dramahub/internal/models"
)

type Store struct {
	backend Backend
	user    *models.User
	token   string
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Restore loads persisted credentials at startup. An expired token is removed
// and the store stays logged out, so the next command redirects to login
// instead of failing on the first request.
func (s *Store) Restore() error {
	creds, err := s.backend.Load()
	if errors.Is(err, ErrNoCredentials) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}

	if tokenExpired(creds.Token) {
		log.WithField("email", creds.Email).Debug("stored token expired, clearing session")
		return s.backend.Delete()
	}

	s.token = creds.Token
	s.user = &models.User{Email: creds.Email, Name: creds.Name, Role: creds.Role}
	return nil
}

// Login sets the session and persists the token for subsequent requests.
func (s *Store) Login(user *models.User, token string) error {
	s.user = user
	s.token = token
	return s.backend.Store(Credentials{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
}

// Logout clears the session and removes the persisted token.
func (s *Store) Logout() error {
	s.user = nil
	s.token = ""
	return s.backend.Delete()
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	return s.token
}

func (s *Store) User() *models.User {
	return s.user
}

func (s *Store) LoggedIn() bool {
	return s.user != nil
}

// tokenExpired inspects the exp claim without verifying the signature; the
// server is the authority, this only avoids sending a token that is already
// known to be dead.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
