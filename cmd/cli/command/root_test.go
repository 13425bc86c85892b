package command

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dramahub/internal/api"
	"dramahub/internal/models"
	"dramahub/internal/session"
)

func TestGuardSessionClearsStaleSession(t *testing.T) {
	backend := &session.MemoryBackend{}
	store = session.New(backend)
	require.NoError(t, store.Login(&models.User{Email: "admin@dramahub.test", Role: models.RoleAdmin}, "tok"))

	wrapped := fmt.Errorf("failed to list dramas: %w", &api.Error{Status: http.StatusUnauthorized, Message: "invalid token"})
	err := guardSession(wrapped)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth login")
	// the dead token is removed so the next command starts logged out
	assert.False(t, store.LoggedIn())
	_, lerr := backend.Load()
	assert.ErrorIs(t, lerr, session.ErrNoCredentials)
}

func TestGuardSessionPassesThroughOtherErrors(t *testing.T) {
	store = session.New(&session.MemoryBackend{})
	require.NoError(t, store.Login(&models.User{Email: "admin@dramahub.test"}, "tok"))

	notFound := fmt.Errorf("failed to get drama: %w", &api.Error{Status: http.StatusNotFound, Message: "drama not found"})
	assert.Equal(t, notFound, guardSession(notFound))
	assert.True(t, store.LoggedIn(), "a non-401 must not clear the session")

	plain := errors.New("network down")
	assert.Equal(t, plain, guardSession(plain))
	assert.NoError(t, guardSession(nil))
}
