package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dramahub/internal/models"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestStoreLoginPersists(t *testing.T) {
	backend := &MemoryBackend{}
	store := New(backend)

	user := &models.User{Email: "admin@dramahub.test", Name: "Admin", Role: models.RoleAdmin}
	require.NoError(t, store.Login(user, "tok-1"))

	assert.True(t, store.LoggedIn())
	assert.Equal(t, "tok-1", store.Token())

	creds, err := backend.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", creds.Token)
	assert.Equal(t, "admin@dramahub.test", creds.Email)
}

func TestStoreLogoutClearsEverything(t *testing.T) {
	backend := &MemoryBackend{}
	store := New(backend)
	require.NoError(t, store.Login(&models.User{Email: "a@b.c"}, "tok"))

	require.NoError(t, store.Logout())
	assert.False(t, store.LoggedIn())
	assert.Empty(t, store.Token())

	_, err := backend.Load()
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestStoreRestoreWithoutCredentials(t *testing.T) {
	store := New(&MemoryBackend{})
	require.NoError(t, store.Restore())
	assert.False(t, store.LoggedIn())
}

func TestStoreRestoreValidToken(t *testing.T) {
	backend := &MemoryBackend{}
	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, backend.Store(Credentials{
		Token: token,
		Email: "admin@dramahub.test",
		Name:  "Admin",
		Role:  models.RoleAdmin,
	}))

	store := New(backend)
	require.NoError(t, store.Restore())
	assert.True(t, store.LoggedIn())
	assert.Equal(t, token, store.Token())
	assert.True(t, store.User().IsAdmin())
}

func TestStoreRestoreExpiredTokenClears(t *testing.T) {
	backend := &MemoryBackend{}
	require.NoError(t, backend.Store(Credentials{
		Token: signedToken(t, time.Now().Add(-time.Hour)),
		Email: "admin@dramahub.test",
	}))

	store := New(backend)
	require.NoError(t, store.Restore())
	assert.False(t, store.LoggedIn())

	// the dead token is removed, not retried on the next start
	_, err := backend.Load()
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestStoreRestoreGarbageToken(t *testing.T) {
	backend := &MemoryBackend{}
	require.NoError(t, backend.Store(Credentials{Token: "not-a-jwt"}))

	store := New(backend)
	require.NoError(t, store.Restore())
	assert.False(t, store.LoggedIn())
}
