package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fetchToken logs in over plain HTTP so these tests exercise the fixture
// without going through the client packages it exists to test.
func fetchToken(t *testing.T, s *Server, email, password string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)

	resp, err := http.Post(s.URL+"/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.NotEmpty(t, env.Data.Token)
	return env.Data.Token
}

// The auth middleware and every handler share one mutex; authenticated
// requests to state-locking endpoints must complete rather than time out.
func TestAuthedRequestsComplete(t *testing.T) {
	s := New()
	defer s.Close()

	token := fetchToken(t, s, AdminEmail, AdminPassword)
	client := &http.Client{Timeout: 2 * time.Second}

	for _, path := range []string{"/dramas", "/actors", "/genres", "/analytics/dashboard", "/analytics/users"} {
		req, err := http.NewRequest(http.MethodGet, s.URL+path, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		require.NoError(t, err, "request to %s must not hang", path)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestRequireTokenRejectsBadTokens(t *testing.T) {
	s := New()
	defer s.Close()

	client := &http.Client{Timeout: 2 * time.Second}

	req, err := http.NewRequest(http.MethodGet, s.URL+"/dramas", nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
