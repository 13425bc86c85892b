package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClientUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "/dramas/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"ok","data":{"id":1,"name":"x"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok-123"), time.Second)
	var out row
	err := client.Do(context.Background(), http.MethodGet, "/dramas/1", nil, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, out.ID)
}

func TestClientQueryAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "romance", r.URL.Query().Get("q"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""), time.Second)
	q := url.Values{}
	q.Set("q", "romance")
	err := client.Do(context.Background(), http.MethodPost, "/dramas", q, map[string]string{"title": "t"}, nil)
	require.NoError(t, err)
}

func TestClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"drama not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""), time.Second)
	err := client.Do(context.Background(), http.MethodGet, "/dramas/99", nil, nil, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "drama not found")
}

func TestClientUnauthorizedMatchesSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"missing token"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""), time.Second)
	err := client.Do(context.Background(), http.MethodGet, "/dramas", nil, nil, nil)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestClientBusinessFailureOn200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"slug already taken"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""), time.Second)
	err := client.Do(context.Background(), http.MethodPost, "/genres", nil, map[string]string{}, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestClientRejectsUnknownFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":1,"name":"x","surprise":true}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""), time.Second)
	var out row
	err := client.Do(context.Background(), http.MethodGet, "/dramas/1", nil, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response data")
}

func TestClientNoTokenNoHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""), time.Second)
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/health", nil, nil, nil))
}
