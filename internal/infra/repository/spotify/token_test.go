package spotify

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++

		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/token", r.URL.Path)

		expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("id:secret"))
		require.Equal(t, expected, r.Header.Get("Authorization"))
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-123","token_type":"Bearer","expires_in":3600}`))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestTokenSource_CachesWithinWindow(t *testing.T) {
	calls := 0
	server := newTokenServer(t, &calls)

	ts := NewTokenSource("id", "secret", server.URL)
	now := time.Now()
	ts.now = func() time.Time { return now }

	token, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
	assert.Equal(t, 1, calls)

	// One second short of the refresh point: still served from cache.
	now = now.Add(tokenTTL - tokenSafetyMargin - time.Second)
	token, err = ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
	assert.Equal(t, 1, calls)
}

func TestTokenSource_RefreshesAfterWindow(t *testing.T) {
	calls := 0
	server := newTokenServer(t, &calls)

	ts := NewTokenSource("id", "secret", server.URL)
	now := time.Now()
	ts.now = func() time.Time { return now }

	_, err := ts.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	now = now.Add(tokenTTL - tokenSafetyMargin)
	_, err = ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// The refreshed record starts a fresh window.
	now = now.Add(time.Minute)
	_, err = ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestTokenSource_MissingCredentials(t *testing.T) {
	ts := NewTokenSource("", "", AccountsBaseURL)

	_, err := ts.Token(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestTokenSource_UpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	t.Cleanup(server.Close)

	ts := NewTokenSource("id", "wrong", server.URL)

	_, err := ts.Token(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Body, "invalid_client")
}

func TestTokenSource_ExchangeBypassesCache(t *testing.T) {
	calls := 0
	server := newTokenServer(t, &calls)

	ts := NewTokenSource("id", "secret", server.URL)

	_, err := ts.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	_, err = ts.Exchange(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
