package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	AccountsBaseURL = "https://accounts.spotify.com"

	// Spotify client-credentials tokens last an hour. The cache keeps them
	// for 55 minutes regardless of the returned expires_in, which stays
	// safely inside the real window.
	tokenTTL          = 55 * time.Minute
	tokenSafetyMargin = 5 * time.Second
)

type cachedToken struct {
	value     string
	expiresAt time.Time
}

// TokenSource exchanges app client credentials for a bearer token and keeps
// the result in a single process-wide slot. Concurrent callers may race to
// refresh; the last writer wins, which is harmless since every exchange
// yields an equally valid token.
type TokenSource struct {
	clientID     string
	clientSecret string
	http         *resty.Client
	now          func() time.Time
	current      atomic.Pointer[cachedToken]
}

func NewTokenSource(clientID, clientSecret, accountsURL string) *TokenSource {
	return &TokenSource{
		clientID:     clientID,
		clientSecret: clientSecret,
		http:         resty.New().SetBaseURL(accountsURL),
		now:          time.Now,
	}
}

// Token returns the cached bearer token, refreshing it when it is within
// the safety margin of expiry.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	if cur := ts.current.Load(); cur != nil && ts.now().Add(tokenSafetyMargin).Before(cur.expiresAt) {
		return cur.value, nil
	}

	token, err := ts.Exchange(ctx)
	if err != nil {
		return "", err
	}

	ts.current.Store(&cachedToken{value: token, expiresAt: ts.now().Add(tokenTTL)})
	return token, nil
}

// Exchange performs a client-credentials exchange against the token
// endpoint, bypassing the cache. The diagnostics endpoint calls it directly
// to probe credential health.
func (ts *TokenSource) Exchange(ctx context.Context) (string, error) {
	if ts.clientID == "" || ts.clientSecret == "" {
		return "", ErrMissingCredentials
	}

	resp, err := ts.http.R().
		SetContext(ctx).
		SetBasicAuth(ts.clientID, ts.clientSecret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody("grant_type=client_credentials").
		Post("/api/token")
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if resp.IsError() {
		return "", &APIError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("token response missing access_token")
	}

	return payload.AccessToken, nil
}
