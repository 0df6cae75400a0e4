package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"studypilot/internal/domain"
)

// SessionClient talks to the Supabase Auth (GoTrue) session endpoints.
type SessionClient struct {
	supabaseURL string
	anonKey     string
	httpClient  *http.Client
}

// NewSessionClient creates a new Supabase session client.
// anonKey is the project's public anon key, sent as the apikey header.
func NewSessionClient(supabaseURL, anonKey string) *SessionClient {
	return &SessionClient{
		supabaseURL: strings.TrimRight(supabaseURL, "/"),
		anonKey:     anonKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignOut revokes the session that issued accessToken.
func (c *SessionClient) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return fmt.Errorf("%w: missing access token", domain.ErrUnauthorized)
	}

	url := c.supabaseURL + "/auth/v1/logout"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create logout request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: logout request: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: session already ended", domain.ErrUnauthorized)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return fmt.Errorf("logout failed with status %d: %s", resp.StatusCode, string(body))
	}
}
