package httputil

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Context key type to avoid collisions
type contextKey string

const (
	userIDKey      contextKey = "userID"
	accessTokenKey contextKey = "accessToken"
)

// WithUserID adds userID to the request context
func WithUserID(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

// GetUserID retrieves userID from context
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// WithAccessToken stores the caller's bearer token for actions that are
// forwarded upstream on the user's behalf
func WithAccessToken(r *http.Request, token string) *http.Request {
	ctx := context.WithValue(r.Context(), accessTokenKey, token)
	return r.WithContext(ctx)
}

// GetAccessToken returns the bearer token, or "" when auth is disabled
func GetAccessToken(r *http.Request) string {
	token, _ := r.Context().Value(accessTokenKey).(string)
	return token
}
