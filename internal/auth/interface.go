package auth

import (
	"context"

	"studypilot/internal/domain/models"
)

// JWTVerifier defines the interface for JWT token verification.
// The middleware stays agnostic to how tokens are checked.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.SupabaseClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}

// SessionTerminator ends an authenticated session upstream
type SessionTerminator interface {
	SignOut(ctx context.Context, accessToken string) error
}
