package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"studypilot/internal/domain"
	"studypilot/internal/domain/models"
)

func newTestVerifier(t *testing.T) (JWTVerifier, *ecdsa.PrivateKey) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	kf := func(*jwt.Token) (interface{}, error) { return &key.PublicKey, nil }
	return NewStaticVerifier(kf, slog.New(slog.NewTextHandler(io.Discard, nil))), key
}

func sign(t *testing.T, key *ecdsa.PrivateKey, claims models.SupabaseClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestVerifyToken(t *testing.T) {
	verifier, key := newTestVerifier(t)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name    string
		claims  models.SupabaseClaims
		wantErr bool
	}{
		{
			name: "authenticated user",
			claims: models.SupabaseClaims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future},
				Role:             "authenticated",
			},
		},
		{
			name: "expired",
			claims: models.SupabaseClaims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: past},
				Role:             "authenticated",
			},
			wantErr: true,
		},
		{
			name: "anonymous role",
			claims: models.SupabaseClaims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future},
				Role:             "anon",
			},
			wantErr: true,
		},
		{
			name: "missing subject",
			claims: models.SupabaseClaims{
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
				Role:             "authenticated",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.VerifyToken(sign(t, key, tt.claims))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnauthorized) {
					t.Fatalf("VerifyToken() error = %v, want ErrUnauthorized", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("VerifyToken() unexpected error: %v", err)
			}
			if claims.GetUserID() != tt.claims.Subject {
				t.Errorf("GetUserID() = %q, want %q", claims.GetUserID(), tt.claims.Subject)
			}
		})
	}
}

func TestVerifyToken_RejectsHMAC(t *testing.T) {
	verifier, _ := newTestVerifier(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.SupabaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Role:             "authenticated",
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.VerifyToken(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("VerifyToken() error = %v, want ErrUnauthorized", err)
	}
}

func TestNewJWTVerifier_EmptyURL(t *testing.T) {
	if _, err := NewJWTVerifier(t.Context(), "", slog.Default()); err == nil {
		t.Fatal("NewJWTVerifier(\"\") expected error")
	}
}
