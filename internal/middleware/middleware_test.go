package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"studypilot/internal/domain"
	"studypilot/internal/domain/models"
	"studypilot/internal/httputil"
)

type stubVerifier struct {
	claims *models.SupabaseClaims
}

func (s stubVerifier) VerifyToken(token string) (*models.SupabaseClaims, error) {
	if token != "good" || s.claims == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.claims, nil
}

func (stubVerifier) Close() error { return nil }

func echoUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := httputil.GetUserID(r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	io.WriteString(w, userID.String()+"|"+httputil.GetAccessToken(r))
}

func TestAuthMiddleware(t *testing.T) {
	user := uuid.New()
	dev := uuid.New()
	valid := stubVerifier{claims: &models.SupabaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.String()},
		Role:             "authenticated",
	}}
	badSubject := stubVerifier{claims: &models.SupabaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
		Role:             "authenticated",
	}}

	tests := []struct {
		name       string
		verifier   stubVerifier
		opts       AuthOptions
		path       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token",
			verifier:   valid,
			path:       "/api/preferences/accessibility",
			header:     "Bearer good",
			wantStatus: http.StatusOK,
			wantBody:   user.String() + "|good",
		},
		{
			name:       "missing header",
			verifier:   valid,
			path:       "/api/preferences/accessibility",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			verifier:   valid,
			path:       "/api/preferences/accessibility",
			header:     "Bearer bad",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "subject not a uuid",
			verifier:   badSubject,
			path:       "/api/preferences/accessibility",
			header:     "Bearer good",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "public path",
			verifier:   valid,
			opts:       AuthOptions{PublicPaths: []string{"/health"}},
			path:       "/health",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "guard disabled",
			opts:       AuthOptions{Disabled: true, DevUserID: dev},
			path:       "/api/banners/premium",
			wantStatus: http.StatusOK,
			wantBody:   dev.String() + "|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
			h := AuthMiddleware(tt.verifier, tt.opts)(http.HandlerFunc(echoUser))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRecoveryLogsCaller(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	user := uuid.New()

	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httputil.WithUserID(httptest.NewRequest(http.MethodPatch, "/api/preferences/accessibility", nil), user)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	for _, want := range []string{"panic recovered", "user_id=" + user.String(), "method=PATCH"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestRecoveryRepanicsOnAbort(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if got := recover(); got != http.ErrAbortHandler {
			t.Fatalf("recover() = %v, want http.ErrAbortHandler", got)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
