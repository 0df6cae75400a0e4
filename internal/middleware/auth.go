package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"studypilot/internal/auth"
	"studypilot/internal/httputil"
)

// AuthOptions configures the route guard
type AuthOptions struct {
	// Disabled runs every request as DevUserID without checking tokens.
	// config.Validate refuses this in prod.
	Disabled  bool
	DevUserID uuid.UUID
	// PublicPaths skip authentication entirely
	PublicPaths []string
	Logger      *slog.Logger
}

// AuthMiddleware verifies the Supabase bearer token and stores the user ID
// and token in the request context.
func AuthMiddleware(verifier auth.JWTVerifier, opts AuthOptions) func(http.Handler) http.Handler {
	public := make(map[string]bool, len(opts.PublicPaths))
	for _, p := range opts.PublicPaths {
		public[p] = true
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Pre-flight requests never carry credentials
			if r.Method == http.MethodOptions || public[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			if opts.Disabled {
				next.ServeHTTP(w, httputil.WithUserID(r, opts.DevUserID))
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.GetUserID())
			if err != nil {
				logger.Warn("token subject is not a UUID", "sub", claims.GetUserID())
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token subject")
				return
			}

			r = httputil.WithUserID(r, userID)
			r = httputil.WithAccessToken(r, token)
			next.ServeHTTP(w, r)
		})
	}
}
