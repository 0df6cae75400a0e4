package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"studypilot/internal/httputil"
)

// Recovery turns a handler panic into a 500 problem response. Mounted inside
// the route guard so the log line names the caller.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}
				// net/http uses this sentinel to abort a response on purpose
				if err == http.ErrAbortHandler {
					panic(err)
				}

				attrs := []any{
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				}
				if userID, ok := httputil.GetUserID(r); ok {
					attrs = append(attrs, "user_id", userID)
				}
				logger.Error("panic recovered", attrs...)

				httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
