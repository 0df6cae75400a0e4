package handler

import (
	"net/http"

	"github.com/google/uuid"
	"studypilot/internal/httputil"
)

// requireUser returns the authenticated user, or writes 401 and reports false
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := httputil.GetUserID(r)
	if !ok || userID == uuid.Nil {
		httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	return userID, true
}
