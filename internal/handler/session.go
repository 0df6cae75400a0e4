package handler

import (
	"log/slog"
	"net/http"

	"studypilot/internal/domain/models"
	"studypilot/internal/domain/services"
	"studypilot/internal/httputil"
)

// SessionHandler handles sign-out
type SessionHandler struct {
	service services.SessionService
	logger  *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service services.SessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger,
	}
}

// SignOut always answers 200; the notice tells the caller whether it worked
// POST /api/auth/sign-out
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	notice := h.service.SignOut(r.Context(), userID, httputil.GetAccessToken(r))
	httputil.RespondJSON(w, http.StatusOK, struct {
		Notice models.Notice `json:"notice"`
	}{Notice: notice})
}
