package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
	"studypilot/internal/domain/services"
	"studypilot/internal/httputil"
)

// BannerHandler handles premium banner dismissal
type BannerHandler struct {
	service services.PreferencesService
	logger  *slog.Logger
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(service services.PreferencesService, logger *slog.Logger) *BannerHandler {
	return &BannerHandler{
		service: service,
		logger:  logger,
	}
}

// GET /api/banners/premium
func (h *BannerHandler) GetPremium(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.GetPremiumBanner)
}

// POST /api/banners/premium/dismiss
func (h *BannerHandler) DismissPremium(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.DismissPremiumBanner)
}

// DELETE /api/banners/premium
func (h *BannerHandler) ClearPremium(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.ClearPremiumBanner)
}

func (h *BannerHandler) respond(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*models.BannerState, error)) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	state, err := op(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, state)
}
