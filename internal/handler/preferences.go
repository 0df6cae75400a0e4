package handler

import (
	"log/slog"
	"net/http"

	"studypilot/internal/domain/models"
	"studypilot/internal/domain/services"
	"studypilot/internal/httputil"
)

// PreferencesHandler handles preference HTTP requests
type PreferencesHandler struct {
	service services.PreferencesService
	logger  *slog.Logger
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(service services.PreferencesService, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		service: service,
		logger:  logger,
	}
}

// GetAccessibility returns the accessibility record and its markers
// GET /api/preferences/accessibility
func (h *PreferencesHandler) GetAccessibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	view, err := h.service.GetAccessibility(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, view)
}

// UpdateAccessibility applies a partial accessibility change
// PATCH /api/preferences/accessibility
func (h *PreferencesHandler) UpdateAccessibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var patch models.AccessibilityPatch
	if err := httputil.ParseJSON(w, r, &patch); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.service.UpdateAccessibility(r.Context(), userID, &patch)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, view)
}

// GET /api/preferences/notifications
func (h *PreferencesHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	settings, err := h.service.GetNotifications(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, settings)
}

// UpdateNotifications returns the updated record with its confirmation notice
// PATCH /api/preferences/notifications
func (h *PreferencesHandler) UpdateNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var patch models.NotificationPatch
	if err := httputil.ParseJSON(w, r, &patch); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update, err := h.service.UpdateNotifications(r.Context(), userID, &patch)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, update)
}

// GET /api/preferences/study-plan
func (h *PreferencesHandler) GetStudyPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	plan, err := h.service.GetStudyPlan(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, plan)
}

// UpdateStudyPlan echoes free-text fields back but only the remembered
// subset outlives the request
// PATCH /api/preferences/study-plan
func (h *PreferencesHandler) UpdateStudyPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var patch models.PlanPatch
	if err := httputil.ParseJSON(w, r, &patch); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := h.service.UpdateStudyPlan(r.Context(), userID, &patch)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, plan)
}

// POST /api/preferences/study-plan/reset
func (h *PreferencesHandler) ResetStudyPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	plan, err := h.service.ResetStudyPlan(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, plan)
}
