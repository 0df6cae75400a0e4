package handler

import (
	"log/slog"
	"math"
	"net/http"

	"studypilot/internal/config"
	"studypilot/internal/domain"
	"studypilot/internal/domain/services"
	"studypilot/internal/httputil"
)

// ProgressHandler serves weekly goal progress
type ProgressHandler struct {
	service services.ProgressService
	logger  *slog.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(service services.ProgressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{
		service: service,
		logger:  logger,
	}
}

// GetWeeklyGoal returns this week's completed hours against the goal.
// An absent goal uses the configured default.
// GET /api/progress/weekly-goal?goal=N
func (h *ProgressHandler) GetWeeklyGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	goal, err := httputil.QueryFloat(r, "goal", 0)
	if err != nil {
		handleError(w, &domain.ValidationError{Field: "goal", Message: "must be a number"})
		return
	}
	if math.IsNaN(goal) || math.IsInf(goal, 0) || goal < 0 || goal > config.MaxWeeklyGoalHours {
		handleError(w, &domain.ValidationError{Field: "goal", Message: "must be between 0 and 168"})
		return
	}

	progress, err := h.service.WeeklyGoal(r.Context(), userID, goal)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, progress)
}
