package services

import (
	"context"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
)

// ProgressService computes weekly study-goal progress
type ProgressService interface {
	// WeeklyGoal returns the user's completed hours this week against goal.
	// goal <= 0 selects the configured default.
	WeeklyGoal(ctx context.Context, userID uuid.UUID, goal float64) (*models.WeeklyProgress, error)
}
