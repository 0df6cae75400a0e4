package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
)

// SessionRepository reads pomodoro sessions recorded by the backend
type SessionRepository interface {
	// ListCompleted returns the completed sessions of userID whose start
	// time falls inside the inclusive [start, end] range.
	ListCompleted(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.PomodoroSession, error)
}
