package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
	"studypilot/internal/domain/repositories"
	"studypilot/internal/domain/services"
	"studypilot/internal/progress"
)

// ProgressService implements services.ProgressService
type ProgressService struct {
	sessions    repositories.SessionRepository
	defaultGoal float64
	weekStart   time.Weekday
	now         func() time.Time
	logger      *slog.Logger
}

// NewProgressService creates a progress service. now may be nil.
func NewProgressService(
	sessions repositories.SessionRepository,
	defaultGoal float64,
	weekStart time.Weekday,
	now func() time.Time,
	logger *slog.Logger,
) services.ProgressService {
	return &ProgressService{
		sessions:    sessions,
		defaultGoal: defaultGoal,
		weekStart:   weekStart,
		now:         now,
		logger:      logger,
	}
}

func (s *ProgressService) WeeklyGoal(ctx context.Context, userID uuid.UUID, goal float64) (*models.WeeklyProgress, error) {
	if goal <= 0 {
		goal = s.defaultGoal
	}

	tracker := progress.NewTracker(s.sessions, progress.Options{
		Goal:      goal,
		WeekStart: s.weekStart,
		Now:       s.now,
	}, s.logger)
	defer tracker.Close()

	state := tracker.SetIdentity(ctx, userID)
	return &state, nil
}
