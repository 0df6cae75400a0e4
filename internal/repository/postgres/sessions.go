package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"studypilot/internal/domain"
	"studypilot/internal/domain/models"
	"studypilot/internal/domain/repositories"
)

// SessionRepository reads {prefix}pomodoro_sessions
type SessionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

func NewSessionRepository(cfg *RepositoryConfig) *SessionRepository {
	return &SessionRepository{
		pool:   cfg.Pool,
		tables: cfg.Tables,
		logger: cfg.Logger,
	}
}

var _ repositories.SessionRepository = (*SessionRepository)(nil)

// ListCompleted returns completed sessions of userID started within [start, end]
func (r *SessionRepository) ListCompleted(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.PomodoroSession, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, duration_minutes, completed, started_at
		FROM %s
		WHERE user_id = $1
		  AND completed = true
		  AND started_at >= $2
		  AND started_at <= $3
		ORDER BY started_at
	`, r.tables.PomodoroSessions)

	rows, err := GetExecutor(ctx, r.pool).Query(ctx, query, userID, start.UTC(), end.UTC())
	if err != nil {
		if IsPgUndefinedTableError(err) {
			return nil, fmt.Errorf("%w: table %s does not exist", domain.ErrUnavailable, r.tables.PomodoroSessions)
		}
		return nil, fmt.Errorf("list pomodoro sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.PomodoroSession{}
	for rows.Next() {
		var s models.PomodoroSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.DurationMinutes, &s.Completed, &s.StartedAt); err != nil {
			return nil, fmt.Errorf("scan pomodoro session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pomodoro sessions: %w", err)
	}

	r.logger.Debug("weekly sessions fetched",
		"user_id", userID,
		"count", len(sessions),
		"window_start", start,
	)
	return sessions, nil
}

// InsertSession records a session. Used by the seed tool.
func (r *SessionRepository) InsertSession(ctx context.Context, s *models.PomodoroSession) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, duration_minutes, completed, started_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.tables.PomodoroSessions)

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if _, err := GetExecutor(ctx, r.pool).Exec(ctx, query, s.ID, s.UserID, s.DurationMinutes, s.Completed, s.StartedAt.UTC()); err != nil {
		return fmt.Errorf("insert pomodoro session: %w", err)
	}
	return nil
}
