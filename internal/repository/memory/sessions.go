package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
)

// SessionRepository is an in-memory pomodoro session table
type SessionRepository struct {
	mu       sync.RWMutex
	sessions []models.PomodoroSession
}

func NewSessionRepository(sessions ...models.PomodoroSession) *SessionRepository {
	r := &SessionRepository{}
	r.Add(sessions...)
	return r
}

// Add records sessions. Sessions without an ID get one.
func (r *SessionRepository) Add(sessions ...models.PomodoroSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range sessions {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		r.sessions = append(r.sessions, s)
	}
}

func (r *SessionRepository) ListCompleted(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.PomodoroSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.PomodoroSession
	for _, s := range r.sessions {
		if s.CountsToward(userID, start, end) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out, nil
}
