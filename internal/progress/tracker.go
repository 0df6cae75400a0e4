package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
	"studypilot/internal/domain/repositories"
)

// Options configures a Tracker
type Options struct {
	Goal      float64
	WeekStart time.Weekday
	Now       func() time.Time // defaults to time.Now
}

// Tracker holds the weekly goal display state of one consumer. It refetches
// when the identity changes; a failed fetch keeps the last known value, and
// results that arrive after Close or after a newer identity are dropped.
type Tracker struct {
	sessions  repositories.SessionRepository
	goal      float64
	weekStart time.Weekday
	now       func() time.Time
	logger    *slog.Logger

	mu          sync.Mutex
	identity    uuid.UUID
	hasIdentity bool
	generation  uint64
	closed      bool
	state       models.WeeklyProgress
}

// NewTracker creates a tracker showing zero progress
func NewTracker(sessions repositories.SessionRepository, opts Options, logger *slog.Logger) *Tracker {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		sessions:  sessions,
		goal:      opts.Goal,
		weekStart: opts.WeekStart,
		now:       now,
		logger:    logger,
		state:     models.WeeklyProgress{Goal: opts.Goal},
	}
}

// SetIdentity refreshes progress for userID if it differs from the current
// identity. Switching identity clears the previous user's progress first.
func (t *Tracker) SetIdentity(ctx context.Context, userID uuid.UUID) models.WeeklyProgress {
	t.mu.Lock()
	if t.closed || (t.hasIdentity && t.identity == userID) {
		state := t.state
		t.mu.Unlock()
		return state
	}
	t.identity = userID
	t.hasIdentity = true
	t.generation++
	t.state = models.WeeklyProgress{Goal: t.goal}
	t.mu.Unlock()

	return t.Refresh(ctx)
}

// Refresh refetches progress for the current identity
func (t *Tracker) Refresh(ctx context.Context) models.WeeklyProgress {
	t.mu.Lock()
	if t.closed || !t.hasIdentity {
		state := t.state
		t.mu.Unlock()
		return state
	}
	gen, userID := t.generation, t.identity
	t.mu.Unlock()

	window := WeekWindow(t.now(), t.weekStart)
	sessions, err := t.sessions.ListCompleted(ctx, userID, window.Start, window.End)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || gen != t.generation {
		t.logger.Debug("discarding stale weekly progress", "user_id", userID)
		return t.state
	}
	if err != nil {
		t.logger.Warn("fetch weekly sessions failed, keeping last value",
			"user_id", userID,
			"error", err,
		)
		return t.state
	}

	hours := TotalHours(sessions, userID, window)
	t.state = models.WeeklyProgress{
		Hours:       hours,
		Goal:        t.goal,
		Percent:     Percent(hours, t.goal),
		WindowStart: window.Start,
		WindowEnd:   window.End,
	}
	return t.state
}

// Progress returns the last known state
func (t *Tracker) Progress() models.WeeklyProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Close tears the tracker down. Pending fetches no longer update state.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
}
