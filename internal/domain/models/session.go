package models

import (
	"time"

	"github.com/google/uuid"
)

// PomodoroSession is a focus session recorded by the backend
type PomodoroSession struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	Completed       bool      `json:"completed" db:"completed"`
	StartedAt       time.Time `json:"started_at" db:"started_at"`
}

// CountsToward reports whether the session belongs to userID, is completed,
// and started inside the inclusive [start, end] range.
func (s PomodoroSession) CountsToward(userID uuid.UUID, start, end time.Time) bool {
	if s.UserID != userID || !s.Completed {
		return false
	}
	return !s.StartedAt.Before(start) && !s.StartedAt.After(end)
}

// WeeklyProgress is the weekly goal display state
type WeeklyProgress struct {
	Hours       float64   `json:"hours"`
	Goal        float64   `json:"goal"`
	Percent     float64   `json:"percent"`
	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`
}
