// Package progress derives the weekly goal display from recorded pomodoro
// sessions.
package progress

import (
	"math"
	"time"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
)

// Window is an inclusive UTC time range
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekWindow returns the week containing now: from the most recent weekStart
// midnight (UTC) through the last millisecond before the next one.
func WeekWindow(now time.Time, weekStart time.Weekday) Window {
	now = now.UTC()
	offset := (int(now.Weekday()) - int(weekStart) + 7) % 7
	start := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return Window{Start: start, End: end}
}

// Contains reports whether t falls inside the window, both ends included
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// TotalHours sums the durations of the sessions that count toward userID in
// window, converted to hours and rounded to one decimal place.
func TotalHours(sessions []models.PomodoroSession, userID uuid.UUID, window Window) float64 {
	minutes := 0
	for _, s := range sessions {
		if s.CountsToward(userID, window.Start, window.End) {
			minutes += s.DurationMinutes
		}
	}
	return math.Round(float64(minutes)/60*10) / 10
}

// Percent returns hours as a share of goal, clamped to [0, 100].
// A non-positive goal, or a result that is not a number, yields 0.
func Percent(hours, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := hours * 100 / goal
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
