package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"studypilot/internal/config"
	"studypilot/internal/domain/models"
	"studypilot/internal/repository/memory"
)

// run executes the CLI against home and returns stdout
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd, closeSlots := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--home", home}, args...))
	err := cmd.Execute()
	if cerr := closeSlots(); cerr != nil {
		t.Fatalf("close slots: %v", cerr)
	}
	return out.String(), err
}

func mustRun(t *testing.T, home string, args ...string) string {
	t.Helper()
	out, err := run(t, home, args...)
	if err != nil {
		t.Fatalf("studypilot %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestPrefsShowDefaults(t *testing.T) {
	home := t.TempDir()

	out := mustRun(t, home, "prefs", "show", "accessibility")
	for _, want := range []string{"font_size: medium", "reduced_motion: false", "high_contrast: false"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out = mustRun(t, home, "markers")
	if strings.TrimSpace(out) != "font-size-medium" {
		t.Errorf("markers = %q, want font-size-medium", out)
	}
}

func TestPrefsSetPersistsAcrossRuns(t *testing.T) {
	home := t.TempDir()

	mustRun(t, home, "prefs", "set", "accessibility", "font-size=large", "high-contrast=true")

	out := mustRun(t, home, "markers")
	want := "font-size-large\nhigh-contrast\n"
	if out != want {
		t.Errorf("markers = %q, want %q", out, want)
	}
}

func TestPrefsSetNotificationsPrintsNotice(t *testing.T) {
	home := t.TempDir()

	out := mustRun(t, home, "prefs", "set", "notifications", "push=false")
	if !strings.Contains(out, "✓ Notification settings saved") {
		t.Errorf("output missing notice:\n%s", out)
	}
	if !strings.Contains(out, "push: false") {
		t.Errorf("output missing updated record:\n%s", out)
	}
}

func TestPrefsStudyPlanFreeTextNotStored(t *testing.T) {
	home := t.TempDir()

	out := mustRun(t, home, "prefs", "set", "study-plan", "course-name=Biology", "weekly-hours=8")
	if !strings.Contains(out, "course_name: Biology") {
		t.Errorf("set should echo the course name:\n%s", out)
	}

	out = mustRun(t, home, "prefs", "show", "study-plan")
	if strings.Contains(out, "Biology") {
		t.Errorf("course name survived into a new run:\n%s", out)
	}
	if !strings.Contains(out, `weekly_hours: "8"`) {
		t.Errorf("weekly hours not remembered:\n%s", out)
	}

	out = mustRun(t, home, "prefs", "reset", "study-plan")
	if !strings.Contains(out, `weekly_hours: "8"`) {
		t.Errorf("reset dropped weekly hours:\n%s", out)
	}
}

func TestPrefsSetErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown domain", args: []string{"prefs", "set", "theme", "dark=true"}},
		{name: "unknown key", args: []string{"prefs", "set", "notifications", "sms=true"}},
		{name: "missing equals", args: []string{"prefs", "set", "notifications", "push"}},
		{name: "bad bool", args: []string{"prefs", "set", "notifications", "push=maybe"}},
		{name: "invalid font size", args: []string{"prefs", "set", "accessibility", "font-size=huge"}},
		{name: "reset unsupported", args: []string{"prefs", "reset", "accessibility"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--ephemeral"}, tt.args...)
			if _, err := run(t, t.TempDir(), args...); err == nil {
				t.Fatalf("studypilot %s: expected error", strings.Join(tt.args, " "))
			}
		})
	}
}

func TestBannerCommands(t *testing.T) {
	home := t.TempDir()

	steps := []struct {
		args []string
		want string
	}{
		{[]string{"banner", "status"}, "shown"},
		{[]string{"banner", "dismiss"}, "dismissed"},
		{[]string{"banner", "status"}, "dismissed"},
		{[]string{"banner", "clear"}, "shown"},
	}
	for _, step := range steps {
		out := mustRun(t, home, step.args...)
		if strings.TrimSpace(out) != step.want {
			t.Errorf("%v = %q, want %q", step.args, out, step.want)
		}
	}
}

func TestPrintProgress(t *testing.T) {
	user := uuid.New()
	now := time.Now().UTC()
	sessions := memory.NewSessionRepository(
		models.PomodoroSession{UserID: user, DurationMinutes: 60, Completed: true, StartedAt: now},
		models.PomodoroSession{UserID: user, DurationMinutes: 30, Completed: false, StartedAt: now},
	)

	var out bytes.Buffer
	a := &app{
		out:    &out,
		cfg:    &config.Config{WeekStart: now.Weekday()},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	if err := a.printProgress(context.Background(), sessions, user, 20); err != nil {
		t.Fatalf("printProgress() error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "1.0 / 20 hours (5%)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestProgressDoesNotOpenSlots(t *testing.T) {
	t.Setenv("SUPABASE_DB_URL", "")
	home := t.TempDir()

	if _, err := run(t, home, "progress"); err == nil {
		t.Fatal("progress without SUPABASE_DB_URL: expected error")
	}
	if _, err := os.Stat(filepath.Join(home, "slots.db")); !os.IsNotExist(err) {
		t.Errorf("progress created slots.db (stat error %v)", err)
	}
}

func TestSlotsClosedAfterFailedCommand(t *testing.T) {
	home := t.TempDir()

	var out, errOut bytes.Buffer
	cmd, closeSlots := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--home", home, "prefs", "set", "accessibility", "font-size=huge"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected validation error")
	}
	if err := closeSlots(); err != nil {
		t.Fatalf("close slots: %v", err)
	}
	// A second close is a no-op
	if err := closeSlots(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	// The database is usable by the next run
	if out := mustRun(t, home, "markers"); strings.TrimSpace(out) != "font-size-medium" {
		t.Errorf("markers = %q", out)
	}
}
