// Package notify delivers transient user-visible notices (toasts).
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"studypilot/internal/domain/models"
)

// Notifier shows a notice to the user
type Notifier interface {
	Notify(ctx context.Context, n models.Notice)
}

// LogNotifier records notices in the structured log. Used by the server,
// where the notice itself travels back in the response body.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that writes notices to logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(ctx context.Context, n models.Notice) {
	l.logger.InfoContext(ctx, "notice",
		"kind", n.Kind,
		"title", n.Title,
		"message", n.Message,
	)
}

// WriterNotifier prints notices as single lines, for terminals
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier returns a notifier that prints notices to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (p *WriterNotifier) Notify(_ context.Context, n models.Notice) {
	p.mu.Lock()
	defer p.mu.Unlock()

	mark := "✓"
	if n.Kind == models.NoticeError {
		mark = "✗"
	}
	if n.Message == "" {
		fmt.Fprintf(p.w, "%s %s\n", mark, n.Title)
		return
	}
	fmt.Fprintf(p.w, "%s %s: %s\n", mark, n.Title, n.Message)
}

// Recorder keeps every notice it receives
type Recorder struct {
	mu      sync.Mutex
	notices []models.Notice
}

func (r *Recorder) Notify(_ context.Context, n models.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of the recorded notices in arrival order
func (r *Recorder) Notices() []models.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notice(nil), r.notices...)
}
