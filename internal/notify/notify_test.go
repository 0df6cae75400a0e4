package notify

import (
	"bytes"
	"context"
	"testing"

	"studypilot/internal/domain/models"
)

func TestWriterNotifier(t *testing.T) {
	tests := []struct {
		name   string
		notice models.Notice
		want   string
	}{
		{
			name:   "success with message",
			notice: models.SuccessNotice("Signed out", "See you soon."),
			want:   "✓ Signed out: See you soon.\n",
		},
		{
			name:   "error without message",
			notice: models.ErrorNotice("Sign out failed", ""),
			want:   "✗ Sign out failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewWriterNotifier(&buf).Notify(context.Background(), tt.notice)
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Notify(context.Background(), models.SuccessNotice("a", ""))
	r.Notify(context.Background(), models.ErrorNotice("b", ""))

	got := r.Notices()
	if len(got) != 2 || got[0].Title != "a" || got[1].Kind != models.NoticeError {
		t.Errorf("Notices() = %+v", got)
	}

	got[0].Title = "mutated"
	if r.Notices()[0].Title != "a" {
		t.Error("Notices() should return a copy")
	}
}
