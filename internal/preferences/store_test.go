package preferences

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"studypilot/internal/domain"
	"studypilot/internal/domain/models"
	"studypilot/internal/presentation"
	"studypilot/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider(testLogger())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	return p
}

// faultySlots fails every operation whose error is set
type faultySlots struct {
	*memory.SlotStore
	getErr, setErr, deleteErr error
}

func (f *faultySlots) Get(ctx context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.SlotStore.Get(ctx, key)
}

func (f *faultySlots) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.SlotStore.Set(ctx, key, value)
}

func (f *faultySlots) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.SlotStore.Delete(ctx, key)
}

func ptr[T any](v T) *T { return &v }

func TestLoadWithoutStoredValueYieldsDefaults(t *testing.T) {
	ctx := context.Background()
	p := testProvider(t)
	d := p.Defaults()
	slots := memory.NewSlotStore()

	if diff := cmp.Diff(d.Accessibility, p.Accessibility(slots, presentation.NewMarkerSet()).Load(ctx)); diff != "" {
		t.Errorf("accessibility (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(d.Notifications, p.Notifications(slots).Load(ctx)); diff != "" {
		t.Errorf("notifications (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(d.StudyPlan, p.StudyPlan(slots).Load(ctx)); diff != "" {
		t.Errorf("study plan (-want +got):\n%s", diff)
	}

	want := models.AccessibilitySettings{FontSize: models.FontSizeMedium}
	if d.Accessibility != want {
		t.Errorf("accessibility defaults = %+v, want %+v", d.Accessibility, want)
	}
}

func TestLoadCorruptedValueYieldsDefaults(t *testing.T) {
	corrupt := []string{
		"{not json",
		`"true"`,
		`[1, 2, 3]`,
		`{"fontSize": 5, "push": "yes", "weeklyHours": 10}`,
		"",
	}

	for _, raw := range corrupt {
		t.Run(raw, func(t *testing.T) {
			ctx := context.Background()
			p := testProvider(t)
			d := p.Defaults()
			slots := memory.NewSlotStore()
			for _, key := range []string{models.SlotAccessibility, models.SlotNotifications, models.SlotPlanSettings} {
				if err := slots.Set(ctx, key, raw); err != nil {
					t.Fatal(err)
				}
			}

			if got := p.Accessibility(slots, presentation.NewMarkerSet()).Load(ctx); got != d.Accessibility {
				t.Errorf("accessibility = %+v, want defaults", got)
			}
			if got := p.Notifications(slots).Load(ctx); got != d.Notifications {
				t.Errorf("notifications = %+v, want defaults", got)
			}
			if got := p.StudyPlan(slots).Load(ctx); got != d.StudyPlan {
				t.Errorf("study plan = %+v, want defaults", got)
			}
		})
	}
}

func TestLoadFillsMissingAndInvalidFields(t *testing.T) {
	ctx := context.Background()
	p := testProvider(t)
	slots := memory.NewSlotStore()
	_ = slots.Set(ctx, models.SlotAccessibility, `{"highContrast": true}`)
	_ = slots.Set(ctx, models.SlotNotifications, `{"push": false}`)
	_ = slots.Set(ctx, models.SlotPlanSettings, `{"weeklyHours": "200", "studyStyle": "cramming"}`)

	a := p.Accessibility(slots, presentation.NewMarkerSet()).Load(ctx)
	if want := (models.AccessibilitySettings{FontSize: models.FontSizeMedium, HighContrast: true}); a != want {
		t.Errorf("accessibility = %+v, want %+v", a, want)
	}

	n := p.Notifications(slots).Load(ctx)
	if want := (models.NotificationSettings{Push: false, EmailDigest: true}); n != want {
		t.Errorf("notifications = %+v, want %+v", n, want)
	}

	plan := p.StudyPlan(slots).Load(ctx)
	if plan.WeeklyHours != "10" || plan.StudyStyle != models.StudyStyleBalanced {
		t.Errorf("invalid stored plan fields should revert to defaults, got %+v", plan)
	}
}

func TestUpdateThenLoadInFreshInstance(t *testing.T) {
	ctx := context.Background()
	p := testProvider(t)
	slots := memory.NewSlotStore()

	first := p.Accessibility(slots, presentation.NewMarkerSet())
	before := first.Load(ctx)
	if _, err := first.Update(ctx, models.AccessibilityPatch{ReducedMotion: ptr(true)}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got := p.Accessibility(slots, presentation.NewMarkerSet()).Load(ctx)
	want := before
	want.ReducedMotion = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reloaded record (-want +got):\n%s", diff)
	}

	notif := p.Notifications(slots)
	if _, err := notif.Update(ctx, models.NotificationPatch{EmailDigest: ptr(false)}); err != nil {
		t.Fatal(err)
	}
	if got := p.Notifications(slots).Load(ctx); got != (models.NotificationSettings{Push: true, EmailDigest: false}) {
		t.Errorf("reloaded notifications = %+v", got)
	}
}

func TestUpdateMergesShallowly(t *testing.T) {
	ctx := context.Background()
	store := testProvider(t).Accessibility(memory.NewSlotStore(), presentation.NewMarkerSet())

	if _, err := store.Update(ctx, models.AccessibilityPatch{FontSize: ptr(models.FontSizeLarge), HighContrast: ptr(true)}); err != nil {
		t.Fatal(err)
	}
	got, err := store.Update(ctx, models.AccessibilityPatch{HighContrast: ptr(false)})
	if err != nil {
		t.Fatal(err)
	}
	if want := (models.AccessibilitySettings{FontSize: models.FontSizeLarge}); got != want {
		t.Errorf("Update() = %+v, want %+v", got, want)
	}
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	ctx := context.Background()
	p := testProvider(t)
	slots := memory.NewSlotStore()

	tests := []struct {
		name   string
		update func() error
	}{
		{name: "unknown font size", update: func() error {
			_, err := p.Accessibility(slots, presentation.NewMarkerSet()).Update(ctx, models.AccessibilityPatch{FontSize: ptr(models.FontSize("huge"))})
			return err
		}},
		{name: "empty font size", update: func() error {
			_, err := p.Accessibility(slots, presentation.NewMarkerSet()).Update(ctx, models.AccessibilityPatch{FontSize: ptr(models.FontSize(""))})
			return err
		}},
		{name: "weekly hours not a number", update: func() error {
			_, err := p.StudyPlan(slots).Update(ctx, models.PlanPatch{WeeklyHours: ptr("lots")})
			return err
		}},
		{name: "weekly hours out of range", update: func() error {
			_, err := p.StudyPlan(slots).Update(ctx, models.PlanPatch{WeeklyHours: ptr("0")})
			return err
		}},
		{name: "unknown study style", update: func() error {
			_, err := p.StudyPlan(slots).Update(ctx, models.PlanPatch{StudyStyle: ptr(models.StudyStyle("cramming"))})
			return err
		}},
		{name: "bad exam date", update: func() error {
			_, err := p.StudyPlan(slots).Update(ctx, models.PlanPatch{ExamDate: ptr("next tuesday")})
			return err
		}},
		{name: "course name too long", update: func() error {
			_, err := p.StudyPlan(slots).Update(ctx, models.PlanPatch{CourseName: ptr(strings.Repeat("a", 500))})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update()
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}

	if slots.Len() != 0 {
		t.Errorf("rejected patches must not write slots, %d slots written", slots.Len())
	}
}

func TestAccessibilitySideEffects(t *testing.T) {
	ctx := context.Background()
	p := testProvider(t)
	root := presentation.NewMarkerSet("font-size-small", "reduce-motion")
	store := p.Accessibility(memory.NewSlotStore(), root)

	store.Load(ctx)
	if diff := cmp.Diff([]string{"font-size-medium"}, root.List()); diff != "" {
		t.Errorf("markers after empty load (-want +got):\n%s", diff)
	}

	patches := []models.AccessibilityPatch{
		{FontSize: ptr(models.FontSizeExtraLarge)},
		{ReducedMotion: ptr(true)},
		{HighContrast: ptr(true), FontSize: ptr(models.FontSizeSmall)},
		{ReducedMotion: ptr(false)},
	}
	for _, patch := range patches {
		rec, err := store.Update(ctx, patch)
		if err != nil {
			t.Fatal(err)
		}

		sizes := 0
		for _, m := range root.List() {
			if strings.HasPrefix(m, "font-size-") {
				sizes++
			}
		}
		if sizes != 1 || !root.Has(presentation.FontSizeMarker(rec.FontSize)) {
			t.Errorf("want exactly the %s marker, got %v", rec.FontSize, root.List())
		}
		if root.Has(presentation.MarkerReduceMotion) != rec.ReducedMotion {
			t.Errorf("reduce-motion marker = %v, setting = %v", root.Has(presentation.MarkerReduceMotion), rec.ReducedMotion)
		}
		if root.Has(presentation.MarkerHighContrast) != rec.HighContrast {
			t.Errorf("high-contrast marker = %v, setting = %v", root.Has(presentation.MarkerHighContrast), rec.HighContrast)
		}
	}
}

func TestLoadReadsSlotOnce(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	store := testProvider(t).Notifications(slots)

	store.Load(ctx)
	_ = slots.Set(ctx, models.SlotNotifications, `{"push": false, "emailDigest": false}`)

	if got := store.Load(ctx); !got.Push {
		t.Errorf("second Load() re-read the slot: %+v", got)
	}
}

func TestUpdateLoadsBeforeMerging(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewSlotStore()
	_ = slots.Set(ctx, models.SlotAccessibility, `{"fontSize": "large", "reducedMotion": false, "highContrast": true}`)

	store := testProvider(t).Accessibility(slots, presentation.NewMarkerSet())
	got, err := store.Update(ctx, models.AccessibilityPatch{ReducedMotion: ptr(true)})
	if err != nil {
		t.Fatal(err)
	}
	if want := (models.AccessibilitySettings{FontSize: models.FontSizeLarge, ReducedMotion: true, HighContrast: true}); got != want {
		t.Errorf("Update() = %+v, want %+v", got, want)
	}
}

func TestStorageFailuresAreNotFatal(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk unavailable")
	slots := &faultySlots{SlotStore: memory.NewSlotStore(), getErr: boom, setErr: boom, deleteErr: boom}
	p := testProvider(t)

	store := p.Accessibility(slots, presentation.NewMarkerSet())
	if got := store.Load(ctx); got != p.Defaults().Accessibility {
		t.Errorf("Load() with failing reads = %+v, want defaults", got)
	}

	got, err := store.Update(ctx, models.AccessibilityPatch{HighContrast: ptr(true)})
	if err != nil {
		t.Fatalf("Update() with failing writes returned %v", err)
	}
	if !got.HighContrast || !store.Current().HighContrast {
		t.Error("in-memory record should advance even when the write fails")
	}

	plan := p.StudyPlan(slots)
	if _, err := plan.Update(ctx, models.PlanPatch{RememberSettings: ptr(false)}); err != nil {
		t.Errorf("Update() with failing delete returned %v", err)
	}
}

func TestResetUnsupported(t *testing.T) {
	store := testProvider(t).Notifications(memory.NewSlotStore())
	if _, err := store.Reset(context.Background()); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Reset() error = %v, want ErrValidation", err)
	}
}

func TestCheckUniqueKeys(t *testing.T) {
	if err := checkUniqueKeys("a", "b"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := checkUniqueKeys("a", "b", "a"); err == nil {
		t.Error("duplicate keys should be rejected")
	}
	if err := checkUniqueKeys(""); err == nil {
		t.Error("empty key should be rejected")
	}
}

func TestParseDefaults(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{name: "embedded", yaml: string(defaultsYAML)},
		{name: "invalid yaml", yaml: "accessibility: [", wantErr: true},
		{name: "bad font size", yaml: "accessibility:\n  font_size: tiny\nstudy_plan:\n  weekly_hours: \"10\"\n  study_style: balanced\n", wantErr: true},
		{name: "bad style", yaml: "accessibility:\n  font_size: small\nstudy_plan:\n  weekly_hours: \"10\"\n  study_style: lazy\n", wantErr: true},
		{name: "bad hours", yaml: "accessibility:\n  font_size: small\nstudy_plan:\n  weekly_hours: \"0\"\n  study_style: balanced\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDefaults([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Errorf("parseDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
