package preferences

import (
	"encoding/json"

	"studypilot/internal/domain/models"
)

type (
	AccessibilityStore = Store[models.AccessibilitySettings, models.AccessibilityPatch]
	NotificationStore  = Store[models.NotificationSettings, models.NotificationPatch]
	PlanStore          = Store[models.PlanSettings, models.PlanPatch]
)

// AccessibilityDomain persists the whole record. Unknown stored font sizes
// revert to the default.
func AccessibilityDomain(defaults models.AccessibilitySettings) Domain[models.AccessibilitySettings, models.AccessibilityPatch] {
	return Domain[models.AccessibilitySettings, models.AccessibilityPatch]{
		Key:      models.SlotAccessibility,
		Defaults: defaults,
		Validate: validateAccessibilityPatch,
		Merge: func(cur models.AccessibilitySettings, p models.AccessibilityPatch) models.AccessibilitySettings {
			if p.FontSize != nil {
				cur.FontSize = *p.FontSize
			}
			if p.ReducedMotion != nil {
				cur.ReducedMotion = *p.ReducedMotion
			}
			if p.HighContrast != nil {
				cur.HighContrast = *p.HighContrast
			}
			return cur
		},
		Normalize: func(rec, def models.AccessibilitySettings) models.AccessibilitySettings {
			if !rec.FontSize.Valid() {
				rec.FontSize = def.FontSize
			}
			return rec
		},
	}
}

// NotificationDomain is plain whole-record persistence.
func NotificationDomain(defaults models.NotificationSettings) Domain[models.NotificationSettings, models.NotificationPatch] {
	return Domain[models.NotificationSettings, models.NotificationPatch]{
		Key:      models.SlotNotifications,
		Defaults: defaults,
		Merge: func(cur models.NotificationSettings, p models.NotificationPatch) models.NotificationSettings {
			if p.Push != nil {
				cur.Push = *p.Push
			}
			if p.EmailDigest != nil {
				cur.EmailDigest = *p.EmailDigest
			}
			return cur
		},
	}
}

// storedPlanSettings is the only part of the plan form that reaches storage.
type storedPlanSettings struct {
	WeeklyHours      string            `json:"weeklyHours"`
	StudyStyle       models.StudyStyle `json:"studyStyle"`
	RememberSettings bool              `json:"rememberSettings"`
}

// PlanDomain persists weeklyHours, studyStyle and rememberSettings, and only
// while rememberSettings is true; otherwise the slot is deleted. Free-text
// fields are never written, and are ignored if a stored value carries them.
// Reset keeps the persisted fields and blanks the rest.
func PlanDomain(defaults models.PlanSettings) Domain[models.PlanSettings, models.PlanPatch] {
	return Domain[models.PlanSettings, models.PlanPatch]{
		Key:      models.SlotPlanSettings,
		Defaults: defaults,
		Validate: validatePlanPatch,
		Merge: func(cur models.PlanSettings, p models.PlanPatch) models.PlanSettings {
			if p.CourseName != nil {
				cur.CourseName = *p.CourseName
			}
			if p.ExamDate != nil {
				cur.ExamDate = *p.ExamDate
			}
			if p.WeeklyHours != nil {
				cur.WeeklyHours = *p.WeeklyHours
			}
			if p.StudyStyle != nil {
				cur.StudyStyle = *p.StudyStyle
			}
			if p.Topics != nil {
				cur.Topics = *p.Topics
			}
			if p.RememberSettings != nil {
				cur.RememberSettings = *p.RememberSettings
			}
			return cur
		},
		Decode: func(raw string, def models.PlanSettings) (models.PlanSettings, error) {
			stored := storedPlanSettings{
				WeeklyHours:      def.WeeklyHours,
				StudyStyle:       def.StudyStyle,
				RememberSettings: def.RememberSettings,
			}
			if err := json.Unmarshal([]byte(raw), &stored); err != nil {
				return def, err
			}
			rec := def
			rec.WeeklyHours = stored.WeeklyHours
			rec.StudyStyle = stored.StudyStyle
			rec.RememberSettings = stored.RememberSettings
			return rec, nil
		},
		Normalize: func(rec, def models.PlanSettings) models.PlanSettings {
			if !validWeeklyHours(rec.WeeklyHours) {
				rec.WeeklyHours = def.WeeklyHours
			}
			if !rec.StudyStyle.Valid() {
				rec.StudyStyle = def.StudyStyle
			}
			return rec
		},
		Persist: func(rec models.PlanSettings) (any, bool) {
			if !rec.RememberSettings {
				return nil, false
			}
			return storedPlanSettings{
				WeeklyHours:      rec.WeeklyHours,
				StudyStyle:       rec.StudyStyle,
				RememberSettings: rec.RememberSettings,
			}, true
		},
		Reset: func(cur, def models.PlanSettings) models.PlanSettings {
			next := def
			next.WeeklyHours = cur.WeeklyHours
			next.StudyStyle = cur.StudyStyle
			next.RememberSettings = cur.RememberSettings
			return next
		},
	}
}
