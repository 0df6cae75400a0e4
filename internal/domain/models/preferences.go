package models

// Durable slot keys. Each preference domain owns exactly one key.
const (
	SlotAccessibility  = "studypilot-accessibility"
	SlotNotifications  = "studypilot-notifications"
	SlotPlanSettings   = "studypilot_plan_settings"
	SlotPremiumBanner  = "premium-card-dismissed"
	BannerDismissedTag = "true"
)

// FontSize is the accessibility font scale
type FontSize string

const (
	FontSizeSmall      FontSize = "small"
	FontSizeMedium     FontSize = "medium"
	FontSizeLarge      FontSize = "large"
	FontSizeExtraLarge FontSize = "extra-large"
)

// FontSizes lists every supported font size in ascending order.
var FontSizes = []FontSize{FontSizeSmall, FontSizeMedium, FontSizeLarge, FontSizeExtraLarge}

// Valid reports whether f is one of FontSizes
func (f FontSize) Valid() bool {
	for _, s := range FontSizes {
		if f == s {
			return true
		}
	}
	return false
}

// StudyStyle is the pacing the plan generator is asked for
type StudyStyle string

const (
	StudyStyleBalanced  StudyStyle = "balanced"
	StudyStyleIntensive StudyStyle = "intensive"
	StudyStyleRelaxed   StudyStyle = "relaxed"
)

// StudyStyles lists every supported study style.
var StudyStyles = []StudyStyle{StudyStyleBalanced, StudyStyleIntensive, StudyStyleRelaxed}

// Valid reports whether s is one of StudyStyles
func (s StudyStyle) Valid() bool {
	for _, v := range StudyStyles {
		if s == v {
			return true
		}
	}
	return false
}

// AccessibilitySettings is the accessibility preference record
type AccessibilitySettings struct {
	FontSize      FontSize `json:"fontSize" yaml:"font_size"`
	ReducedMotion bool     `json:"reducedMotion" yaml:"reduced_motion"`
	HighContrast  bool     `json:"highContrast" yaml:"high_contrast"`
}

// AccessibilityPatch is a partial change to AccessibilitySettings.
// Nil fields are left untouched.
type AccessibilityPatch struct {
	FontSize      *FontSize `json:"fontSize"`
	ReducedMotion *bool     `json:"reducedMotion"`
	HighContrast  *bool     `json:"highContrast"`
}

// AccessibilityView is the accessibility record together with the
// presentation markers it produced.
type AccessibilityView struct {
	Settings AccessibilitySettings `json:"settings"`
	Markers  []string              `json:"markers"`
}

// NotificationSettings is the notification preference record
type NotificationSettings struct {
	Push        bool `json:"push" yaml:"push"`
	EmailDigest bool `json:"emailDigest" yaml:"email_digest"`
}

// NotificationPatch is a partial change to NotificationSettings
type NotificationPatch struct {
	Push        *bool `json:"push"`
	EmailDigest *bool `json:"emailDigest"`
}

// NotificationUpdate is the result of a notification settings change
type NotificationUpdate struct {
	Settings NotificationSettings `json:"settings"`
	Notice   Notice               `json:"notice"`
}

// PlanSettings is the study-plan form record.
// CourseName, ExamDate and Topics are free text and never leave memory.
type PlanSettings struct {
	CourseName       string     `json:"courseName" yaml:"course_name"`
	ExamDate         string     `json:"examDate" yaml:"exam_date"` // YYYY-MM-DD or empty
	WeeklyHours      string     `json:"weeklyHours" yaml:"weekly_hours"`
	StudyStyle       StudyStyle `json:"studyStyle" yaml:"study_style"`
	Topics           string     `json:"topics" yaml:"topics"`
	RememberSettings bool       `json:"rememberSettings" yaml:"remember_settings"`
}

// PlanPatch is a partial change to PlanSettings
type PlanPatch struct {
	CourseName       *string     `json:"courseName"`
	ExamDate         *string     `json:"examDate"`
	WeeklyHours      *string     `json:"weeklyHours"`
	StudyStyle       *StudyStyle `json:"studyStyle"`
	Topics           *string     `json:"topics"`
	RememberSettings *bool       `json:"rememberSettings"`
}

// BannerState reports whether the premium banner was dismissed
type BannerState struct {
	Dismissed bool `json:"dismissed"`
}
