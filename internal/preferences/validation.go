package preferences

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"studypilot/internal/config"
	"studypilot/internal/domain/models"
)

func validateAccessibilityPatch(p models.AccessibilityPatch) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FontSize, validation.NilOrNotEmpty, validation.In(fontSizeValues()...)),
	)
}

func validatePlanPatch(p models.PlanPatch) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CourseName, validation.Length(0, config.MaxCourseNameLength)),
		validation.Field(&p.ExamDate, validation.Date("2006-01-02")),
		validation.Field(&p.WeeklyHours, validation.NilOrNotEmpty, validation.By(weeklyHoursRule)),
		validation.Field(&p.StudyStyle, validation.NilOrNotEmpty, validation.In(studyStyleValues()...)),
		validation.Field(&p.Topics, validation.Length(0, config.MaxTopicsLength)),
	)
}

func weeklyHoursRule(value interface{}) error {
	v, _ := validation.Indirect(value)
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	if !validWeeklyHours(s) {
		return validation.NewError("validation_weekly_hours",
			fmt.Sprintf("must be a whole number between %d and %d", config.MinWeeklyHours, config.MaxWeeklyHours))
	}
	return nil
}

func validWeeklyHours(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n >= config.MinWeeklyHours && n <= config.MaxWeeklyHours
}

func fontSizeValues() []interface{} {
	out := make([]interface{}, len(models.FontSizes))
	for i, s := range models.FontSizes {
		out[i] = s
	}
	return out
}

func studyStyleValues() []interface{} {
	out := make([]interface{}, len(models.StudyStyles))
	for i, s := range models.StudyStyles {
		out[i] = s
	}
	return out
}
