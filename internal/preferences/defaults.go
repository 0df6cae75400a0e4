package preferences

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"studypilot/internal/domain/models"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults holds the default record of every preference domain
type Defaults struct {
	Accessibility models.AccessibilitySettings `yaml:"accessibility"`
	Notifications models.NotificationSettings  `yaml:"notifications"`
	StudyPlan     models.PlanSettings          `yaml:"study_plan"`
}

// LoadDefaults parses the embedded defaults document
func LoadDefaults() (*Defaults, error) {
	return parseDefaults(defaultsYAML)
}

func parseDefaults(data []byte) (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal preference defaults: %w", err)
	}

	if !d.Accessibility.FontSize.Valid() {
		return nil, fmt.Errorf("preference defaults: invalid font size %q", d.Accessibility.FontSize)
	}
	if !d.StudyPlan.StudyStyle.Valid() {
		return nil, fmt.Errorf("preference defaults: invalid study style %q", d.StudyPlan.StudyStyle)
	}
	if !validWeeklyHours(d.StudyPlan.WeeklyHours) {
		return nil, fmt.Errorf("preference defaults: invalid weekly hours %q", d.StudyPlan.WeeklyHours)
	}

	return &d, nil
}
