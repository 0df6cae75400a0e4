package config

const (
	// DefaultWeeklyGoalHours is the weekly study goal used when none is configured.
	DefaultWeeklyGoalHours = 20

	// MaxWeeklyGoalHours caps the weekly goal at the hours in a week.
	MaxWeeklyGoalHours = 168

	// MinWeeklyHours and MaxWeeklyHours bound the study-plan weekly hours field.
	MinWeeklyHours = 1
	MaxWeeklyHours = 80

	// MaxCourseNameLength is the maximum length for the plan form course name.
	MaxCourseNameLength = 200

	// MaxTopicsLength is the maximum length for the plan form topics text.
	MaxTopicsLength = 4000

	// MaxSlotValueBytes bounds a single durable slot value. Preference
	// records are a handful of primitives, so anything larger is rejected.
	MaxSlotValueBytes = 4096
)
