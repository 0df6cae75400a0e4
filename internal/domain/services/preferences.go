package services

import (
	"context"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
)

// PreferencesService defines the preference operations of one user.
// Every call hydrates from the user's slots, so only persisted fields
// survive between calls.
type PreferencesService interface {
	// GetAccessibility returns the accessibility record and the markers it produces
	GetAccessibility(ctx context.Context, userID uuid.UUID) (*models.AccessibilityView, error)

	// UpdateAccessibility merges patch and returns the updated record and markers.
	// Returns domain.ErrValidation for out-of-range values.
	UpdateAccessibility(ctx context.Context, userID uuid.UUID, patch *models.AccessibilityPatch) (*models.AccessibilityView, error)

	GetNotifications(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error)

	// UpdateNotifications merges patch and returns the record with a confirmation notice
	UpdateNotifications(ctx context.Context, userID uuid.UUID, patch *models.NotificationPatch) (*models.NotificationUpdate, error)

	GetStudyPlan(ctx context.Context, userID uuid.UUID) (*models.PlanSettings, error)

	// UpdateStudyPlan merges patch. Free-text fields are echoed in the result
	// but never written to the user's slots.
	UpdateStudyPlan(ctx context.Context, userID uuid.UUID, patch *models.PlanPatch) (*models.PlanSettings, error)

	// ResetStudyPlan restores the form defaults, keeping hours, style and the remember flag
	ResetStudyPlan(ctx context.Context, userID uuid.UUID) (*models.PlanSettings, error)

	GetPremiumBanner(ctx context.Context, userID uuid.UUID) (*models.BannerState, error)
	DismissPremiumBanner(ctx context.Context, userID uuid.UUID) (*models.BannerState, error)
	ClearPremiumBanner(ctx context.Context, userID uuid.UUID) (*models.BannerState, error)
}
