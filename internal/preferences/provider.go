package preferences

import (
	"fmt"
	"log/slog"

	"studypilot/internal/domain/models"
	"studypilot/internal/domain/repositories"
	"studypilot/internal/presentation"
)

// Provider constructs the preference stores of one identity. Consumers get
// their stores from a Provider instead of building domains themselves.
type Provider struct {
	defaults Defaults
	logger   *slog.Logger
}

// NewProvider loads the compiled-in defaults and checks that no two domains
// share a slot key.
func NewProvider(logger *slog.Logger) (*Provider, error) {
	defaults, err := LoadDefaults()
	if err != nil {
		return nil, err
	}

	if err := checkUniqueKeys(
		models.SlotAccessibility,
		models.SlotNotifications,
		models.SlotPlanSettings,
		models.SlotPremiumBanner,
	); err != nil {
		return nil, err
	}

	return &Provider{defaults: *defaults, logger: logger}, nil
}

// Defaults returns a copy of the default records
func (p *Provider) Defaults() Defaults {
	return p.defaults
}

// Accessibility returns an accessibility store whose side effects adjust root.
func (p *Provider) Accessibility(slots repositories.SlotStore, root presentation.ClassList) *AccessibilityStore {
	return NewStore(AccessibilityDomain(p.defaults.Accessibility), slots, p.logger,
		presentation.AccessibilityEffect(root))
}

// Notifications returns a notification store over slots, seeded from the configured defaults.
func (p *Provider) Notifications(slots repositories.SlotStore) *NotificationStore {
	return NewStore(NotificationDomain(p.defaults.Notifications), slots, p.logger)
}

// StudyPlan returns a study plan store over slots, seeded from the configured defaults.
func (p *Provider) StudyPlan(slots repositories.SlotStore) *PlanStore {
	return NewStore(PlanDomain(p.defaults.StudyPlan), slots, p.logger)
}

// PremiumBanner returns the banner dismissal flag over slots.
func (p *Provider) PremiumBanner(slots repositories.SlotStore) *BannerDismissal {
	return NewBannerDismissal(slots, p.logger)
}

func checkUniqueKeys(keys ...string) error {
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == "" {
			return fmt.Errorf("preference slot key cannot be empty")
		}
		if seen[k] {
			return fmt.Errorf("preference slot key %q used by more than one domain", k)
		}
		seen[k] = true
	}
	return nil
}
