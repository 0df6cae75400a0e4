package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
	"studypilot/internal/domain/repositories"
	"studypilot/internal/domain/services"
	"studypilot/internal/notify"
	"studypilot/internal/preferences"
	"studypilot/internal/presentation"
)

// PreferencesService implements services.PreferencesService over per-user slots
type PreferencesService struct {
	slotRepo repositories.SlotRepository
	provider *preferences.Provider
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(
	slotRepo repositories.SlotRepository,
	provider *preferences.Provider,
	notifier notify.Notifier,
	logger *slog.Logger,
) services.PreferencesService {
	return &PreferencesService{
		slotRepo: slotRepo,
		provider: provider,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *PreferencesService) accessibility(userID uuid.UUID) (*preferences.AccessibilityStore, *presentation.MarkerSet) {
	markers := presentation.NewMarkerSet()
	return s.provider.Accessibility(s.slotRepo.ForUser(userID), markers), markers
}

func (s *PreferencesService) GetAccessibility(ctx context.Context, userID uuid.UUID) (*models.AccessibilityView, error) {
	store, markers := s.accessibility(userID)
	settings := store.Load(ctx)
	return &models.AccessibilityView{Settings: settings, Markers: markers.List()}, nil
}

func (s *PreferencesService) UpdateAccessibility(ctx context.Context, userID uuid.UUID, patch *models.AccessibilityPatch) (*models.AccessibilityView, error) {
	store, markers := s.accessibility(userID)
	settings, err := store.Update(ctx, *patch)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("accessibility updated",
		"user_id", userID,
		"font_size", settings.FontSize,
	)
	return &models.AccessibilityView{Settings: settings, Markers: markers.List()}, nil
}

func (s *PreferencesService) GetNotifications(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error) {
	settings := s.provider.Notifications(s.slotRepo.ForUser(userID)).Load(ctx)
	return &settings, nil
}

func (s *PreferencesService) UpdateNotifications(ctx context.Context, userID uuid.UUID, patch *models.NotificationPatch) (*models.NotificationUpdate, error) {
	settings, err := s.provider.Notifications(s.slotRepo.ForUser(userID)).Update(ctx, *patch)
	if err != nil {
		return nil, err
	}

	notice := models.SuccessNotice("Notification settings saved", "")
	s.notifier.Notify(ctx, notice)

	return &models.NotificationUpdate{Settings: settings, Notice: notice}, nil
}

func (s *PreferencesService) GetStudyPlan(ctx context.Context, userID uuid.UUID) (*models.PlanSettings, error) {
	settings := s.provider.StudyPlan(s.slotRepo.ForUser(userID)).Load(ctx)
	return &settings, nil
}

func (s *PreferencesService) UpdateStudyPlan(ctx context.Context, userID uuid.UUID, patch *models.PlanPatch) (*models.PlanSettings, error) {
	settings, err := s.provider.StudyPlan(s.slotRepo.ForUser(userID)).Update(ctx, *patch)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *PreferencesService) ResetStudyPlan(ctx context.Context, userID uuid.UUID) (*models.PlanSettings, error) {
	settings, err := s.provider.StudyPlan(s.slotRepo.ForUser(userID)).Reset(ctx)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *PreferencesService) GetPremiumBanner(ctx context.Context, userID uuid.UUID) (*models.BannerState, error) {
	banner := s.provider.PremiumBanner(s.slotRepo.ForUser(userID))
	return &models.BannerState{Dismissed: banner.Dismissed(ctx)}, nil
}

func (s *PreferencesService) DismissPremiumBanner(ctx context.Context, userID uuid.UUID) (*models.BannerState, error) {
	banner := s.provider.PremiumBanner(s.slotRepo.ForUser(userID))
	banner.Dismiss(ctx)
	return &models.BannerState{Dismissed: banner.Dismissed(ctx)}, nil
}

func (s *PreferencesService) ClearPremiumBanner(ctx context.Context, userID uuid.UUID) (*models.BannerState, error) {
	banner := s.provider.PremiumBanner(s.slotRepo.ForUser(userID))
	banner.Clear(ctx)
	return &models.BannerState{Dismissed: banner.Dismissed(ctx)}, nil
}
