package preferences

import (
	"context"
	"log/slog"

	"studypilot/internal/domain/models"
	"studypilot/internal/domain/repositories"
)

// BannerDismissal remembers that the premium banner was dismissed by storing
// a sentinel in its slot. Any other slot content counts as not dismissed.
type BannerDismissal struct {
	slots  repositories.SlotStore
	logger *slog.Logger
}

// NewBannerDismissal creates a dismissal tracker over slots
func NewBannerDismissal(slots repositories.SlotStore, logger *slog.Logger) *BannerDismissal {
	return &BannerDismissal{
		slots:  slots,
		logger: logger.With("slot", models.SlotPremiumBanner),
	}
}

// Dismissed reports whether the sentinel is stored. A read failure counts as not dismissed.
func (b *BannerDismissal) Dismissed(ctx context.Context) bool {
	value, found, err := b.slots.Get(ctx, models.SlotPremiumBanner)
	if err != nil {
		b.logger.Warn("read banner slot failed", "error", err)
		return false
	}
	return found && value == models.BannerDismissedTag
}

// Dismiss stores the sentinel. Write failures are logged, not returned.
func (b *BannerDismissal) Dismiss(ctx context.Context) {
	if err := b.slots.Set(ctx, models.SlotPremiumBanner, models.BannerDismissedTag); err != nil {
		b.logger.Warn("write banner slot failed", "error", err)
	}
}

// Clear removes the sentinel so the banner shows again
func (b *BannerDismissal) Clear(ctx context.Context) {
	if err := b.slots.Delete(ctx, models.SlotPremiumBanner); err != nil {
		b.logger.Warn("delete banner slot failed", "error", err)
	}
}
