package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"studypilot/internal/auth"
	"studypilot/internal/domain"
	"studypilot/internal/domain/models"
	"studypilot/internal/domain/services"
	"studypilot/internal/notify"
)

// SessionService implements services.SessionService
type SessionService struct {
	terminator auth.SessionTerminator
	notifier   notify.Notifier
	logger     *slog.Logger
}

// NewSessionService creates a new session service
func NewSessionService(terminator auth.SessionTerminator, notifier notify.Notifier, logger *slog.Logger) services.SessionService {
	return &SessionService{
		terminator: terminator,
		notifier:   notifier,
		logger:     logger,
	}
}

func (s *SessionService) SignOut(ctx context.Context, userID uuid.UUID, accessToken string) models.Notice {
	var notice models.Notice

	err := s.terminator.SignOut(ctx, accessToken)
	switch {
	case err == nil:
		notice = models.SuccessNotice("Signed out", "")
	case errors.Is(err, domain.ErrUnauthorized):
		s.logger.Warn("sign out rejected", "user_id", userID, "error", err)
		notice = models.ErrorNotice("Sign out failed", "Your session has already ended.")
	default:
		s.logger.Error("sign out failed", "user_id", userID, "error", err)
		notice = models.ErrorNotice("Sign out failed", "Please try again.")
	}

	s.notifier.Notify(ctx, notice)
	return notice
}

// LocalTerminator ends sessions that exist only in this process, used when
// the route guard is disabled and there is no upstream session to revoke.
type LocalTerminator struct{}

func (LocalTerminator) SignOut(context.Context, string) error { return nil }
