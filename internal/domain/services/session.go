package services

import (
	"context"

	"github.com/google/uuid"
	"studypilot/internal/domain/models"
)

// SessionService ends authenticated sessions.
type SessionService interface {
	// SignOut revokes the session behind accessToken. Failure is reported
	// through the returned notice, never as an error.
	SignOut(ctx context.Context, userID uuid.UUID, accessToken string) models.Notice
}
