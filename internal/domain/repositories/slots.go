package repositories

import (
	"context"

	"github.com/google/uuid"
)

// SlotStore is a string-keyed durable key-value store: the durable slots
// that preference records are mirrored to.
type SlotStore interface {
	// Get returns the stored value for key.
	// found is false (and err nil) when the slot does not exist.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set creates or replaces the slot.
	Set(ctx context.Context, key, value string) error

	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
}

// SlotRepository hands out the slot store of one identity
type SlotRepository interface {
	ForUser(userID uuid.UUID) SlotStore
}
