// Package memory holds in-process repository implementations. They back the
// CLI's ephemeral mode, the server when no database is configured, and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"studypilot/internal/config"
	"studypilot/internal/domain/repositories"
)

// SlotStore is a map-backed repositories.SlotStore
type SlotStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewSlotStore creates an empty slot store
func NewSlotStore() *SlotStore {
	return &SlotStore{slots: make(map[string]string)}
}

func (s *SlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok, nil
}

func (s *SlotStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(value) > config.MaxSlotValueBytes {
		return fmt.Errorf("slot %s: value exceeds %d bytes", key, config.MaxSlotValueBytes)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}

func (s *SlotStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}

// Len returns the number of stored slots
func (s *SlotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// SlotRepository keeps one SlotStore per user
type SlotRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*SlotStore
}

// NewSlotRepository creates an empty repository
func NewSlotRepository() *SlotRepository {
	return &SlotRepository{users: make(map[uuid.UUID]*SlotStore)}
}

func (r *SlotRepository) ForUser(userID uuid.UUID) repositories.SlotStore {
	return r.Store(userID)
}

// Store returns the concrete store of userID, creating it on first use
func (r *SlotRepository) Store(userID uuid.UUID) *SlotStore {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.users[userID]
	if !ok {
		s = NewSlotStore()
		r.users[userID] = s
	}
	return s
}
