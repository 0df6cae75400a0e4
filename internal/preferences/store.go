// Package preferences keeps typed preference records in memory, mirrors each
// record to one durable slot, and applies the record's side effects after
// every load and update.
package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"studypilot/internal/domain"
	"studypilot/internal/domain/repositories"
)

// Domain describes one preference record type T, its partial change type P,
// and how the record maps onto its durable slot.
type Domain[T any, P any] struct {
	// Key identifies the durable slot. One key per domain.
	Key string

	// Defaults is the fully populated record used before hydration and
	// whenever the slot is absent or unreadable.
	Defaults T

	// Merge applies patch to current. Fields left unset in patch persist.
	Merge func(current T, patch P) T

	// Validate rejects patches carrying values outside the record's domain.
	Validate func(patch P) error

	// Decode parses a stored value over defaults; nil decodes JSON onto a
	// copy of defaults so missing keys keep their default.
	Decode func(raw string, defaults T) (T, error)

	// Normalize repairs individually invalid fields of a decoded record.
	Normalize func(record, defaults T) T

	// Persist selects what is written for record. keep=false deletes the
	// slot instead. nil writes the whole record.
	Persist func(record T) (value any, keep bool)

	// Reset builds the record a reset produces. nil means the domain
	// cannot be reset.
	Reset func(current, defaults T) T
}

// Store owns the in-memory record of one domain and is the sole writer of
// its slot. Operations on one Store are applied in call order.
type Store[T any, P any] struct {
	domain  Domain[T, P]
	slots   repositories.SlotStore
	effects []func(T)
	logger  *slog.Logger

	mu      sync.Mutex
	current T
	loaded  bool
}

// NewStore creates a store holding the domain defaults. effects run
// synchronously after Load, Update and Reset.
func NewStore[T any, P any](d Domain[T, P], slots repositories.SlotStore, logger *slog.Logger, effects ...func(T)) *Store[T, P] {
	return &Store[T, P]{
		domain:  d,
		slots:   slots,
		effects: effects,
		logger:  logger.With("slot", d.Key),
		current: d.Defaults,
	}
}

// Key returns the durable slot key
func (s *Store[T, P]) Key() string {
	return s.domain.Key
}

// Load hydrates the store from its slot. Only the first call reads the slot;
// later calls return the current record. Side effects are applied even when
// the slot was empty or malformed.
func (s *Store[T, P]) Load(ctx context.Context) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)
	return s.current
}

// Current returns the in-memory record without touching the slot
func (s *Store[T, P]) Current() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update validates patch, merges it into the current record, writes the
// result to the slot and re-applies side effects. A store that was never
// loaded is loaded first so stored fields are not clobbered by defaults.
func (s *Store[T, P]) Update(ctx context.Context, patch P) (T, error) {
	if s.domain.Validate != nil {
		if err := s.domain.Validate(patch); err != nil {
			var zero T
			return zero, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)
	s.current = s.domain.Merge(s.current, patch)
	s.persistLocked(ctx)
	s.applyLocked()

	return s.current, nil
}

// Reset restores defaults, keeping whatever the domain declares sticky.
func (s *Store[T, P]) Reset(ctx context.Context) (T, error) {
	if s.domain.Reset == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s cannot be reset", domain.ErrValidation, s.domain.Key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)
	s.current = s.domain.Reset(s.current, s.domain.Defaults)
	s.persistLocked(ctx)
	s.applyLocked()

	s.logger.Debug("preferences reset")
	return s.current, nil
}

func (s *Store[T, P]) loadLocked(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	s.current = s.read(ctx)
	s.applyLocked()
}

// read never fails: absent, unreadable and malformed slots all yield defaults.
func (s *Store[T, P]) read(ctx context.Context) T {
	defaults := s.domain.Defaults

	raw, found, err := s.slots.Get(ctx, s.domain.Key)
	if err != nil {
		s.logger.Warn("read preference slot failed, using defaults", "error", err)
		return defaults
	}
	if !found {
		return defaults
	}

	decode := s.domain.Decode
	if decode == nil {
		decode = decodeJSON[T]
	}
	record, err := decode(raw, defaults)
	if err != nil {
		s.logger.Debug("malformed preference slot, using defaults", "error", err)
		return defaults
	}

	if s.domain.Normalize != nil {
		record = s.domain.Normalize(record, defaults)
	}
	return record
}

// persistLocked writes the current record. Failures are logged and dropped;
// the in-memory record stays authoritative.
func (s *Store[T, P]) persistLocked(ctx context.Context) {
	var value any = s.current
	keep := true
	if s.domain.Persist != nil {
		value, keep = s.domain.Persist(s.current)
	}

	if !keep {
		if err := s.slots.Delete(ctx, s.domain.Key); err != nil {
			s.logger.Warn("delete preference slot failed", "error", err)
		}
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("encode preferences failed", "error", err)
		return
	}
	if err := s.slots.Set(ctx, s.domain.Key, string(data)); err != nil {
		s.logger.Warn("write preference slot failed", "error", err)
	}
}

func (s *Store[T, P]) applyLocked() {
	for _, effect := range s.effects {
		effect(s.current)
	}
}

func decodeJSON[T any](raw string, defaults T) (T, error) {
	record := defaults
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return defaults, err
	}
	return record, nil
}
