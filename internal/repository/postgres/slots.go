package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"studypilot/internal/config"
	"studypilot/internal/domain/repositories"
)

// SlotRepository stores each user's durable slots as rows of
// {prefix}preference_slots keyed by (user_id, slot_key).
type SlotRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewSlotRepository creates a new SlotRepository
func NewSlotRepository(cfg *RepositoryConfig) repositories.SlotRepository {
	return &SlotRepository{
		pool:   cfg.Pool,
		tables: cfg.Tables,
		logger: cfg.Logger,
	}
}

// ForUser returns the slot store of one user
func (r *SlotRepository) ForUser(userID uuid.UUID) repositories.SlotStore {
	return &userSlots{repo: r, userID: userID}
}

type userSlots struct {
	repo   *SlotRepository
	userID uuid.UUID
}

func (s *userSlots) Get(ctx context.Context, key string) (string, bool, error) {
	query := fmt.Sprintf(`
		SELECT value
		FROM %s
		WHERE user_id = $1 AND slot_key = $2
	`, s.repo.tables.PreferenceSlots)

	var value string
	err := GetExecutor(ctx, s.repo.pool).QueryRow(ctx, query, s.userID, key).Scan(&value)
	if err != nil {
		if IsPgNoRowsError(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get preference slot %s: %w", key, err)
	}

	return value, true, nil
}

func (s *userSlots) Set(ctx context.Context, key, value string) error {
	if len(value) > config.MaxSlotValueBytes {
		return fmt.Errorf("set preference slot %s: value exceeds %d bytes", key, config.MaxSlotValueBytes)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, slot_key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, slot_key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, s.repo.tables.PreferenceSlots)

	_, err := GetExecutor(ctx, s.repo.pool).Exec(ctx, query, s.userID, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("set preference slot %s: %w", key, err)
	}

	s.repo.logger.Debug("preference slot written", "user_id", s.userID, "slot", key)
	return nil
}

func (s *userSlots) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE user_id = $1 AND slot_key = $2
	`, s.repo.tables.PreferenceSlots)

	if _, err := GetExecutor(ctx, s.repo.pool).Exec(ctx, query, s.userID, key); err != nil {
		return fmt.Errorf("delete preference slot %s: %w", key, err)
	}

	s.repo.logger.Debug("preference slot deleted", "user_id", s.userID, "slot", key)
	return nil
}
