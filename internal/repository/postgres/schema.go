package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables used by this service if they don't exist
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames, prefix string) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tables.PreferenceSlots + ` (
			user_id UUID NOT NULL,
			slot_key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, slot_key)
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.PomodoroSessions + ` (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			duration_minutes INTEGER NOT NULL CHECK (duration_minutes >= 0),
			completed BOOLEAN NOT NULL DEFAULT false,
			started_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + prefix + `pomodoro_sessions_user_started
			ON ` + tables.PomodoroSessions + ` (user_id, started_at) WHERE completed`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// DropSchema drops every table owned by this service
func DropSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, table := range []string{tables.PomodoroSessions, tables.PreferenceSlots} {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
