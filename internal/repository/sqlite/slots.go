// Package sqlite stores durable slots in a local SQLite file: the
// client-device storage used by the CLI.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"studypilot/internal/config"
	"studypilot/internal/domain/repositories"
)

// LocalScope is the scope used for slots of a device without a signed-in user.
const LocalScope = "local"

// DB is a SQLite slot database. Slots are partitioned by scope.
type DB struct {
	db   *sql.DB
	path string
}

// Open creates or opens the slot database at path
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create slot directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open slot database: %w", err)
	}

	s := &DB{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize slot schema: %w", err)
	}
	return s, nil
}

func (s *DB) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			scope      TEXT NOT NULL,
			slot_key   TEXT NOT NULL,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (scope, slot_key)
		)
	`)
	return err
}

// Close closes the database connection
func (s *DB) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *DB) Path() string {
	return s.path
}

// Scope returns the slot store of one scope
func (s *DB) Scope(scope string) repositories.SlotStore {
	return &scopedSlots{db: s.db, scope: scope}
}

// ForUser scopes slots by user ID
func (s *DB) ForUser(userID uuid.UUID) repositories.SlotStore {
	return s.Scope(userID.String())
}

type scopedSlots struct {
	db    *sql.DB
	scope string
}

func (s *scopedSlots) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE scope = ? AND slot_key = ?`,
		s.scope, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get slot %s: %w", key, err)
	}
	return value, true, nil
}

func (s *scopedSlots) Set(ctx context.Context, key, value string) error {
	if len(value) > config.MaxSlotValueBytes {
		return fmt.Errorf("set slot %s: value exceeds %d bytes", key, config.MaxSlotValueBytes)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (scope, slot_key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (scope, slot_key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, s.scope, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set slot %s: %w", key, err)
	}
	return nil
}

func (s *scopedSlots) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM slots WHERE scope = ? AND slot_key = ?`,
		s.scope, key,
	)
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}
