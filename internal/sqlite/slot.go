package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pranikov/sitekit/internal/repository"
)

// SlotRepository implements repository.SlotRepository for SQLite
type SlotRepository struct {
	db *DB
}

// NewSlotRepository creates a new SlotRepository
func NewSlotRepository(db *DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// Get returns the raw value stored under key
func (r *SlotRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get slot %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value
func (r *SlotRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set slot %q: %w", key, err)
	}
	return nil
}
