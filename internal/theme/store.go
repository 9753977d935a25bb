package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Velesio/velesio-aiserver/internal/db"
)

// Store persists the theme choice per client.
type Store struct {
	db       *db.DB
	fallback Theme
}

// NewStore creates a Store backed by the given database. fallback is
// returned for clients that never chose a theme.
func NewStore(database *db.DB, fallback Theme) *Store {
	if fallback != Dark {
		fallback = Light
	}
	return &Store{db: database, fallback: fallback}
}

// Get returns the stored theme for clientID, or the fallback.
func (s *Store) Get(ctx context.Context, clientID string) (Theme, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE client_id = ? AND key = ?`,
		clientID, StorageKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return s.fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading theme: %w", err)
	}

	t, err := Parse(value)
	if err != nil {
		// A corrupted row behaves like an unset preference.
		return s.fallback, nil
	}
	return t, nil
}

// Set stores t for clientID.
func (s *Store) Set(ctx context.Context, clientID string, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (client_id, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(client_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		clientID, StorageKey, string(t),
	)
	if err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Toggle flips and stores the theme for clientID, returning the new value.
func (s *Store) Toggle(ctx context.Context, clientID string) (Theme, error) {
	current, err := s.Get(ctx, clientID)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.Set(ctx, clientID, next); err != nil {
		return "", err
	}
	return next, nil
}
