package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"portfolio-backend/internal/domain"
	"time"
)

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS visitor_settings (
	visitor_id TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL,
	PRIMARY KEY (visitor_id, key)
)`

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates the settings table if needed
func NewSettingsRepository(ctx context.Context, db *sql.DB) (domain.SettingsRepository, error) {
	if _, err := db.ExecContext(ctx, createSettingsTable); err != nil {
		return nil, fmt.Errorf("create visitor_settings table: %w", err)
	}
	return &settingsRepository{db: db}, nil
}

func (r *settingsRepository) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM visitor_settings WHERE visitor_id = ? AND key = ?`,
		visitorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *settingsRepository) Set(ctx context.Context, visitorID, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visitor_settings (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, visitorID, key, value, time.Now().UTC())
	return err
}
