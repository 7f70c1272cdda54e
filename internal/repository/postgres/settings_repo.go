package postgres

import (
	"context"
	"errors"
	"fmt"
	"portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS visitor_settings (
	visitor_id TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (visitor_id, key)
)`

type settingsRepo struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates the settings table if needed
func NewSettingsRepository(ctx context.Context, db *pgxpool.Pool) (domain.SettingsRepository, error) {
	if _, err := db.Exec(ctx, createSettingsTable); err != nil {
		return nil, fmt.Errorf("create visitor_settings table: %w", err)
	}
	return &settingsRepo{db: db}, nil
}

func (r *settingsRepo) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	query := `SELECT value FROM visitor_settings WHERE visitor_id = $1 AND key = $2`
	var value string
	err := r.db.QueryRow(ctx, query, visitorID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *settingsRepo) Set(ctx context.Context, visitorID, key, value string) error {
	query := `INSERT INTO visitor_settings (visitor_id, key, value, updated_at)
              VALUES ($1, $2, $3, NOW())
              ON CONFLICT (visitor_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	_, err := r.db.Exec(ctx, query, visitorID, key, value)
	return err
}
