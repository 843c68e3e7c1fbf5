// internal/storage/sqlite.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// SQLiteStore keeps settings in the settings table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// DB exposes the handle so other repos can share it.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("settings get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *SQLiteStore) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("settings set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetInt(ctx context.Context, key string, def int) (int, error) {
	raw, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("settings %s: parse int %q: %w", key, raw, err)
	}
	return v, nil
}

func (s *SQLiteStore) SetInt(ctx context.Context, key string, v int) error {
	return s.set(ctx, key, strconv.Itoa(v))
}

func (s *SQLiteStore) GetFloat(ctx context.Context, key string, def float64) (float64, error) {
	raw, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def, fmt.Errorf("settings %s: parse float %q: %w", key, raw, err)
	}
	return v, nil
}

func (s *SQLiteStore) SetFloat(ctx context.Context, key string, v float64) error {
	return s.set(ctx, key, strconv.FormatFloat(v, 'g', -1, 64))
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("settings delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
