// internal/storage/runs.go
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunRecord — итог одного забега.
type RunRecord struct {
	ID             string
	Character      string
	Level          int
	Kills          int
	TimeSurvived   float64
	GoldEarned     int
	Survived       bool
	PollutionAfter float64
	FinishedAt     time.Time
}

// RunLog — куда пишутся итоги забегов.
type RunLog interface {
	Insert(ctx context.Context, rec RunRecord) (string, error)
	Recent(ctx context.Context, limit int) ([]RunRecord, error)
}

var (
	_ RunLog = (*RunRepo)(nil)
	_ RunLog = (*MemoryRuns)(nil)
)

type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// Insert stores r, assigning a new id when r.ID is empty.
func (r *RunRepo) Insert(ctx context.Context, rec RunRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO runs (id, character, level, kills, time_survived, gold_earned, survived, pollution_after, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Character, rec.Level, rec.Kills, rec.TimeSurvived, rec.GoldEarned, boolToInt(rec.Survived), rec.PollutionAfter, rec.FinishedAt.Unix())
	if err != nil {
		return "", fmt.Errorf("run insert: %w", err)
	}
	return rec.ID, nil
}

// Recent returns up to limit runs, newest first.
func (r *RunRepo) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, character, level, kills, time_survived, gold_earned, survived, pollution_after, finished_at
		FROM runs
		ORDER BY finished_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("run list: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var survived int
		var finished int64
		if err := rows.Scan(&rec.ID, &rec.Character, &rec.Level, &rec.Kills, &rec.TimeSurvived, &rec.GoldEarned, &survived, &rec.PollutionAfter, &finished); err != nil {
			return nil, fmt.Errorf("run scan: %w", err)
		}
		rec.Survived = survived != 0
		rec.FinishedAt = time.Unix(finished, 0)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("run rows: %w", err)
	}
	return out, nil
}

// Count returns the number of stored runs.
func (r *RunRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("run count: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
