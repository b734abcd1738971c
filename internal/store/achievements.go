package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AchievementRepo persists the one-way achievement unlock ledger.
type AchievementRepo interface {
	// SaveUnlock records an unlock. Saving an already-recorded achievement
	// keeps the original unlock time.
	SaveUnlock(ctx context.Context, id string, at time.Time) error

	// Unlocked returns unlock times keyed by achievement ID.
	Unlocked(ctx context.Context) (map[string]time.Time, error)
}

type achievementRepo struct {
	db *sql.DB
}

func (r *achievementRepo) SaveUnlock(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO achievements (id, unlocked_at) VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING`,
		id, at.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save unlock %s: %w", id, err)
	}
	return nil
}

func (r *achievementRepo) Unlocked(ctx context.Context) (map[string]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, unlocked_at FROM achievements")
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	unlocked := make(map[string]time.Time)
	for rows.Next() {
		var id string
		var at int64
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		unlocked[id] = time.Unix(at, 0).UTC()
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return unlocked, nil
}
