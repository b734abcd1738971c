package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Challenge progress kinds reported after each session.
const (
	ChallengeGamesPlayed    = "games_played"
	ChallengeCorrectAnswers = "correct_answers"
	ChallengeScoreEarned    = "score_earned"
)

// ChallengeRepo accumulates challenge progress counters. The game engine
// calls this as an opaque side-effecting hook after a session ends.
type ChallengeRepo interface {
	// AddProgress increments the counter for kind by amount.
	AddProgress(ctx context.Context, kind string, amount int) error

	// Progress returns all counters keyed by kind.
	Progress(ctx context.Context) (map[string]int, error)
}

type challengeRepo struct {
	db *sql.DB
}

func (r *challengeRepo) AddProgress(ctx context.Context, kind string, amount int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO challenge_progress (kind, amount) VALUES (?, ?)
		ON CONFLICT(kind) DO UPDATE SET amount = amount + excluded.amount`,
		kind, amount,
	)
	if err != nil {
		return fmt.Errorf("add challenge progress %s: %w", kind, err)
	}
	return nil
}

func (r *challengeRepo) Progress(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT kind, amount FROM challenge_progress")
	if err != nil {
		return nil, fmt.Errorf("query challenge progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[string]int)
	for rows.Next() {
		var kind string
		var amount int
		if err := rows.Scan(&kind, &amount); err != nil {
			return nil, fmt.Errorf("scan challenge progress: %w", err)
		}
		progress[kind] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate challenge progress: %w", err)
	}
	return progress, nil
}
