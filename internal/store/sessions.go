package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/staffhero/internal/game"
	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/theory"
)

// SessionRepo persists finished game sessions.
type SessionRepo interface {
	// Save appends one session snapshot.
	Save(ctx context.Context, s game.Session) error

	// Recent returns up to limit sessions, newest first. limit <= 0 means
	// all sessions.
	Recent(ctx context.Context, limit int) ([]game.Session, error)

	// Count returns the number of stored sessions.
	Count(ctx context.Context) (int, error)
}

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Save(ctx context.Context, s game.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (
			id, timestamp, mode, difficulty, notation,
			score, streak, max_streak, total_questions, correct_answers,
			accuracy, duration_secs
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Timestamp.Unix(), string(s.Mode), string(s.Difficulty), string(s.Notation),
		s.Score, s.Streak, s.MaxStreak, s.TotalQuestions, s.CorrectAnswers,
		s.Accuracy, s.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Recent(ctx context.Context, limit int) ([]game.Session, error) {
	q := `
		SELECT id, timestamp, mode, difficulty, notation,
			score, streak, max_streak, total_questions, correct_answers,
			accuracy, duration_secs
		FROM sessions
		ORDER BY timestamp DESC, id`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []game.Session
	for rows.Next() {
		var s game.Session
		var ts int64
		var mode, difficulty, notation string
		err := rows.Scan(
			&s.ID, &ts, &mode, &difficulty, &notation,
			&s.Score, &s.Streak, &s.MaxStreak, &s.TotalQuestions, &s.CorrectAnswers,
			&s.Accuracy, &s.DurationSecs,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Timestamp = time.Unix(ts, 0).UTC()
		s.Mode = question.Mode(mode)
		s.Difficulty = theory.Difficulty(difficulty)
		s.Notation = theory.System(notation)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
