package game

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/theory"
)

// Session is the immutable analytics snapshot emitted when a game ends.
type Session struct {
	ID         string
	Timestamp  time.Time
	Mode       question.Mode
	Difficulty theory.Difficulty
	Notation   theory.System

	Score          int
	Streak         int
	MaxStreak      int
	TotalQuestions int
	CorrectAnswers int

	// Accuracy is the rounded percentage of correct answers.
	Accuracy int

	// DurationSecs is the wall-clock length of the game.
	DurationSecs int
}

// Snapshot captures a finished game. now is caller-supplied so duration
// stays testable.
func Snapshot(s State, now time.Time) Session {
	accuracy := 0
	if s.TotalQuestions > 0 {
		accuracy = int(math.Round(float64(s.CorrectAnswers) / float64(s.TotalQuestions) * 100))
	}

	return Session{
		ID:             uuid.NewString(),
		Timestamp:      now,
		Mode:           s.Settings.Mode,
		Difficulty:     s.Settings.Difficulty,
		Notation:       s.Settings.Notation,
		Score:          s.Score,
		Streak:         s.Streak,
		MaxStreak:      s.MaxStreak,
		TotalQuestions: s.TotalQuestions,
		CorrectAnswers: s.CorrectAnswers,
		Accuracy:       accuracy,
		DurationSecs:   int(now.Sub(s.StartedAt).Seconds()),
	}
}
