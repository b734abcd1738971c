package game

import (
	"time"

	"github.com/abhisek/staffhero/internal/question"
)

// State is the runtime state of one game. It is transformed by Apply and
// never shared across goroutines; StartedAt lives on the state rather than
// in package-level storage so duration needs no global clock bookkeeping.
type State struct {
	Settings question.Settings

	// Score only ever grows within a game.
	Score int

	// Streak is the current run of consecutive correct answers; it resets
	// to zero on a wrong answer. MaxStreak is its high-water mark.
	Streak    int
	MaxStreak int

	TotalQuestions int
	CorrectAnswers int

	// CurrentQuestion is the active question, nil between rounds.
	CurrentQuestion *question.Question

	Active    bool
	StartedAt time.Time
}
