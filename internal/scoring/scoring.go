// Package scoring turns answer outcomes into points, streak levels and
// feedback signals. Everything here is pure arithmetic over the streak the
// player held before the answer.
package scoring

import (
	"math"
	"time"

	"github.com/abhisek/staffhero/internal/question"
)

// BasePoints is the score for a correct answer at streak 0 and full accuracy.
const BasePoints = 10

// Points returns the score for a correct answer. streak is the consecutive
// correct count before this answer; accuracy is 0-100, with non-rhythm
// answers scoring at 100.
func Points(streak int, accuracy float64) int {
	return int(math.Round(float64(BasePoints+streak*2) * accuracy / 100))
}

// StreakLevel maps a streak to one of four feedback-intensity tiers.
func StreakLevel(streak int) int {
	switch {
	case streak >= 10:
		return 3
	case streak >= 5:
		return 2
	case streak >= 1:
		return 1
	default:
		return 0
	}
}

// Auto-advance delays. Single-note rounds move on quickly after a correct
// answer but hold a wrong one on screen long enough to study.
const (
	singleCorrectDelay   = 500 * time.Millisecond
	singleIncorrectDelay = 3 * time.Second
	multiNoteDelay       = 2 * time.Second
)

// AdvanceDelay returns how long feedback stays visible before the next
// question.
func AdvanceDelay(mode question.Mode, correct bool) time.Duration {
	if mode != question.ModeSingleNote {
		return multiNoteDelay
	}
	if correct {
		return singleCorrectDelay
	}
	return singleIncorrectDelay
}

// Signal is the feedback intensity requested from the presentation layer.
// The engine never touches a device; it only names the signal.
type Signal string

const (
	SignalSuccess Signal = "success"
	SignalMedium  Signal = "medium"
	SignalLight   Signal = "light"
	SignalError   Signal = "error"
)

// FeedbackSignal selects the signal for an answer. accuracy is 0-100;
// callers pass 100 when no accuracy applies (non-rhythm answers).
func FeedbackSignal(correct bool, accuracy float64) Signal {
	if !correct {
		return SignalError
	}
	switch {
	case accuracy > 80:
		return SignalSuccess
	case accuracy > 50:
		return SignalMedium
	default:
		return SignalLight
	}
}
