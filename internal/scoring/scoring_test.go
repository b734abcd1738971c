package scoring

import (
	"testing"
	"time"

	"github.com/abhisek/staffhero/internal/question"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		streak   int
		accuracy float64
		want     int
	}{
		{0, 100, 10},
		{1, 100, 12},
		{5, 100, 20},
		{3, 80, 13}, // round((10+6)*0.8)
		{0, 0, 0},
		{10, 50, 15},
		{0, 95, 10}, // round(9.5)
	}

	for _, tt := range tests {
		got := Points(tt.streak, tt.accuracy)
		if got != tt.want {
			t.Errorf("Points(%d, %v) = %d, want %d", tt.streak, tt.accuracy, got, tt.want)
		}
	}
}

func TestPoints_NonNegativeAndMonotonic(t *testing.T) {
	for _, accuracy := range []float64{0, 25, 50, 100} {
		prev := -1
		for streak := 0; streak <= 30; streak++ {
			p := Points(streak, accuracy)
			if p < 0 {
				t.Fatalf("Points(%d, %v) = %d, negative", streak, accuracy, p)
			}
			if p < prev {
				t.Fatalf("Points(%d, %v) = %d, decreased from %d", streak, accuracy, p, prev)
			}
			prev = p
		}
	}
}

func TestStreakLevel(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 0},
		{1, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{25, 3},
	}

	for _, tt := range tests {
		if got := StreakLevel(tt.streak); got != tt.want {
			t.Errorf("StreakLevel(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestAdvanceDelay(t *testing.T) {
	tests := []struct {
		mode    question.Mode
		correct bool
		want    time.Duration
	}{
		{question.ModeSingleNote, true, 500 * time.Millisecond},
		{question.ModeSingleNote, false, 3 * time.Second},
		{question.ModeSequence, true, 2 * time.Second},
		{question.ModeSequence, false, 2 * time.Second},
		{question.ModeRhythm, true, 2 * time.Second},
		{question.ModeRhythm, false, 2 * time.Second},
	}

	for _, tt := range tests {
		if got := AdvanceDelay(tt.mode, tt.correct); got != tt.want {
			t.Errorf("AdvanceDelay(%s, %v) = %v, want %v", tt.mode, tt.correct, got, tt.want)
		}
	}
}

func TestFeedbackSignal(t *testing.T) {
	tests := []struct {
		correct  bool
		accuracy float64
		want     Signal
	}{
		{true, 100, SignalSuccess}, // no accuracy recorded: callers pass 100
		{true, 81, SignalSuccess},
		{true, 80, SignalMedium},
		{true, 51, SignalMedium},
		{true, 50, SignalLight},
		{true, 0, SignalLight},
		{false, 100, SignalError},
		{false, 0, SignalError},
	}

	for _, tt := range tests {
		if got := FeedbackSignal(tt.correct, tt.accuracy); got != tt.want {
			t.Errorf("FeedbackSignal(%v, %v) = %q, want %q", tt.correct, tt.accuracy, got, tt.want)
		}
	}
}
