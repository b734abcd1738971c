package game

import (
	"testing"
	"time"

	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/theory"
)

var gameStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testSettings() question.Settings {
	return question.Settings{
		Mode:       question.ModeSingleNote,
		Difficulty: theory.Beginner,
		Notation:   theory.SystemLetter,
	}
}

func startedState() State {
	return Apply(State{}, StartAction{Settings: testSettings(), Now: gameStart})
}

func TestApply_Start(t *testing.T) {
	s := startedState()

	if !s.Active {
		t.Error("state not active after start")
	}
	if !s.StartedAt.Equal(gameStart) {
		t.Errorf("StartedAt = %v, want %v", s.StartedAt, gameStart)
	}
	if s.Score != 0 || s.Streak != 0 || s.TotalQuestions != 0 {
		t.Errorf("fresh state carries counters: %+v", s)
	}
}

func TestApply_CorrectAnswersBuildStreak(t *testing.T) {
	s := startedState()

	const n = 7
	for i := 0; i < n; i++ {
		s = Apply(s, AnswerAction{Correct: true, Accuracy: 100})
	}

	if s.Streak != n {
		t.Errorf("Streak = %d, want %d", s.Streak, n)
	}
	if s.MaxStreak != n {
		t.Errorf("MaxStreak = %d, want %d", s.MaxStreak, n)
	}
	if s.CorrectAnswers != n || s.TotalQuestions != n {
		t.Errorf("counters = %d/%d, want %d/%d", s.CorrectAnswers, s.TotalQuestions, n, n)
	}
	// 10 + 12 + 14 + 16 + 18 + 20 + 22
	if s.Score != 112 {
		t.Errorf("Score = %d, want 112", s.Score)
	}
}

func TestApply_IncorrectResetsStreakOnly(t *testing.T) {
	s := startedState()
	for i := 0; i < 5; i++ {
		s = Apply(s, AnswerAction{Correct: true, Accuracy: 100})
	}
	scoreBefore := s.Score

	s = Apply(s, AnswerAction{Correct: false, Accuracy: 100})

	if s.Streak != 0 {
		t.Errorf("Streak = %d, want 0", s.Streak)
	}
	if s.MaxStreak != 5 {
		t.Errorf("MaxStreak = %d, want 5", s.MaxStreak)
	}
	if s.Score != scoreBefore {
		t.Errorf("Score changed on incorrect answer: %d -> %d", scoreBefore, s.Score)
	}
	if s.TotalQuestions != 6 || s.CorrectAnswers != 5 {
		t.Errorf("counters = %d/%d, want 5/6", s.CorrectAnswers, s.TotalQuestions)
	}
}

func TestApply_AccuracyScalesPoints(t *testing.T) {
	s := startedState()
	s = Apply(s, AnswerAction{Correct: true, Accuracy: 100})
	s = Apply(s, AnswerAction{Correct: true, Accuracy: 100})
	s = Apply(s, AnswerAction{Correct: true, Accuracy: 100})

	// Streak 3, base 10, accuracy 80: round(16 * 0.8) = 13.
	s = Apply(s, AnswerAction{Correct: true, Accuracy: 80})
	if s.Score != 10+12+14+13 {
		t.Errorf("Score = %d, want %d", s.Score, 10+12+14+13)
	}
}

func TestApply_AnswerReplacesQuestion(t *testing.T) {
	q := &question.Question{ID: "q1", CorrectAnswer: []string{"C"}}
	s := startedState()
	s = Apply(s, QuestionAction{Question: q})

	s = Apply(s, AnswerAction{Correct: true, Accuracy: 100})

	if !s.CurrentQuestion.Answered {
		t.Error("current question not marked answered")
	}
	if q.Answered {
		t.Error("original question mutated; expected a replacement copy")
	}
}

func TestApply_AnswerAfterEndIgnored(t *testing.T) {
	s := startedState()
	s = Apply(s, EndAction{})
	s = Apply(s, AnswerAction{Correct: true, Accuracy: 100})

	if s.TotalQuestions != 0 || s.Score != 0 {
		t.Errorf("inactive state accepted an answer: %+v", s)
	}
}

func TestSnapshot(t *testing.T) {
	s := startedState()
	s = Apply(s, AnswerAction{Correct: true, Accuracy: 100})
	s = Apply(s, AnswerAction{Correct: true, Accuracy: 100})
	s = Apply(s, AnswerAction{Correct: false, Accuracy: 100})
	s = Apply(s, EndAction{})

	end := gameStart.Add(95 * time.Second)
	sess := Snapshot(s, end)

	if sess.ID == "" {
		t.Error("empty session ID")
	}
	if sess.Accuracy != 67 { // round(2/3 * 100)
		t.Errorf("Accuracy = %d, want 67", sess.Accuracy)
	}
	if sess.DurationSecs != 95 {
		t.Errorf("DurationSecs = %d, want 95", sess.DurationSecs)
	}
	if sess.Mode != question.ModeSingleNote || sess.Difficulty != theory.Beginner {
		t.Errorf("settings not carried into session: %+v", sess)
	}
	if sess.MaxStreak != 2 || sess.TotalQuestions != 3 || sess.CorrectAnswers != 2 {
		t.Errorf("counters not carried: %+v", sess)
	}
}

func TestSnapshot_EmptyGame(t *testing.T) {
	sess := Snapshot(startedState(), gameStart)
	if sess.Accuracy != 0 {
		t.Errorf("Accuracy = %d, want 0 for empty game", sess.Accuracy)
	}
	if sess.DurationSecs != 0 {
		t.Errorf("DurationSecs = %d, want 0", sess.DurationSecs)
	}
}

func TestTransitionAnim(t *testing.T) {
	tests := []struct {
		state NoteAnim
		event AnimEvent
		want  NoteAnim
		ok    bool
	}{
		{AnimIdle, EventHighlight, AnimHighlighted, true},
		{AnimHighlighted, EventCorrect, AnimCorrect, true},
		{AnimHighlighted, EventIncorrect, AnimIncorrect, true},
		{AnimCorrect, EventDestroy, AnimDestroying, true},
		{AnimIncorrect, EventReset, AnimIdle, true},
		{AnimDestroying, EventReset, AnimIdle, true},
		{AnimIdle, EventCorrect, AnimIdle, false},          // can't score an unhighlighted note
		{AnimDestroying, EventHighlight, AnimDestroying, false},
		{AnimCorrect, EventIncorrect, AnimCorrect, false},
	}

	for _, tt := range tests {
		got, ok := TransitionAnim(tt.state, tt.event)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TransitionAnim(%s, %d) = (%s, %v), want (%s, %v)",
				tt.state, tt.event, got, ok, tt.want, tt.ok)
		}
	}
}
