package game

import (
	"time"

	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/scoring"
)

// Action is a state-transition request handled by Apply. The variants form
// a closed set; anything else is ignored.
type Action interface {
	isAction()
}

// StartAction begins a fresh game.
type StartAction struct {
	Settings question.Settings
	Now      time.Time
}

// QuestionAction installs the next question.
type QuestionAction struct {
	Question *question.Question
}

// AnswerAction records the outcome of one answered question. Accuracy is
// 0-100; non-rhythm answers carry 100.
type AnswerAction struct {
	Correct  bool
	Accuracy float64
}

// EndAction finishes the game.
type EndAction struct{}

func (StartAction) isAction()    {}
func (QuestionAction) isAction() {}
func (AnswerAction) isAction()   {}
func (EndAction) isAction()      {}

// Apply returns the state after the action. The input state is passed by
// value and never mutated; the current question is replaced, not written
// through.
func Apply(s State, action Action) State {
	switch a := action.(type) {
	case StartAction:
		return State{
			Settings:  a.Settings,
			Active:    true,
			StartedAt: a.Now,
		}

	case QuestionAction:
		s.CurrentQuestion = a.Question
		return s

	case AnswerAction:
		if !s.Active {
			return s
		}
		s.TotalQuestions++
		if a.Correct {
			s.Score += scoring.Points(s.Streak, a.Accuracy)
			s.Streak++
			if s.Streak > s.MaxStreak {
				s.MaxStreak = s.Streak
			}
			s.CorrectAnswers++
		} else {
			s.Streak = 0
		}
		if s.CurrentQuestion != nil && !s.CurrentQuestion.Answered {
			answered := *s.CurrentQuestion
			answered.Answered = true
			s.CurrentQuestion = &answered
		}
		return s

	case EndAction:
		s.Active = false
		s.CurrentQuestion = nil
		return s
	}

	return s
}
