// Package play implements the interactive game screen. The screen owns the
// wall clock and the RNG; every engine call receives explicit time and
// randomness so the engine itself stays deterministic.
package play

import (
	"context"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/staffhero/internal/answer"
	"github.com/abhisek/staffhero/internal/game"
	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/rhythm"
	"github.com/abhisek/staffhero/internal/scoring"
	"github.com/abhisek/staffhero/internal/stats"
	"github.com/abhisek/staffhero/internal/store"
	"github.com/abhisek/staffhero/internal/theory"
	"github.com/abhisek/staffhero/internal/ui/components"
	"github.com/abhisek/staffhero/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseSummary
)

// laneTickInterval drives rhythm animation at a terminal-friendly rate.
const laneTickInterval = 50 * time.Millisecond

// Screen runs one game from start to summary.
type Screen struct {
	settings question.Settings
	rng      *rand.Rand

	sessions     store.SessionRepo
	achievements store.AchievementRepo
	challenges   store.ChallengeRepo

	phase   phase
	state   game.State
	profile *stats.Profile

	mc    components.MultiChoice
	input components.NoteInput

	cfg     rhythm.Config
	lane    []*rhythm.Note
	laneNow time.Time

	lastCorrect bool
	lastSignal  scoring.Signal
	lastPoints  int
	lastAnswer  []string
	feedback    answer.Feedback
	roundScore  rhythm.RoundScore

	session  game.Session
	unlocked []*stats.Achievement
	saveErr  error
	errMsg   string
}

// New creates a play screen with injected persistence hooks. Any repo may
// be nil, in which case the game runs without saving.
func New(settings question.Settings, sessions store.SessionRepo, achievements store.AchievementRepo, challenges store.ChallengeRepo) *Screen {
	return &Screen{
		settings:     settings,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sessions:     sessions,
		achievements: achievements,
		challenges:   challenges,
		cfg:          rhythm.DefaultConfig(),
		input:        components.NewNoteInput("Type the notes in order, e.g. C E G"),
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.loadProfile(), s.input.Init())
}

// Title names the screen for the header.
func (s *Screen) Title() string {
	return "Play · " + string(s.settings.Mode)
}

// HeaderStats returns the live score and streak for the header bar.
func (s *Screen) HeaderStats() (score, streak int) {
	return s.state.Score, s.state.Streak
}

// KeyHints describes the active key bindings for the footer.
func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Quit"}}
	case phaseQuestion:
		switch s.settings.Mode {
		case question.ModeRhythm:
			return []layout.KeyHint{
				{Key: "A-G", Description: "Hit note"},
				{Key: "Esc", Description: "End game"},
			}
		case question.ModeSequence:
			return []layout.KeyHint{
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "End game"},
			}
		default:
			return []layout.KeyHint{
				{Key: "↑↓/1-4", Description: "Choose"},
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "End game"},
			}
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "End game"}}
}

func (s *Screen) Update(msg tea.Msg) (*Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileReadyMsg:
		return s.handleProfileReady(msg)

	case questionMsg:
		return s.handleQuestion(msg)

	case laneTickMsg:
		return s.handleLaneTick(time.Time(msg))

	case advanceMsg:
		if s.phase == phaseFeedback {
			s.phase = phaseQuestion
			return s, s.nextQuestion()
		}
		return s, nil

	case sessionSavedMsg:
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseQuestion && s.settings.Mode == question.ModeSequence {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) handleProfileReady(msg profileReadyMsg) (*Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.profile = msg.Profile
	s.state = game.Apply(game.State{}, game.StartAction{Settings: s.settings, Now: time.Now()})
	s.phase = phaseQuestion
	return s, s.nextQuestion()
}

func (s *Screen) handleQuestion(msg questionMsg) (*Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = game.Apply(s.state, game.QuestionAction{Question: msg.Question})

	switch s.settings.Mode {
	case question.ModeRhythm:
		now := time.Now()
		s.lane = rhythm.Schedule(msg.Question.Notes, s.settings.Notation, now, s.cfg)
		s.laneNow = now
		return s, laneTick()
	case question.ModeSequence:
		s.input.Reset()
		return s, nil
	default:
		s.mc = components.NewMultiChoice(
			"Which note is this?", msg.Question.Options, msg.Question.CorrectAnswer)
		return s, nil
	}
}

func (s *Screen) handleLaneTick(now time.Time) (*Screen, tea.Cmd) {
	if s.phase != phaseQuestion || s.settings.Mode != question.ModeRhythm {
		return s, nil
	}
	s.laneNow = now

	if s.laneFinished(now) {
		return s.finishRhythmRound()
	}
	return s, laneTick()
}

// laneFinished reports whether every scheduled note was hit or has exited.
func (s *Screen) laneFinished(now time.Time) bool {
	for _, n := range s.lane {
		if !n.Hit && !rhythm.Done(n, now, s.cfg) {
			return false
		}
	}
	return len(s.lane) > 0
}

func (s *Screen) finishRhythmRound() (*Screen, tea.Cmd) {
	s.roundScore = rhythm.ScoreRound(s.lane)

	// Each scheduled note counts as one answered question.
	for _, n := range s.lane {
		s.state = game.Apply(s.state, game.AnswerAction{Correct: n.Hit, Accuracy: n.Accuracy})
	}

	acc := float64(s.roundScore.AverageAccuracy)
	s.lastCorrect = s.roundScore.HitCount == len(s.lane)
	s.lastSignal = scoring.FeedbackSignal(s.lastCorrect, acc)
	s.phase = phaseFeedback
	return s, advanceAfter(scoring.AdvanceDelay(s.settings.Mode, s.lastCorrect))
}

func (s *Screen) handleKey(msg tea.KeyMsg) (*Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseSummary:
		if key == "enter" || key == "q" {
			return s, tea.Quit
		}
		return s, nil

	case phaseFeedback:
		return s, nil

	case phaseQuestion:
		if key == "esc" {
			return s.endGame()
		}

		switch s.settings.Mode {
		case question.ModeRhythm:
			return s.handleRhythmKey(key)
		case question.ModeSequence:
			if key == "enter" {
				return s.submitSequence()
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		default:
			var cmd tea.Cmd
			s.mc, cmd = s.mc.Update(msg)
			if s.mc.Submitted {
				return s.submitSingle()
			}
			return s, cmd
		}
	}

	return s, nil
}

func (s *Screen) handleRhythmKey(key string) (*Screen, tea.Cmd) {
	name, ok := pitchForKey(key, s.settings)
	if !ok {
		return s, nil
	}
	res := rhythm.ResolveHit(s.lane, name, time.Now(), s.cfg)
	if res.Hit {
		s.lastSignal = scoring.FeedbackSignal(true, res.Accuracy)
	} else {
		s.lastSignal = scoring.SignalError
	}
	return s, nil
}

// pitchForKey maps a pitch-letter key to the display name the active
// notation uses for it.
func pitchForKey(key string, settings question.Settings) (string, bool) {
	if len(key) != 1 {
		return "", false
	}
	c := key[0]
	if c >= 'a' && c <= 'g' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'G' {
		return "", false
	}
	return settings.Notation.DisplayName(theory.NoteName(string(c))), true
}

func (s *Screen) submitSingle() (*Screen, tea.Cmd) {
	q := s.state.CurrentQuestion
	if q == nil {
		return s, nil
	}
	correct := answer.MatchUnordered([]string{s.mc.Value()}, q.CorrectAnswer)
	return s.applyAnswer(correct, []string{s.mc.Value()})
}

func (s *Screen) submitSequence() (*Screen, tea.Cmd) {
	q := s.state.CurrentQuestion
	if q == nil {
		return s, nil
	}
	names := s.input.Names()
	correct := answer.MatchOrdered(names, q.CorrectAnswer)
	s.feedback = answer.SequenceFeedback(names, q.CorrectAnswer)
	s.input.Submit(correct)
	return s.applyAnswer(correct, names)
}

func (s *Screen) applyAnswer(correct bool, given []string) (*Screen, tea.Cmd) {
	before := s.state
	s.state = game.Apply(s.state, game.AnswerAction{Correct: correct, Accuracy: 100})

	s.lastCorrect = correct
	s.lastAnswer = given
	s.lastPoints = s.state.Score - before.Score
	s.lastSignal = scoring.FeedbackSignal(correct, 100)
	s.phase = phaseFeedback
	return s, advanceAfter(scoring.AdvanceDelay(s.settings.Mode, correct))
}

func (s *Screen) endGame() (*Screen, tea.Cmd) {
	now := time.Now()
	s.state = game.Apply(s.state, game.EndAction{})
	s.session = game.Snapshot(s.state, now)

	// The in-memory update happens first; persistence failure is reported
	// on the summary screen, never rolled back.
	if s.profile != nil {
		s.unlocked = s.profile.Record(s.session, now)
	}
	s.phase = phaseSummary
	return s, s.persistSession()
}

func (s *Screen) loadProfile() tea.Cmd {
	return func() tea.Msg {
		profile := stats.NewProfile()
		if s.sessions == nil {
			return profileReadyMsg{Profile: profile}
		}

		ctx := context.Background()
		past, err := s.sessions.Recent(ctx, 0)
		if err != nil {
			return profileReadyMsg{Err: err}
		}
		// Oldest first so incremental averages match the original order.
		for i := len(past) - 1; i >= 0; i-- {
			profile.Record(past[i], past[i].Timestamp)
		}

		if s.achievements != nil {
			unlocked, err := s.achievements.Unlocked(ctx)
			if err != nil {
				return profileReadyMsg{Err: err}
			}
			for id, at := range unlocked {
				profile.RestoreUnlock(id, at)
			}
		}

		return profileReadyMsg{Profile: profile}
	}
}

func (s *Screen) persistSession() tea.Cmd {
	sess := s.session
	unlocked := s.unlocked
	return func() tea.Msg {
		if s.sessions == nil {
			return sessionSavedMsg{}
		}
		ctx := context.Background()

		if err := s.sessions.Save(ctx, sess); err != nil {
			return sessionSavedMsg{Err: err}
		}
		if s.achievements != nil {
			for _, a := range unlocked {
				if err := s.achievements.SaveUnlock(ctx, a.ID, a.UnlockedAt); err != nil {
					return sessionSavedMsg{Err: err}
				}
			}
		}
		if s.challenges != nil {
			progress := map[string]int{
				store.ChallengeGamesPlayed:    1,
				store.ChallengeCorrectAnswers: sess.CorrectAnswers,
				store.ChallengeScoreEarned:    sess.Score,
			}
			for kind, amount := range progress {
				if err := s.challenges.AddProgress(ctx, kind, amount); err != nil {
					return sessionSavedMsg{Err: err}
				}
			}
		}
		return sessionSavedMsg{}
	}
}

func (s *Screen) nextQuestion() tea.Cmd {
	return func() tea.Msg {
		q, err := question.Generate(s.settings, s.rng)
		return questionMsg{Question: q, Err: err}
	}
}

func advanceAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{}
	})
}

func laneTick() tea.Cmd {
	return tea.Tick(laneTickInterval, func(t time.Time) tea.Msg {
		return laneTickMsg(t)
	})
}
