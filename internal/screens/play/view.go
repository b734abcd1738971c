package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/scoring"
	"github.com/abhisek/staffhero/internal/ui/components"
	"github.com/abhisek/staffhero/internal/ui/theme"
)

// View renders the screen content for the current phase.
func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, height, theme.Incorrect.Render("Error: "+s.errMsg))
	}

	switch s.phase {
	case phaseLoading:
		return centered(width, height, theme.Hint.Render("Tuning up..."))
	case phaseFeedback:
		return s.viewFeedback(width, height)
	case phaseSummary:
		return s.viewSummary(width, height)
	default:
		return s.viewQuestion(width, height)
	}
}

func (s *Screen) viewQuestion(width, height int) string {
	q := s.state.CurrentQuestion
	if q == nil {
		return centered(width, height, theme.Hint.Render("Generating question..."))
	}

	var b strings.Builder

	switch s.settings.Mode {
	case question.ModeRhythm:
		b.WriteString(theme.Body.Render("Hit each note as it crosses the target line!"))
		b.WriteString("\n\n")
		b.WriteString(components.Lane(s.lane, s.laneNow, s.cfg, width-4))
		b.WriteString("\n\n")
		remaining := 0
		for _, n := range s.lane {
			if !n.Hit {
				remaining++
			}
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d notes remaining", remaining, len(s.lane))))

	case question.ModeSequence:
		b.WriteString(theme.Body.Render("Name the notes from left to right:"))
		b.WriteString("\n\n")
		b.WriteString(components.Staff(q.Notes, s.settings.Notation, s.settings.ShowNoteLabels))
		b.WriteString("\n")
		b.WriteString(s.input.View())

	default:
		b.WriteString(components.Staff(q.Notes, s.settings.Notation, s.settings.ShowNoteLabels))
		b.WriteString("\n")
		b.WriteString(s.mc.View())
	}

	return centered(width, height, b.String())
}

func (s *Screen) viewFeedback(width, height int) string {
	var b strings.Builder

	if s.settings.Mode == question.ModeRhythm {
		b.WriteString(theme.Title.Render("Round complete"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Hits: %d/%d", s.roundScore.HitCount, len(s.lane))))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Perfect hits: %d", s.roundScore.PerfectHits)))
		b.WriteString("\n")
		b.WriteString(components.Bar("Accuracy", float64(s.roundScore.AverageAccuracy)/100, width/2))
		return centered(width, height, b.String())
	}

	if s.lastCorrect {
		b.WriteString(theme.Correct.Render(signalBanner(s.lastSignal)))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("+%d points", s.lastPoints)))
		level := scoring.StreakLevel(s.state.Streak)
		b.WriteString("\n")
		b.WriteString(theme.StreakLevels[level].Render(fmt.Sprintf("Streak: %d", s.state.Streak)))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Not quite"))
		b.WriteString("\n\n")
		if q := s.state.CurrentQuestion; q != nil {
			b.WriteString(theme.Body.Render("Correct answer: " + strings.Join(q.CorrectAnswer, " ")))
		}
		if s.settings.Mode == question.ModeSequence {
			b.WriteString("\n")
			b.WriteString(s.viewSequenceFeedback())
		}
	}

	return centered(width, height, b.String())
}

// viewSequenceFeedback colors the submitted names by position and lists
// the missed notes.
func (s *Screen) viewSequenceFeedback() string {
	correctAt := make(map[int]bool, len(s.feedback.CorrectPositions))
	for _, i := range s.feedback.CorrectPositions {
		correctAt[i] = true
	}

	parts := make([]string, len(s.lastAnswer))
	for i, name := range s.lastAnswer {
		if correctAt[i] {
			parts[i] = theme.Correct.Render(name)
		} else {
			parts[i] = theme.Incorrect.Render(name)
		}
	}

	out := "You played: " + strings.Join(parts, " ")
	if len(s.feedback.MissedNotes) > 0 {
		out += "\n" + theme.Hint.Render("Missed: "+strings.Join(s.feedback.MissedNotes, " "))
	}
	return out
}

func (s *Screen) viewSummary(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Game over"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Score          %d", s.session.Score)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Best streak    %d", s.session.MaxStreak)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Questions      %d/%d correct",
		s.session.CorrectAnswers, s.session.TotalQuestions)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Duration       %ds", s.session.DurationSecs)))
	b.WriteString("\n\n")
	b.WriteString(components.Bar("Accuracy", float64(s.session.Accuracy)/100, width/2))

	if len(s.unlocked) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Title.Render("Achievements unlocked"))
		for _, a := range s.unlocked {
			b.WriteString("\n")
			b.WriteString(theme.Selected.Render("★ " + a.Name))
			b.WriteString(theme.Hint.Render("  " + a.Description))
		}
	}

	if s.saveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("(could not save session: " + s.saveErr.Error() + ")"))
	}

	return centered(width, height, b.String())
}

func signalBanner(sig scoring.Signal) string {
	switch sig {
	case scoring.SignalSuccess:
		return "✓ Perfect!"
	case scoring.SignalMedium:
		return "✓ Nice!"
	case scoring.SignalLight:
		return "✓ Just made it"
	}
	return "✓ Correct"
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
