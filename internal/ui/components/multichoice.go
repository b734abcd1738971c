package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/staffhero/internal/ui/theme"
)

// MultiChoice is a note-name selector for single-note rounds.
type MultiChoice struct {
	Prompt    string
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int
	correct   map[string]bool
}

// NewMultiChoice creates a selector over the question's shuffled options.
// correct holds the display names that count as right answers, used for
// coloring after submission.
func NewMultiChoice(prompt string, options []string, correct []string) MultiChoice {
	set := make(map[string]bool, len(correct))
	for _, c := range correct {
		set[c] = true
	}
	return MultiChoice{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
		correct: set,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.Chosen = m.Selected
	default:
		// Number keys jump straight to an option.
		if n := kmsg.String(); len(n) == 1 && n[0] >= '1' && n[0] <= '9' {
			idx := int(n[0] - '1')
			if idx < len(m.Options) {
				m.Selected = idx
				m.Submitted = true
				m.Chosen = idx
			}
		}
	}

	return m, nil
}

// Value returns the chosen option, or "" before submission.
func (m MultiChoice) Value() string {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

// View renders the selector.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case m.Submitted && m.correct[opt]:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && i == m.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
