package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/staffhero/internal/ui/theme"
)

// NoteInput wraps bubbles/textinput for typing a note sequence, e.g.
// "C E G" or "Do Mi Sol".
type NoteInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewNoteInput creates a styled sequence input.
func NewNoteInput(placeholder string) NoteInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	ti.Focus()

	return NoteInput{Model: ti}
}

// Init returns the initial command.
func (n NoteInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages.
func (n NoteInput) Update(msg tea.Msg) (NoteInput, tea.Cmd) {
	if n.submitted {
		return n, nil
	}
	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// Names returns the entered display names, split on whitespace.
func (n NoteInput) Names() []string {
	return strings.Fields(n.Model.Value())
}

// Submit marks the input as submitted with a validation result.
func (n *NoteInput) Submit(valid bool) {
	n.submitted = true
	n.valid = valid
}

// Reset clears the input for the next question.
func (n *NoteInput) Reset() {
	n.Model.SetValue("")
	n.submitted = false
	n.valid = false
}

// View renders the input.
func (n NoteInput) View() string {
	view := n.Model.View()
	if n.submitted {
		if n.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}
