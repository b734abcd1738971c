package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: warm stage-light tones over a dark pit
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#6366F1") // Indigo
	Accent    = lipgloss.Color("#EC4899") // Pink
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#FAFAF9") // Warm White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Near Black
	BgCard    = lipgloss.Color("#292524") // Dark Stone
	Border    = lipgloss.Color("#44403C") // Stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Staff rendering
var (
	StaffLine = lipgloss.NewStyle().
			Foreground(TextDim)

	LedgerLine = lipgloss.NewStyle().
			Foreground(Border)

	NoteHead = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	NoteLabel = lipgloss.NewStyle().
			Foreground(Secondary)

	TargetLine = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Streak styles indexed by streak level (0-3).
var StreakLevels = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(TextDim),
	lipgloss.NewStyle().Foreground(Text),
	lipgloss.NewStyle().Foreground(Primary).Bold(true),
	lipgloss.NewStyle().Foreground(Accent).Bold(true),
}
