package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/staffhero/internal/question"
	"github.com/abhisek/staffhero/internal/screens/play"
	"github.com/abhisek/staffhero/internal/store"
	"github.com/abhisek/staffhero/internal/ui/layout"
)

// Options configure a game run.
type Options struct {
	Settings question.Settings

	Sessions     store.SessionRepo
	Achievements store.AchievementRepo
	Challenges   store.ChallengeRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	screen *play.Screen
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		screen: play.New(opts.Settings, opts.Sessions, opts.Achievements, opts.Challenges),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	_, cmd := m.screen.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	score, streak := m.screen.HeaderStats()
	header := layout.RenderHeader(m.screen.Title(), score, streak, m.width)
	footer := layout.RenderFooter(m.screen.KeyHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.screen.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
