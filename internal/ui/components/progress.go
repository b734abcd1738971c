package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/staffhero/internal/ui/theme"
)

// Bar renders a labeled horizontal bar for a 0-1 ratio.
func Bar(label string, ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	prefix := ""
	if label != "" {
		prefix = lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	barWidth := width - lipgloss.Width(prefix) - 6
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * ratio)
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))

	return prefix + bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %3.0f%%", ratio*100))
}
