package components

import (
	"strings"

	"github.com/abhisek/staffhero/internal/theory"
	"github.com/abhisek/staffhero/internal/ui/theme"
)

// Staff layout constants, in character cells.
const (
	staffLeadIn   = 6 // line before the first note
	staffNoteStep = 6 // cells between note columns
	staffTailOut  = 4 // line after the last note
)

// Staff renders notes on a five-line ASCII staff, top line first. Ledger
// lines are drawn only under notes that need them. When showLabels is set
// the display names are printed under their columns.
func Staff(notes []theory.Note, sys theory.System, showLabels bool) string {
	if len(notes) == 0 {
		return ""
	}

	top, bottom := 4, -4
	for _, n := range notes {
		if p := n.StaffPosition(); p > top {
			top = p
		} else if p < bottom {
			bottom = p
		}
	}

	width := staffLeadIn + staffNoteStep*(len(notes)-1) + staffTailOut + 1
	noteCol := func(i int) int { return staffLeadIn + i*staffNoteStep }

	var b strings.Builder
	for pos := top; pos >= bottom; pos-- {
		onStaff := pos%2 == 0 && pos >= -4 && pos <= 4
		for x := 0; x < width; x++ {
			cell, style := " ", theme.StaffLine
			if onStaff {
				cell = "─"
			}
			for i, n := range notes {
				if n.StaffPosition() != pos || noteCol(i) < x-1 || noteCol(i) > x+1 {
					continue
				}
				if x == noteCol(i) {
					cell, style = "●", theme.NoteHead
				} else if !onStaff && n.RequiresLedgerLine() && pos%2 == 0 {
					// Short ledger segment either side of the head.
					cell, style = "─", theme.LedgerLine
				}
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}

	if showLabels {
		labels := strings.Repeat(" ", width)
		runes := []rune(labels)
		for i, n := range notes {
			name := sys.DisplayName(n.Name)
			for j, r := range name {
				if pos := noteCol(i) + j; pos < len(runes) {
					runes[pos] = r
				}
			}
		}
		b.WriteString(theme.NoteLabel.Render(string(runes)))
		b.WriteString("\n")
	}

	return b.String()
}
