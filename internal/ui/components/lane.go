package components

import (
	"strings"
	"time"

	"github.com/abhisek/staffhero/internal/rhythm"
	"github.com/abhisek/staffhero/internal/ui/theme"
)

// Lane renders in-flight rhythm notes approaching the target line from the
// right. Hit notes disappear; unhit notes scroll left until they despawn.
func Lane(notes []*rhythm.Note, at time.Time, cfg rhythm.Config, width int) string {
	if width < 10 {
		width = 10
	}

	cells := make([]rune, width)
	styles := make([]int, width) // 0 lane, 1 zone, 2 target, 3 note
	for i := range cells {
		cells[i] = '─'
	}

	toCol := func(x float64) int {
		return int(x / cfg.ScreenWidth * float64(width-1))
	}

	targetCol := toCol(cfg.TargetLineX)
	zoneLeft := toCol(cfg.TargetLineX - cfg.HitZoneSize)
	zoneRight := toCol(cfg.TargetLineX + cfg.HitZoneSize)
	for c := zoneLeft; c <= zoneRight; c++ {
		if c >= 0 && c < width {
			cells[c], styles[c] = '═', 1
		}
	}
	if targetCol >= 0 && targetCol < width {
		cells[targetCol], styles[targetCol] = '╂', 2
	}

	for _, n := range notes {
		if n.Hit {
			continue
		}
		pos := rhythm.Position(n, at, cfg)
		if pos < 0 || pos > cfg.ScreenWidth {
			continue
		}
		col := toCol(pos)
		if col >= 0 && col < width {
			cells[col], styles[col] = []rune(n.DisplayName)[0], 3
		}
	}

	var b strings.Builder
	for i, r := range cells {
		switch styles[i] {
		case 1:
			b.WriteString(theme.StaffLine.Render(string(r)))
		case 2:
			b.WriteString(theme.TargetLine.Render(string(r)))
		case 3:
			b.WriteString(theme.NoteHead.Render(string(r)))
		default:
			b.WriteString(theme.LedgerLine.Render(string(r)))
		}
	}
	return b.String()
}
