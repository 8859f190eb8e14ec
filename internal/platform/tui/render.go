package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gameloop/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	c[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Cols()*s.Rows()*2 + s.Rows())

	for y := range s.Rows() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Cols() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Cols() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
