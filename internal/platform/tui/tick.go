// Package tui runs a game in the terminal with Bubble Tea.
// Ticks act as the display-refresh primitive, key messages feed the game's
// input tracker and the frame is rendered into a scaled cell screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame interval.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
