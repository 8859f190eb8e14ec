package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gameloop/internal/config"
	"github.com/vovakirdan/gameloop/internal/core"
	"github.com/vovakirdan/gameloop/internal/games/snake"
)

func newSnakeModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	g, err := snake.New(config.DefaultSnakeConfig())
	require.NoError(t, err)
	return NewModel(g, Options{Cols: 60, Rows: 21}), g
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelTickRendersFrame(t *testing.T) {
	m, g := newSnakeModel(t)
	require.NotNil(t, m.Init())

	m, cmd := step(t, m, TickMsg(time.Unix(0, 0)))

	assert.NotNil(t, cmd, "next tick scheduled")
	assert.Equal(t, uint64(1), g.Snapshot().Frames)

	// 600x400 on 60x20 cells of 10x20: the overlay at (16, 48) with size 32
	// starts in cell (1, 1).
	assert.True(t, strings.HasPrefix(m.screen.Row(1)[1:], "[]"), "row 1 = %q", m.screen.Row(1))

	// The snake at (300, 200) paints cell (30, 10).
	assert.Equal(t, core.ColorGreen, m.screen.GetCell(30, 10).BG)
	assert.Equal(t, core.ColorBackground, m.screen.GetCell(0, 19).BG)
	assert.NotEmpty(t, m.View())
}

func TestModelKeyPressAndRelease(t *testing.T) {
	m, g := newSnakeModel(t)
	m.Init()

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.True(t, g.Input().IsHeld("ArrowUp"))

	m, _ = step(t, m, TickMsg(time.Now()))
	assert.Contains(t, m.screen.Row(1), `["ArrowUp"]`)

	// Well past the hold timeout the key is released.
	m, _ = step(t, m, TickMsg(time.Now().Add(time.Second)))
	assert.False(t, g.Input().IsHeld("ArrowUp"))
	assert.Contains(t, m.screen.Row(1), "[]")
}

func TestModelPressesEachRune(t *testing.T) {
	m, g := newSnakeModel(t)

	step(t, m, runeKey("ab"))

	assert.Equal(t, []string{"a", "b"}, g.Input().Sorted())
}

func TestModelQuit(t *testing.T) {
	m, _ := newSnakeModel(t)
	m.Init()

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
	assert.False(t, m.queue.Pending(), "loop stopped")
	assert.NoError(t, m.Err())
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newSnakeModel(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.help.ShowAll)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.False(t, m.help.ShowAll)
}

func TestModelResize(t *testing.T) {
	m, _ := newSnakeModel(t)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})

	assert.Equal(t, 120, m.screen.Cols())
	assert.Equal(t, 40, m.screen.Rows())
	w, h := m.screen.Size()
	assert.Equal(t, 600, w)
	assert.Equal(t, 400, h)
}

// brokenGame fails its first update.
type brokenGame struct {
	*snake.Game
}

func (b brokenGame) Update(time.Duration) error { return core.ErrUnimplemented }

func TestModelFrameErrorQuits(t *testing.T) {
	g, err := snake.New(config.DefaultSnakeConfig())
	require.NoError(t, err)
	m := NewModel(brokenGame{g}, Options{Cols: 60, Rows: 21})
	m.Init()

	m, cmd := step(t, m, TickMsg(time.Unix(0, 0)))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.Err(), core.ErrUnimplemented)
}
