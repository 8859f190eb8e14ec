package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gameloop/internal/core"
	"github.com/vovakirdan/gameloop/internal/loop"
	"github.com/vovakirdan/gameloop/internal/registry"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// Options configures the terminal host.
type Options struct {
	Cols   int // Initial terminal width
	Rows   int // Initial terminal height
	Logger *log.Logger
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	queue  *loop.FrameQueue
	loop   *loop.Loop
	mapper *KeyMapper
	styles styleCache
	keys   KeyMap
	help   help.Model
	fps    int
	logger *log.Logger

	// err is shared across model copies so Run can report a failed frame.
	err      *error
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	rt := game.Runtime()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(rt.SurfaceW, rt.SurfaceH, max(opts.Cols, 1), max(opts.Rows-footerHeight, 1))
	queue := loop.NewFrameQueue()

	return Model{
		game:   game,
		screen: screen,
		queue:  queue,
		loop:   loop.New(game, screen, queue, loop.WithLogger(logger)),
		mapper: NewKeyMapper(rt.KeyHold),
		styles: make(styleCache),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		fps:    rt.FPS,
		logger: logger,
		err:    new(error),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.loop.Stop()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	for _, k := range m.mapper.Press(msg, time.Now()) {
		m.game.Input().Press(k)
		m.logger.Debug("key press", "key", k)
	}
	return m, nil
}

// handleResize processes window resize events.
// The logical surface is unchanged; only the cell grid follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases expired keys and fires the pending frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.mapper.Expire(now) {
		m.game.Input().Release(k)
		m.logger.Debug("key release", "key", k)
	}

	if _, err := m.queue.Fire(now); err != nil {
		*m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	// Loop stopped: nothing left to drive.
	if !m.queue.Pending() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.fps)
}

// View renders the last frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return *m.err
}

// Run starts the Bubble Tea program for game and returns when it exits.
// A failed frame is returned as the error.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}
