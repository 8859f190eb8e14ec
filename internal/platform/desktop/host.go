package desktop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gameloop/internal/loop"
	"github.com/vovakirdan/gameloop/internal/platform/keys"
	"github.com/vovakirdan/gameloop/internal/registry"
)

// Options configures the window host.
type Options struct {
	Scale  int // Window pixels per logical unit
	Logger *log.Logger
}

// Host implements ebiten.Game for one registry game.
type Host struct {
	game    registry.Game
	surface *Surface
	queue   *loop.FrameQueue
	loop    *loop.Loop
	logger  *log.Logger

	keys  []ebiten.Key
	chord *keys.Chord
}

// NewHost creates a host drawing game onto a surface of its logical size.
func NewHost(game registry.Game, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := game.Runtime()
	surface := NewSurface(rt.SurfaceW, rt.SurfaceH)
	queue := loop.NewFrameQueue()

	return &Host{
		game:    game,
		surface: surface,
		queue:   queue,
		loop:    loop.New(game, surface, queue, loop.WithLogger(logger)),
		logger:  logger,
		chord:   keys.NewChord(),
	}
}

// Update applies key transitions since the last tick and fires the pending frame.
// It ends the game once the loop stops.
func (h *Host) Update() error {
	input := h.game.Input()

	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		name := keys.FromEbiten(k.String())
		if h.chord.Press(name) {
			input.Press(name)
			h.logger.Debug("key press", "key", name)
		}
	}

	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		name := keys.FromEbiten(k.String())
		if h.chord.Release(name) {
			input.Release(name)
			h.logger.Debug("key release", "key", name)
		}
	}

	if _, err := h.queue.Fire(time.Now()); err != nil {
		return err
	}
	if !h.queue.Pending() {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the last rendered frame.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.DrawImage(h.surface.Image(), nil)
}

// Layout keeps the logical surface size; ebiten scales it to the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.surface.Size()
}

// Run opens a window for game and blocks until it is closed or a frame fails.
func Run(game registry.Game, opts Options) error {
	rt := game.Runtime()
	scale := max(opts.Scale, 1)

	ebiten.SetWindowSize(rt.SurfaceW*scale, rt.SurfaceH*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rt.FPS)

	h := NewHost(game, opts.Logger)
	h.loop.Start()
	defer h.loop.Stop()

	return ebiten.RunGame(h)
}
