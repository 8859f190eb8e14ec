// Package snake is the demonstration game: a world holding one stationary
// circle, rendered over a flat background with a debug overlay listing the
// keys currently held.
package snake

import (
	"encoding/json"
	"time"

	"github.com/vovakirdan/gameloop/internal/config"
	"github.com/vovakirdan/gameloop/internal/core"
	"github.com/vovakirdan/gameloop/internal/registry"
	"github.com/vovakirdan/gameloop/internal/world"
)

// State keys understood by the game.
const (
	StateBackground = "background" // Hex or named color overriding the configured background
	StateOverlay    = "overlay"    // Whether the held-keys overlay is drawn
)

// Game implements the Snake demonstration.
type Game struct {
	*world.World

	cfg        config.SnakeConfig
	snake      *Snake
	background core.Color
	overlay    bool

	frames  uint64
	elapsed time.Duration
}

func init() {
	registry.Register("snake", "Snake", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadSnake(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if opts.FPS > 0 {
			cfg.Loop.FPS = opts.FPS
		}
		return New(cfg)
	})
}

// New creates the game from cfg. The snake is placed at the configured
// position, or at the surface center when none is given.
func New(cfg config.SnakeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pos := cfg.Runtime().Center()
	if len(cfg.Snake.Position) > 0 {
		pos = core.VectorFrom(cfg.Snake.Position)
	}
	s := NewSnake(pos, cfg.Snake.Width, cfg.Snake.Color)

	g := &Game{
		World: world.New(world.Config{
			Objects: []world.Entity{s},
			State: world.State{
				StateBackground: cfg.Surface.Background.Hex(),
				StateOverlay:    cfg.Overlay.Enabled,
			},
		}),
		cfg:   cfg,
		snake: s,
	}
	g.syncState()
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Runtime returns the surface size and frame rate from the config.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.cfg.Runtime()
}

// Snake returns the snake entity.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Update advances every entity in insertion order.
func (g *Game) Update(elapsed time.Duration) error {
	if err := g.World.Update(elapsed); err != nil {
		return err
	}
	g.frames++
	g.elapsed += elapsed
	return nil
}

// Render clears the surface, renders every entity in insertion order and
// draws the held-keys overlay on top.
func (g *Game) Render(dst core.Surface) error {
	dst.Clear(g.background)

	if err := g.RenderObjects(dst); err != nil {
		return err
	}

	if g.overlay {
		o := g.cfg.Overlay
		dst.DrawText(core.Vec(o.X, o.Y, 0), g.OverlayText(), core.TextStyle{
			Color: o.Color,
			Size:  o.Size,
			Bold:  o.Bold,
			Font:  o.Font,
		})
	}
	return nil
}

// OverlayText returns the held keys as a JSON array, e.g. ["ArrowUp"].
func (g *Game) OverlayText() string {
	data, err := json.Marshal(g.Input().Sorted())
	if err != nil {
		// A []string always marshals.
		return "[]"
	}
	return string(data)
}

// ApplyState merges partial into the world state and refreshes the
// values the game derives from it.
func (g *Game) ApplyState(partial world.State) {
	g.World.ApplyState(partial)
	g.syncState()
}

// syncState derives render settings from the world state.
// Unparseable colors fall back to the configured background.
func (g *Game) syncState() {
	st := g.State()

	g.background = g.cfg.Surface.Background
	if c, err := core.ParseColor(st.String(StateBackground, "")); err == nil {
		g.background = c
	}
	g.overlay = st.Bool(StateOverlay, g.cfg.Overlay.Enabled)
}
