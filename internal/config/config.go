// Package config provides YAML/TOML configuration loading for the
// demonstration game and the hosts running it.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gameloop/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake demonstration.
type SnakeConfig struct {
	Surface SurfaceConfig `yaml:"surface" toml:"surface"`
	Snake   SnakeEntity   `yaml:"snake" toml:"snake"`
	Overlay OverlayConfig `yaml:"overlay" toml:"overlay"`
	Loop    LoopConfig    `yaml:"loop" toml:"loop"`
	Input   InputConfig   `yaml:"input" toml:"input"`
}

// SurfaceConfig defines the logical drawing surface.
type SurfaceConfig struct {
	Width      int        `yaml:"width" toml:"width"`
	Height     int        `yaml:"height" toml:"height"`
	Background core.Color `yaml:"background" toml:"background"`
}

// SnakeEntity defines the snake placeholder entity.
type SnakeEntity struct {
	Width float64    `yaml:"width" toml:"width"` // Circle diameter; radius is Width/2, minimum 1
	Color core.Color `yaml:"color" toml:"color"`
	// Position is a partial coordinate ("x", "y", "z"). Empty means the surface center.
	Position map[string]float64 `yaml:"position,omitempty" toml:"position,omitempty"`
}

// OverlayConfig defines the held-keys debug overlay.
type OverlayConfig struct {
	Enabled bool       `yaml:"enabled" toml:"enabled"`
	X       float64    `yaml:"x" toml:"x"`
	Y       float64    `yaml:"y" toml:"y"` // Text baseline
	Color   core.Color `yaml:"color" toml:"color"`
	Size    float64    `yaml:"size" toml:"size"`
	Bold    bool       `yaml:"bold" toml:"bold"`
	Font    string     `yaml:"font" toml:"font"`
}

// LoopConfig defines the frame rate requested from the host.
type LoopConfig struct {
	FPS int `yaml:"fps" toml:"fps"`
}

// InputConfig defines host input handling.
type InputConfig struct {
	// HoldTimeout releases a key when a host without key-up events (a terminal)
	// has not repeated it for this long.
	HoldTimeout time.Duration `yaml:"hold_timeout" toml:"hold_timeout"`
}

// Validate checks the configuration for values no host can run with.
func (c SnakeConfig) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("%w: surface size %dx%d", ErrInvalid, c.Surface.Width, c.Surface.Height)
	}
	if c.Loop.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Loop.FPS)
	}
	if c.Snake.Width < 0 {
		return fmt.Errorf("%w: snake width %g", ErrInvalid, c.Snake.Width)
	}
	if c.Input.HoldTimeout < 0 {
		return fmt.Errorf("%w: hold timeout %s", ErrInvalid, c.Input.HoldTimeout)
	}
	return nil
}

// Runtime returns the runtime config games are created with.
func (c SnakeConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		SurfaceW: c.Surface.Width,
		SurfaceH: c.Surface.Height,
		FPS:      c.Loop.FPS,
		KeyHold:  c.Input.HoldTimeout,
	}
}
