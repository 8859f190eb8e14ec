package core

import (
	"errors"
	"time"
)

// ErrUnimplemented is returned when a base Update or Render hook is invoked
// on a World or Entity that did not override it. It marks an integration
// defect, not a recoverable runtime condition.
var ErrUnimplemented = errors.New("unimplemented capability")

// Default logical surface dimensions.
const (
	DefaultSurfaceW = 600
	DefaultSurfaceH = 400
	DefaultFPS      = 60
)

// RuntimeConfig contains configuration passed to games at creation.
// Games use this to lay out their objects on the logical surface.
type RuntimeConfig struct {
	SurfaceW int // Surface width in logical units
	SurfaceH int // Surface height in logical units
	FPS      int // Frame rate requested from the host

	// KeyHold releases a key on hosts without key-up events once it has
	// not been repeated for this long.
	KeyHold time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		SurfaceW: DefaultSurfaceW,
		SurfaceH: DefaultSurfaceH,
		FPS:      DefaultFPS,
		KeyHold:  500 * time.Millisecond,
	}
}

// Center returns the center of the logical surface.
func (c RuntimeConfig) Center() Vector {
	return c.Bounds().Center()
}

// Bounds returns the logical surface as a rectangle at the origin.
func (c RuntimeConfig) Bounds() Rect {
	return NewRect(0, 0, float64(c.SurfaceW), float64(c.SurfaceH))
}
