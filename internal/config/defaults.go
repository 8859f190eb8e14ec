package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/gameloop/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Surface: SurfaceConfig{
			Width:      core.DefaultSurfaceW,
			Height:     core.DefaultSurfaceH,
			Background: core.ColorBackground,
		},
		Snake: SnakeEntity{
			Width: 10,
			Color: core.ColorGreen,
		},
		Overlay: OverlayConfig{
			Enabled: true,
			X:       16,
			Y:       48,
			Color:   core.ColorRed,
			Size:    32,
			Bold:    true,
			Font:    "monospace",
		},
		Loop: LoopConfig{
			FPS: core.DefaultFPS,
		},
		Input: InputConfig{
			HoldTimeout: 500 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
