package snake

import (
	"time"

	"github.com/vovakirdan/gameloop/internal/core"
	"github.com/vovakirdan/gameloop/internal/world"
)

// ObjectSnapshot describes one entity.
type ObjectSnapshot struct {
	ID       string      `yaml:"id"`
	Kind     string      `yaml:"kind"`
	Position core.Vector `yaml:"position"`
	Radius   float64     `yaml:"radius,omitempty"`
}

// Snapshot captures the game state for debugging and headless output.
type Snapshot struct {
	Frames     uint64           `yaml:"frames"`
	Elapsed    time.Duration    `yaml:"elapsed"`
	Background string           `yaml:"background"`
	Held       []string         `yaml:"held"`
	Overlay    string           `yaml:"overlay"`
	Objects    []ObjectSnapshot `yaml:"objects"`
	State      world.State      `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	objects := g.Objects()
	snap := Snapshot{
		Frames:     g.frames,
		Elapsed:    g.elapsed,
		Background: g.background.Hex(),
		Held:       g.Input().Sorted(),
		Overlay:    g.OverlayText(),
		Objects:    make([]ObjectSnapshot, 0, len(objects)),
		State:      g.State(),
	}

	for _, e := range objects {
		o := ObjectSnapshot{
			ID:       e.ID().String(),
			Kind:     "entity",
			Position: e.Position(),
		}
		if s, ok := e.(*Snake); ok {
			o.Kind = "snake"
			o.Radius = s.Radius()
		}
		snap.Objects = append(snap.Objects, o)
	}
	return snap
}

// DebugSnapshot implements registry.Debugger.
func (g *Game) DebugSnapshot() any {
	return g.Snapshot()
}
