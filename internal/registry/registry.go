// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the hosts
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/gameloop/internal/core"
)

// Game is the interface every registered game implements.
// Games contain pure logic with no host dependency (no Bubble Tea, no ebiten).
// The host handles input delivery, frame scheduling and the drawing surface.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Runtime returns the surface size and frame rate the game expects.
	Runtime() core.RuntimeConfig

	// Input returns the tracker hosts deliver key presses and releases to.
	Input() *core.InputTracker

	// Update advances the game by the time elapsed since the previous frame.
	Update(elapsed time.Duration) error

	// Render draws the current frame onto dst.
	Render(dst core.Surface) error
}

// Debugger is implemented by games that can describe their state for
// headless output.
type Debugger interface {
	DebugSnapshot() any
}

// Options are passed to a Factory.
type Options struct {
	// ConfigPath is an optional path to a game config file.
	ConfigPath string

	// FPS overrides the configured frame rate when positive.
	FPS int
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(opts Options) (Game, error)

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the factory fails.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
