package world

import (
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/gameloop/internal/core"
)

// Config is the initial content of a World.
type Config struct {
	Objects []Entity
	State   State
}

// World owns an insertion-ordered list of entities, the world state and the
// input tracker. Iteration order is the update and render order.
//
// World is not safe for concurrent use; hosts drive it from a single goroutine.
type World struct {
	objects []Entity
	state   State
	input   *core.InputTracker
}

// New creates a World from cfg. The object list is copied and the state is
// deep-cloned, so later changes to cfg do not affect the World.
// Nil entries in cfg.Objects are dropped.
func New(cfg Config) *World {
	w := &World{
		objects: make([]Entity, 0, len(cfg.Objects)),
		state:   cfg.State.Clone(),
		input:   core.NewInputTracker(),
	}
	for _, e := range cfg.Objects {
		w.AddObject(e)
	}
	return w
}

// Input returns the tracker hosts feed key presses into.
func (w *World) Input() *core.InputTracker {
	return w.input
}

// Update calls Update on every entity in insertion order.
// It stops at the first failing entity and returns its error.
func (w *World) Update(elapsed time.Duration) error {
	for _, e := range w.objects {
		if err := e.Update(elapsed); err != nil {
			return fmt.Errorf("world: update %s: %w", e.ID(), err)
		}
	}
	return nil
}

// Render is the base hook. Concrete games must override it.
func (w *World) Render(core.Surface) error {
	return core.ErrUnimplemented
}

// RenderObjects calls Render on every entity in insertion order.
// Concrete games call it from their own Render.
func (w *World) RenderObjects(dst core.Surface) error {
	for _, e := range w.objects {
		if err := e.Render(dst); err != nil {
			return fmt.Errorf("world: render %s: %w", e.ID(), err)
		}
	}
	return nil
}

// AddObject appends e to the object list. Nil entities are silently ignored.
func (w *World) AddObject(e Entity) {
	if isNil(e) {
		return
	}
	w.objects = append(w.objects, e)
}

// RemoveObject removes and returns the first entity with the given id.
// It returns (nil, false) when no entity matches.
func (w *World) RemoveObject(id uuid.UUID) (Entity, bool) {
	i := slices.IndexFunc(w.objects, func(e Entity) bool {
		return e.ID() == id
	})
	if i < 0 {
		return nil, false
	}
	e := w.objects[i]
	w.objects = slices.Delete(w.objects, i, i+1)
	return e, true
}

// Object returns the entity with the given id.
func (w *World) Object(id uuid.UUID) (Entity, bool) {
	i := slices.IndexFunc(w.objects, func(e Entity) bool {
		return e.ID() == id
	})
	if i < 0 {
		return nil, false
	}
	return w.objects[i], true
}

// Objects returns a copy of the object list in insertion order.
func (w *World) Objects() []Entity {
	return slices.Clone(w.objects)
}

// Len returns the number of entities.
func (w *World) Len() int {
	return len(w.objects)
}

// State returns a deep copy of the current state.
func (w *World) State() State {
	return w.state.Clone()
}

// ApplyState replaces the state with a copy of the current state overlaid by
// partial. Neither partial nor any previously returned state is modified.
func (w *World) ApplyState(partial State) {
	w.state = w.state.Merge(partial)
}

// isNil reports whether e is nil or a typed nil pointer.
func isNil(e Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
