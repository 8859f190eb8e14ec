// Package world provides the object model driven by the frame loop: entities
// with polymorphic Update/Render hooks and the World container owning them.
package world

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/gameloop/internal/core"
)

// Entity is any object placed in a World.
// Concrete entities embed Base and override Update and Render.
type Entity interface {
	// ID returns the identifier assigned at construction.
	ID() uuid.UUID

	// Position returns the current position.
	Position() core.Vector

	// Update advances the entity by the elapsed time since the previous frame.
	Update(elapsed time.Duration) error

	// Render draws the entity onto dst.
	Render(dst core.Surface) error
}

// Base holds the state every entity shares: a unique identifier and a position.
// Its Update and Render hooks return core.ErrUnimplemented; an entity that
// embeds Base without overriding them fails on its first frame.
type Base struct {
	id  uuid.UUID
	pos core.Vector
}

// NewBase creates a Base with a fresh identifier.
// The position defaults to the origin when omitted.
func NewBase(pos ...core.Vector) Base {
	b := Base{id: uuid.New()}
	if len(pos) > 0 {
		b.pos = pos[0]
	}
	return b
}

// ID returns the entity identifier. It never changes.
func (b *Base) ID() uuid.UUID {
	return b.id
}

// Position returns the current position.
func (b *Base) Position() core.Vector {
	return b.pos
}

// SetPosition moves the entity. Meant to be called from the entity's own Update.
func (b *Base) SetPosition(p core.Vector) {
	b.pos = p
}

// Update is the base hook. Concrete entities must override it.
func (b *Base) Update(time.Duration) error {
	return core.ErrUnimplemented
}

// Render is the base hook. Concrete entities must override it.
func (b *Base) Render(core.Surface) error {
	return core.ErrUnimplemented
}
