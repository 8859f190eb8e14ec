package core

import (
	"slices"

	"github.com/ErikKalkoken/go-set"
)

// InputTracker is the set of currently held key identifiers.
// Identifiers follow DOM KeyboardEvent.key naming ("ArrowUp", "a", " ", "Escape")
// regardless of which host delivered them.
//
// Only membership is tracked: no press duration, ordering or repeat handling.
// Key-repeat presses re-insert an already held key with no observable effect.
type InputTracker struct {
	held set.Set[string]
}

// NewInputTracker creates an empty tracker.
func NewInputTracker() *InputTracker {
	return &InputTracker{}
}

// Press marks key as held. Pressing a held key is a no-op.
func (t *InputTracker) Press(key string) {
	t.held.Add(key)
}

// Release marks key as no longer held. Releasing an unheld key is a no-op.
func (t *InputTracker) Release(key string) {
	t.held.Delete(key)
}

// IsHeld reports whether key is currently held.
func (t *InputTracker) IsHeld(key string) bool {
	return t.held.Contains(key)
}

// Held returns a copy of the held set.
func (t *InputTracker) Held() set.Set[string] {
	return t.held.Clone()
}

// Sorted returns the held keys in lexical order, for display.
// The result is never nil.
func (t *InputTracker) Sorted() []string {
	keys := slices.Sorted(t.held.All())
	if keys == nil {
		return []string{}
	}
	return keys
}

// Len returns the number of held keys.
func (t *InputTracker) Len() int {
	return t.held.Size()
}

// Reset releases every key.
func (t *InputTracker) Reset() {
	t.held.Clear()
}
