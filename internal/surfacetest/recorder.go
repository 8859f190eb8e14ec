// Package surfacetest provides a core.Surface that records draw calls,
// for asserting what a frame rendered without a real host.
package surfacetest

import (
	"github.com/vovakirdan/gameloop/internal/core"
)

// OpKind identifies a recorded draw call.
type OpKind string

const (
	OpClear    OpKind = "clear"
	OpFillRect OpKind = "fill_rect"
	OpCircle   OpKind = "circle"
	OpText     OpKind = "text"
)

// Op is a single recorded draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Color  core.Color
	At     core.Vector
	Rect   core.Rect
	Radius float64
	Text   string
	Style  core.TextStyle
}

// Recorder is a core.Surface that records every call in order.
type Recorder struct {
	w, h int
	ops  []Op
}

// NewRecorder creates a recorder reporting the given logical size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{w: w, h: h}
}

// Size implements core.Surface.
func (r *Recorder) Size() (int, int) { return r.w, r.h }

// Clear implements core.Surface.
func (r *Recorder) Clear(c core.Color) {
	r.ops = append(r.ops, Op{Kind: OpClear, Color: c})
}

// FillRect implements core.Surface.
func (r *Recorder) FillRect(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

// DrawCircle implements core.Surface.
func (r *Recorder) DrawCircle(center core.Vector, radius float64, c core.Color) {
	r.ops = append(r.ops, Op{Kind: OpCircle, At: center, Radius: radius, Color: c})
}

// DrawText implements core.Surface.
func (r *Recorder) DrawText(pos core.Vector, text string, style core.TextStyle) {
	r.ops = append(r.ops, Op{Kind: OpText, At: pos, Text: text, Style: style, Color: style.Color})
}

// Ops returns the recorded calls.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Kinds returns the kind of every recorded call, in order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.ops))
	for i, op := range r.ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.ops = nil
}
