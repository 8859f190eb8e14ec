package core

// TextStyle describes how DrawText renders a string.
// Hosts honor as much of it as they can; a terminal ignores Size and Font.
type TextStyle struct {
	Color Color
	Size  float64 // Font size in logical units
	Bold  bool
	Font  string // Font family hint, e.g. "monospace"
}

// Surface is the 2D drawing target a frame renders onto.
// Coordinates are logical units; each implementation maps them to its own
// pixels or cells. Drawing outside the surface is clipped, never an error.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h int)

	// Clear fills the whole surface with a flat color.
	Clear(c Color)

	// FillRect fills a rectangle.
	FillRect(r Rect, c Color)

	// DrawCircle fills a circle centered at center.
	DrawCircle(center Vector, radius float64, c Color)

	// DrawText draws text with its baseline starting at pos.
	DrawText(pos Vector, text string, style TextStyle)
}
