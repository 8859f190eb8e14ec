package core

import (
	"math"
	"strings"
)

// Cell is a single character cell of a Screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a terminal character buffer implementing Surface.
// Logical coordinates are scaled onto a cols x rows grid, so a 600x400
// surface still fits an 80x24 terminal.
type Screen struct {
	logicalW int
	logicalH int
	cols     int
	rows     int
	cells    [][]Cell
}

// NewScreen creates a screen of cols x rows cells mapping a logicalW x logicalH surface.
func NewScreen(logicalW, logicalH, cols, rows int) *Screen {
	s := &Screen{
		logicalW: logicalW,
		logicalH: logicalH,
		cols:     cols,
		rows:     rows,
	}
	s.allocate()
	s.Clear(ColorBlack)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.rows)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.cols)
	}
}

// Size returns the logical surface size.
func (s *Screen) Size() (w, h int) {
	return s.logicalW, s.logicalH
}

// Cols returns the screen width in cells.
func (s *Screen) Cols() int {
	return s.cols
}

// Rows returns the screen height in cells.
func (s *Screen) Rows() int {
	return s.rows
}

// Resize changes the cell grid. Content is discarded; the next frame redraws it.
func (s *Screen) Resize(cols, rows int) {
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols = cols
	s.rows = rows
	s.allocate()
	s.Clear(ColorBlack)
}

// cellW and cellH return the logical size of one cell.
func (s *Screen) cellW() float64 { return float64(s.logicalW) / float64(max(s.cols, 1)) }
func (s *Screen) cellH() float64 { return float64(s.logicalH) / float64(max(s.rows, 1)) }

// toCell maps a logical point to the cell containing it.
func (s *Screen) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW())), int(math.Floor(y / s.cellH()))
}

// cellRange returns the cells covering logical [lo, hi] on one axis,
// clamped to the grid.
func cellRange(lo, hi, size float64, n int) (int, int) {
	a := int(math.Floor(lo / size))
	b := int(math.Floor(hi / size))
	return Clamp(a, 0, n-1), Clamp(b, 0, n-1)
}

// cellCenter returns the logical center of cell (cx, cy).
func (s *Screen) cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * s.cellW(), (float64(cy) + 0.5) * s.cellH()
}

// Clear fills every cell with a blank of the given background.
func (s *Screen) Clear(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: c, BG: c}
		}
	}
}

// FillRect paints the background of every cell whose center lies inside r.
func (s *Screen) FillRect(r Rect, c Color) {
	x0, x1 := cellRange(r.X, r.Right(), s.cellW(), s.cols)
	y0, y1 := cellRange(r.Y, r.Bottom(), s.cellH(), s.rows)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px, py := s.cellCenter(cx, cy)
			if r.Contains(px, py) {
				s.paint(cx, cy, c)
			}
		}
	}
}

// DrawCircle paints every cell whose center lies inside the circle.
// A circle smaller than a cell still paints the cell holding its center.
func (s *Screen) DrawCircle(center Vector, radius float64, c Color) {
	x0, x1 := cellRange(center.X-radius, center.X+radius, s.cellW(), s.cols)
	y0, y1 := cellRange(center.Y-radius, center.Y+radius, s.cellH(), s.rows)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px, py := s.cellCenter(cx, cy)
			if math.Hypot(px-center.X, py-center.Y) <= radius {
				s.paint(cx, cy, c)
			}
		}
	}
	s.paintCenter(center, c)
}

// paintCenter colors the cell holding center.
func (s *Screen) paintCenter(center Vector, c Color) {
	cx, cy := s.toCell(center.X, center.Y)
	s.paint(cx, cy, c)
}

// paint sets a cell background. Out-of-bounds cells are silently ignored.
func (s *Screen) paint(cx, cy int, c Color) {
	if cx < 0 || cx >= s.cols || cy < 0 || cy >= s.rows {
		return
	}
	s.cells[cy][cx] = Cell{Rune: ' ', FG: c, BG: c}
}

// DrawText writes text starting at the cell holding pos.
// The baseline sits in the row above pos when the font is taller than a cell.
// Characters beyond the right edge are clipped.
func (s *Screen) DrawText(pos Vector, text string, style TextStyle) {
	cx, cy := s.toCell(pos.X, pos.Y-style.Size/2)
	for i, r := range []rune(text) {
		x := cx + i
		if x < 0 || x >= s.cols || cy < 0 || cy >= s.rows {
			continue
		}
		cell := s.cells[cy][x]
		cell.Rune = r
		cell.FG = style.Color
		s.cells[cy][x] = cell
	}
}

// GetCell returns the cell at (x, y).
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.cols || y < 0 || y >= s.rows {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// Row returns the runes of row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	runes := make([]rune, s.cols)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
