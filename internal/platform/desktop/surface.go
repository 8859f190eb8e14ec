// Package desktop runs a game in a native window with ebiten.
// ebiten's Update callback is the display-refresh primitive: each call
// applies key transitions and fires the pending frame.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/gameloop/internal/core"
)

// Surface draws onto an offscreen ebiten image of the logical size.
type Surface struct {
	img  *ebiten.Image
	face *text.GoXFace
}

// NewSurface creates a w x h surface.
func NewSurface(w, h int) *Surface {
	return &Surface{
		img:  ebiten.NewImage(w, h),
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Image returns the backing image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Size implements core.Surface.
func (s *Surface) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements core.Surface.
func (s *Surface) Clear(c core.Color) {
	s.img.Fill(c)
}

// FillRect implements core.Surface.
func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawCircle implements core.Surface.
func (s *Surface) DrawCircle(center core.Vector, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// DrawText implements core.Surface. The bitmap face is scaled to style.Size
// and bold is emulated by drawing twice one pixel apart.
func (s *Surface) DrawText(pos core.Vector, str string, style core.TextStyle) {
	scale := 1.0
	if style.Size > 0 {
		scale = style.Size / float64(basicfont.Face7x13.Height)
	}
	ascent := s.face.Metrics().HAscent * scale

	passes := 1
	if style.Bold {
		passes = 2
	}
	for i := range passes {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(pos.X+float64(i), pos.Y-ascent)
		op.ColorScale.ScaleWithColor(style.Color)
		text.Draw(s.img, str, s.face, op)
	}
}
