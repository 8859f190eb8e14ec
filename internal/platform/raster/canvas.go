// Package raster renders frames into an in-memory RGBA image.
// It backs the headless render command and needs no display.
package raster

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/gameloop/internal/core"
)

// Canvas is a core.Surface over an image.RGBA of the logical size.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a w x h canvas cleared to black.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	c.Clear(core.ColorBlack)
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size implements core.Surface.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements core.Surface.
func (c *Canvas) Clear(col core.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect implements core.Surface. Edges are rounded to whole pixels.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	rect := image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.Right())), int(math.Round(r.Bottom())),
	)
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawCircle implements core.Surface. A pixel is filled when its center lies
// inside the circle; the pixel holding center is always filled.
func (c *Canvas) DrawCircle(center core.Vector, radius float64, col core.Color) {
	x0 := int(math.Floor(center.X - radius))
	y0 := int(math.Floor(center.Y - radius))
	x1 := int(math.Ceil(center.X + radius))
	y1 := int(math.Ceil(center.Y + radius))

	bounds := c.img.Bounds()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !(image.Point{X: x, Y: y}).In(bounds) {
				continue
			}
			if math.Hypot(float64(x)+0.5-center.X, float64(y)+0.5-center.Y) <= radius {
				c.img.Set(x, y, col)
			}
		}
	}

	p := image.Pt(int(math.Floor(center.X)), int(math.Floor(center.Y)))
	if p.In(bounds) {
		c.img.Set(p.X, p.Y, col)
	}
}

// DrawText implements core.Surface with the 7x13 bitmap face.
// Size and Font are ignored; bold is drawn twice one pixel apart.
func (c *Canvas) DrawText(pos core.Vector, text string, style core.TextStyle) {
	passes := 1
	if style.Bold {
		passes = 2
	}
	for i := range passes {
		d := &font.Drawer{
			Dst:  c.img,
			Src:  image.NewUniform(style.Color),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(int(math.Round(pos.X))+i, int(math.Round(pos.Y))),
		}
		d.DrawString(text)
	}
}

// WritePNG encodes the canvas as PNG, enlarged by scale with nearest-neighbor sampling.
func (c *Canvas) WritePNG(w io.Writer, scale int) error {
	if scale <= 1 {
		return png.Encode(w, c.img)
	}
	b := c.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, b, draw.Src, nil)
	return png.Encode(w, dst)
}
