package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/gameloop/internal/core"
)

func at(c *Canvas, x, y int) core.Color {
	return core.Color(c.Image().RGBAAt(x, y))
}

func TestCanvasClearAndRect(t *testing.T) {
	c := NewCanvas(20, 10)
	w, h := c.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)
	assert.Equal(t, core.ColorBlack, at(c, 5, 5))

	c.Clear(core.ColorBackground)
	c.FillRect(core.NewRect(2, 2, 3, 3), core.ColorRed)

	assert.Equal(t, core.ColorRed, at(c, 2, 2))
	assert.Equal(t, core.ColorRed, at(c, 4, 4))
	assert.Equal(t, core.ColorBackground, at(c, 5, 5))
	assert.Equal(t, core.ColorBackground, at(c, 1, 1))
}

func TestCanvasCircle(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(core.ColorBackground)
	c.DrawCircle(core.Vec(20, 20, 0), 5, core.ColorGreen)

	assert.Equal(t, core.ColorGreen, at(c, 20, 20))
	assert.Equal(t, core.ColorGreen, at(c, 16, 20))
	assert.Equal(t, core.ColorBackground, at(c, 26, 20))
	assert.Equal(t, core.ColorBackground, at(c, 15, 15))
}

func TestCanvasTinyCircleFillsCenter(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawCircle(core.Vec(3.2, 7.9, 0), 0.1, core.ColorWhite)

	assert.Equal(t, core.ColorWhite, at(c, 3, 7))
}

func TestCanvasClipsOffscreen(t *testing.T) {
	c := NewCanvas(10, 10)

	assert.NotPanics(t, func() {
		c.DrawCircle(core.Vec(-50, -50, 0), 5, core.ColorWhite)
		c.FillRect(core.NewRect(-5, -5, 100, 2), core.ColorWhite)
		c.DrawText(core.Vec(100, 100, 0), "[]", core.TextStyle{Color: core.ColorRed})
	})
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(60, 20)
	c.Clear(core.ColorBackground)
	c.DrawText(core.Vec(2, 15, 0), "[]", core.TextStyle{Color: core.ColorRed, Bold: true})

	red := 0
	for y := range 20 {
		for x := range 60 {
			if at(c, x, y) == core.ColorRed {
				red++
				assert.LessOrEqual(t, y, 15+basicfont.Face7x13.Descent, "glyph pixel below descent")
			}
		}
	}
	assert.Positive(t, red)
}

func TestCanvasWritePNG(t *testing.T) {
	c := NewCanvas(6, 4)
	c.Clear(core.ColorGreen)

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf, 3))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 18, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())
	r, g, b, _ := img.At(17, 11).RGBA()
	assert.Equal(t, [3]uint32{0, 0x8080, 0}, [3]uint32{r, g, b})
}
