package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied RGBA color used by every surface.
// It implements color.Color so it can be handed to image and ebiten APIs directly.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors used by the demonstration game.
var (
	ColorBlack      = RGB(0x00, 0x00, 0x00)
	ColorWhite      = RGB(0xff, 0xff, 0xff)
	ColorRed        = RGB(0xff, 0x00, 0x00)
	ColorGreen      = RGB(0x00, 0x80, 0x00)
	ColorBackground = MustParseColor("#EEE")
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex returns the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so colors can be
// written as "#EEE", "#eeeeee" or a CSS name in YAML and TOML configs.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses "#RGB", "#RRGGBB" or a CSS/SVG color name such as "red".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("core: empty color")
	}

	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return Color{}, fmt.Errorf("core: unknown color name %q", s)
		}
		return Color{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		// #RGB expands each digit: #EEE == #EEEEEE
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("core: invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParseColor is like ParseColor but panics on error.
// Intended for package-level defaults.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
