package hexdraw

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/hexdraw/internal/blend"
)

// Color is a straight-alpha colour with float32 components in [0, 1].
//
// The rasterizer works on a 0-255 channel scale; Color converts at the
// boundary. Packed pixels use the 0xAARRGGBB layout.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque colour.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a colour from all four components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colours.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// ParseColor parses "#rgb" or "#rrggbb" into an opaque colour.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("hexdraw: parse colour %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a go-colorful colour to an opaque Color, clamping
// out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return RGB(float32(c.R), float32(c.G), float32(c.B))
}

// FromColor converts a standard library colour.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// Pack returns the 0xAARRGGBB word for c, clamping each channel to [0, 1]
// and rounding to the nearest integer after scaling to 255. Channels are
// not premultiplied.
func (c Color) Pack() uint32 {
	return uint32(clampByte(c.A*255))<<24 |
		uint32(clampByte(c.R*255))<<16 |
		uint32(clampByte(c.G*255))<<8 |
		uint32(clampByte(c.B*255))
}

// Premultiply returns c with RGB multiplied by alpha.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Color implements conversion to color.Color.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: clampByte(c.R * 255),
		G: clampByte(c.G * 255),
		B: clampByte(c.B * 255),
		A: clampByte(c.A * 255),
	}
}

// scaled returns c on the 0-255 channel scale used by the blender, with
// every channel clamped to that range.
func (c Color) scaled() blend.Color {
	return blend.Color{
		R: clamp32(c.R*255, 0, 255),
		G: clamp32(c.G*255, 0, 255),
		B: clamp32(c.B*255, 0, 255),
		A: clamp32(c.A*255, 0, 255),
	}
}

// unit returns c unchanged as a blend colour (used as a multiplier).
func (c Color) unit() blend.Color {
	return blend.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func clampByte(x float32) uint8 {
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	}
	return uint8(x + 0.5)
}
