// Package blend implements the per-pixel colour arithmetic used by the
// rasterizer.
//
// Channels are float32 on a 0-255 scale. Packed pixels are 32-bit words laid
// out as alpha in the high byte followed by red, green and blue:
//
//	0xAARRGGBB
//
// Compositing is source-over on premultiplied colour:
//
//	result = src + dst * (1 - src.A/255)
//
// Products that feed an addition are converted explicitly to float32 so the
// compiler cannot fuse them into FMA instructions; results then match
// bit-for-bit across architectures.
package blend

// Color is a colour with float channels on a 0-255 scale.
type Color struct {
	R, G, B, A float32
}

// Unpack splits a packed 0xAARRGGBB pixel into float channels.
func Unpack(p uint32) Color {
	return Color{
		R: float32((p >> 16) & 0xFF),
		G: float32((p >> 8) & 0xFF),
		B: float32(p & 0xFF),
		A: float32((p >> 24) & 0xFF),
	}
}

// Pack rounds each channel (add 0.5, truncate) and packs the result into
// a 0xAARRGGBB word. Channels must already be in [0, 255].
func Pack(c Color) uint32 {
	return uint32(c.A+0.5)<<24 |
		uint32(c.R+0.5)<<16 |
		uint32(c.G+0.5)<<8 |
		uint32(c.B+0.5)
}

// Add returns the channel-wise sum.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Sub returns the channel-wise difference.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B, c.A - o.A}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Hadamard returns the channel-wise product.
func (c Color) Hadamard(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Lerp interpolates from a to b: a + (b - a) * t.
func Lerp(a, b Color, t float32) Color {
	return Color{
		R: a.R + float32((b.R-a.R)*t),
		G: a.G + float32((b.G-a.G)*t),
		B: a.B + float32((b.B-a.B)*t),
		A: a.A + float32((b.A-a.A)*t),
	}
}

// SourceOver composites premultiplied src over dst.
func SourceOver(src, dst Color) Color {
	inv := 1 - src.A/255
	return Color{
		R: float32(inv*dst.R) + src.R,
		G: float32(inv*dst.G) + src.G,
		B: float32(inv*dst.B) + src.B,
		A: float32(inv*dst.A) + src.A,
	}
}

// OverPacked composites src over the packed destination pixel and returns
// the packed result.
func OverPacked(src Color, dst uint32) uint32 {
	return Pack(SourceOver(src, Unpack(dst)))
}
