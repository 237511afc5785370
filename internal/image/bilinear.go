// Package image provides texel access on pitched 32-bit pixel memory.
package image

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/hexdraw/internal/blend"
)

// BytesPerPixel is the size of one packed 0xAARRGGBB pixel.
const BytesPerPixel = 4

// Surface is a read-only view of packed pixel memory.
type Surface struct {
	Pix    []byte
	Width  int
	Height int
	Pitch  int
}

// Quad holds the four packed texels around a sample point:
// A at (x, y), B at (x+1, y), C at (x, y+1) and D at (x+1, y+1).
type Quad struct {
	A, B, C, D uint32
}

// Fetch reads the 2x2 texel block whose top-left texel is (x, y).
//
// The block must lie inside the surface, i.e. x in [0, Width-1) and y in
// [0, Height-1). Callers wrap or clamp coordinates beforehand; Fetch panics
// on a violation instead of reading row padding.
func Fetch(s Surface, x, y int) Quad {
	if x < 0 || y < 0 || x >= s.Width-1 || y >= s.Height-1 {
		panic(fmt.Sprintf("image: bilinear sample (%d, %d) outside %dx%d texture", x, y, s.Width, s.Height))
	}
	i := y*s.Pitch + x*BytesPerPixel
	j := i + s.Pitch
	le := binary.LittleEndian
	return Quad{
		A: le.Uint32(s.Pix[i:]),
		B: le.Uint32(s.Pix[i+BytesPerPixel:]),
		C: le.Uint32(s.Pix[j:]),
		D: le.Uint32(s.Pix[j+BytesPerPixel:]),
	}
}

// Blend interpolates the quad horizontally by fx, then the two rows
// vertically by fy. With fx = fy = 0 the result is texel A unchanged.
func (q Quad) Blend(fx, fy float32) blend.Color {
	a := blend.Unpack(q.A)
	b := blend.Unpack(q.B)
	c := blend.Unpack(q.C)
	d := blend.Unpack(q.D)
	return blend.Lerp(blend.Lerp(a, b, fx), blend.Lerp(c, d, fx), fy)
}

// Bilinear samples the surface at continuous texel coordinates (tx, ty),
// both non-negative. The integer parts select the quad; the fractional
// parts weight it.
func Bilinear(s Surface, tx, ty float32) blend.Color {
	x := int(tx)
	y := int(ty)
	return Fetch(s, x, y).Blend(tx-float32(x), ty-float32(y))
}
