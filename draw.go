package hexdraw

import (
	"math"

	"github.com/gogpu/hexdraw/internal/blend"
	intImage "github.com/gogpu/hexdraw/internal/image"
)

// DrawRect fills the rectangle [lo, hi) of dst with c, overwriting the
// destination. Corners are rounded to the nearest pixel and clipped to the
// bitmap. The colour is stored as given, without premultiplication.
func DrawRect(dst *Bitmap, lo, hi Vec2, c Color) {
	x0 := clampInt(roundToInt(lo.X), 0, dst.width)
	y0 := clampInt(roundToInt(lo.Y), 0, dst.height)
	x1 := clampInt(roundToInt(hi.X), 0, dst.width)
	y1 := clampInt(roundToInt(hi.Y), 0, dst.height)

	p := c.Pack()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetPixel(x, y, p)
		}
	}
}

// DrawHex fills the tile centred on the world point center, with the
// default texture repeat of two world units.
//
// Without a texture the tile is composited in tint. With a texture, each
// pixel samples the texture at its world position so adjacent tiles tile
// seamlessly; when tint.A > 0 the texel is blended towards tint by tint.A
// before compositing.
func DrawHex(dst *Bitmap, cam *Camera, center Vec2, tint Color, tex *Bitmap) {
	drawHex(dst, cam, center, tint, tex, 0.5)
}

func drawHex(dst *Bitmap, cam *Camera, center Vec2, tint Color, tex *Bitmap, texScale float32) {
	zoom := cam.Zoom
	if zoom <= 0 {
		return
	}
	if tex != nil && (tex.width < 2 || tex.height < 2) {
		return
	}
	size := dst.Size()
	sc := cam.WorldToScreen(center, size)

	x0 := clampInt(roundToInt(sc.X-halfSqrt3*zoom), 0, dst.width)
	x1 := clampInt(roundToInt(sc.X+halfSqrt3*zoom), 0, dst.width)
	y0 := clampInt(roundToInt(sc.Y-zoom), 0, dst.height)
	y1 := clampInt(roundToInt(sc.Y+zoom), 0, dst.height)

	// Inside the bounding box, the hexagon is the diamond
	// v*|dx| + h*|dy| <= 2*v*h.
	v := 0.5 * zoom
	h := halfSqrt3 * zoom
	vh2 := 2 * v * h

	fill := tint.Premultiply().scaled()
	tintScaled := tint.scaled()
	var surf intImage.Surface
	if tex != nil {
		surf = tex.surface()
	}

	for y := y0; y < y1; y++ {
		dy := abs32(float32(y) - sc.Y)
		for x := x0; x < x1; x++ {
			dx := abs32(float32(x) - sc.X)
			if vh2-float32(v*dx)-float32(h*dy) < 0 {
				continue
			}

			src := fill
			if tex != nil {
				w := cam.ScreenToWorld(V2i(x, y), size)
				src = sampleWrapped(surf, texScale*-w.Y, texScale*w.X)
				if tint.A > 0 {
					src = blend.Lerp(src, tintScaled, tint.A)
				}
			}
			dst.SetPixel(x, y, blend.OverPacked(src, dst.Pixel(x, y)))
		}
	}
}

// sampleWrapped samples s bilinearly at (u, v) taken modulo 1.
func sampleWrapped(s intImage.Surface, u, v float32) blend.Color {
	u = wrapUnit(u)
	v = wrapUnit(v)
	tx := u * float32(s.Width-1)
	ty := v * float32(s.Height-1)

	xi := min(int(tx), s.Width-2)
	yi := min(int(ty), s.Height-2)
	return intImage.Fetch(s, xi, yi).Blend(tx-float32(xi), ty-float32(yi))
}

// wrapUnit returns the fractional part of x in [0, 1).
func wrapUnit(x float32) float32 {
	f := x - float32(math.Floor(float64(x)))
	if f >= 1 {
		// A tiny negative x rounds up to exactly 1.
		f = 0
	}
	return f
}

// SampleBilinear returns the four packed texels around (x, y): (x, y),
// (x+1, y), (x, y+1) and (x+1, y+1). It panics unless x < Width-1 and
// y < Height-1.
func SampleBilinear(tex *Bitmap, x, y int) [4]uint32 {
	q := intImage.Fetch(tex.surface(), x, y)
	return [4]uint32{q.A, q.B, q.C, q.D}
}

// BilinearBlend interpolates four texels returned by SampleBilinear with
// weights fx and fy in [0, 1] and returns the packed result.
func BilinearBlend(texels [4]uint32, fx, fy float32) uint32 {
	q := intImage.Quad{A: texels[0], B: texels[1], C: texels[2], D: texels[3]}
	return blend.Pack(q.Blend(fx, fy))
}

// BlitBitmap composites src onto dst with its top-left corner at (x, y),
// one source pixel per destination pixel. The parts of src outside dst are
// clipped.
func BlitBitmap(dst, src *Bitmap, x, y int) {
	sx0 := max(0, -x)
	sy0 := max(0, -y)
	sx1 := min(src.width, dst.width-x)
	sy1 := min(src.height, dst.height-y)

	for sy := sy0; sy < sy1; sy++ {
		for sx := sx0; sx < sx1; sx++ {
			s := blend.Unpack(src.Pixel(sx, sy))
			dx, dy := x+sx, y+sy
			dst.SetPixel(dx, dy, blend.OverPacked(s, dst.Pixel(dx, dy)))
		}
	}
}

// DrawBitmap composites src onto the parallelogram of dst spanned by
// xAxis and yAxis from origin. Source texels are sampled bilinearly,
// multiplied by the premultiplied tint and composited source-over.
//
// A pixel is covered when it lies strictly inside all four edges. Bitmaps
// smaller than 2x2 and degenerate axes draw nothing.
func DrawBitmap(dst, src *Bitmap, origin, xAxis, yAxis Vec2, tint Color) {
	if src.width < 2 || src.height < 2 || dst.width == 0 || dst.height == 0 {
		return
	}
	xLen2 := xAxis.LengthSq()
	yLen2 := yAxis.LengthSq()
	if xLen2 == 0 || yLen2 == 0 {
		return
	}
	invX := 1 / xLen2
	invY := 1 / yLen2

	mul := tint.Premultiply().unit()

	corners := [4]Vec2{origin, origin.Add(xAxis), origin.Add(yAxis), origin.Add(xAxis).Add(yAxis)}
	lo, hi := corners[0], corners[0]
	for _, p := range corners[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	x0 := clampInt(floorToInt(lo.X), 0, dst.width-1)
	y0 := clampInt(floorToInt(lo.Y), 0, dst.height-1)
	x1 := clampInt(ceilToInt(hi.X), 0, dst.width-1)
	y1 := clampInt(ceilToInt(hi.Y), 0, dst.height-1)

	nx := xAxis.Perp()
	ny := yAxis.Perp()
	surf := src.surface()
	tw := float32(src.width - 2)
	th := float32(src.height - 2)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := V2i(x, y).Sub(origin)

			e0 := d.Dot(nx.Neg())
			e1 := d.Sub(xAxis).Dot(ny.Neg())
			e2 := d.Sub(xAxis).Sub(yAxis).Dot(nx)
			e3 := d.Sub(yAxis).Dot(ny)
			if e0 >= 0 || e1 >= 0 || e2 >= 0 || e3 >= 0 {
				continue
			}

			u := d.Dot(xAxis) * invX
			v := d.Dot(yAxis) * invY
			tx := clamp32(u*tw, 0, tw)
			ty := clamp32(v*th, 0, th)

			texel := intImage.Bilinear(surf, tx, ty).Hadamard(mul)
			dst.SetPixel(x, y, blend.OverPacked(texel, dst.Pixel(x, y)))
		}
	}
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
