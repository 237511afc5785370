package hexdraw

import "image"

// Camera maps the world plane onto the screen. Position is the world point
// shown at the centre of the viewport and Zoom is pixels per world unit.
// The camera never rotates.
//
// World Y points up and screen Y points down; the projection flips the
// vertical axis.
type Camera struct {
	Position Vec2
	Zoom     float32
}

// WorldToScreen projects p onto a viewport of the given size.
func (c *Camera) WorldToScreen(p Vec2, size image.Point) Vec2 {
	w := float32(size.X)
	h := float32(size.Y)
	s := p.Sub(c.Position).Mul(c.Zoom).Add(Vec2{X: 0.5 * w, Y: 0.5 * h})
	s.Y = h - s.Y
	return s
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(p Vec2, size image.Point) Vec2 {
	w := float32(size.X)
	h := float32(size.Y)
	v := Vec2{X: p.X, Y: h - p.Y}
	v = v.Sub(Vec2{X: 0.5 * w, Y: 0.5 * h})
	return v.Mul(1 / c.Zoom).Add(c.Position)
}

// HexAtScreen returns the tile under pixel (x, y). The pixel is sampled at
// its integer coordinates, the same point DrawHex tests, so a pixel
// painted by a tile hit-tests as that tile.
func (c *Camera) HexAtScreen(x, y int, size image.Point) Hex {
	return HexAt(c.ScreenToWorld(V2i(x, y), size))
}

// VisibleOffsets returns the inclusive offset-coordinate range of tiles
// that may cover part of the viewport. The range carries a one-tile margin
// on every side so partially visible tiles are included.
func (c *Camera) VisibleOffsets(size image.Point) (lo, hi Offset) {
	tl := c.ScreenToWorld(Vec2{}, size)
	br := c.ScreenToWorld(Vec2{X: float32(size.X), Y: float32(size.Y)}, size)

	// Rows are 1.5 units apart and columns sqrt(3).
	lo.Row = floorToInt(br.Y/1.5) - 1
	hi.Row = ceilToInt(tl.Y/1.5) + 1
	lo.Col = floorToInt(tl.X/sqrt3) - 1
	hi.Col = ceilToInt(br.X/sqrt3) + 1
	return lo, hi
}
