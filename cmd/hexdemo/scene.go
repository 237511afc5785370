package main

import (
	"fmt"

	"github.com/gogpu/hexdraw"
	"github.com/gogpu/hexdraw/arena"
	"github.com/gogpu/hexdraw/asset"
)

var (
	background = hexdraw.RGB(0.05, 0.06, 0.09)
	highlight  = hexdraw.RGBA(1, 1, 1, 0.3)
	labelColor = hexdraw.RGBA(0.1, 0.1, 0.1, 1)
)

// labelZoom is the smallest zoom, in pixels per world unit, at which
// tile coordinates are legible.
const labelZoom = 28

type scene struct {
	world    *hexdraw.Grid[tile]
	textures [numBiomes]*hexdraw.Bitmap
	marker   *hexdraw.Bitmap
	cursor   hexdraw.Hex
	labels   bool
	cmdBytes int
	opts     []hexdraw.Option
}

// loadTextures fills the biome textures from m, one "<biome>.png" per
// biome. Missing files keep the procedural texture.
func (s *scene) loadTextures(m *asset.Manager) error {
	names := make([]string, 0, numBiomes)
	for b := biome(0); b < numBiomes; b++ {
		names = append(names, b.String()+".png")
	}
	err := m.Preload(names...)
	for b := biome(0); b < numBiomes; b++ {
		if tex, err := m.Bitmap(names[b]); err == nil {
			s.textures[b] = tex
		}
	}
	return err
}

// render records one frame into a renderer backed by mem and flushes it to
// out. All frame memory is released before returning.
func (s *scene) render(mem *arena.Arena, cam *hexdraw.Camera, out *hexdraw.Bitmap) (records, dropped int) {
	tmp := mem.Begin()
	r := hexdraw.NewRenderer(mem, s.cmdBytes, cam, s.opts...)

	r.Clear(background)

	lo, hi := cam.VisibleOffsets(out.Size())
	lo.Col, lo.Row = max(lo.Col, 0), max(lo.Row, 0)
	hi.Col, hi.Row = min(hi.Col, s.world.Width()-1), min(hi.Row, s.world.Height()-1)
	for row := lo.Row; row <= hi.Row; row++ {
		for col := lo.Col; col <= hi.Col; col++ {
			o := hexdraw.Offset{Col: col, Row: row}
			t := s.world.At(o)
			tint := tileColor(*t)
			if tex := s.textures[t.biome]; tex != nil {
				// Keep most of the texture, shaded by height.
				tint = tint.WithAlpha(0.35)
				r.PushHex(o.Hex().Center(), hexdraw.Vec2{}, tint, tex)
				continue
			}
			r.PushHex(o.Hex().Center(), hexdraw.Vec2{}, tint, nil)
		}
	}

	for _, h := range hexdraw.HexRange(s.cursor, 1) {
		if s.world.AtHex(h) != nil {
			r.PushHex(h.Center(), hexdraw.Vec2{}, highlight, nil)
		}
	}
	r.PushBitmap(s.cursor.Center(), hexdraw.Vec2{}, s.marker)

	if s.labels && cam.Zoom >= labelZoom {
		for row := lo.Row; row <= hi.Row; row++ {
			for col := lo.Col; col <= hi.Col; col++ {
				o := hexdraw.Offset{Col: col, Row: row}
				r.PushLabel(o.Hex().Center(), hexdraw.V2(0, -0.45), fmt.Sprintf("%d,%d", col, row), labelColor)
			}
		}
	}

	records, dropped = r.Len(), r.Dropped()
	r.Flush(out)
	tmp.End()
	mem.AssertClean()
	return records, dropped
}
