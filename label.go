package hexdraw

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

// GoRegularFace returns the Go Regular font at the given size in points,
// rendered at 72 DPI so that one point is one pixel.
func GoRegularFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("hexdraw: parse goregular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hexdraw: goregular face: %w", err)
	}
	return face, nil
}

// DrawLabel draws text with face so that its bounding box is centred on the
// screen point center. Full-width and other compatibility forms are folded
// to their narrow equivalents first, so ASCII-only faces render them.
func DrawLabel(dst *Bitmap, face font.Face, center Vec2, text string, c Color) {
	text = width.Fold.String(text)
	if text == "" {
		return
	}

	adv := font.MeasureString(face, text)
	m := face.Metrics()
	x := fixed.Int26_6(center.X*64) - adv/2
	y := fixed.Int26_6(center.Y*64) + (m.Ascent-m.Descent)/2

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.Color()),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(text)
}
