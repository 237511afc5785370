package hexdraw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/hexdraw/arena"
	intImage "github.com/gogpu/hexdraw/internal/image"
)

// BytesPerPixel is the size of one packed pixel.
const BytesPerPixel = intImage.BytesPerPixel

// Errors returned by the bitmap constructors.
var (
	// ErrInvalidDimensions is returned for a non-positive width or height.
	ErrInvalidDimensions = errors.New("hexdraw: invalid bitmap dimensions")

	// ErrInvalidPitch is returned when a row pitch is shorter than a row.
	ErrInvalidPitch = errors.New("hexdraw: invalid bitmap pitch")

	// ErrDataTooSmall is returned when raw pixel memory cannot hold the
	// requested rows.
	ErrDataTooSmall = errors.New("hexdraw: bitmap data too small")
)

// Bitmap is a rectangle of packed 0xAARRGGBB pixels stored little-endian,
// rows pitch bytes apart. Colour channels are premultiplied by alpha.
//
// Bitmap is used for textures, sprites and the frame buffer. It implements
// draw.Image, so standard library and x/image drawing code can target it.
type Bitmap struct {
	width  int
	height int
	pitch  int
	pix    []byte
}

// NewBitmap allocates a zeroed (transparent) bitmap with a tight pitch.
// It panics on negative dimensions.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("hexdraw: NewBitmap(%d, %d): negative size", width, height))
	}
	return &Bitmap{
		width:  width,
		height: height,
		pitch:  width * BytesPerPixel,
		pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// NewBitmapWithPitch allocates a zeroed bitmap whose rows are pitch bytes
// apart.
func NewBitmapWithPitch(width, height, pitch int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if pitch < width*BytesPerPixel {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidPitch, pitch, width*BytesPerPixel)
	}
	return &Bitmap{width: width, height: height, pitch: pitch, pix: make([]byte, pitch*height)}, nil
}

// BitmapFromRaw wraps existing pixel memory without copying. The last row
// only needs width*4 bytes.
func BitmapFromRaw(pix []byte, width, height, pitch int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if pitch < width*BytesPerPixel {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidPitch, pitch, width*BytesPerPixel)
	}
	need := pitch*(height-1) + width*BytesPerPixel
	if len(pix) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(pix), need)
	}
	return &Bitmap{width: width, height: height, pitch: pitch, pix: pix}, nil
}

// NewBitmapInArena carves a tightly packed bitmap out of a. The memory is
// not cleared; callers that need a blank surface should Fill it. The
// bitmap is only valid until the enclosing arena scope ends.
func NewBitmapInArena(a *arena.Arena, width, height int) *Bitmap {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("hexdraw: NewBitmapInArena(%d, %d): negative size", width, height))
	}
	return &Bitmap{
		width:  width,
		height: height,
		pitch:  width * BytesPerPixel,
		pix:    a.Alloc(width * height * BytesPerPixel),
	}
}

// BitmapFromImage converts img into a new bitmap with premultiplied
// channels.
func BitmapFromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	bm := NewBitmap(b.Dx(), b.Dy())
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			bm.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return bm
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Pitch returns the distance in bytes between the starts of two rows.
func (b *Bitmap) Pitch() int { return b.pitch }

// Pix returns the underlying pixel memory.
func (b *Bitmap) Pix() []byte { return b.pix }

// Size returns the dimensions as a point.
func (b *Bitmap) Size() image.Point {
	return image.Point{X: b.width, Y: b.height}
}

// Row returns the bytes of row y, excluding pitch padding.
func (b *Bitmap) Row(y int) []byte {
	i := y * b.pitch
	return b.pix[i : i+b.width*BytesPerPixel]
}

func (b *Bitmap) offset(x, y int) int {
	return y*b.pitch + x*BytesPerPixel
}

// Pixel returns the packed pixel at (x, y). Out-of-range reads return 0.
func (b *Bitmap) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return binary.LittleEndian.Uint32(b.pix[b.offset(x, y):])
}

// SetPixel stores a packed pixel. Out-of-range writes are ignored.
func (b *Bitmap) SetPixel(x, y int, p uint32) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	binary.LittleEndian.PutUint32(b.pix[b.offset(x, y):], p)
}

// Fill sets every pixel to p. Row padding is left untouched.
func (b *Bitmap) Fill(p uint32) {
	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		for i := 0; i < len(row); i += BytesPerPixel {
			binary.LittleEndian.PutUint32(row[i:], p)
		}
	}
}

func (b *Bitmap) surface() intImage.Surface {
	return intImage.Surface{Pix: b.pix, Width: b.width, Height: b.height, Pitch: b.pitch}
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	p := b.Pixel(x, y)
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: uint8(p >> 24)}
}

// Set implements the draw.Image interface.
func (b *Bitmap) Set(x, y int, c color.Color) {
	r, g, bl, a := c.RGBA()
	b.SetPixel(x, y, (a>>8)<<24|(r>>8)<<16|(g>>8)<<8|bl>>8)
}

// ToImage copies the bitmap into a new image.RGBA.
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		dst := img.Pix[y*img.Stride:]
		for i := 0; i < len(row); i += BytesPerPixel {
			p := binary.LittleEndian.Uint32(row[i:])
			dst[i+0] = uint8(p >> 16)
			dst[i+1] = uint8(p >> 8)
			dst[i+2] = uint8(p)
			dst[i+3] = uint8(p >> 24)
		}
	}
	return img
}

// EncodePNG writes the bitmap to w as PNG.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToImage())
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
