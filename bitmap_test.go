package hexdraw

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/hexdraw/arena"
)

func TestNewBitmapWithPitch(t *testing.T) {
	tests := []struct {
		name    string
		w, h, p int
		wantErr error
	}{
		{"tight", 4, 2, 16, nil},
		{"padded", 4, 2, 20, nil},
		{"zero width", 0, 2, 16, ErrInvalidDimensions},
		{"negative height", 4, -1, 16, ErrInvalidDimensions},
		{"short pitch", 4, 2, 12, ErrInvalidPitch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBitmapWithPitch(tt.w, tt.h, tt.p)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && (b.Pitch() != tt.p || len(b.Pix()) != tt.p*tt.h) {
				t.Errorf("pitch %d len %d", b.Pitch(), len(b.Pix()))
			}
		})
	}
}

func TestBitmapFromRaw(t *testing.T) {
	// Last row needs no padding: 2 rows of 3 pixels, pitch 16.
	pix := make([]byte, 16+12)
	b, err := BitmapFromRaw(pix, 3, 2, 16)
	if err != nil {
		t.Fatalf("BitmapFromRaw: %v", err)
	}
	b.SetPixel(2, 1, 0xDEADBEEF)
	if got := b.Pixel(2, 1); got != 0xDEADBEEF {
		t.Errorf("Pixel = %#08x", got)
	}
	// Little-endian: blue byte first.
	if pix[16+8] != 0xEF || pix[16+11] != 0xDE {
		t.Errorf("raw bytes = % x", pix[16+8:16+12])
	}

	if _, err := BitmapFromRaw(pix[:27], 3, 2, 16); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data err = %v, want ErrDataTooSmall", err)
	}
}

func TestBitmap_PixelBounds(t *testing.T) {
	b := NewBitmap(2, 2)
	b.SetPixel(-1, 0, 0xFFFFFFFF)
	b.SetPixel(0, 2, 0xFFFFFFFF)
	for _, v := range b.Pix() {
		if v != 0 {
			t.Fatal("out-of-range SetPixel wrote memory")
		}
	}
	if b.Pixel(5, 5) != 0 {
		t.Error("out-of-range Pixel != 0")
	}
}

func TestBitmap_FillSkipsPadding(t *testing.T) {
	b, _ := NewBitmapWithPitch(2, 2, 12)
	b.Fill(0xFF112233)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if b.Pixel(x, y) != 0xFF112233 {
				t.Errorf("Pixel(%d,%d) = %#08x", x, y, b.Pixel(x, y))
			}
		}
		for _, v := range b.Pix()[y*12+8 : y*12+12] {
			if v != 0 {
				t.Errorf("row %d padding written", y)
			}
		}
	}
}

func TestNewBitmapInArena(t *testing.T) {
	a := arena.New(1024)
	tmp := a.Begin()
	b := NewBitmapInArena(a, 8, 4)
	if a.Len() != 8*4*BytesPerPixel {
		t.Errorf("arena used %d, want %d", a.Len(), 8*4*BytesPerPixel)
	}
	b.Fill(0xFF00FF00)
	if b.Pixel(7, 3) != 0xFF00FF00 {
		t.Error("arena bitmap not writable")
	}
	tmp.End()
	if a.Len() != 0 {
		t.Errorf("arena used %d after End", a.Len())
	}
}

func TestBitmap_ImageInterop(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 128})

	b := BitmapFromImage(src)
	if got := b.Pixel(0, 0); got != 0xFFFF0000 {
		t.Errorf("opaque red = %#08x", got)
	}
	// Premultiplied: green 255 * 128/255 = 128.
	if got := b.Pixel(1, 0); got != 0x80008000 {
		t.Errorf("half green = %#08x, want 0x80008000", got)
	}

	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if _, _, _, a := img.At(1, 0).RGBA(); a>>8 != 128 {
		t.Errorf("decoded alpha = %d, want 128", a>>8)
	}
}

func TestBitmap_SavePNG(t *testing.T) {
	b := NewBitmap(3, 3)
	b.Fill(0xFF0000FF)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
