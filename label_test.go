package hexdraw

import (
	"bytes"
	"testing"

	"github.com/gogpu/hexdraw/arena"
)

func TestDrawLabel(t *testing.T) {
	cam := &Camera{Zoom: 10}
	r := NewRenderer(arena.New(256), 256, cam)
	r.PushLabel(Vec2{}, Vec2{}, "Hi", White)

	out := NewBitmap(40, 20)
	r.Flush(out)

	n := 40*20 - countPixels(out, 0)
	if n == 0 {
		t.Fatal("label drew nothing")
	}
	// Glyphs are centred: nothing near the left and right borders.
	for y := 0; y < 20; y++ {
		if out.Pixel(0, y) != 0 || out.Pixel(39, y) != 0 {
			t.Fatalf("label reached the border at row %d", y)
		}
	}
}

func TestDrawLabel_FoldsWideForms(t *testing.T) {
	face := defaultOptions().face

	narrow := NewBitmap(60, 20)
	DrawLabel(narrow, face, V2(30, 10), "A12", White)

	wide := NewBitmap(60, 20)
	DrawLabel(wide, face, V2(30, 10), "Ａ１２", White)

	if !bytes.Equal(narrow.Pix(), wide.Pix()) {
		t.Error("full-width text renders differently from its narrow form")
	}
}

func TestDrawLabel_Empty(t *testing.T) {
	out := NewBitmap(8, 8)
	DrawLabel(out, defaultOptions().face, V2(4, 4), "", White)
	if countPixels(out, 0) != 64 {
		t.Error("empty label drew pixels")
	}
}

func TestGoRegularFace(t *testing.T) {
	face, err := GoRegularFace(14)
	if err != nil {
		t.Fatalf("GoRegularFace: %v", err)
	}
	defer face.Close()

	out := NewBitmap(80, 24)
	DrawLabel(out, face, V2(40, 12), "hex", RGB(1, 1, 0))
	if countPixels(out, 0) == 80*24 {
		t.Error("goregular label drew nothing")
	}
}
