package asset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/gogpu/hexdraw"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 200), B: 10, A: 255})
		}
	}
	return img
}

// newFS writes the test image as PNG and BMP under dir/textures and returns
// an overlay rooted at dir.
func newFS(t *testing.T) ofs.FileSystem {
	t.Helper()
	dir := t.TempDir()
	tex := filepath.Join(dir, "textures")
	if err := os.MkdirAll(tex, 0o755); err != nil {
		t.Fatal(err)
	}

	write := func(name string, enc func(f *os.File) error) {
		f, err := os.Create(filepath.Join(tex, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := enc(f); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}
	img := testImage()
	write("grass.png", func(f *os.File) error { return png.Encode(f, img) })
	write("grass.bmp", func(f *os.File) error { return bmp.Encode(f, img) })
	write("broken.png", func(f *os.File) error {
		_, err := f.WriteString("not a png")
		return err
	})

	var ovl ofs.Overlay
	if err := ovl.Add(false, dir); err != nil {
		t.Fatal(err)
	}
	return &ovl
}

func TestManager_Bitmap(t *testing.T) {
	m := NewManager(newFS(t), BitmapPath("textures"))

	for _, name := range []string{"grass.png", "grass.bmp"} {
		t.Run(name, func(t *testing.T) {
			b, err := m.Bitmap(name)
			if err != nil {
				t.Fatalf("Bitmap(%q): %v", name, err)
			}
			if b.Width() != 4 || b.Height() != 2 {
				t.Fatalf("size = %dx%d, want 4x2", b.Width(), b.Height())
			}
			// x=3, y=1: R=180, G=200, B=10, opaque.
			if got := b.Pixel(3, 1); got != 0xFFB4C80A {
				t.Errorf("Pixel(3,1) = %#08x, want 0xffb4c80a", got)
			}
		})
	}
}

func TestManager_Caches(t *testing.T) {
	m := NewManager(newFS(t), BitmapPath("textures"))

	a, err := m.Bitmap("grass.png")
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Bitmap("grass.png")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second lookup returned a different bitmap")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	var s Stats = m.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Capacity != DefaultCacheSize {
		t.Errorf("Stats = %+v, want 1 hit 1 miss", s)
	}

	if !m.Discard("grass.png") {
		t.Error("Discard = false")
	}
	if m.Discard("grass.png") {
		t.Error("second Discard = true")
	}
	c, _ := m.Bitmap("grass.png")
	if c == a {
		t.Error("bitmap not reloaded after Discard")
	}
}

func TestManager_CacheSize(t *testing.T) {
	m := NewManager(newFS(t), BitmapPath("textures"), CacheSize(1))
	if _, err := m.Bitmap("grass.png"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Bitmap("grass.bmp"); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	if s := m.Stats(); s.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", s.Evictions)
	}
}

func TestManager_Errors(t *testing.T) {
	m := NewManager(newFS(t), BitmapPath("textures"))

	_, err := m.Bitmap("missing.png")
	if errors.Cause(err) != ErrNotFound {
		t.Errorf("missing: err = %v, want cause ErrNotFound", err)
	}
	if err != nil && !strings.Contains(err.Error(), "textures/missing.png") {
		t.Errorf("error %q does not name the asset", err)
	}

	_, err = m.Bitmap("broken.png")
	if err == nil || errors.Cause(err) != image.ErrFormat {
		t.Errorf("broken: err = %v, want cause image.ErrFormat", err)
	}
	if m.Len() != 0 {
		t.Errorf("failed loads cached: Len = %d", m.Len())
	}
}

func TestManager_Preload(t *testing.T) {
	m := NewManager(newFS(t), BitmapPath("textures"))

	if err := m.Preload("grass.png", "grass.bmp"); err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}

	err := m.Preload("grass.png", "missing.png", "broken.png")
	list, ok := err.(errorList)
	if !ok {
		t.Fatalf("Preload error %T, want errorList", err)
	}
	if len(list) != 2 || list["missing.png"] == nil || list["broken.png"] == nil {
		t.Errorf("Preload errors = %v", list)
	}
	if !strings.HasPrefix(err.Error(), "broken.png: ") {
		t.Errorf("errors not sorted by name: %q", err.Error())
	}
}

// slowFS delays every Open and records how many were in progress at once.
type slowFS struct {
	ofs.FileSystem
	delay time.Duration

	mu       sync.Mutex
	cur, max int
}

func (fs *slowFS) Open(name string) (ofs.File, error) {
	fs.mu.Lock()
	fs.cur++
	fs.max = max(fs.max, fs.cur)
	fs.mu.Unlock()

	time.Sleep(fs.delay)

	fs.mu.Lock()
	fs.cur--
	fs.mu.Unlock()
	return fs.FileSystem.Open(name)
}

func TestManager_PreloadParallel(t *testing.T) {
	fs := &slowFS{FileSystem: newFS(t), delay: 30 * time.Millisecond}
	m := NewManager(fs, BitmapPath("textures"))

	// Missing files go through Open too and count toward the overlap.
	err := m.Preload("grass.png", "grass.bmp", "a.png", "b.png", "c.png", "d.png")
	if list, ok := err.(errorList); !ok || len(list) != 4 {
		t.Fatalf("Preload error = %v, want 4 missing", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
	if fs.max < 2 {
		t.Errorf("at most %d Open in flight, want loads to overlap", fs.max)
	}
}

func TestManager_SameBitmapLoadsOnce(t *testing.T) {
	fs := &slowFS{FileSystem: newFS(t), delay: 20 * time.Millisecond}
	m := NewManager(fs, BitmapPath("textures"))

	var wg sync.WaitGroup
	got := make([]*hexdraw.Bitmap, 6)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = m.Bitmap("grass.png")
		}(i)
	}
	wg.Wait()

	for i, b := range got {
		if b == nil || b != got[0] {
			t.Fatalf("caller %d got %p, want shared %p", i, b, got[0])
		}
	}
	if s := m.Stats(); s.Misses != 1 {
		t.Errorf("Misses = %d, want a single load", s.Misses)
	}
}
