// Package asset loads bitmaps for the renderer from an overlay file system
// and keeps them in a bounded cache.
//
// Supported formats are PNG, JPEG and BMP. Decoded images are converted to
// premultiplied hexdraw bitmaps, ready to be used as tile textures or
// sprites.
package asset

import (
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp" // register decoder

	"github.com/gogpu/hexdraw"
	"github.com/gogpu/hexdraw/internal/cache"
)

// ErrNotFound is the cause of errors reported for assets missing from the
// file system. Test with errors.Cause(err) == ErrNotFound.
var ErrNotFound = errors.New("asset not found")

// DefaultCacheSize is the number of bitmaps a Manager keeps by default.
const DefaultCacheSize = 64

// Stats reports cache occupancy, hits, misses and evictions.
type Stats = cache.Stats

// errorList collects per-asset errors from Preload.
type errorList map[string]error

func (e errorList) Error() string {
	names := make([]string, 0, len(e))
	for k := range e {
		names = append(names, k)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, k := range names {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(e[k].Error())
	}
	return sb.String()
}

// A Manager loads and caches bitmaps. Bitmaps returned by a Manager belong
// to it; callers must not modify them.
//
// Manager is safe for concurrent use.
type Manager struct {
	fs    ofs.FileSystem
	cfg   config
	cache *cache.Cache[string, *hexdraw.Bitmap]
}

type config struct {
	bitmapPath string
	cacheSize  int
}

// Option is implemented by option functions passed as arguments to NewManager.
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

// BitmapPath returns an Option that sets the directory bitmap names are
// relative to.
func BitmapPath(dir string) Option {
	return cfn(func(cfg *config) {
		cfg.bitmapPath = dir
	})
}

// CacheSize returns an Option that sets how many bitmaps are kept. The
// least recently used bitmap is evicted first. 0 means unlimited.
func CacheSize(n int) Option {
	return cfn(func(cfg *config) {
		if n >= 0 {
			cfg.cacheSize = n
		}
	})
}

// NewManager returns a new asset Manager reading from fs.
func NewManager(fs ofs.FileSystem, options ...Option) *Manager {
	cfg := config{cacheSize: DefaultCacheSize}
	for _, o := range options {
		o.set(&cfg)
	}
	m := &Manager{
		fs:    fs,
		cfg:   cfg,
		cache: cache.New[string, *hexdraw.Bitmap](cfg.cacheSize),
	}
	m.cache.OnEvict(func(name string, _ *hexdraw.Bitmap) {
		hexdraw.Logger().Debug("asset evicted", "name", name)
	})
	return m
}

func (m *Manager) path(name string) string {
	return path.Join(m.cfg.bitmapPath, name)
}

// Bitmap returns the named bitmap, loading it on first use.
func (m *Manager) Bitmap(name string) (*hexdraw.Bitmap, error) {
	p := m.path(name)
	return m.cache.GetOrLoad(p, func() (*hexdraw.Bitmap, error) {
		return loadBitmap(m.fs, p)
	})
}

// Preload loads the named bitmaps concurrently. It returns nil or an error
// listing every bitmap that failed to load.
func (m *Manager) Preload(names ...string) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs = make(errorList)
	)
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if _, err := m.Bitmap(name); err != nil {
				mu.Lock()
				errs[name] = err
				mu.Unlock()
			}
		}(name)
	}
	wg.Wait()
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Discard removes the named bitmap from the cache and reports whether it
// was cached.
func (m *Manager) Discard(name string) bool {
	return m.cache.Delete(m.path(name))
}

// Len returns the number of cached bitmaps.
func (m *Manager) Len() int {
	return m.cache.Len()
}

// Stats returns cache statistics.
func (m *Manager) Stats() Stats {
	return m.cache.Stats()
}

func loadBitmap(fs ofs.FileSystem, name string) (*hexdraw.Bitmap, error) {
	r, err := fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, name)
		}
		return nil, errors.Wrapf(err, "open %s", name)
	}
	img, format, err := image.Decode(r)
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}

	b := hexdraw.BitmapFromImage(img)
	hexdraw.Logger().Debug("asset loaded", "name", name, "format", format,
		"width", b.Width(), "height", b.Height())
	return b, nil
}
