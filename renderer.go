package hexdraw

import (
	"github.com/gogpu/hexdraw/arena"
)

// Renderer collects draw records for one frame and rasterizes them in push
// order on Flush.
//
// Record storage is carved from an arena when the renderer is created and
// is never grown. A push that does not fit is dropped and counted; the
// buffer contents are left unchanged. Memory is reclaimed by ending the
// arena scope the renderer was created in.
//
// Positions are recorded in world space as a base plus an offset and are
// projected with the camera's state at Flush time, not at push time.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	buf     []byte
	used    int
	records int
	dropped int

	camera  *Camera
	bitmaps []*Bitmap
	labels  []string

	opts options
}

// NewRenderer creates a renderer whose record log occupies maxBytes of a.
// It panics if a cannot supply maxBytes.
func NewRenderer(a *arena.Arena, maxBytes int, camera *Camera, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{
		buf:    a.Alloc(maxBytes),
		camera: camera,
		opts:   o,
	}
	Logger().Debug("renderer created", "capacity", maxBytes, "arena_used", a.Len())
	return r
}

// Camera returns the camera used for projection.
func (r *Renderer) Camera() *Camera { return r.camera }

// Len returns the number of stored records.
func (r *Renderer) Len() int { return r.records }

// Used returns the number of bytes of record storage in use.
func (r *Renderer) Used() int { return r.used }

// Cap returns the record storage capacity in bytes.
func (r *Renderer) Cap() int { return len(r.buf) }

// Dropped returns the number of pushes rejected for lack of space.
func (r *Renderer) Dropped() int { return r.dropped }

// reserve claims size bytes for a record of type t, or reports false and
// counts a drop when the buffer is full.
func (r *Renderer) reserve(t CommandType) (encoder, bool) {
	size := recordSize(t)
	if r.used+size > len(r.buf) {
		r.dropped++
		return encoder{}, false
	}
	e := encoder{b: r.buf[r.used : r.used+size]}
	r.used += size
	r.records++
	e.tag(t)
	return e, true
}

func (r *Renderer) bitmapRef(b *Bitmap) uint32 {
	if b == nil {
		return noRef
	}
	r.bitmaps = append(r.bitmaps, b)
	return uint32(len(r.bitmaps) - 1)
}

// Clear records a fill of the whole target.
func (r *Renderer) Clear(c Color) {
	e, ok := r.reserve(CmdClear)
	if !ok {
		return
	}
	e.color(c)
}

// PushRect records a dim-sized rectangle centred on base+pos.
func (r *Renderer) PushRect(base, pos, dim Vec2, c Color) {
	e, ok := r.reserve(CmdRect)
	if !ok {
		return
	}
	e.vec(base)
	e.vec(pos)
	e.vec(dim)
	e.color(c)
}

// PushHex records the tile centred on base+pos. A nil texture draws a solid
// tile in c; otherwise the texture is drawn and tinted towards c by c.A.
func (r *Renderer) PushHex(base, pos Vec2, c Color, texture *Bitmap) {
	e, ok := r.reserve(CmdHex)
	if !ok {
		return
	}
	e.vec(base)
	e.vec(pos)
	e.color(c)
	e.u32(r.bitmapRef(texture))
}

// PushBitmap records a sprite centred on base+pos. A nil bitmap is ignored.
func (r *Renderer) PushBitmap(base, pos Vec2, b *Bitmap) {
	if b == nil {
		return
	}
	e, ok := r.reserve(CmdBitmap)
	if !ok {
		return
	}
	e.vec(base)
	e.vec(pos)
	e.u32(r.bitmapRef(b))
}

// PushLabel records text centred on base+pos.
func (r *Renderer) PushLabel(base, pos Vec2, text string, c Color) {
	e, ok := r.reserve(CmdLabel)
	if !ok {
		return
	}
	e.vec(base)
	e.vec(pos)
	e.color(c)
	r.labels = append(r.labels, text)
	e.u32(uint32(len(r.labels) - 1))
}

func (r *Renderer) decoder() decoder {
	return decoder{buf: r.buf[:r.used], bitmaps: r.bitmaps, labels: r.labels}
}

// Commands decodes the stored records in push order.
func (r *Renderer) Commands() []Command {
	out := make([]Command, 0, r.records)
	d := r.decoder()
	for cmd, ok := d.next(); ok; cmd, ok = d.next() {
		out = append(out, cmd)
	}
	return out
}

// Flush rasterizes every stored record into out in push order. The records
// stay in the buffer; Flush can be called again.
func (r *Renderer) Flush(out *Bitmap) {
	d := r.decoder()
	for cmd, ok := d.next(); ok; cmd, ok = d.next() {
		r.draw(out, cmd)
	}
	Logger().Debug("flush", "records", r.records, "bytes", r.used, "dropped", r.dropped)
}

// RenderToOutput flushes r into out.
func RenderToOutput(r *Renderer, out *Bitmap) {
	r.Flush(out)
}

func (r *Renderer) draw(out *Bitmap, cmd Command) {
	size := out.Size()
	cam := r.camera

	switch c := cmd.(type) {
	case ClearCommand:
		DrawRect(out, Vec2{}, V2i(size.X, size.Y), c.Color)

	case RectCommand:
		center := cam.WorldToScreen(c.Base.Add(c.Pos), size)
		half := c.Dim.Mul(0.5 * cam.Zoom)
		DrawRect(out, center.Sub(half), center.Add(half), c.Color)

	case HexCommand:
		drawHex(out, cam, c.Base.Add(c.Pos), c.Color, c.Texture, r.opts.texScale)

	case BitmapCommand:
		r.drawSprite(out, c)

	case LabelCommand:
		center := cam.WorldToScreen(c.Base.Add(c.Pos), size)
		DrawLabel(out, r.opts.face, center, c.Text, c.Color)
	}
}

func (r *Renderer) drawSprite(out *Bitmap, c BitmapCommand) {
	b := c.Bitmap
	s := r.camera.Zoom / r.opts.spritePPU
	center := r.camera.WorldToScreen(c.Base.Add(c.Pos), out.Size())
	dim := Vec2{X: s * float32(b.width), Y: s * float32(b.height)}
	origin := center.Sub(dim.Mul(0.5))

	if r.opts.pixelSnap && s == 1 {
		BlitBitmap(out, b, roundToInt(origin.X), roundToInt(origin.Y))
		return
	}
	DrawBitmap(out, b, origin, Vec2{X: dim.X}, Vec2{Y: dim.Y}, White)
}
