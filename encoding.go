package hexdraw

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encoded record layout: a one-byte CommandType followed by the fields in
// declaration order, little-endian. Vectors are two float32, colours four.
// Bitmaps and strings are stored in side tables and referenced by a uint32
// index; noRef marks an absent texture.
const (
	vecSize   = 8
	colorSize = 16
	refSize   = 4

	clearSize  = 1 + colorSize
	rectSize   = 1 + 3*vecSize + colorSize
	hexSize    = 1 + 2*vecSize + colorSize + refSize
	bitmapSize = 1 + 2*vecSize + refSize
	labelSize  = 1 + 2*vecSize + colorSize + refSize
)

const noRef = math.MaxUint32

// recordSize returns the encoded size of a record of type t.
func recordSize(t CommandType) int {
	switch t {
	case CmdClear:
		return clearSize
	case CmdRect:
		return rectSize
	case CmdHex:
		return hexSize
	case CmdBitmap:
		return bitmapSize
	case CmdLabel:
		return labelSize
	}
	return 0
}

// encoder writes fields sequentially into a reserved record.
type encoder struct {
	b []byte
	n int
}

func (e *encoder) tag(t CommandType) {
	e.b[e.n] = byte(t)
	e.n++
}

func (e *encoder) u32(v uint32) {
	binary.LittleEndian.PutUint32(e.b[e.n:], v)
	e.n += 4
}

func (e *encoder) f32(v float32) {
	e.u32(math.Float32bits(v))
}

func (e *encoder) vec(v Vec2) {
	e.f32(v.X)
	e.f32(v.Y)
}

func (e *encoder) color(c Color) {
	e.f32(c.R)
	e.f32(c.G)
	e.f32(c.B)
	e.f32(c.A)
}

// decoder walks an encoded record log in push order.
//
//	d := decoder{buf: r.buf[:r.used], bitmaps: r.bitmaps, labels: r.labels}
//	for cmd, ok := d.next(); ok; cmd, ok = d.next() {
//	    ...
//	}
type decoder struct {
	buf     []byte
	pos     int
	bitmaps []*Bitmap
	labels  []string
}

func (d *decoder) u32() uint32 {
	v := binary.LittleEndian.Uint32(d.buf[d.pos:])
	d.pos += 4
	return v
}

func (d *decoder) f32() float32 {
	return math.Float32frombits(d.u32())
}

func (d *decoder) vec() Vec2 {
	x := d.f32()
	return Vec2{X: x, Y: d.f32()}
}

func (d *decoder) color() Color {
	var c Color
	c.R = d.f32()
	c.G = d.f32()
	c.B = d.f32()
	c.A = d.f32()
	return c
}

func (d *decoder) bitmap() *Bitmap {
	ref := d.u32()
	if ref == noRef {
		return nil
	}
	return d.bitmaps[ref]
}

// next decodes the record at the current position. It reports false at the
// end of the log and panics on a corrupt tag.
func (d *decoder) next() (Command, bool) {
	if d.pos >= len(d.buf) {
		return nil, false
	}
	t := CommandType(d.buf[d.pos])
	if recordSize(t) == 0 {
		panic(fmt.Sprintf("hexdraw: unknown record type %d at offset %d", t, d.pos))
	}
	d.pos++

	switch t {
	case CmdClear:
		return ClearCommand{Color: d.color()}, true
	case CmdRect:
		var c RectCommand
		c.Base = d.vec()
		c.Pos = d.vec()
		c.Dim = d.vec()
		c.Color = d.color()
		return c, true
	case CmdHex:
		var c HexCommand
		c.Base = d.vec()
		c.Pos = d.vec()
		c.Color = d.color()
		c.Texture = d.bitmap()
		return c, true
	case CmdBitmap:
		var c BitmapCommand
		c.Base = d.vec()
		c.Pos = d.vec()
		c.Bitmap = d.bitmap()
		return c, true
	default: // CmdLabel
		var c LabelCommand
		c.Base = d.vec()
		c.Pos = d.vec()
		c.Color = d.color()
		c.Text = d.labels[d.u32()]
		return c, true
	}
}
