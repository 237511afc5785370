package hexdraw

import (
	"fmt"
	"math"
)

const (
	sqrt3     = 1.7320508075688772
	halfSqrt3 = sqrt3 / 2
)

// Hex is a tile address in cube coordinates. Valid values satisfy
// Q + R + S == 0.
type Hex struct {
	Q, R, S int
}

// HexF is a fractional cube coordinate, the result of converting an
// arbitrary world point before rounding.
type HexF struct {
	Q, R, S float32
}

// Offset is a tile address in odd-row offset coordinates: odd rows are
// shifted half a tile to the right.
type Offset struct {
	Col, Row int
}

// NewHex returns the cube coordinate (q, r, -q-r).
func NewHex(q, r int) Hex {
	return Hex{Q: q, R: r, S: -q - r}
}

// HexFromOffset converts an odd-row offset coordinate to cube coordinates.
func HexFromOffset(o Offset) Hex {
	q := o.Col - (o.Row-(o.Row&1))/2
	r := o.Row
	return Hex{Q: q, R: r, S: -q - r}
}

// Offset converts h to odd-row offset coordinates.
func (h Hex) Offset() Offset {
	return Offset{Col: h.Q + (h.R-(h.R&1))/2, Row: h.R}
}

// Hex converts o to cube coordinates.
func (o Offset) Hex() Hex {
	return HexFromOffset(o)
}

// Valid reports whether the cube constraint holds.
func (h Hex) Valid() bool {
	return h.Q+h.R+h.S == 0
}

// Center returns the world position of the tile centre. The world unit is
// the outer radius of a tile.
func (h Hex) Center() Vec2 {
	q := float32(h.Q)
	r := float32(h.R)
	return Vec2{
		X: float32(sqrt3*q) + float32(halfSqrt3*r),
		Y: 1.5 * r,
	}
}

// Corners returns the six corner points of the tile in world space,
// counter-clockwise starting at the lower right.
func (h Hex) Corners() [6]Vec2 {
	c := h.Center()
	var out [6]Vec2
	for i := range out {
		a := math.Pi / 180 * float64(60*i-30)
		out[i] = Vec2{
			X: c.X + float32(math.Cos(a)),
			Y: c.Y + float32(math.Sin(a)),
		}
	}
	return out
}

// HexAt returns the tile containing the world point p.
func HexAt(p Vec2) Hex {
	q := float32(sqrt3/3*p.X) - p.Y/3
	r := 2 * p.Y / 3
	return HexF{Q: q, R: r, S: -q - r}.Round()
}

// Round snaps a fractional coordinate to the nearest tile. Each axis is
// rounded independently and the axis with the largest rounding error is
// recomputed from the other two. Ties favour recomputing q, then r.
func (f HexF) Round() Hex {
	q := roundToInt(f.Q)
	r := roundToInt(f.R)
	s := roundToInt(f.S)

	dq := abs32(float32(q) - f.Q)
	dr := abs32(float32(r) - f.R)
	ds := abs32(float32(s) - f.S)

	switch {
	case dq >= dr && dq >= ds:
		q = -r - s
	case dr >= ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Hex{Q: q, R: r, S: s}
}

// Add returns the component-wise sum.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R, S: h.S + o.S}
}

// Sub returns the component-wise difference.
func (h Hex) Sub(o Hex) Hex {
	return Hex{Q: h.Q - o.Q, R: h.R - o.R, S: h.S - o.S}
}

// Scale multiplies every component by k.
func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k, S: h.S * k}
}

// HexDistance returns the number of steps between a and b.
func HexDistance(a, b Hex) int {
	d := a.Sub(b)
	return max(absInt(d.Q), absInt(d.R), absInt(d.S))
}

// Distance returns the number of steps from h to o.
func (h Hex) Distance(o Hex) int {
	return HexDistance(h, o)
}

// Direction names one of the six neighbours of a pointy-top tile.
type Direction uint8

// Directions, counter-clockwise starting east.
const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

var directionNames = [...]string{"East", "NorthEast", "NorthWest", "West", "SouthWest", "SouthEast"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// World Y points up, so north is +r.
var directions = [6]Hex{
	{Q: 1, R: 0, S: -1},
	{Q: 0, R: 1, S: -1},
	{Q: -1, R: 1, S: 0},
	{Q: -1, R: 0, S: 1},
	{Q: 0, R: -1, S: 1},
	{Q: 1, R: -1, S: 0},
}

// Neighbor returns the adjacent tile in direction d.
func (h Hex) Neighbor(d Direction) Hex {
	return h.Add(directions[d%6])
}

// Neighbors returns all six adjacent tiles in Direction order.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range directions {
		out[i] = h.Add(d)
	}
	return out
}

// HexRange returns every tile within radius steps of center, center
// included. A negative radius yields no tiles.
func HexRange(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	out := make([]Hex, 0, 3*radius*(radius+1)+1)
	for q := -radius; q <= radius; q++ {
		lo := max(-radius, -q-radius)
		hi := min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			out = append(out, center.Add(NewHex(q, r)))
		}
	}
	return out
}

// String implements fmt.Stringer.
func (h Hex) String() string {
	return fmt.Sprintf("Hex(%d,%d,%d)", h.Q, h.R, h.S)
}

// String implements fmt.Stringer.
func (o Offset) String() string {
	return fmt.Sprintf("Offset(%d,%d)", o.Col, o.Row)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
