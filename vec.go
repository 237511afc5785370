package hexdraw

import (
	"fmt"
	"math"
)

// Vec2 is a 2D point or displacement. It is used both for world-plane
// positions (one unit per hex outer radius, Y up) and for screen positions
// (pixels, origin top-left, Y down).
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// V2i creates a Vec2 from integer coordinates.
func V2i(x, y int) Vec2 {
	return Vec2{X: float32(x), Y: float32(y)}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Hadamard returns the component-wise product.
func (v Vec2) Hadamard(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Dot returns the inner product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return float32(v.X*w.X) + float32(v.Y*w.Y)
}

// Perp returns v rotated a quarter turn counter-clockwise: (-y, x).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// LengthSq returns the squared length.
func (v Vec2) LengthSq() float32 {
	return v.Dot(v)
}

// Length returns the length.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// Lerp interpolates from v to w: v + (w - v) * t.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{
		X: v.X + float32((w.X-v.X)*t),
		Y: v.Y + float32((w.Y-v.Y)*t),
	}
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}

// roundToInt rounds half away from zero.
func roundToInt(x float32) int {
	return int(math.Round(float64(x)))
}

func floorToInt(x float32) int {
	return int(math.Floor(float64(x)))
}

func ceilToInt(x float32) int {
	return int(math.Ceil(float64(x)))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
