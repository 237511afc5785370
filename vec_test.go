package hexdraw

import (
	"math"
	"testing"
)

func TestVec2_Add(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect Vec2
	}{
		{"zero+zero", V2(0, 0), V2(0, 0), V2(0, 0)},
		{"positive", V2(1, 2), V2(3, 4), V2(4, 6)},
		{"negative", V2(-1, -2), V2(-3, -4), V2(-4, -6)},
		{"mixed", V2(1, -2), V2(-3, 4), V2(-2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Add(tt.w); got != tt.expect {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
			if got := tt.expect.Sub(tt.w); got != tt.v {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.expect, tt.w, got, tt.v)
			}
		})
	}
}

func TestVec2_Products(t *testing.T) {
	v := V2(3, 4)
	w := V2(-2, 0.5)

	if got := v.Dot(w); got != -4 {
		t.Errorf("Dot = %v, want -4", got)
	}
	if got := v.Hadamard(w); got != V2(-6, 2) {
		t.Errorf("Hadamard = %v, want (-6,2)", got)
	}
	if got := v.Mul(2); got != V2(6, 8) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v, want 25", got)
	}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestVec2_Perp(t *testing.T) {
	v := V2(3, 4)
	p := v.Perp()
	if p != V2(-4, 3) {
		t.Errorf("Perp = %v, want (-4,3)", p)
	}
	if d := v.Dot(p); d != 0 {
		t.Errorf("v.Dot(v.Perp()) = %v, want 0", d)
	}
}

func TestVec2_Lerp(t *testing.T) {
	a := V2(0, 10)
	b := V2(10, 20)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != V2(5, 15) {
		t.Errorf("Lerp(0.5) = %v, want (5,15)", got)
	}
}

func TestRoundToInt(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{0.4, 0}, {0.5, 1}, {1.5, 2}, {-0.5, -1}, {-1.5, -2}, {-0.4, 0},
	}
	for _, tt := range tests {
		if got := roundToInt(tt.in); got != tt.want {
			t.Errorf("roundToInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func vecAlmostEqual(a, b Vec2) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}
