package hexdraw

import "testing"

func TestGrid(t *testing.T) {
	g := NewGrid[int](4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}

	tests := []struct {
		o    Offset
		want int
	}{
		{Offset{0, 0}, 0},
		{Offset{3, 0}, 3},
		{Offset{0, 1}, 4},
		{Offset{3, 2}, 11},
		{Offset{4, 0}, -1},
		{Offset{0, 3}, -1},
		{Offset{-1, 1}, -1},
	}
	for _, tt := range tests {
		if got := g.Index(tt.o); got != tt.want {
			t.Errorf("Index(%v) = %d, want %d", tt.o, got, tt.want)
		}
		if (g.At(tt.o) != nil) != (tt.want >= 0) {
			t.Errorf("At(%v) nil mismatch", tt.o)
		}
	}

	*g.At(Offset{Col: 2, Row: 1}) = 42
	if got := *g.AtHex(HexFromOffset(Offset{Col: 2, Row: 1})); got != 42 {
		t.Errorf("AtHex = %d, want 42", got)
	}
}

func TestGrid_Each(t *testing.T) {
	g := NewGrid[Offset](3, 2)
	g.Each(func(o Offset, v *Offset) bool {
		*v = o
		return true
	})

	var visited []Offset
	g.Each(func(o Offset, v *Offset) bool {
		if *v != o {
			t.Errorf("cell %v holds %v", o, *v)
		}
		visited = append(visited, o)
		return len(visited) < 4
	})
	if len(visited) != 4 {
		t.Errorf("Each visited %d cells after stop, want 4", len(visited))
	}
	if visited[3] != (Offset{Col: 0, Row: 1}) {
		t.Errorf("row-major order broken: 4th cell = %v", visited[3])
	}
}

func TestGrid_Empty(t *testing.T) {
	g := NewGrid[byte](-1, 5)
	if g.Width() != 0 || g.Height() != 0 || g.InBounds(Offset{}) {
		t.Errorf("negative size grid not empty: %dx%d", g.Width(), g.Height())
	}
}
