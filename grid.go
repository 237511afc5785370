package hexdraw

// Grid stores one value per tile of a rectangular map, addressed by odd-row
// offset coordinates and laid out row-major.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid allocates a width x height grid of zero values. Non-positive
// dimensions produce an empty grid.
func NewGrid[T any](width, height int) *Grid[T] {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether o addresses a cell of the grid.
func (g *Grid[T]) InBounds(o Offset) bool {
	return o.Col >= 0 && o.Row >= 0 && o.Col < g.width && o.Row < g.height
}

// Index returns the row-major index of o, or -1 when o is out of bounds.
func (g *Grid[T]) Index(o Offset) int {
	if !g.InBounds(o) {
		return -1
	}
	return o.Row*g.width + o.Col
}

// At returns a pointer to the cell at o, or nil when o is out of bounds.
func (g *Grid[T]) At(o Offset) *T {
	i := g.Index(o)
	if i < 0 {
		return nil
	}
	return &g.cells[i]
}

// AtHex is At for a cube coordinate.
func (g *Grid[T]) AtHex(h Hex) *T {
	return g.At(h.Offset())
}

// Each calls fn for every cell in row-major order. Iteration stops when fn
// returns false.
func (g *Grid[T]) Each(fn func(o Offset, v *T) bool) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if !fn(Offset{Col: col, Row: row}, &g.cells[row*g.width+col]) {
				return
			}
		}
	}
}
