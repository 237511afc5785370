package arena

import "fmt"

// Temp is a checkpoint on an Arena. Ending it rolls every allocation made
// since Begin back in one step.
type Temp struct {
	a      *Arena
	used   int
	depth  int
	serial uint64
}

// Begin opens a temporary scope at the current allocation offset.
func (a *Arena) Begin() Temp {
	a.serial++
	a.open = append(a.open, a.serial)
	return Temp{a: a, used: a.used, depth: len(a.open), serial: a.serial}
}

// End closes the scope and restores the arena's used offset to the value it
// had when the scope was opened. End panics if the scope is not the
// innermost open scope, or if it was already ended.
func (t Temp) End() {
	a := t.a
	if a == nil {
		panic("arena: End on zero Temp")
	}
	n := len(a.open)
	if t.depth != n {
		panic(fmt.Sprintf("arena: scope %d ended out of order (%d open)", t.depth, n))
	}
	// Same depth but a different scope: t was ended before and a newer
	// scope has taken its place.
	if a.open[n-1] != t.serial {
		panic(fmt.Sprintf("arena: scope %d ended twice", t.depth))
	}
	if t.used > a.used {
		panic("arena: scope checkpoint beyond used offset")
	}
	a.used = t.used
	a.open = a.open[:n-1]
}

// Arena returns the arena owning the scope.
func (t Temp) Arena() *Arena {
	return t.a
}
