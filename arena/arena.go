// Package arena provides a fixed-capacity bump allocator with nestable
// temporary scopes.
//
// An Arena hands out consecutive byte ranges from a single backing slice and
// never frees them individually. Memory is reclaimed in bulk by opening a
// temporary scope with Begin and closing it with End, which rolls the used
// offset back to where it was when the scope opened:
//
//	a := arena.New(1 << 20)
//	tmp := a.Begin()
//	scratch := a.Alloc(4096)
//	// ... use scratch for this frame
//	tmp.End()
//	a.AssertClean()
//
// Running out of space and closing scopes out of order are programming
// errors and panic. An Arena is not safe for concurrent use; scopes must be
// opened and closed on a single goroutine in strict LIFO order.
package arena

import "fmt"

// Arena is a linear allocator over a fixed-size byte region.
type Arena struct {
	buf  []byte
	used int
	peak int

	// open holds the serials of open scopes, innermost last.
	open   []uint64
	serial uint64
}

// New creates an arena backed by a freshly allocated region of capacity bytes.
func New(capacity int) *Arena {
	if capacity < 0 {
		panic(fmt.Sprintf("arena: negative capacity %d", capacity))
	}
	return &Arena{buf: make([]byte, capacity)}
}

// FromBytes creates an arena over an existing region. The arena takes
// ownership of buf; its length is the capacity.
func FromBytes(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// Alloc reserves size bytes and returns them. The returned slice is not
// zeroed: bytes reused after a scope rollback keep their previous contents.
// Alloc panics if the request does not fit in the remaining capacity.
func (a *Arena) Alloc(size int) []byte {
	b, ok := a.TryAlloc(size)
	if !ok {
		panic(fmt.Sprintf("arena: out of memory: requested %d bytes, %d of %d in use", size, a.used, len(a.buf)))
	}
	return b
}

// TryAlloc is like Alloc but reports false instead of panicking when the
// request does not fit.
func (a *Arena) TryAlloc(size int) ([]byte, bool) {
	if size < 0 {
		panic(fmt.Sprintf("arena: negative allocation size %d", size))
	}
	if a.used+size > len(a.buf) {
		return nil, false
	}
	start := a.used
	a.used += size
	if a.used > a.peak {
		a.peak = a.used
	}
	// Cap the slice so appends cannot spill into the next allocation.
	return a.buf[start:a.used:a.used], true
}

// Sub carves a child arena of size bytes out of a. The child's memory stays
// allocated in the parent until the parent's enclosing scope ends.
func (a *Arena) Sub(size int) *Arena {
	return &Arena{buf: a.Alloc(size)}
}

// Len returns the number of bytes currently allocated.
func (a *Arena) Len() int {
	return a.used
}

// Cap returns the arena capacity in bytes.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Remaining returns the number of bytes still available.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.used
}

// Peak returns the high-water mark of allocated bytes. It survives scope
// rollbacks and Reset.
func (a *Arena) Peak() int {
	return a.peak
}

// Scopes returns the number of temporary scopes currently open.
func (a *Arena) Scopes() int {
	return len(a.open)
}

// Reset discards every allocation. It panics if a scope is still open.
func (a *Arena) Reset() {
	if len(a.open) != 0 {
		panic(fmt.Sprintf("arena: reset with %d open scopes", len(a.open)))
	}
	a.used = 0
}

// AssertClean panics if any temporary scope is still open. Call it once per
// frame boundary to catch leaked scopes.
func (a *Arena) AssertClean() {
	if len(a.open) != 0 {
		panic(fmt.Sprintf("arena: %d temporary scopes still open", len(a.open)))
	}
}
