package pathpool

import "iter"

// Path is an ergonomic handle pairing one id with the pool that produced
// it. Handles derived from a Path stay bound to the same pool, which keeps
// ids from different pools from meeting by construction. Path is a small
// value type; copying it is free.
type Path[T comparable] struct {
	pool *Pool[T]
	id   PathID
}

// NewPath returns a handle on the root path of pool.
func NewPath[T comparable](pool *Pool[T]) Path[T] {
	return Path[T]{pool: pool, id: Root}
}

// ID returns the underlying PathID.
func (p Path[T]) ID() PathID {
	return p.id
}

// Pool returns the pool the handle is bound to.
func (p Path[T]) Pool() *Pool[T] {
	return p.pool
}

// Child returns the handle for this path extended by tag, interning the
// extension if needed.
func (p Path[T]) Child(tag T) Path[T] {
	return Path[T]{pool: p.pool, id: p.pool.Subnode(p.id, tag)}
}

// Parent returns the handle for the parent path. The root returns itself.
func (p Path[T]) Parent() Path[T] {
	return Path[T]{pool: p.pool, id: p.pool.Parent(p.id)}
}

// Tag returns the tag of this path's final segment.
func (p Path[T]) Tag() T {
	return p.pool.Tag(p.id)
}

// Tags returns the full tag sequence, own tag first, root tag last.
func (p Path[T]) Tags() []T {
	return TagList(p.pool, p.id)
}

// IsRoot reports whether the handle denotes the root path.
func (p Path[T]) IsRoot() bool {
	return p.id == Root
}

// Children returns handles for all children, in the pool's strategy order.
func (p Path[T]) Children() []Path[T] {
	var children []Path[T]

	p.pool.EachSubnode(p.id, func(id PathID) bool {
		children = append(children, Path[T]{pool: p.pool, id: id})

		return true
	})

	return children
}

// Ancestors iterates from this path up to and including the root.
func (p Path[T]) Ancestors() iter.Seq[Path[T]] {
	return func(yield func(Path[T]) bool) {
		id := p.id

		for {
			if !yield(Path[T]{pool: p.pool, id: id}) {
				return
			}

			parent := p.pool.Parent(id)
			if parent == id {
				return
			}

			id = parent
		}
	}
}
