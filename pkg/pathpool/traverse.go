package pathpool

// TagList reconstructs the full tag sequence of id by walking parent links.
// The result is ordered from the queried path's own tag back to the root's
// tag, which is always the final element. Cost is O(depth).
func TagList[T comparable](pool *Pool[T], id PathID) []T {
	tags := make([]T, 0, 8)

	for {
		tags = append(tags, pool.Tag(id))

		parent := pool.Parent(id)
		if parent == id {
			return tags
		}

		id = parent
	}
}

// Depth returns the number of edges between id and the root. The root has
// depth 0.
func Depth[T comparable](pool *Pool[T], id PathID) int {
	depth := 0

	for {
		parent := pool.Parent(id)
		if parent == id {
			return depth
		}

		id = parent
		depth++
	}
}

// Branch is the result of CommonPath. Common is the lowest common ancestor
// of the two queried paths. Left and Right are the ancestors of the first
// and second path that are immediate children of Common, or the queried
// path itself on a side where it equals Common (one path being an ancestor
// of the other, or the two paths coinciding).
type Branch struct {
	Common PathID
	Left   PathID
	Right  PathID
}

// CommonPath computes the lowest common ancestor of a and b together with
// the branch id on each side. Both ids must belong to pool; mixing pools is
// a caller error the core does not detect.
//
// The deeper path is first lifted to the shallower one's depth, then both
// walk upward in lock step until they coincide. Cost is
// O(Depth(a) + Depth(b)).
func CommonPath[T comparable](pool *Pool[T], a, b PathID) Branch {
	left, right := a, b
	depthA, depthB := Depth(pool, a), Depth(pool, b)

	for depthA > depthB {
		left = a
		a = pool.Parent(a)
		depthA--
	}

	for depthB > depthA {
		right = b
		b = pool.Parent(b)
		depthB--
	}

	for a != b {
		left, right = a, b
		a, b = pool.Parent(a), pool.Parent(b)
	}

	return Branch{Common: a, Left: left, Right: right}
}
