package pathpool

// childKey is the composite hash key for one (parent, tag) pair.
type childKey[T comparable] struct {
	parent PathID
	tag    T
}

// hashChildIndex implements childIndex with a hash table over (parent, tag)
// plus a per-parent id list so enumeration costs O(children of parent)
// rather than a full-table scan.
type hashChildIndex[T comparable] struct {
	lookup   map[childKey[T]]PathID
	children [][]PathID // indexed by parent id, insertion order
}

func newHashChildIndex[T comparable]() *hashChildIndex[T] {
	return &hashChildIndex[T]{
		lookup: make(map[childKey[T]]PathID),
	}
}

func (x *hashChildIndex[T]) find(parent PathID, tag T) (PathID, bool) {
	id, ok := x.lookup[childKey[T]{parent: parent, tag: tag}]

	return id, ok
}

func (x *hashChildIndex[T]) register(parent PathID, tag T, id PathID) {
	x.lookup[childKey[T]{parent: parent, tag: tag}] = id

	for len(x.children) <= int(parent) {
		x.children = append(x.children, nil)
	}

	x.children[parent] = append(x.children[parent], id)
}

func (x *hashChildIndex[T]) eachChild(parent PathID, fn func(PathID) bool) {
	if int(parent) >= len(x.children) {
		return
	}

	for _, id := range x.children[parent] {
		if !fn(id) {
			return
		}
	}
}
