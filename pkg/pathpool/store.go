package pathpool

// PathID identifies one interned path within a single Pool. IDs are dense,
// assigned in creation order, and never reused or invalidated by later
// insertions. IDs from different pools are not comparable; mixing them is a
// caller error that the core does not detect.
type PathID uint32

// Root is the id of the root path in every pool.
const Root PathID = 0

// node is one stored (parent, tag) pair. The root node is its own parent;
// upward traversal terminates where parent == self.
type node[T comparable] struct {
	tag    T
	parent PathID
}

// nodeStore is the dense, append-only node collection. A node's index in the
// store is its id. The store never shrinks; nodes are released only when the
// whole pool is dropped.
type nodeStore[T comparable] struct {
	nodes []node[T]
}

// newNodeStore creates a store holding only the root node, which gets id 0.
func newNodeStore[T comparable](rootTag T) *nodeStore[T] {
	return &nodeStore[T]{
		nodes: []node[T]{{tag: rootTag, parent: Root}},
	}
}

// append allocates the next id for (parent, tag) and returns it. The caller
// guarantees the pair does not exist yet; the store does no deduplication.
func (s *nodeStore[T]) append(parent PathID, tag T) PathID {
	id := PathID(len(s.nodes))
	s.nodes = append(s.nodes, node[T]{tag: tag, parent: parent})

	return id
}

// parentOf returns the parent id of id. The root returns itself.
func (s *nodeStore[T]) parentOf(id PathID) PathID {
	return s.nodes[id].parent
}

// tagOf returns the tag stored for id.
func (s *nodeStore[T]) tagOf(id PathID) T {
	return s.nodes[id].tag
}

// len returns the number of stored nodes. Every id in [0, len) is valid.
func (s *nodeStore[T]) len() int {
	return len(s.nodes)
}
