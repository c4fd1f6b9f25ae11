package pathpool

// noChild terminates sibling lists. It can never collide with a real id:
// ids are dense indexes into the node store, which tops out well below the
// uint32 maximum before memory does.
const noChild = ^PathID(0)

// listChildIndex implements childIndex without an auxiliary table: each
// parent records its most recently added child, and each node links to the
// next older sibling. register prepends in O(1); find scans the parent's
// sibling list comparing tags. Tags are read back from the node store, so
// the index itself carries only one link per node.
type listChildIndex[T comparable] struct {
	store *nodeStore[T]
	head  []PathID // first (newest) child of each parent
	next  []PathID // next older sibling of each node
}

func newListChildIndex[T comparable](store *nodeStore[T]) *listChildIndex[T] {
	return &listChildIndex[T]{
		store: store,
		head:  []PathID{noChild},
		next:  []PathID{noChild},
	}
}

func (x *listChildIndex[T]) find(parent PathID, tag T) (PathID, bool) {
	if int(parent) >= len(x.head) {
		return 0, false
	}

	for id := x.head[parent]; id != noChild; id = x.next[id] {
		if x.store.tagOf(id) == tag {
			return id, true
		}
	}

	return 0, false
}

func (x *listChildIndex[T]) register(parent PathID, tag T, id PathID) {
	for len(x.head) <= int(id) {
		x.head = append(x.head, noChild)
		x.next = append(x.next, noChild)
	}

	x.next[id] = x.head[parent]
	x.head[parent] = id
}

func (x *listChildIndex[T]) eachChild(parent PathID, fn func(PathID) bool) {
	if int(parent) >= len(x.head) {
		return
	}

	for id := x.head[parent]; id != noChild; id = x.next[id] {
		if !fn(id) {
			return
		}
	}
}
