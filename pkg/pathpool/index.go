package pathpool

// childIndex resolves whether a parent already has a child with a given tag
// and enumerates the children of a parent. Its content always mirrors the
// node store: every registered (parent, tag, id) triple is findable, and id
// appears exactly once in its parent's enumeration.
//
// Both implementations must yield identical id assignment for identical
// operation sequences on a fresh pool; only enumeration order and cost
// profiles differ.
type childIndex[T comparable] interface {
	// find returns the id registered for (parent, tag), if any.
	find(parent PathID, tag T) (PathID, bool)

	// register records id as the child of parent with the given tag. The
	// caller guarantees find(parent, tag) reported no existing child.
	register(parent PathID, tag T, id PathID)

	// eachChild calls fn for every child of parent, in the order documented
	// by the implementation, until fn returns false.
	eachChild(parent PathID, fn func(PathID) bool)
}

// Strategy selects the child-index implementation backing a pool.
type Strategy string

// Available child-index strategies.
const (
	// StrategyHash backs the index with a hash table over (parent, tag).
	// O(1) expected find, one table slot plus one enumeration-list entry of
	// overhead per node. Children enumerate in insertion order.
	StrategyHash Strategy = "hash"

	// StrategyList threads each parent's children into a singly linked
	// sibling list. No table, one link per node; find scans the siblings of
	// the parent, which wins when fan-out is small. Children enumerate
	// most-recently-added first.
	StrategyList Strategy = "list"
)
