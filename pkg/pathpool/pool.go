package pathpool

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("pathpool: unknown child-index strategy")

// Option configures a Pool at construction.
type Option func(*options)

type options struct {
	strategy Strategy
}

// WithStrategy selects the child-index strategy. The default is StrategyHash.
func WithStrategy(strategy Strategy) Option {
	return func(o *options) {
		o.strategy = strategy
	}
}

// ParseStrategy maps a strategy name to a Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategyHash:
		return StrategyHash, nil
	case StrategyList:
		return StrategyList, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Pool is the interning engine: a dense node store composed with a child
// index. All mutation happens through Subnode.
//
// A Pool has no internal locking. Subnode performs a read-then-write
// sequence that is not atomic, so concurrent Subnode calls must be
// serialized by the owner. Read-only operations (Root, Parent, Tag,
// Subnodes, Len and the traversal functions) may run concurrently with each
// other, but not with an in-flight Subnode on the same pool.
type Pool[T comparable] struct {
	store    *nodeStore[T]
	index    childIndex[T]
	strategy Strategy
}

// New creates a pool whose root path carries rootTag. Pass the tag type's
// zero value for an unlabeled root.
func New[T comparable](rootTag T, opts ...Option) *Pool[T] {
	cfg := options{strategy: StrategyHash}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := newNodeStore[T](rootTag)

	var index childIndex[T]

	switch cfg.strategy {
	case StrategyList:
		index = newListChildIndex(store)
	default:
		index = newHashChildIndex[T]()
	}

	return &Pool[T]{store: store, index: index, strategy: cfg.strategy}
}

// Root returns the id of the root path. It is always 0.
func (p *Pool[T]) Root() PathID {
	return Root
}

// Subnode returns the id of the path extending parent by tag, creating it
// if it does not exist yet. Creation is idempotent: repeated calls with
// identical arguments return the same id and allocate nothing new.
//
// Passing an id not produced by this pool is a precondition violation;
// Subnode panics when it can detect one.
func (p *Pool[T]) Subnode(parent PathID, tag T) PathID {
	p.mustOwn(parent)

	if id, ok := p.index.find(parent, tag); ok {
		return id
	}

	id := p.store.append(parent, tag)
	p.index.register(parent, tag, id)

	return id
}

// Subnodes returns the ids of all children of path. Order depends on the
// strategy: insertion order for StrategyHash, newest first for StrategyList.
func (p *Pool[T]) Subnodes(path PathID) []PathID {
	var children []PathID

	p.index.eachChild(path, func(id PathID) bool {
		children = append(children, id)

		return true
	})

	return children
}

// EachSubnode calls fn for every child of path, in strategy order, until fn
// returns false. It allocates nothing.
func (p *Pool[T]) EachSubnode(path PathID, fn func(PathID) bool) {
	p.index.eachChild(path, fn)
}

// Parent returns the parent id of path. The root returns itself; callers
// that need to detect the root compare the result against Root.
func (p *Pool[T]) Parent(path PathID) PathID {
	return p.store.parentOf(path)
}

// Tag returns the tag stored for path.
func (p *Pool[T]) Tag(path PathID) T {
	return p.store.tagOf(path)
}

// Len returns the number of interned paths, root included. Every id in
// [0, Len()) is valid.
func (p *Pool[T]) Len() int {
	return p.store.len()
}

// Strategy reports which child-index strategy backs the pool.
func (p *Pool[T]) Strategy() Strategy {
	return p.strategy
}

func (p *Pool[T]) mustOwn(path PathID) {
	if int(path) >= p.store.len() {
		panic(fmt.Sprintf("pathpool: id %d outside pool of %d paths", path, p.store.len()))
	}
}
