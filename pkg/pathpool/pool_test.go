package pathpool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/pathfang/pkg/pathpool"
)

var allStrategies = []pathpool.Strategy{pathpool.StrategyHash, pathpool.StrategyList}

func newPool(strategy pathpool.Strategy) *pathpool.Pool[string] {
	return pathpool.New("root", pathpool.WithStrategy(strategy))
}

func TestPool_SubnodeScenario(t *testing.T) {
	t.Parallel()

	for _, strategy := range allStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			pool := newPool(strategy)
			root := pool.Root()

			p1 := pool.Subnode(root, "path1")
			p2 := pool.Subnode(root, "path2")
			p3 := pool.Subnode(root, "path1")
			p4 := pool.Subnode(p2, "path1")

			assert.Equal(t, p1, p3)
			assert.NotEqual(t, p1, p2)
			assert.NotEqual(t, p1, p4)
			assert.Equal(t, "root", pool.Tag(root))
			assert.Equal(t, "path1", pool.Tag(p4))
			assert.Equal(t, "path2", pool.Tag(pool.Parent(p4)))
		})
	}
}

func TestPool_SubnodeIdempotent(t *testing.T) {
	t.Parallel()

	for _, strategy := range allStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			pool := newPool(strategy)

			id := pool.Subnode(pool.Root(), "a")
			lenAfterFirst := pool.Len()

			again := pool.Subnode(pool.Root(), "a")

			assert.Equal(t, id, again)
			assert.Equal(t, lenAfterFirst, pool.Len(), "repeated creation must not allocate")
		})
	}
}

func TestPool_SubnodeUniqueness(t *testing.T) {
	t.Parallel()

	for _, strategy := range allStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			pool := newPool(strategy)
			root := pool.Root()

			a := pool.Subnode(root, "a")
			b := pool.Subnode(root, "b")
			aa := pool.Subnode(a, "a")
			ba := pool.Subnode(b, "a")

			ids := []pathpool.PathID{root, a, b, aa, ba}
			seen := make(map[pathpool.PathID]bool, len(ids))

			for _, id := range ids {
				assert.False(t, seen[id], "id %d assigned twice", id)
				seen[id] = true
			}
		})
	}
}

func TestPool_ParentOfRootIsRoot(t *testing.T) {
	t.Parallel()

	for _, strategy := range allStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			pool := newPool(strategy)

			assert.Equal(t, pool.Root(), pool.Parent(pool.Root()))
		})
	}
}

func TestPool_DenseIDs(t *testing.T) {
	t.Parallel()

	pool := newPool(pathpool.StrategyHash)
	root := pool.Root()

	require.Equal(t, pathpool.PathID(0), root)
	assert.Equal(t, pathpool.PathID(1), pool.Subnode(root, "a"))
	assert.Equal(t, pathpool.PathID(2), pool.Subnode(root, "b"))
	assert.Equal(t, pathpool.PathID(3), pool.Subnode(1, "c"))
	assert.Equal(t, 4, pool.Len())
}

func TestPool_SubnodesOrder(t *testing.T) {
	t.Parallel()

	t.Run("hash keeps insertion order", func(t *testing.T) {
		t.Parallel()

		pool := newPool(pathpool.StrategyHash)
		root := pool.Root()

		a := pool.Subnode(root, "a")
		b := pool.Subnode(root, "b")
		c := pool.Subnode(root, "c")

		assert.Equal(t, []pathpool.PathID{a, b, c}, pool.Subnodes(root))
	})

	t.Run("list yields newest first", func(t *testing.T) {
		t.Parallel()

		pool := newPool(pathpool.StrategyList)
		root := pool.Root()

		a := pool.Subnode(root, "a")
		b := pool.Subnode(root, "b")
		c := pool.Subnode(root, "c")

		assert.Equal(t, []pathpool.PathID{c, b, a}, pool.Subnodes(root))
	})
}

func TestPool_SubnodesOfLeafIsEmpty(t *testing.T) {
	t.Parallel()

	for _, strategy := range allStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			pool := newPool(strategy)
			leaf := pool.Subnode(pool.Root(), "leaf")

			assert.Empty(t, pool.Subnodes(leaf))
		})
	}
}

func TestPool_EachSubnodeStopsEarly(t *testing.T) {
	t.Parallel()

	pool := newPool(pathpool.StrategyHash)
	root := pool.Root()

	pool.Subnode(root, "a")
	pool.Subnode(root, "b")
	pool.Subnode(root, "c")

	visited := 0

	pool.EachSubnode(root, func(pathpool.PathID) bool {
		visited++

		return false
	})

	assert.Equal(t, 1, visited)
}

func TestPool_SubnodePanicsOnForeignID(t *testing.T) {
	t.Parallel()

	for _, strategy := range allStrategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			pool := newPool(strategy)

			assert.Panics(t, func() {
				pool.Subnode(pathpool.PathID(42), "x")
			})
		})
	}
}

// Both strategies must assign identical ids for identical call sequences.
func TestPool_StrategyEquivalence(t *testing.T) {
	t.Parallel()

	type call struct {
		parent pathpool.PathID
		tag    string
	}

	calls := []call{
		{0, "usr"}, {0, "etc"}, {1, "local"}, {3, "bin"},
		{1, "local"}, {0, "usr"}, {2, "ssh"}, {4, "go"},
		{3, "bin"}, {5, "config"},
	}

	hashPool := newPool(pathpool.StrategyHash)
	listPool := newPool(pathpool.StrategyList)

	for i, c := range calls {
		hashID := hashPool.Subnode(c.parent, c.tag)
		listID := listPool.Subnode(c.parent, c.tag)

		require.Equal(t, hashID, listID, "call %d diverged", i)
	}

	assert.Equal(t, hashPool.Len(), listPool.Len())
}

func TestPool_ZeroRootTag(t *testing.T) {
	t.Parallel()

	pool := pathpool.New("")

	assert.Empty(t, pool.Tag(pool.Root()))
	assert.Equal(t, pathpool.StrategyHash, pool.Strategy())
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    pathpool.Strategy
		wantErr bool
	}{
		{name: "hash", want: pathpool.StrategyHash},
		{name: "list", want: pathpool.StrategyList},
		{name: "btree", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := pathpool.ParseStrategy(tc.name)
			if tc.wantErr {
				require.ErrorIs(t, err, pathpool.ErrUnknownStrategy)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
