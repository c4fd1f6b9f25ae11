package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/pathfang/internal/ingest"
	"github.com/Sumatoshi-tech/pathfang/pkg/pathpool"
)

func TestRun_ReaderSource(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"usr/local/bin",
		"usr/local/lib",
		"",
		"usr/local/bin", // duplicate: all hits
		"etc/ssh",
	}, "\n")

	source := &ingest.ReaderSource{Reader: strings.NewReader(input)}

	result, err := ingest.Run(context.Background(), source, ingest.Options{})
	require.NoError(t, err)

	// Root + usr, local, bin, lib, etc, ssh.
	assert.Equal(t, 7, result.Pool.Len())
	assert.Equal(t, 4, result.Paths, "empty lines are skipped")
	assert.Equal(t, 6, result.Misses)

	// usr/local twice as prefix plus the full duplicate line.
	assert.Equal(t, 5, result.Hits)
	assert.Equal(t, "reader", result.Source)
}

func TestRun_ListStrategy(t *testing.T) {
	t.Parallel()

	source := &ingest.ReaderSource{Reader: strings.NewReader("a/b\na/c\n")}

	result, err := ingest.Run(context.Background(), source, ingest.Options{
		Strategy: pathpool.StrategyList,
	})
	require.NoError(t, err)

	assert.Equal(t, pathpool.StrategyList, result.Pool.Strategy())
	assert.Equal(t, 4, result.Pool.Len())
}

func TestRun_DirSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "b", "f.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), nil, 0o644))

	source := &ingest.DirSource{Root: dir}

	result, err := ingest.Run(context.Background(), source, ingest.Options{})
	require.NoError(t, err)

	// Root + a, a/b, a/b/f.txt, top.txt.
	assert.Equal(t, 5, result.Pool.Len())
	assert.Equal(t, "dir", result.Source)

	pool := result.Pool
	a := pool.Subnode(pool.Root(), "a")
	b := pool.Subnode(a, "b")

	assert.Equal(t, []string{"f.txt", "b", "a", ""}, pathpool.TagList(pool, pool.Subnode(b, "f.txt")))
	assert.Equal(t, 5, pool.Len(), "lookups above must all be hits")
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &ingest.ReaderSource{Reader: strings.NewReader("a/b\n")}

	_, err := ingest.Run(ctx, source, ingest.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		separator string
		want      []string
	}{
		{name: "plain", raw: "a/b/c", separator: "/", want: []string{"a", "b", "c"}},
		{name: "default separator", raw: "a/b", separator: "", want: []string{"a", "b"}},
		{name: "leading and doubled", raw: "/a//b/", separator: "/", want: []string{"a", "b"}},
		{name: "custom separator", raw: "a::b", separator: "::", want: []string{"a", "b"}},
		{name: "empty", raw: "", separator: "/", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ingest.SplitPath(tc.raw, tc.separator))
		})
	}
}
