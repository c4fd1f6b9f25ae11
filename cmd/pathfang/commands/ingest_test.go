package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/pathfang/cmd/pathfang/commands"
)

func runIngest(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := commands.NewIngestCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func sampleDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "pkg", "a.go"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), nil, 0o644))

	return dir
}

func TestIngest_NoSource(t *testing.T) {
	_, err := runIngest(t)
	require.ErrorIs(t, err, commands.ErrNoSource)
}

func TestIngest_MultipleSources(t *testing.T) {
	_, err := runIngest(t, "--dir", "x", "--file", "y")
	require.ErrorIs(t, err, commands.ErrMultipleSources)
}

func TestIngest_UnknownFormat(t *testing.T) {
	_, err := runIngest(t, "--dir", "x", "--format", "xml")
	require.ErrorIs(t, err, commands.ErrUnknownFormat)
}

func TestIngest_DirTable(t *testing.T) {
	out, err := runIngest(t, "--dir", sampleDir(t), "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Paths interned")
	assert.Contains(t, out, "strategy hash")
}

func TestIngest_DirYAML(t *testing.T) {
	out, err := runIngest(t, "--dir", sampleDir(t), "--format", "yaml", "--strategy", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "source: dir")
	assert.Contains(t, out, "strategy: list")
}

func TestIngest_FileJSON(t *testing.T) {
	pathFile := filepath.Join(t.TempDir(), "paths.txt")
	require.NoError(t, os.WriteFile(pathFile, []byte("a/b\na/c\n"), 0o644))

	out, err := runIngest(t, "--file", pathFile, "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"source": "file"`)
	assert.Contains(t, out, `"paths": 2`)
}

func TestIngest_InvalidStrategy(t *testing.T) {
	_, err := runIngest(t, "--dir", "x", "--strategy", "btree")
	require.Error(t, err)
}

func TestIngest_Plot(t *testing.T) {
	plotPath := filepath.Join(t.TempDir(), "pool.html")

	_, err := runIngest(t, "--dir", sampleDir(t), "--plot", plotPath, "--no-color")
	require.NoError(t, err)

	html, readErr := os.ReadFile(plotPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(html), "Paths per depth")
}
