package render_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/pathfang/internal/ingest"
	"github.com/Sumatoshi-tech/pathfang/internal/render"
	"github.com/Sumatoshi-tech/pathfang/internal/stats"
)

func sampleRun(t *testing.T) (*ingest.Result, stats.Report) {
	t.Helper()

	source := &ingest.ReaderSource{Reader: strings.NewReader("usr/local/bin\nusr/local/lib\netc\n")}

	result, err := ingest.Run(context.Background(), source, ingest.Options{})
	require.NoError(t, err)

	return result, stats.Collect(result.Pool, 1)
}

func TestTable(t *testing.T) {
	t.Parallel()

	result, report := sampleRun(t)

	var buf bytes.Buffer

	require.NoError(t, render.Table(&buf, result, report))

	out := buf.String()
	assert.Contains(t, out, "Paths interned")
	assert.Contains(t, out, "Flyweight saving")
	assert.Contains(t, out, "Fan-out")
}

func TestYAMLExport(t *testing.T) {
	t.Parallel()

	result, report := sampleRun(t)

	var buf bytes.Buffer

	require.NoError(t, render.YAML(&buf, render.NewExport(result, report)))

	var decoded render.Export

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, result.Paths, decoded.Paths)
	assert.Equal(t, report.Paths, decoded.Pool.Paths)
}

func TestJSONExport(t *testing.T) {
	t.Parallel()

	result, report := sampleRun(t)

	var buf bytes.Buffer

	require.NoError(t, render.JSON(&buf, render.NewExport(result, report)))
	assert.Contains(t, buf.String(), `"distinct_tags"`)
}

func TestPlot(t *testing.T) {
	t.Parallel()

	_, report := sampleRun(t)

	var buf bytes.Buffer

	require.NoError(t, render.Plot(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "Paths per depth")
	assert.Contains(t, out, "Parents per fan-out")
}
