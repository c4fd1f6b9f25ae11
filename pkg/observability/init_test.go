package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/pathfang/pkg/observability"
)

func TestInit_NoopWithoutEndpoint(t *testing.T) {
	t.Parallel()

	providers, err := observability.Init(observability.DefaultConfig())
	require.NoError(t, err)

	require.NotNil(t, providers.Tracer)
	require.NotNil(t, providers.Meter)
	require.NotNil(t, providers.Logger)

	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestNewInternMetrics(t *testing.T) {
	t.Parallel()

	providers, err := observability.Init(observability.DefaultConfig())
	require.NoError(t, err)

	metrics, err := observability.NewInternMetrics(providers.Meter)
	require.NoError(t, err)

	// No-op instruments must still accept records.
	metrics.RecordSubnodes(context.Background(), "dir", 2, 5)
	metrics.RecordIngest(context.Background(), "dir", 0)
}

func TestPrometheusHandler(t *testing.T) {
	t.Parallel()

	handler, mp, err := observability.PrometheusHandler()
	require.NoError(t, err)
	require.NotNil(t, handler)
	require.NotNil(t, mp)

	t.Cleanup(func() {
		assert.NoError(t, mp.Shutdown(context.Background()))
	})
}
