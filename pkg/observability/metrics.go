package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricSubnodesTotal  = "pathfang.subnodes.total"
	metricNodesCreated   = "pathfang.nodes.created"
	metricIngestDuration = "pathfang.ingest.duration.seconds"

	attrSource = "source"
	attrResult = "result"

	resultHit  = "hit"
	resultMiss = "miss"
)

// ingestBucketBoundaries covers 10ms single-directory scans up to
// multi-minute walks over large repositories.
var ingestBucketBoundaries = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300}

// InternMetrics holds the OTel instruments for intern-pool activity.
type InternMetrics struct {
	subnodesTotal  metric.Int64Counter
	nodesCreated   metric.Int64Counter
	ingestDuration metric.Float64Histogram
}

// NewInternMetrics creates the intern instruments from the given meter.
func NewInternMetrics(mt metric.Meter) (*InternMetrics, error) {
	subnodes, err := mt.Int64Counter(metricSubnodesTotal,
		metric.WithDescription("Total subnode lookups, partitioned by hit/miss"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSubnodesTotal, err)
	}

	created, err := mt.Int64Counter(metricNodesCreated,
		metric.WithDescription("Total interned path nodes created"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricNodesCreated, err)
	}

	duration, err := mt.Float64Histogram(metricIngestDuration,
		metric.WithDescription("Ingest run duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(ingestBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricIngestDuration, err)
	}

	return &InternMetrics{
		subnodesTotal:  subnodes,
		nodesCreated:   created,
		ingestDuration: duration,
	}, nil
}

// RecordSubnodes records a batch of subnode lookups against one source.
func (im *InternMetrics) RecordSubnodes(ctx context.Context, source string, hits, misses int64) {
	im.subnodesTotal.Add(ctx, hits, metric.WithAttributes(
		attribute.String(attrSource, source),
		attribute.String(attrResult, resultHit),
	))
	im.subnodesTotal.Add(ctx, misses, metric.WithAttributes(
		attribute.String(attrSource, source),
		attribute.String(attrResult, resultMiss),
	))
	im.nodesCreated.Add(ctx, misses, metric.WithAttributes(
		attribute.String(attrSource, source),
	))
}

// RecordIngest records a completed ingest run.
func (im *InternMetrics) RecordIngest(ctx context.Context, source string, elapsed time.Duration) {
	im.ingestDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String(attrSource, source),
	))
}
