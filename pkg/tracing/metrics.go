package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	// StyleWrites counts accepted style mutations
	StyleWrites = stats.Int64("sitebuilder/style_writes", "Number of style writes", stats.UnitDimensionless)
	// StyleResolveCacheHits counts resolved-style lookups answered from cache
	StyleResolveCacheHits = stats.Int64("sitebuilder/style_resolve_cache_hits", "Resolved style cache hits", stats.UnitDimensionless)
	// StyleResolveCacheMisses counts lookups that loaded the element
	StyleResolveCacheMisses = stats.Int64("sitebuilder/style_resolve_cache_misses", "Resolved style cache misses", stats.UnitDimensionless)
	// StyleResolveLatency is the time to answer a resolve, cached or not
	StyleResolveLatency = stats.Float64("sitebuilder/style_resolve_latency", "Style resolve latency", stats.UnitMilliseconds)
	// StyleWriteConflicts counts saves that lost the updated_at race
	StyleWriteConflicts = stats.Int64("sitebuilder/style_write_conflicts", "Style writes that hit a concurrent save", stats.UnitDimensionless)

	KeyDevice    = tag.MustNewKey("device")
	KeyOperation = tag.MustNewKey("operation")
)

var styleViews = []*view.View{
	{
		Name:        "sitebuilder/style_writes_count",
		Measure:     StyleWrites,
		Description: "Style writes by device and operation",
		TagKeys:     []tag.Key{KeyDevice, KeyOperation},
		Aggregation: view.Count(),
	},
	{
		Name:        "sitebuilder/style_resolve_cache_hits_count",
		Measure:     StyleResolveCacheHits,
		Description: "Resolved style cache hits by device",
		TagKeys:     []tag.Key{KeyDevice},
		Aggregation: view.Count(),
	},
	{
		Name:        "sitebuilder/style_resolve_cache_misses_count",
		Measure:     StyleResolveCacheMisses,
		Description: "Resolved style cache misses by device",
		TagKeys:     []tag.Key{KeyDevice},
		Aggregation: view.Count(),
	},
	{
		Name:        "sitebuilder/style_resolve_latency",
		Measure:     StyleResolveLatency,
		Description: "Style resolve latency distribution by device",
		TagKeys:     []tag.Key{KeyDevice},
		Aggregation: view.Distribution(0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000),
	},
	{
		Name:        "sitebuilder/style_write_conflicts_count",
		Measure:     StyleWriteConflicts,
		Description: "Style write conflicts by operation",
		TagKeys:     []tag.Key{KeyOperation},
		Aggregation: view.Count(),
	},
}

// RegisterStyleViews registers the page builder views. Registering twice is a no-op.
func RegisterStyleViews() error {
	if err := view.Register(styleViews...); err != nil {
		return fmt.Errorf("failed to register style views: %w", err)
	}
	return nil
}

// RecordStyleWrite records one style write. Recording without registered views is free.
func RecordStyleWrite(ctx context.Context, device, operation string) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyDevice, device), tag.Upsert(KeyOperation, operation)},
		StyleWrites.M(1),
	)
}

// RecordResolveCacheHit records a resolved-style cache hit
func RecordResolveCacheHit(ctx context.Context, device string) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyDevice, device)},
		StyleResolveCacheHits.M(1),
	)
}

// RecordResolveCacheMiss records a resolve that had to load the element
func RecordResolveCacheMiss(ctx context.Context, device string) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyDevice, device)},
		StyleResolveCacheMisses.M(1),
	)
}

func RecordResolveLatency(ctx context.Context, device string, d time.Duration) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyDevice, device)},
		StyleResolveLatency.M(float64(d)/float64(time.Millisecond)),
	)
}

// RecordStyleWriteConflict records one lost updated_at compare-and-swap
func RecordStyleWriteConflict(ctx context.Context, operation string) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyOperation, operation)},
		StyleWriteConflicts.M(1),
	)
}
