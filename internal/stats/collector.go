// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Registry metrics.
	MetricResolves       = "segcodec_resolves_total"
	MetricResolveMisses  = "segcodec_resolve_misses_total"
	MetricReplaces       = "segcodec_registry_replaces_total"
	MetricDefaultReads   = "segcodec_default_reads_total"
	MetricDefaultWrites  = "segcodec_default_writes_total"
	MetricRegisteredSize = "segcodec_registered_codecs"

	// Stored-fields block cache metrics.
	MetricBlockCacheHits   = "segcodec_block_cache_hits_total"
	MetricBlockCacheMisses = "segcodec_block_cache_misses_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
