package lucene46

import (
	"github.com/lexigraph/segcodec/internal/compress"
	"github.com/lexigraph/segcodec/internal/stats"
)

const (
	defaultBlockSize      = 64
	defaultBlockCacheSize = 128
)

// codecOptions holds construction parameters for the codec.
type codecOptions struct {
	blockSize      int
	blockCacheSize int
	compressor     compress.Compressor
	stats          stats.Collector
}

// CodecOption configures the codec.
type CodecOption func(*codecOptions)

// WithBlockSize sets the number of documents per stored-fields block.
func WithBlockSize(n int) CodecOption {
	return func(o *codecOptions) {
		if n > 0 {
			o.blockSize = n
		}
	}
}

// WithBlockCacheSize sets the number of decompressed stored-fields
// blocks each reader keeps in its LRU cache.
func WithBlockCacheSize(n int) CodecOption {
	return func(o *codecOptions) {
		if n > 0 {
			o.blockCacheSize = n
		}
	}
}

// WithCompressor sets the block compressor for stored fields. Defaults
// to zstd. The compressor's name is recorded in the segment file, so a
// segment must be read back with a codec configured for the same
// compressor.
func WithCompressor(c compress.Compressor) CodecOption {
	return func(o *codecOptions) {
		o.compressor = c
	}
}

// WithStats sets the metrics collector for block cache hit/miss counters.
func WithStats(c stats.Collector) CodecOption {
	return func(o *codecOptions) {
		o.stats = c
	}
}
