// Package lucene46 provides the bootstrap codec. It is the codec a
// fresh process defaults to, and the implementation every segment
// written without an explicit codec choice is encoded with.
//
// Each sub-format writes one file per segment, framed by codecutil with
// the sub-format's own name and version so readers reject foreign or
// corrupt files before interpreting them.
package lucene46

import (
	"github.com/lexigraph/segcodec"
	"github.com/lexigraph/segcodec/internal/compress/zstdcompress"
)

// Name is the codec's registered name.
const Name = "Lucene46"

// Segment file extensions, one per sub-format.
const (
	extSegmentInfo  = ".si"
	extFieldInfos   = ".fnm"
	extLiveDocs     = ".liv"
	extNorms        = ".nvd"
	extDocValues    = ".dvd"
	extPostings     = ".pst"
	extTermVectors  = ".tvd"
	extStoredFields = ".fdt"
)

// New constructs the Lucene46 codec.
func New(opts ...CodecOption) (*segcodec.Codec, error) {
	cfg := codecOptions{
		blockSize:      defaultBlockSize,
		blockCacheSize: defaultBlockCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	compressor := cfg.compressor
	if compressor == nil {
		var err error
		compressor, err = zstdcompress.New()
		if err != nil {
			return nil, err
		}
	}
	stored := newStoredFieldsFormat(cfg.blockSize, cfg.blockCacheSize, compressor, cfg.stats)

	return segcodec.New("Lucene46Codec",
		segcodec.WithSegmentInfoFormat(&segmentInfoFormat{}),
		segcodec.WithFieldInfosFormat(&fieldInfosFormat{}),
		segcodec.WithLiveDocsFormat(&liveDocsFormat{}),
		segcodec.WithNormsFormat(&normsFormat{}),
		segcodec.WithDocValuesFormat(&docValuesFormat{}),
		segcodec.WithPostingsFormat(&postingsFormat{}),
		segcodec.WithTermVectorsFormat(&termVectorsFormat{}),
		segcodec.WithStoredFieldsFormat(stored),
	)
}
