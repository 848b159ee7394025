package lucene46

import (
	"context"

	"github.com/lexigraph/segcodec/format"
	"github.com/lexigraph/segcodec/store"
)

const (
	normsFormatName = "Lucene46Norms"
	normsVersion    = 0
)

// Compile-time check that normsFormat implements format.NormsFormat.
var _ format.NormsFormat = (*normsFormat)(nil)

type normsFormat struct{}

func (f *normsFormat) columns() *numericColumns {
	return &numericColumns{formatName: normsFormatName, version: normsVersion, ext: extNorms}
}

func (f *normsFormat) WriteNorms(ctx context.Context, dir store.Directory, segment string, norms map[string][]int64) error {
	return f.columns().write(ctx, dir, segment, norms)
}

func (f *normsFormat) ReadNorms(ctx context.Context, dir store.Directory, segment string) (map[string][]int64, error) {
	return f.columns().read(ctx, dir, segment)
}
