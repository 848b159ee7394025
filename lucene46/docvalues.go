package lucene46

import (
	"context"

	"github.com/lexigraph/segcodec/format"
	"github.com/lexigraph/segcodec/store"
)

const (
	docValuesFormatName = "Lucene46DocValues"
	docValuesVersion    = 0
)

// Compile-time check that docValuesFormat implements format.DocValuesFormat.
var _ format.DocValuesFormat = (*docValuesFormat)(nil)

type docValuesFormat struct{}

func (f *docValuesFormat) columns() *numericColumns {
	return &numericColumns{formatName: docValuesFormatName, version: docValuesVersion, ext: extDocValues}
}

func (f *docValuesFormat) WriteDocValues(ctx context.Context, dir store.Directory, segment string, values map[string][]int64) error {
	return f.columns().write(ctx, dir, segment, values)
}

func (f *docValuesFormat) ReadDocValues(ctx context.Context, dir store.Directory, segment string) (map[string][]int64, error) {
	return f.columns().read(ctx, dir, segment)
}
