package segcodec

import "github.com/lexigraph/segcodec/format"

// Option configures a Codec at construction.
type Option interface {
	apply(*options)
}

// options holds the codec configuration.
type options struct {
	name string

	postings     format.PostingsFormat
	docValues    format.DocValuesFormat
	storedFields format.StoredFieldsFormat
	termVectors  format.TermVectorsFormat
	fieldInfos   format.FieldInfosFormat
	segmentInfo  format.SegmentInfoFormat
	norms        format.NormsFormat
	liveDocs     format.LiveDocsFormat
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithName overrides name derivation: the given name is used verbatim
// instead of the one derived from the implementation identifier. The
// override is still validated.
func WithName(name string) Option {
	return optionFunc(func(o *options) {
		o.name = name
	})
}

// WithPostingsFormat sets the postings format.
func WithPostingsFormat(f format.PostingsFormat) Option {
	return optionFunc(func(o *options) {
		o.postings = f
	})
}

// WithDocValuesFormat sets the doc-values format.
func WithDocValuesFormat(f format.DocValuesFormat) Option {
	return optionFunc(func(o *options) {
		o.docValues = f
	})
}

// WithStoredFieldsFormat sets the stored-fields format.
func WithStoredFieldsFormat(f format.StoredFieldsFormat) Option {
	return optionFunc(func(o *options) {
		o.storedFields = f
	})
}

// WithTermVectorsFormat sets the term-vectors format.
func WithTermVectorsFormat(f format.TermVectorsFormat) Option {
	return optionFunc(func(o *options) {
		o.termVectors = f
	})
}

// WithFieldInfosFormat sets the field-infos format.
func WithFieldInfosFormat(f format.FieldInfosFormat) Option {
	return optionFunc(func(o *options) {
		o.fieldInfos = f
	})
}

// WithSegmentInfoFormat sets the segment-info format.
func WithSegmentInfoFormat(f format.SegmentInfoFormat) Option {
	return optionFunc(func(o *options) {
		o.segmentInfo = f
	})
}

// WithNormsFormat sets the norms format.
func WithNormsFormat(f format.NormsFormat) Option {
	return optionFunc(func(o *options) {
		o.norms = f
	})
}

// WithLiveDocsFormat sets the live-docs format.
func WithLiveDocsFormat(f format.LiveDocsFormat) Option {
	return optionFunc(func(o *options) {
		o.liveDocs = f
	})
}
