// Package segcodec resolves the short textual codec name persisted in a
// segment back to the running implementation that can read it.
//
// A Codec bundles the eight sub-format implementations that together
// define how a segment is physically laid out. Codecs are registered
// under unique names in a Registry; a Handle owns the active registry
// and the process-wide default codec, and supports atomically replacing
// the registry as a whole.
//
// Example usage:
//
//	l46, err := lucene46.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg, err := segcodec.NewMapRegistry(l46)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	handle, err := segcodec.NewHandle(reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	codec, err := handle.Resolve("Lucene46")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	info, err := codec.SegmentInfoFormat().ReadSegmentInfo(ctx, dir, "_0")
package segcodec

import (
	"errors"

	"github.com/lexigraph/segcodec/format"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrInvalidName indicates a codec name that is empty, contains a
	// non-ASCII-alphanumeric character, or is 128 characters or longer.
	ErrInvalidName = errors.New("segcodec: invalid codec name")

	// ErrMissingFormat indicates a codec was constructed without one of
	// its eight required formats.
	ErrMissingFormat = errors.New("segcodec: missing format")

	// ErrUnknownCodec indicates the requested name has no registered codec.
	ErrUnknownCodec = errors.New("segcodec: unknown codec")

	// ErrDuplicateName indicates two codecs were registered under the
	// same name.
	ErrDuplicateName = errors.New("segcodec: duplicate codec name")

	// ErrNilRegistry indicates a nil registry was passed where one is
	// required.
	ErrNilRegistry = errors.New("segcodec: nil registry")

	// ErrListingUnsupported indicates the registry does not support
	// enumerating its names.
	ErrListingUnsupported = errors.New("segcodec: registry does not support listing")

	// ErrBootstrapMissing indicates the registry cannot resolve the
	// bootstrap name, so no default codec can be established.
	ErrBootstrapMissing = errors.New("segcodec: bootstrap codec missing from registry")
)

// Codec is a named, immutable bundle of the eight sub-format
// implementations describing how a segment is encoded. The name is the
// only datum persisted with a segment to identify its codec; it is
// derived once at construction and never changes.
//
// A Codec is safe for concurrent use: all state is fixed at construction.
type Codec struct {
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

// New creates a Codec. The name is derived from ident by DeriveName
// unless overridden with WithName, and validated either way. All eight
// formats must be supplied via options; a missing one is a construction
// error, not a nil discovered later.
func New(ident string, opts ...Option) (*Codec, error) {
	cfg := options{}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	name := cfg.name
	if name == "" {
		name = DeriveName(ident)
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	c := &Codec{
		name:         name,
		postings:     cfg.postings,
		docValues:    cfg.docValues,
		storedFields: cfg.storedFields,
		termVectors:  cfg.termVectors,
		fieldInfos:   cfg.fieldInfos,
		segmentInfo:  cfg.segmentInfo,
		norms:        cfg.norms,
		liveDocs:     cfg.liveDocs,
	}
	if err := c.checkComplete(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the codec's registered name.
func (c *Codec) Name() string { return c.name }

// String returns the codec's name.
func (c *Codec) String() string { return c.name }

// PostingsFormat returns the postings format. The same instance is
// returned on every call, as with all format accessors.
func (c *Codec) PostingsFormat() format.PostingsFormat { return c.postings }

// DocValuesFormat returns the doc-values format.
func (c *Codec) DocValuesFormat() format.DocValuesFormat { return c.docValues }

// StoredFieldsFormat returns the stored-fields format.
func (c *Codec) StoredFieldsFormat() format.StoredFieldsFormat { return c.storedFields }

// TermVectorsFormat returns the term-vectors format.
func (c *Codec) TermVectorsFormat() format.TermVectorsFormat { return c.termVectors }

// FieldInfosFormat returns the field-infos format.
func (c *Codec) FieldInfosFormat() format.FieldInfosFormat { return c.fieldInfos }

// SegmentInfoFormat returns the segment-info format.
func (c *Codec) SegmentInfoFormat() format.SegmentInfoFormat { return c.segmentInfo }

// NormsFormat returns the norms format.
func (c *Codec) NormsFormat() format.NormsFormat { return c.norms }

// LiveDocsFormat returns the live-docs format.
func (c *Codec) LiveDocsFormat() format.LiveDocsFormat { return c.liveDocs }

// checkComplete verifies all eight formats are present, naming the first
// missing one.
func (c *Codec) checkComplete() error {
	missing := ""
	switch {
	case c.postings == nil:
		missing = "postings"
	case c.docValues == nil:
		missing = "doc-values"
	case c.storedFields == nil:
		missing = "stored-fields"
	case c.termVectors == nil:
		missing = "term-vectors"
	case c.fieldInfos == nil:
		missing = "field-infos"
	case c.segmentInfo == nil:
		missing = "segment-info"
	case c.norms == nil:
		missing = "norms"
	case c.liveDocs == nil:
		missing = "live-docs"
	}
	if missing != "" {
		return errorMissingFormat(c.name, missing)
	}
	return nil
}
