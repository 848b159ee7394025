package format

import (
	"context"

	"github.com/lexigraph/segcodec/store"
)

// SegmentInfoFormat controls the encoding of segment metadata.
type SegmentInfoFormat interface {
	// ReadSegmentInfo reads the metadata of the named segment.
	ReadSegmentInfo(ctx context.Context, dir store.Directory, segment string) (*SegmentInfo, error)
	// WriteSegmentInfo persists the segment metadata.
	WriteSegmentInfo(ctx context.Context, dir store.Directory, info *SegmentInfo) error
}

// FieldInfosFormat controls the encoding of the per-segment field table.
type FieldInfosFormat interface {
	ReadFieldInfos(ctx context.Context, dir store.Directory, segment string) (FieldInfos, error)
	WriteFieldInfos(ctx context.Context, dir store.Directory, segment string, infos FieldInfos) error
}

// PostingsFormat controls the encoding of term postings lists.
type PostingsFormat interface {
	ReadPostings(ctx context.Context, dir store.Directory, segment string) ([]TermPostings, error)
	WritePostings(ctx context.Context, dir store.Directory, segment string, postings []TermPostings) error
}

// DocValuesFormat controls the encoding of per-document numeric values,
// keyed by field name and indexed by document ID.
type DocValuesFormat interface {
	ReadDocValues(ctx context.Context, dir store.Directory, segment string) (map[string][]int64, error)
	WriteDocValues(ctx context.Context, dir store.Directory, segment string, values map[string][]int64) error
}

// NormsFormat controls the encoding of per-field normalization values.
// Norms have the same shape as numeric doc values but live in their own
// files so they can be cached and merged independently.
type NormsFormat interface {
	ReadNorms(ctx context.Context, dir store.Directory, segment string) (map[string][]int64, error)
	WriteNorms(ctx context.Context, dir store.Directory, segment string, norms map[string][]int64) error
}

// LiveDocsFormat controls the encoding of the live-document bitset.
type LiveDocsFormat interface {
	ReadLiveDocs(ctx context.Context, dir store.Directory, segment string, docCount int) (*LiveDocs, error)
	WriteLiveDocs(ctx context.Context, dir store.Directory, segment string, live *LiveDocs) error
}

// TermVectorsFormat controls the encoding of per-document term vectors.
// The outer slice is indexed by document ID.
type TermVectorsFormat interface {
	ReadTermVectors(ctx context.Context, dir store.Directory, segment string) ([][]TermVector, error)
	WriteTermVectors(ctx context.Context, dir store.Directory, segment string, vectors [][]TermVector) error
}

// StoredFieldsFormat controls the encoding of stored document fields.
// Unlike the other formats, stored fields are accessed per document at
// query time, so the read side hands out a reader instead of
// materializing every document.
type StoredFieldsFormat interface {
	// StoredFieldsWriter opens a writer for the named segment.
	StoredFieldsWriter(ctx context.Context, dir store.Directory, segment string) (StoredFieldsWriter, error)
	// StoredFieldsReader opens a reader over a previously written segment.
	StoredFieldsReader(ctx context.Context, dir store.Directory, segment string) (StoredFieldsReader, error)
}

// StoredFieldsWriter receives documents in docID order and persists them
// on Close.
type StoredFieldsWriter interface {
	// WriteDocument appends the stored fields of the next document.
	WriteDocument(fields []StoredField) error
	// Close flushes all buffered documents to the directory.
	Close() error
}

// StoredFieldsReader retrieves the stored fields of single documents.
type StoredFieldsReader interface {
	// Document returns the stored fields of the given document.
	Document(ctx context.Context, docID int) ([]StoredField, error)
	// DocCount returns the number of documents in the segment.
	DocCount() int
	// Close releases reader resources.
	Close() error
}
