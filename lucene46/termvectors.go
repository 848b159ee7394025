package lucene46

import (
	"bytes"
	"context"
	"fmt"

	"github.com/lexigraph/segcodec/format"
	"github.com/lexigraph/segcodec/internal/codecutil"
	"github.com/lexigraph/segcodec/store"
)

const (
	termVectorsFormatName = "Lucene46TermVectors"
	termVectorsVersion    = 0
)

// Compile-time check that termVectorsFormat implements format.TermVectorsFormat.
var _ format.TermVectorsFormat = (*termVectorsFormat)(nil)

// termVectorsFormat stores per-document term vectors.
// Layout: doc count, then per doc the field count, and per field the
// name, term count, and terms.
type termVectorsFormat struct{}

// WriteTermVectors persists the term vectors, one entry per document.
func (f *termVectorsFormat) WriteTermVectors(ctx context.Context, dir store.Directory, segment string, vectors [][]format.TermVector) error {
	var buf bytes.Buffer
	writeUvarint(&buf, uint64(len(vectors)))
	for _, doc := range vectors {
		writeUvarint(&buf, uint64(len(doc)))
		for _, tv := range doc {
			writeString(&buf, tv.Field)
			writeUvarint(&buf, uint64(len(tv.Terms)))
			for _, term := range tv.Terms {
				writeString(&buf, term)
			}
		}
	}

	data := codecutil.Seal(termVectorsFormatName, termVectorsVersion, buf.Bytes())
	if err := dir.WriteFile(ctx, segment+extTermVectors, data); err != nil {
		return fmt.Errorf("writing term vectors: %w", err)
	}
	return nil
}

// ReadTermVectors reads the term vectors of the named segment.
func (f *termVectorsFormat) ReadTermVectors(ctx context.Context, dir store.Directory, segment string) ([][]format.TermVector, error) {
	data, err := dir.ReadFile(ctx, segment+extTermVectors)
	if err != nil {
		return nil, fmt.Errorf("reading term vectors: %w", err)
	}

	payload, _, err := codecutil.Open(data, termVectorsFormatName, termVectorsVersion, termVectorsVersion)
	if err != nil {
		return nil, fmt.Errorf("segment %q: %w", segment, err)
	}

	r := bytes.NewReader(payload)
	docCount, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("decoding term vectors: %w", err)
	}

	vectors := make([][]format.TermVector, docCount)
	for i := range vectors {
		fieldCount, err := readUvarint(r)
		if err != nil {
			return nil, fmt.Errorf("decoding term vectors: %w", err)
		}
		doc := make([]format.TermVector, fieldCount)
		for j := range doc {
			if doc[j].Field, err = readString(r); err != nil {
				return nil, fmt.Errorf("decoding term vectors: %w", err)
			}
			termCount, err := readUvarint(r)
			if err != nil {
				return nil, fmt.Errorf("decoding term vectors: %w", err)
			}
			doc[j].Terms = make([]string, termCount)
			for k := range doc[j].Terms {
				if doc[j].Terms[k], err = readString(r); err != nil {
					return nil, fmt.Errorf("decoding term vectors: %w", err)
				}
			}
		}
		vectors[i] = doc
	}
	return vectors, nil
}
