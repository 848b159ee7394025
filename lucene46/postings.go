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
	postingsFormatName = "Lucene46Postings"
	postingsVersion    = 0
)

// Compile-time check that postingsFormat implements format.PostingsFormat.
var _ format.PostingsFormat = (*postingsFormat)(nil)

// postingsFormat stores postings lists with delta-encoded doc IDs.
// Layout: term count, then per term the field, term text, doc count,
// and the gaps between consecutive doc IDs as uvarints.
type postingsFormat struct{}

// WritePostings persists the postings lists. Doc IDs within each list
// must be ascending; delta encoding depends on it.
func (f *postingsFormat) WritePostings(ctx context.Context, dir store.Directory, segment string, postings []format.TermPostings) error {
	var buf bytes.Buffer
	writeUvarint(&buf, uint64(len(postings)))
	for _, tp := range postings {
		writeString(&buf, tp.Field)
		writeString(&buf, tp.Term)
		writeUvarint(&buf, uint64(len(tp.Docs)))
		prev := int32(0)
		for i, doc := range tp.Docs {
			if doc < 0 {
				return fmt.Errorf("lucene46: postings for %s:%s has negative doc %d", tp.Field, tp.Term, doc)
			}
			if i > 0 && doc <= prev {
				return fmt.Errorf("lucene46: postings for %s:%s not ascending at doc %d", tp.Field, tp.Term, doc)
			}
			writeUvarint(&buf, uint64(doc-prev))
			prev = doc
		}
	}

	data := codecutil.Seal(postingsFormatName, postingsVersion, buf.Bytes())
	if err := dir.WriteFile(ctx, segment+extPostings, data); err != nil {
		return fmt.Errorf("writing postings: %w", err)
	}
	return nil
}

// ReadPostings reads the postings lists of the named segment.
func (f *postingsFormat) ReadPostings(ctx context.Context, dir store.Directory, segment string) ([]format.TermPostings, error) {
	data, err := dir.ReadFile(ctx, segment+extPostings)
	if err != nil {
		return nil, fmt.Errorf("reading postings: %w", err)
	}

	payload, _, err := codecutil.Open(data, postingsFormatName, postingsVersion, postingsVersion)
	if err != nil {
		return nil, fmt.Errorf("segment %q: %w", segment, err)
	}

	r := bytes.NewReader(payload)
	termCount, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("decoding postings: %w", err)
	}

	postings := make([]format.TermPostings, 0, termCount)
	for i := uint64(0); i < termCount; i++ {
		var tp format.TermPostings
		if tp.Field, err = readString(r); err != nil {
			return nil, fmt.Errorf("decoding postings: %w", err)
		}
		if tp.Term, err = readString(r); err != nil {
			return nil, fmt.Errorf("decoding postings: %w", err)
		}
		docCount, err := readUvarint(r)
		if err != nil {
			return nil, fmt.Errorf("decoding postings: %w", err)
		}
		tp.Docs = make([]int32, docCount)
		prev := int32(0)
		for j := range tp.Docs {
			gap, err := readUvarint(r)
			if err != nil {
				return nil, fmt.Errorf("decoding postings: %w", err)
			}
			prev += int32(gap)
			tp.Docs[j] = prev
		}
		postings = append(postings, tp)
	}
	return postings, nil
}
