package lucene46

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lexigraph/segcodec/format"
	"github.com/lexigraph/segcodec/internal/codecutil"
	"github.com/lexigraph/segcodec/store"
)

const (
	liveDocsFormatName = "Lucene46LiveDocs"
	liveDocsVersion    = 0
)

// Compile-time check that liveDocsFormat implements format.LiveDocsFormat.
var _ format.LiveDocsFormat = (*liveDocsFormat)(nil)

// liveDocsFormat stores the live-document bitset as packed 64-bit words.
type liveDocsFormat struct{}

// WriteLiveDocs persists the bitset.
func (f *liveDocsFormat) WriteLiveDocs(ctx context.Context, dir store.Directory, segment string, live *format.LiveDocs) error {
	words := live.Bits()

	var buf bytes.Buffer
	writeUvarint(&buf, uint64(live.Size()))
	for _, w := range words {
		var scratch [8]byte
		binary.BigEndian.PutUint64(scratch[:], w)
		buf.Write(scratch[:])
	}

	data := codecutil.Seal(liveDocsFormatName, liveDocsVersion, buf.Bytes())
	if err := dir.WriteFile(ctx, segment+extLiveDocs, data); err != nil {
		return fmt.Errorf("writing live docs: %w", err)
	}
	return nil
}

// ReadLiveDocs reads the bitset of the named segment. The caller passes
// the segment's document count so a file written for a different segment
// shape is rejected instead of silently resizing.
func (f *liveDocsFormat) ReadLiveDocs(ctx context.Context, dir store.Directory, segment string, docCount int) (*format.LiveDocs, error) {
	data, err := dir.ReadFile(ctx, segment+extLiveDocs)
	if err != nil {
		return nil, fmt.Errorf("reading live docs: %w", err)
	}

	payload, _, err := codecutil.Open(data, liveDocsFormatName, liveDocsVersion, liveDocsVersion)
	if err != nil {
		return nil, fmt.Errorf("segment %q: %w", segment, err)
	}

	r := bytes.NewReader(payload)
	size, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("decoding live docs: %w", err)
	}
	if int(size) != docCount {
		return nil, fmt.Errorf("lucene46: live docs cover %d docs, segment has %d", size, docCount)
	}

	words := make([]uint64, (docCount+63)/64)
	for i := range words {
		var scratch [8]byte
		if _, err := io.ReadFull(r, scratch[:]); err != nil {
			return nil, fmt.Errorf("decoding live docs: %w", err)
		}
		words[i] = binary.BigEndian.Uint64(scratch[:])
	}

	return format.LiveDocsFromBits(words, docCount)
}
