package lucene46

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lexigraph/segcodec/format"
	"github.com/lexigraph/segcodec/internal/codecutil"
	"github.com/lexigraph/segcodec/internal/compress"
	"github.com/lexigraph/segcodec/internal/stats"
	"github.com/lexigraph/segcodec/store"
)

const (
	storedFieldsFormatName = "Lucene46StoredFields"
	storedFieldsVersion    = 0
)

// Compile-time checks against the format contracts.
var (
	_ format.StoredFieldsFormat = (*storedFieldsFormat)(nil)
	_ format.StoredFieldsWriter = (*storedFieldsWriter)(nil)
	_ format.StoredFieldsReader = (*storedFieldsReader)(nil)
)

// storedFieldsFormat stores documents in compressed blocks so a single
// document can be retrieved by decompressing one block, not the whole
// segment. Readers keep recently used decompressed blocks in an LRU
// cache.
//
// Payload layout: doc count, block size, compressor name, block count,
// the compressed length of each block, then the concatenated compressed
// blocks. Each block decompresses to a JSON array of documents. The
// recorded compressor name is checked on read so a segment written with
// one compressor is refused by a codec configured for another.
type storedFieldsFormat struct {
	blockSize      int
	blockCacheSize int
	compressor     compress.Compressor
	stats          stats.Collector
}

func newStoredFieldsFormat(blockSize, blockCacheSize int, compressor compress.Compressor, collector stats.Collector) *storedFieldsFormat {
	if collector == nil {
		collector = stats.NewNoop()
	}
	return &storedFieldsFormat{
		blockSize:      blockSize,
		blockCacheSize: blockCacheSize,
		compressor:     compressor,
		stats:          collector,
	}
}

// StoredFieldsWriter opens a writer for the named segment.
func (f *storedFieldsFormat) StoredFieldsWriter(ctx context.Context, dir store.Directory, segment string) (format.StoredFieldsWriter, error) {
	return &storedFieldsWriter{
		format:  f,
		ctx:     ctx,
		dir:     dir,
		segment: segment,
	}, nil
}

// storedFieldsWriter buffers documents and flushes them as compressed
// blocks on Close.
type storedFieldsWriter struct {
	format  *storedFieldsFormat
	ctx     context.Context
	dir     store.Directory
	segment string
	docs    [][]format.StoredField
	closed  bool
}

// WriteDocument appends the stored fields of the next document.
func (w *storedFieldsWriter) WriteDocument(fields []format.StoredField) error {
	if w.closed {
		return fmt.Errorf("lucene46: stored fields writer closed")
	}
	doc := make([]format.StoredField, len(fields))
	copy(doc, fields)
	w.docs = append(w.docs, doc)
	return nil
}

// Close compresses the buffered documents into blocks and writes the
// segment file.
func (w *storedFieldsWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	blockSize := w.format.blockSize
	var blocks [][]byte
	for start := 0; start < len(w.docs); start += blockSize {
		end := start + blockSize
		if end > len(w.docs) {
			end = len(w.docs)
		}
		raw, err := json.Marshal(w.docs[start:end])
		if err != nil {
			return fmt.Errorf("encoding stored fields block: %w", err)
		}
		block, err := w.format.compressor.Compress(raw)
		if err != nil {
			return fmt.Errorf("compressing stored fields block: %w", err)
		}
		blocks = append(blocks, block)
	}

	var buf bytes.Buffer
	writeUvarint(&buf, uint64(len(w.docs)))
	writeUvarint(&buf, uint64(blockSize))
	writeString(&buf, w.format.compressor.Name())
	writeUvarint(&buf, uint64(len(blocks)))
	for _, block := range blocks {
		writeUvarint(&buf, uint64(len(block)))
	}
	for _, block := range blocks {
		buf.Write(block)
	}

	data := codecutil.Seal(storedFieldsFormatName, storedFieldsVersion, buf.Bytes())
	if err := w.dir.WriteFile(w.ctx, w.segment+extStoredFields, data); err != nil {
		return fmt.Errorf("writing stored fields: %w", err)
	}
	return nil
}

// StoredFieldsReader opens a reader over a previously written segment.
func (f *storedFieldsFormat) StoredFieldsReader(ctx context.Context, dir store.Directory, segment string) (format.StoredFieldsReader, error) {
	data, err := dir.ReadFile(ctx, segment+extStoredFields)
	if err != nil {
		return nil, fmt.Errorf("reading stored fields: %w", err)
	}

	payload, _, err := codecutil.Open(data, storedFieldsFormatName, storedFieldsVersion, storedFieldsVersion)
	if err != nil {
		return nil, fmt.Errorf("segment %q: %w", segment, err)
	}

	r := bytes.NewReader(payload)
	docCount, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("decoding stored fields: %w", err)
	}
	blockSize, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("decoding stored fields: %w", err)
	}
	if blockSize == 0 {
		return nil, fmt.Errorf("lucene46: stored fields block size is zero")
	}
	compressorName, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("decoding stored fields: %w", err)
	}
	if compressorName != f.compressor.Name() {
		return nil, fmt.Errorf("lucene46: stored fields compressed with %q, codec configured for %q", compressorName, f.compressor.Name())
	}
	blockCount, err := readUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("decoding stored fields: %w", err)
	}

	lengths := make([]int, blockCount)
	total := 0
	for i := range lengths {
		n, err := readUvarint(r)
		if err != nil {
			return nil, fmt.Errorf("decoding stored fields: %w", err)
		}
		lengths[i] = int(n)
		total += int(n)
	}
	if r.Len() != total {
		return nil, fmt.Errorf("lucene46: stored fields blocks are %d bytes, index says %d", r.Len(), total)
	}

	// Slice out each block; payload stays alive behind the sub-slices.
	blockData := payload[len(payload)-r.Len():]
	blocks := make([][]byte, blockCount)
	offset := 0
	for i, n := range lengths {
		blocks[i] = blockData[offset : offset+n]
		offset += n
	}

	cache, err := lru.New[int, [][]format.StoredField](f.blockCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating block cache: %w", err)
	}

	return &storedFieldsReader{
		format:    f,
		docCount:  int(docCount),
		blockSize: int(blockSize),
		blocks:    blocks,
		cache:     cache,
	}, nil
}

// storedFieldsReader serves single documents out of compressed blocks.
// Safe for concurrent use: blocks are read-only and the LRU cache locks
// internally.
type storedFieldsReader struct {
	format    *storedFieldsFormat
	docCount  int
	blockSize int
	blocks    [][]byte
	cache     *lru.Cache[int, [][]format.StoredField]
}

// Document returns the stored fields of the given document.
func (r *storedFieldsReader) Document(ctx context.Context, docID int) ([]format.StoredField, error) {
	if docID < 0 || docID >= r.docCount {
		return nil, fmt.Errorf("lucene46: doc %d out of range [0, %d)", docID, r.docCount)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	blockID := docID / r.blockSize
	docs, err := r.block(blockID)
	if err != nil {
		return nil, err
	}

	within := docID % r.blockSize
	if within >= len(docs) {
		return nil, fmt.Errorf("lucene46: doc %d missing from block %d", docID, blockID)
	}
	return docs[within], nil
}

func (r *storedFieldsReader) block(blockID int) ([][]format.StoredField, error) {
	if docs, ok := r.cache.Get(blockID); ok {
		r.format.stats.IncCounter(stats.MetricBlockCacheHits, 1)
		return docs, nil
	}
	r.format.stats.IncCounter(stats.MetricBlockCacheMisses, 1)

	if blockID >= len(r.blocks) {
		return nil, fmt.Errorf("lucene46: block %d out of range", blockID)
	}
	raw, err := r.format.compressor.Decompress(r.blocks[blockID])
	if err != nil {
		return nil, fmt.Errorf("decompressing block %d: %w", blockID, err)
	}
	var docs [][]format.StoredField
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decoding block %d: %w", blockID, err)
	}

	r.cache.Add(blockID, docs)
	return docs, nil
}

// DocCount returns the number of documents in the segment.
func (r *storedFieldsReader) DocCount() int {
	return r.docCount
}

// Close releases reader resources.
func (r *storedFieldsReader) Close() error {
	r.cache.Purge()
	return nil
}
