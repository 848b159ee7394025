// Package gzipcompress provides a gzip block compressor.
package gzipcompress

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/lexigraph/segcodec/internal/compress"
)

// Compile-time check that Compressor implements compress.Compressor.
var _ compress.Compressor = (*Compressor)(nil)

// Compressor implements gzip block compression.
type Compressor struct{}

// New returns a new gzip compressor.
func New() *Compressor {
	return &Compressor{}
}

// Compress compresses src into a gzip stream.
func (c *Compressor) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decompresses a gzip stream.
func (c *Compressor) Decompress(src []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Name returns "gzip".
func (c *Compressor) Name() string {
	return "gzip"
}
