// Package noopcompress provides a no-op compressor (no compression).
package noopcompress

import "github.com/lexigraph/segcodec/internal/compress"

// Compile-time check that Compressor implements compress.Compressor.
var _ compress.Compressor = (*Compressor)(nil)

// Compressor implements no compression.
type Compressor struct{}

// New returns a new no-op compressor.
func New() *Compressor {
	return &Compressor{}
}

// Compress returns src unchanged.
func (c *Compressor) Compress(src []byte) ([]byte, error) {
	return src, nil
}

// Decompress returns src unchanged.
func (c *Compressor) Decompress(src []byte) ([]byte, error) {
	return src, nil
}

// Name returns empty string.
func (c *Compressor) Name() string {
	return ""
}
