// Package zstdcompress provides a zstd block compressor.
package zstdcompress

import (
	"github.com/klauspost/compress/zstd"

	"github.com/lexigraph/segcodec/internal/compress"
)

// Compile-time check that Compressor implements compress.Compressor.
var _ compress.Compressor = (*Compressor)(nil)

// Compressor implements zstd block compression.
// The underlying encoder and decoder are stateless in EncodeAll/DecodeAll
// mode and shared across calls.
type Compressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// New returns a new zstd compressor.
func New() (*Compressor, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &Compressor{encoder: encoder, decoder: decoder}, nil
}

// Compress compresses src as a single zstd frame.
func (c *Compressor) Compress(src []byte) ([]byte, error) {
	return c.encoder.EncodeAll(src, nil), nil
}

// Decompress decompresses a zstd frame.
func (c *Compressor) Decompress(src []byte) ([]byte, error) {
	return c.decoder.DecodeAll(src, nil)
}

// Name returns "zstd".
func (c *Compressor) Name() string {
	return "zstd"
}
