// Package compress provides block compression for segment file payloads.
package compress

// Compressor compresses and decompresses whole blocks.
// Implementations must be safe for concurrent use.
type Compressor interface {
	// Compress returns the compressed form of src.
	Compress(src []byte) ([]byte, error)
	// Decompress returns the original bytes of a block produced by
	// Compress.
	Decompress(src []byte) ([]byte, error)
	// Name returns a short identifier recorded in file headers
	// (e.g., "zstd", "gzip"). Empty string means no compression.
	Name() string
}
