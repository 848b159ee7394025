// Package memdir provides an in-memory directory implementation for testing.
package memdir

import (
	"context"
	"sync"

	"github.com/lexigraph/segcodec/store"
)

// Compile-time check that Directory implements store.Directory.
var _ store.Directory = (*Directory)(nil)

// Directory is an in-memory directory for testing.
type Directory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// New creates a new in-memory directory.
func New() *Directory {
	return &Directory{
		files: make(map[string][]byte),
	}
}

// ReadFile reads a file from memory.
func (d *Directory) ReadFile(ctx context.Context, name string) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	data, ok := d.files[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	// Copy so callers cannot mutate stored bytes.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile writes a file into memory.
// The data is copied to prevent caller mutations from affecting the directory.
func (d *Directory) WriteFile(ctx context.Context, name string, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	d.files[name] = copied
	return nil
}

// ListFiles returns the names of all files.
func (d *Directory) ListFiles(ctx context.Context) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.files))
	for name := range d.files {
		names = append(names, name)
	}
	return names, nil
}

// DeleteFile removes a file from memory.
func (d *Directory) DeleteFile(ctx context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.files[name]; !ok {
		return store.ErrNotFound
	}
	delete(d.files, name)
	return nil
}

// Close is a no-op for the memory directory.
func (d *Directory) Close() error {
	return nil
}
