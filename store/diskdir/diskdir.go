// Package diskdir implements a filesystem-backed directory.
package diskdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexigraph/segcodec/store"
)

// Compile-time check that Directory implements store.Directory.
var _ store.Directory = (*Directory)(nil)

// Directory is a filesystem-backed directory.
type Directory struct {
	root string
}

// New creates a new disk directory rooted at the given path.
// The directory must exist.
func New(root string) (*Directory, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	return &Directory{root: root}, nil
}

// ReadFile reads the content of the named file.
func (d *Directory) ReadFile(ctx context.Context, name string) ([]byte, error) {
	// Check for cancellation before starting I/O.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path, err := d.filePath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// WriteFile creates or replaces the named file.
// The write goes through a temp file and rename so readers never observe
// a partially written file.
func (d *Directory) WriteFile(ctx context.Context, name string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path, err := d.filePath(name)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming file: %w", err)
	}
	return nil
}

// ListFiles returns the names of all regular files under the root.
func (d *Directory) ListFiles(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// DeleteFile removes the named file.
func (d *Directory) DeleteFile(ctx context.Context, name string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path, err := d.filePath(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return store.ErrNotFound
		}
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// Close releases any resources held by the directory.
func (d *Directory) Close() error {
	return nil
}

// filePath maps a file name to a path under the root, rejecting names
// that would escape it.
func (d *Directory) filePath(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return filepath.Join(d.root, name), nil
}
