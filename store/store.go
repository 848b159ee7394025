// Package store defines the directory abstraction segment formats read
// from and write to.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a file does not exist in the directory.
var ErrNotFound = errors.New("store: file not found")

// Directory is a flat namespace of named files backing one or more
// segments. Implementations handle path layout and storage details
// internally.
type Directory interface {
	// ReadFile returns the full content of the named file.
	ReadFile(ctx context.Context, name string) ([]byte, error)

	// WriteFile creates or replaces the named file with data.
	WriteFile(ctx context.Context, name string, data []byte) error

	// ListFiles returns the names of all files in the directory.
	// Order is unspecified.
	ListFiles(ctx context.Context) ([]string, error)

	// DeleteFile removes the named file. Deleting a missing file
	// returns ErrNotFound.
	DeleteFile(ctx context.Context, name string) error

	// Close releases any resources held by the directory.
	Close() error
}
