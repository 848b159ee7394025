// Package gcsdir implements a Google Cloud Storage backed directory.
package gcsdir

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	segstore "github.com/lexigraph/segcodec/store"
)

// Compile-time check that Directory implements store.Directory.
var _ segstore.Directory = (*Directory)(nil)

// Directory is a Google Cloud Storage backed directory.
type Directory struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

// New creates a new GCS directory.
// The bucket must already exist.
func New(ctx context.Context, bucketName string, opts ...Option) (*Directory, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	d := &Directory{
		client: client,
		bucket: client.Bucket(bucketName),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Option configures a Directory.
type Option func(*Directory)

// WithPrefix sets an object prefix for all operations.
func WithPrefix(prefix string) Option {
	return func(d *Directory) {
		d.prefix = strings.TrimSuffix(prefix, "/")
		if d.prefix != "" {
			d.prefix += "/"
		}
	}
}

// ReadFile reads the content of the named file.
func (d *Directory) ReadFile(ctx context.Context, name string) ([]byte, error) {
	obj := d.bucket.Object(d.prefix + name)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, segstore.ErrNotFound
		}
		return nil, fmt.Errorf("creating reader: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading object: %w", err)
	}
	return data, nil
}

// WriteFile creates or replaces the named file.
func (d *Directory) WriteFile(ctx context.Context, name string, data []byte) error {
	obj := d.bucket.Object(d.prefix + name)

	writer := obj.NewWriter(ctx)
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("writing object: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing writer: %w", err)
	}
	return nil
}

// ListFiles returns the names of all files under the prefix.
func (d *Directory) ListFiles(ctx context.Context) ([]string, error) {
	var names []string

	it := d.bucket.Objects(ctx, &storage.Query{Prefix: d.prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing files: %w", err)
		}
		names = append(names, strings.TrimPrefix(attrs.Name, d.prefix))
	}
	return names, nil
}

// DeleteFile removes the named file.
func (d *Directory) DeleteFile(ctx context.Context, name string) error {
	obj := d.bucket.Object(d.prefix + name)

	if err := obj.Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return segstore.ErrNotFound
		}
		return fmt.Errorf("deleting object: %w", err)
	}
	return nil
}

// Close releases resources.
func (d *Directory) Close() error {
	return d.client.Close()
}
