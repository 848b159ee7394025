// Package s3dir implements an AWS S3 backed directory.
package s3dir

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/lexigraph/segcodec/store"
)

// Compile-time check that Directory implements store.Directory.
var _ store.Directory = (*Directory)(nil)

// Directory is an AWS S3 backed directory.
type Directory struct {
	client *s3.Client
	bucket string
	prefix string
}

// New creates a new S3 directory.
// The bucket must already exist.
func New(ctx context.Context, bucketName string, opts ...Option) (*Directory, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	d := &Directory{
		client: s3.NewFromConfig(cfg),
		bucket: bucketName,
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Option configures a Directory.
type Option func(*Directory) error

// WithPrefix sets a key prefix for all operations.
func WithPrefix(prefix string) Option {
	return func(d *Directory) error {
		d.prefix = strings.TrimSuffix(prefix, "/")
		if d.prefix != "" {
			d.prefix += "/"
		}
		return nil
	}
}

// WithRegion sets the AWS region.
func WithRegion(region string) Option {
	return func(d *Directory) error {
		cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
		if err != nil {
			return fmt.Errorf("loading AWS config with region: %w", err)
		}
		d.client = s3.NewFromConfig(cfg)
		return nil
	}
}

// WithEndpoint sets a custom endpoint (for S3-compatible services like MinIO).
func WithEndpoint(endpoint string) Option {
	return func(d *Directory) error {
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			return fmt.Errorf("loading AWS config for endpoint: %w", err)
		}
		d.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
		return nil
	}
}

// ReadFile reads the content of the named file.
func (d *Directory) ReadFile(ctx context.Context, name string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(d.prefix + name),
	}

	result, err := d.client.GetObject(ctx, input)
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("reading object body: %w", err)
	}
	return data, nil
}

// WriteFile creates or replaces the named file.
func (d *Directory) WriteFile(ctx context.Context, name string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(d.prefix + name),
		Body:   bytes.NewReader(data),
	}

	if _, err := d.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// ListFiles returns the names of all files under the prefix.
func (d *Directory) ListFiles(ctx context.Context) ([]string, error) {
	var names []string

	paginator := s3.NewListObjectsV2Paginator(d.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(d.bucket),
		Prefix: aws.String(d.prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing files: %w", err)
		}
		for _, obj := range page.Contents {
			names = append(names, strings.TrimPrefix(aws.ToString(obj.Key), d.prefix))
		}
	}
	return names, nil
}

// DeleteFile removes the named file.
// S3 deletes are idempotent, so a missing key is still reported as
// ErrNotFound only when the object can be shown to be absent.
func (d *Directory) DeleteFile(ctx context.Context, name string) error {
	key := d.prefix + name

	_, err := d.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return store.ErrNotFound
		}
		return fmt.Errorf("checking file: %w", err)
	}

	_, err = d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// Close releases resources.
func (d *Directory) Close() error {
	// S3 client doesn't need explicit closing.
	return nil
}
