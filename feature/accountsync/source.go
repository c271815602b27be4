package accountsync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"account-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source supplies the raw text of the source-of-truth document.
type Source interface {
	// Read returns the document text, or an error wrapping ErrSourceNotFound.
	Read(ctx context.Context) (string, error)
	// Location describes where the document lives, for logs and reports.
	Location() string
}

// FileSource reads the document from the local filesystem.
type FileSource struct {
	Path string
}

// Read implements Source.
func (s FileSource) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read source document: %w", err)
	}
	return string(data), nil
}

// Location implements Source.
func (s FileSource) Location() string {
	return s.Path
}

// ObjectSource reads the document from an object in a storage bucket.
type ObjectSource struct {
	Client storage.Client
	Bucket string
	Object string
}

// Read implements Source.
func (s ObjectSource) Read(ctx context.Context) (string, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return "", s.wrap(err)
	}
	defer obj.Close()

	// minio defers the request until the first read, so missing objects surface here.
	data, err := io.ReadAll(obj)
	if err != nil {
		return "", s.wrap(err)
	}
	return string(data), nil
}

// Location implements Source.
func (s ObjectSource) Location() string {
	return "s3://" + s.Bucket + "/" + s.Object
}

func (s ObjectSource) wrap(err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, s.Location())
	}
	return fmt.Errorf("failed to read %s: %w", s.Location(), err)
}
