package accountsync

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"account-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// snapshotLayout sorts lexicographically in time order.
const snapshotLayout = "20060102T150405.000000000Z"

// Archiver stores snapshots of the local document in a storage bucket.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
	keep   int
	now    func() time.Time
}

// NewArchiver creates an archiver writing under prefix in bucket, retaining at
// most keep snapshots per document (zero keeps all).
func NewArchiver(client storage.Client, bucket, prefix string, keep int) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		keep:   keep,
		now:    time.Now,
	}
}

// Archive uploads content as a new snapshot of the named document and prunes
// old snapshots. It returns the object key written. When only pruning fails
// the key is still returned, with an error wrapping ErrPruneFailed.
func (a *Archiver) Archive(ctx context.Context, name, content string) (string, error) {
	key := path.Join(a.prefix, name, a.now().UTC().Format(snapshotLayout)+".txt")

	_, err := a.client.PutObject(ctx, a.bucket, key, strings.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	if a.keep > 0 {
		if err := a.prune(ctx, name); err != nil {
			return key, fmt.Errorf("%w: %w", ErrPruneFailed, err)
		}
	}
	return key, nil
}

// List returns the snapshot keys of the named document, oldest first.
func (a *Archiver) List(ctx context.Context, name string) ([]string, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    path.Join(a.prefix, name) + "/",
		Recursive: true,
	}

	var keys []string
	for obj := range a.client.ListObjects(ctx, a.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (a *Archiver) prune(ctx context.Context, name string) error {
	keys, err := a.List(ctx, name)
	if err != nil {
		return err
	}
	if len(keys) <= a.keep {
		return nil
	}
	for _, key := range keys[:len(keys)-a.keep] {
		if err := a.client.RemoveObject(ctx, a.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove snapshot %s: %w", key, err)
		}
	}
	return nil
}
