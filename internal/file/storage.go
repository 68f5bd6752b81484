//go:generate mockgen -source=storage.go -destination=mock_storage.go -package=file
package file

import (
	"context"
	"io"

	"go.uber.org/zap"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"

	"taskly-api/pkg/cerror"
)

var ErrorFileNotFound = &cerror.CustomError{
	Kind:        cerror.KindNotFound,
	Message:     "file not found",
	LogMessage:  "file not found",
	LogSeverity: zap.WarnLevel,
}

// Storage keeps file content. Metadata is the repository's concern.
type Storage interface {
	Put(ctx context.Context, key, contentType string, content io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type storage struct {
	bucket *blob.Bucket
}

// OpenBucket opens a bucket from a URL such as file:///var/taskly?create_dir=true
// or mem://.
func OpenBucket(ctx context.Context, bucketUrl string) (*blob.Bucket, error) {
	return blob.OpenBucket(ctx, bucketUrl)
}

func NewStorage(bucket *blob.Bucket) Storage {
	return &storage{
		bucket: bucket,
	}
}

func (s *storage) Put(ctx context.Context, key, contentType string, content io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return cerror.Internal("error occurred while open blob writer", err)
	}

	if _, err = io.Copy(writer, content); err != nil {
		_ = writer.Close()
		return cerror.Internal("error occurred while write blob", err)
	}

	if err = writer.Close(); err != nil {
		return cerror.Internal("error occurred while close blob writer", err)
	}

	return nil
}

func (s *storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrorFileNotFound.With(zap.String("key", key))
		}

		return nil, cerror.Internal("error occurred while open blob reader", err)
	}

	return reader, nil
}

// Delete treats a missing blob as already deleted.
func (s *storage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return cerror.Internal("error occurred while delete blob", err)
	}

	return nil
}
