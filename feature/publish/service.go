package publish

import (
	"context"
	"fmt"
	"os"
	"strings"

	"launchpad/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service uploads exported image tarballs to object storage.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new publish service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// ObjectName returns the storage key for an exported image: the tag with
// path separators flattened, qualified by the build ID.
func ObjectName(tag, buildID string) string {
	safe := strings.NewReplacer("/", "_", ":", "_").Replace(tag)
	return fmt.Sprintf("images/%s@%s.tar", safe, buildID)
}

// Publish uploads the tarball at path under the object name derived from tag
// and buildID. The target bucket is created when missing. An existing object
// under the same name is refused unless replace is set, in which case it is
// removed first.
func (s *Service) Publish(ctx context.Context, path, tag, buildID string, replace bool) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image tarball: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat image tarball: %w", err)
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
		s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	}

	object := ObjectName(tag, buildID)
	if _, err := s.client.StatObject(ctx, s.bucket, object, minio.StatObjectOptions{}); err == nil {
		if !replace {
			return "", fmt.Errorf("object %s already exists in bucket %s", object, s.bucket)
		}
		if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
			return "", fmt.Errorf("failed to remove existing object %s: %w", object, err)
		}
	}

	s.logger.Info("Uploading image tarball",
		zap.String("bucket", s.bucket),
		zap.String("object", object),
		zap.Int64("size_bytes", info.Size()),
	)

	_, err = s.client.PutObject(ctx, s.bucket, object, f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/x-tar",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image tarball: %w", err)
	}

	return object, nil
}
