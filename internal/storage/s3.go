// Package storage archives produced output artifacts in an S3-compatible
// object store. The sink is optional; the tool works without it.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"openelev/internal/config"
)

// ArchiveService stores rendered outputs as objects, one per artifact.
type ArchiveService struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewArchiveService connects to the configured S3-compatible endpoint.
func NewArchiveService(cfg config.StorageConfig, logger *slog.Logger) (*ArchiveService, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("storage requires endpoint, access key, and secret key")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &ArchiveService{
		client: client,
		bucket: cfg.Bucket,
		logger: logger.With("component", "archive-service"),
	}, nil
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (s *ArchiveService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.Info("created archive bucket", "bucket", s.bucket)
	}
	return nil
}

// StoreArtifact uploads one rendered output under the given object key.
func (s *ArchiveService) StoreArtifact(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return fmt.Errorf("failed to store artifact %s: %w", key, err)
	}

	s.logger.Info("archived artifact", "bucket", s.bucket, "key", key, "bytes", len(data))
	return nil
}
