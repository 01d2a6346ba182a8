package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"notevault/config"
	"notevault/logger"
)

// MinioStore keeps uploads in a MinIO bucket instead of the local cache
// directory. Object keys are the library file names.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to the configured MinIO endpoint and makes sure
// the bucket exists.
func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
		Region: cfg.MinioRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: cfg.MinioRegion}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		logger.Info("created minio bucket", logger.String("bucket", cfg.MinioBucket))
	}

	return &MinioStore{client: client, bucket: cfg.MinioBucket}, nil
}

// Put streams r into the bucket under name, replacing any existing object.
func (s *MinioStore) Put(ctx context.Context, name string, r io.Reader) error {
	// Size -1: stream of unknown length, the client multiparts it.
	if _, err := s.client.PutObject(ctx, s.bucket, name, r, -1, minio.PutObjectOptions{}); err != nil {
		return fmt.Errorf("put object %q: %w", name, err)
	}
	return nil
}

// Remove deletes the object for name.
func (s *MinioStore) Remove(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", name, err)
	}
	return nil
}
