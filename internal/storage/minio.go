package storage

import (
	"bytes"
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config carries the blob store settings. All credential fields are required;
// startup fails fast when any is missing.
type Config struct {
	Endpoint  string // S3-compatible endpoint, e.g. "s3.amazonaws.com"
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type minioStorage struct {
	client bucketClient
	bucket string
	region string
}

// bucketClient is the slice of *minio.Client used here, overridable in tests.
type bucketClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
}

// NewMinioStorage connects to the configured S3-compatible endpoint and
// verifies the bucket exists before any request is served.
func NewMinioStorage(ctx context.Context, cfg Config) (Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket check %q: %w", cfg.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.Bucket)
	}

	return &minioStorage{client: minioAdapter{client}, bucket: cfg.Bucket, region: cfg.Region}, nil
}

// minioAdapter narrows *minio.Client's io.Reader parameters to *bytes.Reader.
type minioAdapter struct {
	c *minio.Client
}

func (a minioAdapter) PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return a.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (a minioAdapter) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return a.c.RemoveObject(ctx, bucketName, objectName, opts)
}

func (a minioAdapter) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return a.c.BucketExists(ctx, bucketName)
}

func (s *minioStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("upload: empty key: %w", model.ErrStorage)
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("upload %s: %w (%v)", key, model.ErrStorage, err)
	}
	return nil
}

func (s *minioStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("delete %s: %w (%v)", key, model.ErrStorage, err)
	}
	return nil
}

// PublicURL uses the AWS virtual-hosted template. The template itself is
// deliberately not configurable; only bucket and region come from the
// environment.
func (s *minioStorage) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
