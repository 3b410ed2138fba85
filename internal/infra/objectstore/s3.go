package objectstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store talks to any S3-compatible bucket (R2, MinIO, AWS).
type S3Store struct {
	client *minio.Client
	bucket string
}

func NewS3(cfg Config) (*S3Store, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	endpoint := normalizeEndpoint(cfg.Endpoint)
	if bucket == "" || endpoint == "" {
		return nil, fmt.Errorf("objectstore: s3 endpoint and bucket are required")
	}

	opts := &minio.Options{
		Secure: cfg.UseSSL,
		Region: strings.TrimSpace(cfg.Region),
	}
	accessKey := strings.TrimSpace(cfg.AccessKey)
	secretKey := strings.TrimSpace(cfg.SecretKey)
	if accessKey != "" && secretKey != "" {
		opts.Creds = credentials.NewStaticV4(accessKey, secretKey, "")
	}

	client, err := minio.New(endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("objectstore: create s3 client: %w", err)
	}
	return &S3Store{client: client, bucket: bucket}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload object %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// normalizeEndpoint strips a scheme and path; minio wants host[:port].
func normalizeEndpoint(raw string) string {
	endpoint := strings.TrimSpace(raw)
	if strings.Contains(endpoint, "://") {
		if parsed, err := url.Parse(endpoint); err == nil {
			return parsed.Host
		}
	}
	return strings.TrimRight(endpoint, "/")
}
