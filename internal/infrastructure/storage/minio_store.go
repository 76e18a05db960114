package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jfotso/immogest-backend/internal/domain/ports"
	"github.com/jfotso/immogest-backend/internal/infrastructure/config"
)

// MinIOStore implementa ports.BlobStore sobre um bucket MinIO/S3
type MinIOStore struct {
	client *minio.Client
	cfg    *config.MinIOConfig
}

// NewMinIOStore conecta ao MinIO e garante que o bucket existe
func NewMinIOStore(ctx context.Context, cfg *config.MinIOConfig) (ports.BlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStore{client: client, cfg: cfg}, nil
}

func (s *MinIOStore) Upload(ctx context.Context, prefix, fileName string, reader io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now().UTC()
	objectKey := fmt.Sprintf("%s/%d/%02d/%s%s",
		strings.Trim(prefix, "/"),
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt,
	)

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectKey, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload object: %w", err)
	}

	url, err := s.presignedURL(ctx, objectKey)
	if err != nil {
		return "", "", err
	}

	return objectKey, url, nil
}

func (s *MinIOStore) Remove(ctx context.Context, objectKey string) error {
	return s.client.RemoveObject(ctx, s.cfg.Bucket, objectKey, minio.RemoveObjectOptions{})
}

func (s *MinIOStore) presignedURL(ctx context.Context, objectKey string) (string, error) {
	expiry := s.cfg.URLExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	u, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, objectKey, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign object url: %w", err)
	}
	return u.String(), nil
}
