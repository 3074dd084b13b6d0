// Package storage uploads portfolio media and applicant CVs to
// S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ProgressFunc receives the number of bytes transferred so far.
type ProgressFunc func(transferred int64)

// Uploader is the file storage boundary.
type Uploader interface {
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error)
	UploadWithProgress(ctx context.Context, path string, r io.Reader, size int64, contentType string, progress ProgressFunc) (string, error)
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, prefix string) ([]string, error)
}

// Config connects the uploader to a MinIO/S3 endpoint.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL is prefixed to object paths to form the URL stored on
	// content records. Defaults to the endpoint itself.
	PublicBaseURL string
}

type minioUploader struct {
	client *minio.Client
	bucket string
	base   string
}

// NewMinio builds an Uploader and ensures the bucket exists.
func NewMinio(ctx context.Context, cfg Config) (Uploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &minioUploader{client: client, bucket: cfg.Bucket, base: base}, nil
}

func (u *minioUploader) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error) {
	return u.UploadWithProgress(ctx, path, r, size, contentType, nil)
}

func (u *minioUploader) UploadWithProgress(ctx context.Context, path string, r io.Reader, size int64, contentType string, progress ProgressFunc) (string, error) {
	path = strings.TrimPrefix(path, "/")
	if progress != nil {
		r = &progressReader{r: r, fn: progress}
	}
	_, err := u.client.PutObject(ctx, u.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	return u.base + "/" + u.bucket + "/" + path, nil
}

func (u *minioUploader) Delete(ctx context.Context, path string) error {
	path = strings.TrimPrefix(path, "/")
	if err := u.client.RemoveObject(ctx, u.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

func (u *minioUploader) List(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimPrefix(prefix, "/")
	var paths []string
	for obj := range u.client.ListObjects(ctx, u.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s: %w", prefix, obj.Err)
		}
		paths = append(paths, obj.Key)
	}
	return paths, nil
}

type progressReader struct {
	r     io.Reader
	fn    ProgressFunc
	total int64
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.total += int64(n)
		p.fn(p.total)
	}
	return n, err
}
