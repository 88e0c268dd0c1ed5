package storage

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dbk/assets-ms-go/internal/port"
	"github.com/dbk/assets-ms-go/internal/usecase/asset"
)

// MinioStorage is a bucket-scoped blob store backed by MinIO.
type MinioStorage struct {
	client     minioClient
	bucketName string
	useSSL     bool
}

type Strg struct {
	Client minioClient
	useSSL bool
}

// compile-time check: *MinioStorage must satisfy port.BlobStore
var _ port.BlobStore = (*MinioStorage)(nil)

func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*Strg, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &Strg{Client: client, useSSL: useSSL}, nil
}

// WithBucket scopes the client to one bucket, creating it when missing.
func (c *Strg) WithBucket(bucket string) (port.BlobStore, error) {
	ok, err := c.Client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", bucket)
		if err := c.Client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, mapMinioErr(err)
		}
	}
	return &MinioStorage{client: c.Client, bucketName: bucket, useSSL: c.useSSL}, nil
}

func (s *MinioStorage) FileExists(ctx context.Context, filePath string) (bool, error) {
	log.Printf("checking if file %q exists in bucket %q...", filePath, s.bucketName)

	_, err := s.StatFile(ctx, filePath)
	if errors.Is(err, asset.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MinioStorage) StatFile(ctx context.Context, filePath string) (port.FileInfo, error) {
	log.Printf("getting stats on file %q in bucket %q...", filePath, s.bucketName)

	info, err := s.client.StatObject(ctx, s.bucketName, filePath, minio.StatObjectOptions{})
	if err != nil {
		return port.FileInfo{}, mapMinioErr(err)
	}
	return port.FileInfo{
		SizeBytes:   info.Size,
		ContentType: info.ContentType,
	}, nil
}

// RemoveFile is idempotent: removing a missing path is not an error.
func (s *MinioStorage) RemoveFile(ctx context.Context, filePath string) error {
	log.Printf("removing file %q from bucket %q...", filePath, s.bucketName)

	err := s.client.RemoveObject(ctx, s.bucketName, filePath, minio.RemoveObjectOptions{})
	if errors.Is(mapMinioErr(err), asset.ErrObjectNotFound) {
		return nil
	}
	return mapMinioErr(err)
}

func (s *MinioStorage) GetFile(ctx context.Context, filePath string) (io.ReadSeekCloser, error) {
	log.Printf("getting file %q from bucket %q...", filePath, s.bucketName)

	obj, err := s.client.GetObject(ctx, s.bucketName, filePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return obj, nil
}

// SaveFile uploads the full content at filePath. The write is atomic from
// the caller's perspective: either the whole object becomes visible or
// nothing does.
func (s *MinioStorage) SaveFile(ctx context.Context, filePath string, reader io.Reader, fileSize int64, opts map[string]string) error {
	log.Printf("saving file %q into bucket %q...", filePath, s.bucketName)

	putOpts := minio.PutObjectOptions{}
	if ct := opts["Content-Type"]; ct != "" {
		putOpts.ContentType = ct
	}

	_, err := s.client.PutObject(ctx, s.bucketName, filePath, reader, fileSize, putOpts)
	if err != nil {
		return mapMinioErr(err)
	}
	return nil
}

// PublicURL derives the public-facing locator for filePath, deterministic
// for a given endpoint and bucket.
func (s *MinioStorage) PublicURL(filePath string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return scheme + "://" + s.client.EndpointURL().Host + "/" + s.bucketName + "/" + filePath
}
