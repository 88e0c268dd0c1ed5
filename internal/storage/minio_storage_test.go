package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/dbk/assets-ms-go/internal/port"
	"github.com/dbk/assets-ms-go/internal/usecase/asset"
)

type mockMinio struct {
	bucketExistsFn func(ctx context.Context, bucketName string) (bool, error)
	makeBucketFn   func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	removeObjectFn func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	statObjectFn   func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	getObjectFn    func(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	putObjectFn    func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	endpointURL    *url.URL
}

func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.bucketExistsFn(ctx, bucketName)
}
func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.makeBucketFn(ctx, bucketName, opts)
}
func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return m.removeObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return m.statObjectFn(ctx, bucket, key, opts)
}
func (m *mockMinio) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error) {
	return m.getObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.putObjectFn(ctx, bucketName, objectName, reader, objectSize, opts)
}
func (m *mockMinio) EndpointURL() *url.URL {
	return m.endpointURL
}

func makeStorage(mockClient *mockMinio, bucket string, useSSL bool) port.BlobStore {
	return &MinioStorage{
		client:     mockClient,
		bucketName: bucket,
		useSSL:     useSSL,
	}
}

func noSuchKeyErr() error {
	e := minio.ToErrorResponse(errors.New("ignored"))
	e.Code = "NoSuchKey"
	return e
}

func TestWithBucket(t *testing.T) {
	tests := []struct {
		name           string
		exists         bool
		existsErr      error
		makeErr        error
		wantMakeCalled bool
		wantErr        bool
	}{
		{
			name:           "bucket exists, no create",
			exists:         true,
			wantMakeCalled: false,
		},
		{
			name:           "bucket missing, created",
			exists:         false,
			wantMakeCalled: true,
		},
		{
			name:      "exists check fails",
			existsErr: errors.New("network down"),
			wantErr:   true,
		},
		{
			name:           "create fails",
			exists:         false,
			makeErr:        errors.New("denied"),
			wantMakeCalled: true,
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			makeCalled := false
			mock := &mockMinio{
				bucketExistsFn: func(_ context.Context, _ string) (bool, error) {
					return tt.exists, tt.existsErr
				},
				makeBucketFn: func(_ context.Context, _ string, _ minio.MakeBucketOptions) error {
					makeCalled = true
					return tt.makeErr
				},
			}
			c := &Strg{Client: mock}

			strg, err := c.WithBucket("assets")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strg == nil {
				t.Fatal("expected storage, got nil")
			}
			if makeCalled != tt.wantMakeCalled {
				t.Errorf("MakeBucket called = %v; want %v", makeCalled, tt.wantMakeCalled)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	ctx := context.Background()

	mock1 := &mockMinio{
		statObjectFn: func(_ context.Context, _, _ string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
			return minio.ObjectInfo{Size: 10}, nil
		},
	}
	s1 := makeStorage(mock1, "b", false)
	exists1, err1 := s1.FileExists(ctx, "foo")
	if err1 != nil {
		t.Fatalf("unexpected error: %v", err1)
	}
	if !exists1 {
		t.Error("exists = false; want true")
	}

	// NoSuchKey → does not exist, no error
	mock2 := &mockMinio{
		statObjectFn: func(_ context.Context, _, _ string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
			return minio.ObjectInfo{}, noSuchKeyErr()
		},
	}
	s2 := makeStorage(mock2, "b", false)
	exists2, err2 := s2.FileExists(ctx, "bar")
	if err2 != nil {
		t.Fatalf("unexpected error: %v", err2)
	}
	if exists2 {
		t.Error("exists = true; want false")
	}

	mock3 := &mockMinio{
		statObjectFn: func(_ context.Context, _, _ string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
			return minio.ObjectInfo{}, errors.New("boom")
		},
	}
	s3 := makeStorage(mock3, "b", true)
	if _, err3 := s3.FileExists(ctx, "baz"); err3 == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSaveFile(t *testing.T) {
	ctx := context.Background()

	var gotKey, gotCT string
	var gotSize int64
	mock := &mockMinio{
		putObjectFn: func(_ context.Context, _ string, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotKey = objectName
			gotSize = objectSize
			gotCT = opts.ContentType
			return minio.UploadInfo{}, nil
		},
	}
	s := makeStorage(mock, "b", false)

	content := []byte("video bytes")
	err := s.SaveFile(ctx, "videos/p1.mp4", bytes.NewReader(content), int64(len(content)), map[string]string{"Content-Type": "video/mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "videos/p1.mp4" {
		t.Errorf("object key = %q; want %q", gotKey, "videos/p1.mp4")
	}
	if gotSize != int64(len(content)) {
		t.Errorf("size = %d; want %d", gotSize, len(content))
	}
	if gotCT != "video/mp4" {
		t.Errorf("content type = %q; want %q", gotCT, "video/mp4")
	}

	mockErr := &mockMinio{
		putObjectFn: func(_ context.Context, _, _ string, _ io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
			return minio.UploadInfo{}, errors.New("disk full")
		},
	}
	sErr := makeStorage(mockErr, "b", false)
	if err := sErr.SaveFile(ctx, "k", bytes.NewReader(nil), 0, nil); !errors.Is(err, asset.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestRemoveFile_MissingIsNoop(t *testing.T) {
	ctx := context.Background()

	mock := &mockMinio{
		removeObjectFn: func(_ context.Context, _, _ string, _ minio.RemoveObjectOptions) error {
			return noSuchKeyErr()
		},
	}
	s := makeStorage(mock, "b", false)
	if err := s.RemoveFile(ctx, "gone"); err != nil {
		t.Fatalf("expected nil for missing object, got %v", err)
	}

	mockErr := &mockMinio{
		removeObjectFn: func(_ context.Context, _, _ string, _ minio.RemoveObjectOptions) error {
			return errors.New("boom")
		},
	}
	sErr := makeStorage(mockErr, "b", false)
	if err := sErr.RemoveFile(ctx, "k"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPublicURL(t *testing.T) {
	endp, _ := url.Parse("https://files.example")
	mock := &mockMinio{endpointURL: endp}

	s1 := makeStorage(mock, "buck", false)
	got1 := s1.PublicURL("f.txt")
	want1 := "http://files.example/buck/f.txt"
	if got1 != want1 {
		t.Errorf("PublicURL = %q; want %q", got1, want1)
	}

	s2 := makeStorage(mock, "buck", true)
	got2 := s2.PublicURL("dir/x.jpg")
	want2 := "https://files.example/buck/dir/x.jpg"
	if got2 != want2 {
		t.Errorf("PublicURL = %q; want %q", got2, want2)
	}
}
