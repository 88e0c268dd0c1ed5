package port

import (
	"context"
	"io"
)

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// BlobStore defines durable byte storage keyed by object path. Writes are
// atomic from the caller's perspective; removing a missing path is not an
// error.
type BlobStore interface {
	SaveFile(ctx context.Context, filePath string, reader io.Reader, fileSize int64, opts map[string]string) error
	RemoveFile(ctx context.Context, filePath string) error
	GetFile(ctx context.Context, filePath string) (io.ReadSeekCloser, error)
	FileExists(ctx context.Context, filePath string) (bool, error)
	StatFile(ctx context.Context, filePath string) (FileInfo, error)
	PublicURL(filePath string) string
}
