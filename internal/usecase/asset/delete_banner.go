package asset

import (
	"context"
	"errors"
	"log"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/port"
)

type bannerDeleterSrv struct {
	repo port.BannerRepository
	strg port.BlobStore
}

// compile-time check: *bannerDeleterSrv must satisfy port.BannerDeleter
var _ port.BannerDeleter = (*bannerDeleterSrv)(nil)

// NewBannerDeleter constructs a BannerDeleter implementation.
func NewBannerDeleter(repo port.BannerRepository, strg port.BlobStore) port.BannerDeleter {
	return &bannerDeleterSrv{repo: repo, strg: strg}
}

// DeleteBanner removes the record first, then the blob best-effort. An
// already-deleted banner is a no-op. A blob left behind by a failed remove
// is a recoverable leak, not an operation failure.
func (s *bannerDeleterSrv) DeleteBanner(ctx context.Context, id db.UUID) error {
	banner, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.strg.RemoveFile(ctx, banner.FilePath); err != nil {
		log.Printf("failed to remove banner blob %q: %v", banner.FilePath, err)
	}
	return nil
}
