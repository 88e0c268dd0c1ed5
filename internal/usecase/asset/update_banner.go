package asset

import (
	"context"
	"fmt"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
)

type bannerUpdaterSrv struct {
	repo port.BannerRepository
}

// compile-time check: *bannerUpdaterSrv must satisfy port.BannerUpdater
var _ port.BannerUpdater = (*bannerUpdaterSrv)(nil)

// NewBannerUpdater constructs a BannerUpdater implementation.
func NewBannerUpdater(repo port.BannerRepository) port.BannerUpdater {
	return &bannerUpdaterSrv{repo: repo}
}

// UpdateBanner replaces the business fields of an existing banner. The file
// itself is immutable; swapping the image means creating a new banner.
func (s *bannerUpdaterSrv) UpdateBanner(ctx context.Context, id db.UUID, in port.UpdateBannerInput) (*model.Asset, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerType != model.OwnerTypeCollection {
		return nil, fmt.Errorf("%w: asset #%s is not a banner", ErrValidation, id)
	}

	banner := in.Banner
	if err := s.repo.UpdateBanner(ctx, id, &banner); err != nil {
		return nil, err
	}

	existing.Banner = &banner
	return existing, nil
}
