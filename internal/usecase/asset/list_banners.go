package asset

import (
	"context"

	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
)

type bannerListerSrv struct {
	repo port.BannerRepository
}

// compile-time check: *bannerListerSrv must satisfy port.BannerLister
var _ port.BannerLister = (*bannerListerSrv)(nil)

// NewBannerLister constructs a BannerLister implementation.
func NewBannerLister(repo port.BannerRepository) port.BannerLister {
	return &bannerListerSrv{repo: repo}
}

func (s *bannerListerSrv) ListBanners(ctx context.Context, filter port.BannerFilter) ([]*model.Asset, error) {
	return s.repo.ListBanners(ctx, filter)
}
