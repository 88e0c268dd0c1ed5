// Package memory provides map-backed implementations of the persistence
// ports. They honour the same contracts as the MariaDB repositories and are
// meant for local development and tests that need real state without a
// database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	assetService "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

type AssetRepository struct {
	mu     sync.RWMutex
	assets map[db.UUID]*model.Asset
	links  *LinkStore
}

// compile-time check: *AssetRepository must satisfy port.BannerRepository
var _ port.BannerRepository = (*AssetRepository)(nil)

// NewAssetRepository builds an empty in-memory asset store. The link store
// is consulted to decide which records count as unlinked.
func NewAssetRepository(links *LinkStore) *AssetRepository {
	return &AssetRepository{
		assets: make(map[db.UUID]*model.Asset),
		links:  links,
	}
}

func (r *AssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *asset
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.assets[cp.ID] = &cp
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id db.UUID) (*model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, assetService.ErrNotFound
	}
	cp := *asset
	return &cp, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id db.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.assets, id)
	return nil
}

func (r *AssetRepository) ListByOwner(ctx context.Context, owner model.Owner) ([]*model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Asset
	for _, asset := range r.assets {
		if asset.OwnerType == owner.Type && asset.OwnerID == owner.ID {
			cp := *asset
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *AssetRepository) ListUnlinkedCreatedBefore(ctx context.Context, before time.Time) ([]*model.Asset, error) {
	linked := r.links.linkedIDs()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Asset
	for _, asset := range r.assets {
		if asset.OwnerType == model.OwnerTypeCollection {
			continue
		}
		if linked[asset.ID] || !asset.CreatedAt.Before(before) {
			continue
		}
		cp := *asset
		out = append(out, &cp)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *AssetRepository) ListBanners(ctx context.Context, filter port.BannerFilter) ([]*model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	var out []*model.Asset
	for _, asset := range r.assets {
		if asset.OwnerType != model.OwnerTypeCollection {
			continue
		}
		if filter.CollectionHandle != "" && asset.OwnerID != filter.CollectionHandle {
			continue
		}
		if filter.OnlyActive && !bannerActiveAt(asset.Banner, now) {
			continue
		}
		cp := *asset
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := 0, 0
		if out[i].Banner != nil {
			pi = out[i].Banner.Priority
		}
		if out[j].Banner != nil {
			pj = out[j].Banner.Priority
		}
		if pi != pj {
			return pi < pj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *AssetRepository) UpdateBanner(ctx context.Context, id db.UUID, banner *model.Banner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[id]
	if !ok {
		return assetService.ErrNotFound
	}
	cp := *banner
	asset.Banner = &cp
	asset.UpdatedAt = time.Now()
	return nil
}

func bannerActiveAt(b *model.Banner, now time.Time) bool {
	if b == nil || !b.IsActive {
		return false
	}
	if b.StartsAt != nil && now.Before(*b.StartsAt) {
		return false
	}
	if b.EndsAt != nil && now.After(*b.EndsAt) {
		return false
	}
	return true
}

func sortNewestFirst(assets []*model.Asset) {
	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].CreatedAt.After(assets[j].CreatedAt)
	})
}
