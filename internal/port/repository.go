package port

import (
	"context"
	"time"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
)

// AssetRepository defines persistence operations for asset records.
// Delete of an unknown id is a no-op success so compensations stay
// idempotent.
type AssetRepository interface {
	Create(ctx context.Context, asset *model.Asset) error
	GetByID(ctx context.Context, id db.UUID) (*model.Asset, error)
	Delete(ctx context.Context, id db.UUID) error
	ListByOwner(ctx context.Context, owner model.Owner) ([]*model.Asset, error)
	ListUnlinkedCreatedBefore(ctx context.Context, before time.Time) ([]*model.Asset, error)
}

// BannerFilter narrows banner listings.
type BannerFilter struct {
	CollectionHandle string
	OnlyActive       bool
}

// BannerRepository lists collection banners with their business fields.
type BannerRepository interface {
	AssetRepository
	ListBanners(ctx context.Context, filter BannerFilter) ([]*model.Asset, error)
	UpdateBanner(ctx context.Context, id db.UUID, banner *model.Banner) error
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id db.UUID) (*model.Review, error)
	Delete(ctx context.Context, id db.UUID) error
	ListByIDs(ctx context.Context, ids []db.UUID) ([]*model.Review, error)
	ListByProduct(ctx context.Context, productID string, approvedOnly bool) ([]*model.Review, error)
	UpdateStatus(ctx context.Context, id db.UUID, status model.ReviewStatus) error
	AverageRating(ctx context.Context, productID string) (float64, error)
}

// LinkStore maintains the association between an owner slot and the id of
// its active asset, independent of the asset record itself.
//
// Set is an atomic read-modify-write: the previous id it returns is the
// sole source of truth for what a caller may delete afterwards. Two
// concurrent Sets on the same owner never observe the same previous value.
type LinkStore interface {
	Get(ctx context.Context, owner model.Owner) (*db.UUID, error)
	Set(ctx context.Context, owner model.Owner, assetID *db.UUID) (*db.UUID, error)
}
