package port

import (
	"context"
	"io"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
)

type UUIDGen func() db.UUID

// ReplaceAssetInput carries the new content for a single-slot owner.
type ReplaceAssetInput struct {
	Owner    model.Owner
	FileName string
	MimeType *string
	Content  io.Reader
	Size     int64
}

// AssetReplacer atomically swaps the asset attached to a single-slot owner,
// or clears the slot entirely.
type AssetReplacer interface {
	ReplaceAsset(ctx context.Context, in ReplaceAssetInput) (*model.Asset, error)
	DetachAsset(ctx context.Context, owner model.Owner) error
}

// CreateBannerInput describes a new store banner upload.
type CreateBannerInput struct {
	CollectionHandle string
	FileName         string
	MimeType         *string
	Content          io.Reader
	Size             int64
	Banner           model.Banner
}

// BannerCreator pairs a banner record with its uploaded blob.
type BannerCreator interface {
	CreateBanner(ctx context.Context, in CreateBannerInput) (*model.Asset, error)
}

// UpdateBannerInput replaces the business fields of an existing banner.
type UpdateBannerInput struct {
	Banner model.Banner
}

// BannerUpdater rewrites a banner's business fields in place. The blob and
// public URL never change through an update.
type BannerUpdater interface {
	UpdateBanner(ctx context.Context, id db.UUID, in UpdateBannerInput) (*model.Asset, error)
}

// BannerDeleter removes a banner record and its blob.
type BannerDeleter interface {
	DeleteBanner(ctx context.Context, id db.UUID) error
}

// BannerLister returns banners for a collection, optionally active-only.
type BannerLister interface {
	ListBanners(ctx context.Context, filter BannerFilter) ([]*model.Asset, error)
}

// CreateReviewInput carries the fields of a new product review.
type CreateReviewInput struct {
	Title      *string `json:"title" validate:"omitempty,max=255"`
	Content    string  `json:"content" validate:"required"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	ProductID  string  `json:"product_id" validate:"required"`
	CustomerID *string `json:"customer_id"`
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name" validate:"required"`

	// Status is honoured only for privileged callers; everyone else gets
	// "pending".
	Status     model.ReviewStatus `json:"status"`
	Privileged bool               `json:"-"`
}

// ReviewCreator persists a new review through a compensable workflow.
type ReviewCreator interface {
	CreateReview(ctx context.Context, in CreateReviewInput) (*model.Review, error)
}

// BulkUpdateStatusInput targets a set of reviews with one new status.
type BulkUpdateStatusInput struct {
	IDs    []db.UUID          `json:"ids" validate:"required,min=1"`
	Status model.ReviewStatus `json:"status" validate:"required"`
}

// BulkUpdateStatusOutput reports the updated reviews and the ids that were
// not found. Missing ids are reported, not fatal.
type BulkUpdateStatusOutput struct {
	Reviews  []*model.Review `json:"reviews"`
	NotFound []db.UUID       `json:"not_found,omitempty"`
}

// ReviewBulkUpdater applies one status to many reviews, with compensation
// restoring the prior status of every touched review on failure.
type ReviewBulkUpdater interface {
	BulkUpdateStatus(ctx context.Context, in BulkUpdateStatusInput) (*BulkUpdateStatusOutput, error)
}

// ReviewLister returns a product's reviews. Unprivileged callers only see
// approved reviews.
type ReviewLister interface {
	ListReviews(ctx context.Context, productID string, includeAll bool) ([]*model.Review, error)
}

// RatingOutput is the aggregate rating of a product's approved reviews.
type RatingOutput struct {
	ProductID     string  `json:"product_id"`
	AverageRating float64 `json:"average_rating"`
}

// RatingGetter computes the average approved rating for one product.
type RatingGetter interface {
	GetProductRating(ctx context.Context, productID string) (*RatingOutput, error)
}

// OrphanSweeper deletes unlinked assets older than the grace period.
type OrphanSweeper interface {
	SweepOrphans(ctx context.Context) error
}
