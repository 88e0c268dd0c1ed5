package mock

import (
	"context"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
)

// MockAssetReplacer implements port.AssetReplacer for tests.
type MockAssetReplacer struct {
	Out *model.Asset
	Err error

	ReplaceCalled bool
	DetachCalled  bool
	In            port.ReplaceAssetInput
	DetachedOwner model.Owner
}

func (m *MockAssetReplacer) ReplaceAsset(ctx context.Context, in port.ReplaceAssetInput) (*model.Asset, error) {
	m.ReplaceCalled = true
	m.In = in
	return m.Out, m.Err
}

func (m *MockAssetReplacer) DetachAsset(ctx context.Context, owner model.Owner) error {
	m.DetachCalled = true
	m.DetachedOwner = owner
	return m.Err
}

// MockBannerCreator implements port.BannerCreator for tests.
type MockBannerCreator struct {
	Out    *model.Asset
	Err    error
	Called bool
	In     port.CreateBannerInput
}

func (m *MockBannerCreator) CreateBanner(ctx context.Context, in port.CreateBannerInput) (*model.Asset, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockBannerUpdater implements port.BannerUpdater for tests.
type MockBannerUpdater struct {
	Out    *model.Asset
	Err    error
	Called bool
	ID     db.UUID
	In     port.UpdateBannerInput
}

func (m *MockBannerUpdater) UpdateBanner(ctx context.Context, id db.UUID, in port.UpdateBannerInput) (*model.Asset, error) {
	m.Called = true
	m.ID = id
	m.In = in
	return m.Out, m.Err
}

// MockBannerDeleter implements port.BannerDeleter for tests.
type MockBannerDeleter struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockBannerDeleter) DeleteBanner(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockBannerLister implements port.BannerLister for tests.
type MockBannerLister struct {
	Out    []*model.Asset
	Err    error
	Called bool
	Filter port.BannerFilter
}

func (m *MockBannerLister) ListBanners(ctx context.Context, filter port.BannerFilter) ([]*model.Asset, error) {
	m.Called = true
	m.Filter = filter
	return m.Out, m.Err
}

// MockReviewCreator implements port.ReviewCreator for tests.
type MockReviewCreator struct {
	Out    *model.Review
	Err    error
	Called bool
	In     port.CreateReviewInput
}

func (m *MockReviewCreator) CreateReview(ctx context.Context, in port.CreateReviewInput) (*model.Review, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockReviewBulkUpdater implements port.ReviewBulkUpdater for tests.
type MockReviewBulkUpdater struct {
	Out    *port.BulkUpdateStatusOutput
	Err    error
	Called bool
	In     port.BulkUpdateStatusInput
}

func (m *MockReviewBulkUpdater) BulkUpdateStatus(ctx context.Context, in port.BulkUpdateStatusInput) (*port.BulkUpdateStatusOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockReviewLister implements port.ReviewLister for tests.
type MockReviewLister struct {
	Out        []*model.Review
	Err        error
	Called     bool
	ProductID  string
	IncludeAll bool
}

func (m *MockReviewLister) ListReviews(ctx context.Context, productID string, includeAll bool) ([]*model.Review, error) {
	m.Called = true
	m.ProductID = productID
	m.IncludeAll = includeAll
	return m.Out, m.Err
}

// MockRatingGetter implements port.RatingGetter for tests.
type MockRatingGetter struct {
	Out    *port.RatingOutput
	Err    error
	Called bool
}

func (m *MockRatingGetter) GetProductRating(ctx context.Context, productID string) (*port.RatingOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockOrphanSweeper implements port.OrphanSweeper for tests.
type MockOrphanSweeper struct {
	Err    error
	Called bool
}

func (m *MockOrphanSweeper) SweepOrphans(ctx context.Context) error {
	m.Called = true
	return m.Err
}
