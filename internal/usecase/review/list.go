package review

import (
	"context"
	"fmt"

	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
)

type listerSrv struct {
	repo port.ReviewRepository
}

// compile-time check: *listerSrv must satisfy port.ReviewLister
var _ port.ReviewLister = (*listerSrv)(nil)

// NewReviewLister constructs a ReviewLister implementation.
func NewReviewLister(repo port.ReviewRepository) port.ReviewLister {
	return &listerSrv{repo: repo}
}

// ListReviews returns a product's reviews, newest first. Only privileged
// callers see reviews that are not approved yet.
func (s *listerSrv) ListReviews(ctx context.Context, productID string, includeAll bool) ([]*model.Review, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}
	return s.repo.ListByProduct(ctx, productID, !includeAll)
}
