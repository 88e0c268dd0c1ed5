package review

import (
	"context"
	"fmt"
	"math"

	"github.com/dbk/assets-ms-go/internal/port"
)

type ratingGetterSrv struct {
	repo port.ReviewRepository
}

// compile-time check: *ratingGetterSrv must satisfy port.RatingGetter
var _ port.RatingGetter = (*ratingGetterSrv)(nil)

// NewRatingGetter constructs a RatingGetter implementation.
func NewRatingGetter(repo port.ReviewRepository) port.RatingGetter {
	return &ratingGetterSrv{repo: repo}
}

// GetProductRating averages the ratings of a product's approved reviews,
// rounded to two decimals. A product with no approved reviews rates 0.
func (s *ratingGetterSrv) GetProductRating(ctx context.Context, productID string) (*port.RatingOutput, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}

	avg, err := s.repo.AverageRating(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &port.RatingOutput{
		ProductID:     productID,
		AverageRating: math.Round(avg*100) / 100,
	}, nil
}
