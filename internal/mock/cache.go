package mock

import (
	"context"
	"time"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	RatingOut []byte

	// etag values
	EtagRating string

	// errors
	GetRatingErr     error
	GetEtagRatingErr error
	DelRatingErr     error

	// call flags
	GetRatingCalled     bool
	GetEtagRatingCalled bool
	SetRatingCalled     bool
	SetEtagRatingCalled bool
	DelRatingCalled     bool

	DeletedProducts []string
}

func (c *Cache) GetProductRating(ctx context.Context, productID string) ([]byte, error) {
	c.GetRatingCalled = true
	if c.GetRatingErr != nil {
		return nil, c.GetRatingErr
	}
	return c.RatingOut, nil
}

func (c *Cache) GetEtagProductRating(ctx context.Context, productID string) (string, error) {
	c.GetEtagRatingCalled = true
	if c.GetEtagRatingErr != nil {
		return "", c.GetEtagRatingErr
	}
	return c.EtagRating, nil
}

func (c *Cache) SetProductRating(ctx context.Context, productID string, data []byte, validUntil time.Time) {
	c.SetRatingCalled = true
	c.RatingOut = data
}

func (c *Cache) SetEtagProductRating(ctx context.Context, productID string, etag string, validUntil time.Time) {
	c.SetEtagRatingCalled = true
	c.EtagRating = etag
}

func (c *Cache) DeleteProductRating(ctx context.Context, productID string) error {
	c.DelRatingCalled = true
	c.DeletedProducts = append(c.DeletedProducts, productID)
	return c.DelRatingErr
}
