package port

import (
	"context"
	"time"
)

// Cache provides caching for product rating lookups.
type Cache interface {
	GetProductRating(ctx context.Context, productID string) ([]byte, error)
	GetEtagProductRating(ctx context.Context, productID string) (string, error)
	SetProductRating(ctx context.Context, productID string, data []byte, validUntil time.Time)
	SetEtagProductRating(ctx context.Context, productID string, etag string, validUntil time.Time)
	DeleteProductRating(ctx context.Context, productID string) error
}
