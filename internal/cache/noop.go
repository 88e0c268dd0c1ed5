package cache

import (
	"context"
	"time"

	"github.com/dbk/assets-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetProductRating(ctx context.Context, productID string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagProductRating(ctx context.Context, productID string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetProductRating(ctx context.Context, productID string, data []byte, validUntil time.Time) {
}

func (n *NoopCache) SetEtagProductRating(ctx context.Context, productID string, etag string, validUntil time.Time) {
}

func (n *NoopCache) DeleteProductRating(ctx context.Context, productID string) error { return nil }
