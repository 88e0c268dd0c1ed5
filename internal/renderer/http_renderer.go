package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/dbk/assets-ms-go/internal/port"
)

// ratingCacheTTL bounds how long a cached rating may serve before the
// aggregate is recomputed.
const ratingCacheTTL = time.Hour

// HTTPRenderer mediates between HTTP handlers and the rating getter use case.
// It provides caching capabilities and returns both the JSON representation of
// the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderProductRating returns the cached JSON result and its ETag if
	// available or executes the underlying use case and caches the output
	// otherwise.
	RenderProductRating(ctx context.Context, getter port.RatingGetter, productID string) ([]byte, string, error)
}

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy HTTPRenderer
var _ HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderProductRating fetches the product rating either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderProductRating(ctx context.Context, getter port.RatingGetter, productID string) ([]byte, string, error) {
	raw, err := r.cache.GetProductRating(ctx, productID)
	etag, errEtag := r.cache.GetEtagProductRating(ctx, productID)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetProductRating(ctx, productID)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	validUntil := time.Now().Add(ratingCacheTTL)
	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetProductRating(ctx, productID, raw, validUntil)
	r.cache.SetEtagProductRating(ctx, productID, etag, validUntil)

	return raw, etag, nil
}
