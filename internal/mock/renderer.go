package mock

import (
	"context"

	"github.com/dbk/assets-ms-go/internal/port"
)

// HTTPRenderer implements renderer behaviour for tests.
type HTTPRenderer struct {
	Out  []byte
	Etag string
	Err  error

	Called     bool
	ProductIDs []string
}

func (r *HTTPRenderer) RenderProductRating(ctx context.Context, getter port.RatingGetter, productID string) ([]byte, string, error) {
	r.Called = true
	r.ProductIDs = append(r.ProductIDs, productID)
	if r.Err != nil {
		return nil, "", r.Err
	}
	return r.Out, r.Etag, nil
}
