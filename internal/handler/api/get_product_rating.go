package api

import (
	"errors"
	"net/http"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/port"
	"github.com/dbk/assets-ms-go/internal/renderer"
	reviewSvc "github.com/dbk/assets-ms-go/internal/usecase/review"
)

// GetProductRatingHandler returns the average approved rating of a product,
// served from cache with ETag revalidation where possible.
func GetProductRatingHandler(rdr renderer.HTTPRenderer, svc port.RatingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := api_context.ProductIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "product ID is required", nil)
			return
		}

		raw, etag, err := rdr.RenderProductRating(r.Context(), svc, productID)
		if err != nil {
			if errors.Is(err, reviewSvc.ErrValidation) {
				WriteError(w, http.StatusBadRequest, "Invalid request", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not get the product rating", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Infof(r.Context(), "✅  Returning cached rating for product %q", productID)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Infof(r.Context(), "✅  Successfully returned the rating of product %q", productID)
	}
}
