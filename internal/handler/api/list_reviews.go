package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/port"
	reviewSvc "github.com/dbk/assets-ms-go/internal/usecase/review"
)

// ListProductReviewsHandler lists a product's reviews. Moderators see every
// status; everyone else only sees approved reviews.
func ListProductReviewsHandler(svc port.ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := api_context.ProductIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "product ID is required", nil)
			return
		}

		includeAll := api_context.HasRole(r.Context(), "moderator")
		out, err := svc.ListReviews(r.Context(), productID, includeAll)
		if err != nil {
			if errors.Is(err, reviewSvc.ErrValidation) {
				WriteError(w, http.StatusBadRequest, "Invalid request", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not list reviews of product %q", productID), err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully listed %d reviews for product %q", len(out), productID)
	}
}
