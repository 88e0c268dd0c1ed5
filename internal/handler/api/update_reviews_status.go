package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/port"
	reviewSvc "github.com/dbk/assets-ms-go/internal/usecase/review"
)

// UpdateReviewsStatusHandler applies one status to a batch of reviews.
// Ids that no longer exist are reported in the response, not treated as
// failures.
func UpdateReviewsStatusHandler(svc port.ReviewBulkUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req port.BulkUpdateStatusInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		out, err := svc.BulkUpdateStatus(r.Context(), req)
		if err != nil {
			if errors.Is(err, reviewSvc.ErrValidation) {
				WriteError(w, http.StatusBadRequest, "Invalid request", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not update the reviews", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully set %d reviews to status %q", len(out.Reviews), req.Status)
	}
}
