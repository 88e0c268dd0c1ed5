package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/port"
	reviewSvc "github.com/dbk/assets-ms-go/internal/usecase/review"
	"github.com/dbk/assets-ms-go/internal/validation"
)

// CreateReviewHandler creates a product review. Unprivileged callers always
// get a pending review regardless of the status they send; moderators may
// set a status directly.
func CreateReviewHandler(svc port.ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req port.CreateReviewInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}
		req.Privileged = api_context.HasRole(r.Context(), "moderator")

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := svc.CreateReview(r.Context(), req)
		if err != nil {
			if errors.Is(err, reviewSvc.ErrValidation) {
				WriteError(w, http.StatusBadRequest, "Invalid request", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not create the review", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully created review #%s for product %q", out.ID, out.ProductID)
	}
}
