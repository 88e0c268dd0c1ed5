package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	assetSvc "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

// UpdateBannerHandler replaces the business fields of an existing banner.
func UpdateBannerHandler(svc port.BannerUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var req model.Banner
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		out, err := svc.UpdateBanner(r.Context(), id, port.UpdateBannerInput{Banner: req})
		if err != nil {
			switch {
			case errors.Is(err, assetSvc.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Banner not found", nil)
			case errors.Is(err, assetSvc.ErrValidation):
				WriteError(w, http.StatusBadRequest, "Invalid request", err)
			default:
				WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not update banner #%s", id), err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully updated banner #%s", id)
	}
}
