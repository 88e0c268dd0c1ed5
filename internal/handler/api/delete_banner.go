package api

import (
	"fmt"
	"net/http"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/port"
)

// DeleteBannerHandler deletes a banner by ID. Deleting an unknown banner is
// a no-op success.
func DeleteBannerHandler(svc port.BannerDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteBanner(r.Context(), id); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not delete banner #%s", id), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted banner #%s", id)
	}
}
