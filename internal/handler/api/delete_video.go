package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	assetSvc "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

// DeleteProductVideoHandler detaches and disposes of a product's video.
// Deleting a product that has no video is a no-op.
func DeleteProductVideoHandler(svc port.AssetReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := api_context.ProductIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "product ID is required", nil)
			return
		}

		owner := model.Owner{Type: model.OwnerTypeProduct, ID: productID}
		if err := svc.DetachAsset(r.Context(), owner); err != nil {
			if errors.Is(err, assetSvc.ErrValidation) {
				WriteError(w, http.StatusBadRequest, "Invalid request", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not delete the video of product %q", productID), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted the video of product %q", productID)
	}
}
