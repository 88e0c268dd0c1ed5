package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	assetSvc "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

// UploadProductVideoHandler replaces a product's video with the uploaded
// file. The previous video, if any, is cleaned up behind the scenes.
func UploadProductVideoHandler(svc port.AssetReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := api_context.ProductIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "product ID is required", nil)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, assetSvc.MaxFileSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "a 'file' form field is required", err)
			return
		}
		defer func() { _ = file.Close() }()

		mimeType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(mimeType, "video/") || !assetSvc.IsMimeTypeAllowed(mimeType) {
			WriteError(w, http.StatusUnsupportedMediaType, fmt.Sprintf("mime-type %q is not an accepted video format", mimeType), nil)
			return
		}

		in := port.ReplaceAssetInput{
			Owner:    model.Owner{Type: model.OwnerTypeProduct, ID: productID},
			FileName: header.Filename,
			MimeType: &mimeType,
			Content:  file,
			Size:     header.Size,
		}
		out, err := svc.ReplaceAsset(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, assetSvc.ErrValidation):
				WriteError(w, http.StatusBadRequest, "Invalid request", err)
			case errors.Is(err, assetSvc.ErrLinkFailed):
				WriteError(w, http.StatusInternalServerError, "could not link the new video to the product", err)
			default:
				WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not replace the video of product %q", productID), err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully replaced the video of product %q with asset #%s", productID, out.ID)
	}
}
