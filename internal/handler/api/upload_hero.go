package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	assetSvc "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

// The home page carries exactly one hero image, so its owner is a fixed
// slot rather than an entity id.
const heroSlot = "hero"

// UploadHomeHeroHandler replaces the home page hero image.
func UploadHomeHeroHandler(svc port.AssetReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, assetSvc.MaxFileSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "a 'file' form field is required", err)
			return
		}
		defer func() { _ = file.Close() }()

		mimeType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(mimeType, "image/") || !assetSvc.IsMimeTypeAllowed(mimeType) {
			WriteError(w, http.StatusUnsupportedMediaType, fmt.Sprintf("mime-type %q is not an accepted image format", mimeType), nil)
			return
		}

		in := port.ReplaceAssetInput{
			Owner:    model.Owner{Type: model.OwnerTypeHome, ID: heroSlot},
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
				WriteError(w, http.StatusInternalServerError, "could not link the new hero image", err)
			default:
				WriteError(w, http.StatusInternalServerError, "could not replace the hero image", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully replaced the home hero image with asset #%s", out.ID)
	}
}

// DeleteHomeHeroHandler removes the home page hero image. Deleting an empty
// slot is a no-op.
func DeleteHomeHeroHandler(svc port.AssetReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := model.Owner{Type: model.OwnerTypeHome, ID: heroSlot}
		if err := svc.DetachAsset(r.Context(), owner); err != nil {
			if errors.Is(err, assetSvc.ErrValidation) {
				WriteError(w, http.StatusBadRequest, "Invalid request", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not delete the hero image", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Info(r.Context(), "✅  Successfully deleted the home hero image")
	}
}
