package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/model"
	"github.com/dbk/assets-ms-go/internal/port"
	assetSvc "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

// CreateBannerHandler creates a collection banner from a multipart form.
// Besides the image itself the form may carry alt, priority, is_active and
// an optional starts_at/ends_at schedule.
func CreateBannerHandler(svc port.BannerCreator) http.HandlerFunc {
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

		banner, err := bannerFromForm(r)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", err)
			return
		}

		in := port.CreateBannerInput{
			CollectionHandle: r.FormValue("collection_handle"),
			FileName:         header.Filename,
			MimeType:         &mimeType,
			Content:          file,
			Size:             header.Size,
			Banner:           *banner,
		}
		out, err := svc.CreateBanner(r.Context(), in)
		if err != nil {
			if errors.Is(err, assetSvc.ErrValidation) {
				WriteError(w, http.StatusBadRequest, "Invalid request", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "could not create the banner", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully created banner #%s for collection %q", out.ID, in.CollectionHandle)
	}
}

// bannerFromForm parses the optional banner business fields of a multipart
// form. Absent fields keep their zero values.
func bannerFromForm(r *http.Request) (*model.Banner, error) {
	banner := &model.Banner{}

	if alt := r.FormValue("alt"); alt != "" {
		banner.Alt = &alt
	}
	if raw := r.FormValue("priority"); raw != "" {
		priority, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("priority %q is not a number: %w", raw, err)
		}
		banner.Priority = priority
	}
	if raw := r.FormValue("is_active"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("is_active %q is not a boolean: %w", raw, err)
		}
		banner.IsActive = isActive
	}
	for field, dst := range map[string]**time.Time{"starts_at": &banner.StartsAt, "ends_at": &banner.EndsAt} {
		raw := r.FormValue(field)
		if raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("%s %q is not a RFC3339 timestamp: %w", field, raw, err)
		}
		*dst = &ts
	}

	return banner, nil
}
