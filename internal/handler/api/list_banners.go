package api

import (
	"net/http"
	"strconv"

	"github.com/dbk/assets-ms-go/internal/logger"
	"github.com/dbk/assets-ms-go/internal/port"
)

// ListBannersHandler lists banners, optionally narrowed to one collection.
// Store callers pass active=true to only get banners inside their schedule.
func ListBannersHandler(svc port.BannerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := port.BannerFilter{
			CollectionHandle: r.URL.Query().Get("collection_handle"),
		}
		if raw := r.URL.Query().Get("active"); raw != "" {
			active, err := strconv.ParseBool(raw)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "active must be a boolean", err)
				return
			}
			filter.OnlyActive = active
		}

		out, err := svc.ListBanners(r.Context(), filter)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not list banners", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully listed %d banners", len(out))
	}
}
