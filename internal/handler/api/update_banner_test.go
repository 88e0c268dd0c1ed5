package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/mock"
	"github.com/dbk/assets-ms-go/internal/model"
	assetSvc "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

func TestUpdateBannerHandler(t *testing.T) {
	bannerID := db.NewUUID()
	okAsset := &model.Asset{
		ID:        bannerID,
		OwnerType: model.OwnerTypeCollection,
		OwnerID:   "summer-sale",
		Banner:    &model.Banner{Priority: 5, IsActive: false},
	}

	validBody := `{"priority":5,"is_active":false}`

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCalled bool
	}{
		{"happy path", validBody, nil, http.StatusOK, true},
		{"invalid json", `{"priority":`, nil, http.StatusBadRequest, false},
		{"unknown banner", validBody, assetSvc.ErrNotFound, http.StatusNotFound, true},
		{"not a banner", validBody, assetSvc.ErrValidation, http.StatusBadRequest, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MockBannerUpdater{Out: okAsset, Err: tc.svcErr}
			handler := UpdateBannerHandler(svc)

			req := httptest.NewRequest(http.MethodPatch, "/admin/banners/"+bannerID.String(), strings.NewReader(tc.body))
			req = req.WithContext(context.WithValue(req.Context(), api_context.IDKey, bannerID))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d; body = %s", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if svc.Called != tc.wantCalled {
				t.Fatalf("Called = %v; want %v", svc.Called, tc.wantCalled)
			}
			if tc.wantStatus == http.StatusOK {
				if svc.ID != bannerID {
					t.Errorf("id = %s; want %s", svc.ID, bannerID)
				}
				if svc.In.Banner.Priority != 5 || svc.In.Banner.IsActive {
					t.Errorf("banner in input = %+v; want priority 5, inactive", svc.In.Banner)
				}
			}
		})
	}
}

func TestDeleteBannerHandler(t *testing.T) {
	bannerID := db.NewUUID()

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"happy path", nil, http.StatusNoContent},
		{"service failure", assetSvc.ErrLinkFailed, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MockBannerDeleter{Err: tc.svcErr}
			handler := DeleteBannerHandler(svc)

			req := httptest.NewRequest(http.MethodDelete, "/admin/banners/"+bannerID.String(), nil)
			req = req.WithContext(context.WithValue(req.Context(), api_context.IDKey, bannerID))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if !svc.Called {
				t.Fatal("service should have been called")
			}
			if svc.ID != bannerID {
				t.Errorf("id = %s; want %s", svc.ID, bannerID)
			}
		})
	}
}
