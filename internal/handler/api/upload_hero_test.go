package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dbk/assets-ms-go/internal/db"
	"github.com/dbk/assets-ms-go/internal/mock"
	"github.com/dbk/assets-ms-go/internal/model"
	assetSvc "github.com/dbk/assets-ms-go/internal/usecase/asset"
)

func TestUploadHomeHeroHandler(t *testing.T) {
	mimeType := "image/jpeg"
	okAsset := &model.Asset{
		ID:        db.NewUUID(),
		URL:       "https://cdn.example.com/home/hero/hero.jpg",
		FileName:  "hero.jpg",
		MimeType:  &mimeType,
		OwnerType: model.OwnerTypeHome,
		OwnerID:   "hero",
	}

	tests := []struct {
		name       string
		mimeType   string
		svcErr     error
		wantStatus int
		wantCalled bool
	}{
		{"happy path", "image/jpeg", nil, http.StatusCreated, true},
		{"not an image", "video/mp4", nil, http.StatusUnsupportedMediaType, false},
		{"validation error", "image/jpeg", assetSvc.ErrValidation, http.StatusBadRequest, true},
		{"link failure", "image/jpeg", assetSvc.ErrLinkFailed, http.StatusInternalServerError, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MockAssetReplacer{Out: okAsset, Err: tc.svcErr}
			handler := UploadHomeHeroHandler(svc)

			body, contentType := videoForm(t, "file", "hero.jpg", tc.mimeType)
			req := httptest.NewRequest(http.MethodPost, "/admin/home/hero", body)
			req.Header.Set("Content-Type", contentType)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d; body = %s", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if svc.ReplaceCalled != tc.wantCalled {
				t.Fatalf("ReplaceCalled = %v; want %v", svc.ReplaceCalled, tc.wantCalled)
			}
			if tc.wantCalled {
				if svc.In.Owner.Type != model.OwnerTypeHome || svc.In.Owner.ID != "hero" {
					t.Errorf("owner = %+v; want home hero slot", svc.In.Owner)
				}
			}
		})
	}
}

func TestDeleteHomeHeroHandler(t *testing.T) {
	svc := &mock.MockAssetReplacer{}
	handler := DeleteHomeHeroHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/admin/home/hero", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusNoContent)
	}
	if !svc.DetachCalled {
		t.Fatal("DetachAsset should have been called")
	}
	if svc.DetachedOwner.Type != model.OwnerTypeHome || svc.DetachedOwner.ID != "hero" {
		t.Errorf("owner = %+v; want home hero slot", svc.DetachedOwner)
	}
}
