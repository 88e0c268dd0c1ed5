package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dbk/assets-ms-go/internal/api_context"
)

func TestRequireRole(t *testing.T) {
	mw := RequireRole("moderator")

	tests := []struct {
		name           string
		roles          []string
		wantStatus     int
		expectNextCall bool
	}{
		{"no roles in context", nil, http.StatusForbidden, false},
		{"missing role", []string{"customer"}, http.StatusForbidden, false},
		{"has role", []string{"customer", "moderator"}, http.StatusNoContent, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest("GET", "/any", nil)
			if tc.roles != nil {
				req = req.WithContext(context.WithValue(req.Context(), api_context.AuthRolesKey, tc.roles))
			}

			rec := httptest.NewRecorder()

			handler := mw(next)
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if nextCalled != tc.expectNextCall {
				t.Errorf("nextCalled = %v; want %v", nextCalled, tc.expectNextCall)
			}
		})
	}
}
