package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/handler/api"
)

func WithProductID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "productID")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "product ID is required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.ProductIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
