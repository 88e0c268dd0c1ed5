package middleware

import (
	"net/http"

	"github.com/dbk/assets-ms-go/internal/api_context"
	"github.com/dbk/assets-ms-go/internal/handler/api"
)

// RequireRole rejects callers whose token does not carry the given role.
// It must sit behind WithDSTAuth, which populates the roles in context.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !api_context.HasRole(r.Context(), role) {
				api.WriteError(w, http.StatusForbidden, "insufficient permissions", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
