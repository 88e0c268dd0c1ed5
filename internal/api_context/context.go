package api_context

import (
	"context"

	"github.com/dbk/assets-ms-go/internal/db"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	ProductIDKey  ctxKey = "productID"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

func IDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(IDKey).(db.UUID)
	return id, ok
}

func ProductIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ProductIDKey).(string)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}

// HasRole reports whether the authenticated caller carries the given role.
func HasRole(ctx context.Context, role string) bool {
	roles, ok := AuthRolesFromContext(ctx)
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
