package httputil

import (
	"context"
	"net/http"

	"coliving/internal/domain/services"
)

// Context key type to avoid collisions
type contextKey string

const (
	principalKey contextKey = "principal"
)

// WithPrincipal adds the authenticated caller to the request context
func WithPrincipal(r *http.Request, principal services.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), principalKey, principal)
	return r.WithContext(ctx)
}

// GetPrincipal retrieves the authenticated caller; ok is false on unauthenticated routes
func GetPrincipal(r *http.Request) (services.Principal, bool) {
	principal, ok := r.Context().Value(principalKey).(services.Principal)
	return principal, ok
}
