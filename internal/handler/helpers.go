package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"coliving/internal/config"
	"coliving/internal/domain/services"
	"coliving/internal/httputil"

	"github.com/google/uuid"
)

// requirePrincipal returns the authenticated caller or writes a 401
func requirePrincipal(w http.ResponseWriter, r *http.Request) (services.Principal, bool) {
	principal, ok := httputil.GetPrincipal(r)
	if !ok {
		httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
		return services.Principal{}, false
	}
	return principal, true
}

// pathUUID parses a UUID path value or writes a 400
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s format", name))
		return uuid.Nil, false
	}
	return id, true
}

// parseMatchLimit reads ?limit=. Absent means 0 (service default); values
// above config.MaxMatchLimit are capped.
func parseMatchLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	return min(limit, config.MaxMatchLimit), nil
}
