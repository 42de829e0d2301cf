package handler

import (
	"log/slog"
	"net/http"

	"coliving/internal/domain/services"
	"coliving/internal/httputil"

	"github.com/google/uuid"
)

// MatchHandler serves ranked roommate candidates
type MatchHandler struct {
	service services.MatchService
	authz   services.TenantAuthorizer
	logger  *slog.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(service services.MatchService, authz services.TenantAuthorizer, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		service: service,
		authz:   authz,
		logger:  logger,
	}
}

// GetMyMatches ranks candidates for the caller
// GET /api/tenants/me/matches?limit=10
func (h *MatchHandler) GetMyMatches(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	h.respondMatches(w, r, principal.ID)
}

// GetTenantMatches ranks candidates for a tenant the operator manages
// GET /api/tenants/{id}/matches?limit=10
func (h *MatchHandler) GetTenantMatches(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authorizeTenant(w, r, h.authz, h.logger)
	if !ok {
		return
	}
	h.respondMatches(w, r, tenantID)
}

func (h *MatchHandler) respondMatches(w http.ResponseWriter, r *http.Request, tenantID uuid.UUID) {
	limit, err := parseMatchLimit(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := h.service.GetTopMatches(r.Context(), tenantID, limit)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, matches)
}
