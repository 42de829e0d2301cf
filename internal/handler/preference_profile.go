package handler

import (
	"log/slog"
	"net/http"

	"coliving/internal/domain/models"
	"coliving/internal/domain/services"
	"coliving/internal/httputil"

	"github.com/google/uuid"
)

// PreferenceProfileHandler handles preference profile HTTP requests
type PreferenceProfileHandler struct {
	service services.PreferenceProfileService
	authz   services.TenantAuthorizer
	logger  *slog.Logger
}

// NewPreferenceProfileHandler creates a new preference profile handler
func NewPreferenceProfileHandler(service services.PreferenceProfileService, authz services.TenantAuthorizer, logger *slog.Logger) *PreferenceProfileHandler {
	return &PreferenceProfileHandler{
		service: service,
		authz:   authz,
		logger:  logger,
	}
}

// updatePreferencesBody is the PATCH payload. Omitted fields are left unchanged;
// notes may be set to null to clear it.
type updatePreferencesBody struct {
	CleanlinessImportance *int                      `json:"cleanliness_importance"`
	NoiseTolerance        *int                      `json:"noise_tolerance"`
	GuestFrequency        *int                      `json:"guest_frequency"`
	SocialPreference      *int                      `json:"social_preference"`
	SleepSchedule         *models.SleepSchedule     `json:"sleep_schedule"`
	WorkSchedule          *models.WorkSchedule      `json:"work_schedule"`
	Smoking               *bool                     `json:"smoking"`
	Pets                  *bool                     `json:"pets"`
	OvernightGuests       *bool                     `json:"overnight_guests"`
	Interests             *string                   `json:"interests"`
	Notes                 httputil.Optional[string] `json:"notes"`
}

func (b *updatePreferencesBody) toRequest() *models.UpdatePreferenceProfileRequest {
	return &models.UpdatePreferenceProfileRequest{
		CleanlinessImportance: b.CleanlinessImportance,
		NoiseTolerance:        b.NoiseTolerance,
		GuestFrequency:        b.GuestFrequency,
		SocialPreference:      b.SocialPreference,
		SleepSchedule:         b.SleepSchedule,
		WorkSchedule:          b.WorkSchedule,
		Smoking:               b.Smoking,
		Pets:                  b.Pets,
		OvernightGuests:       b.OvernightGuests,
		Interests:             b.Interests,
		Notes:                 models.OptionalNotes{Present: b.Notes.Present, Value: b.Notes.Value},
	}
}

// GetMyPreferences returns the caller's profile
// GET /api/tenants/me/preferences
func (h *PreferenceProfileHandler) GetMyPreferences(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	h.getPreferences(w, r, principal.ID)
}

// CreateMyPreferences stores the caller's first submission.
// A second submission gets 409 with the stored profile.
// POST /api/tenants/me/preferences
func (h *PreferenceProfileHandler) CreateMyPreferences(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req models.CreatePreferenceProfileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.service.CreateProfile(r.Context(), principal.ID, &req)
	if err != nil {
		HandleCreateConflict(w, err, h.logger, func() (*models.PreferenceProfile, error) {
			return h.service.GetProfile(r.Context(), principal.ID)
		})
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, profile)
}

// UpdateMyPreferences merges the provided fields into the caller's profile
// PATCH /api/tenants/me/preferences
func (h *PreferenceProfileHandler) UpdateMyPreferences(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var body updatePreferencesBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), principal.ID, body.toRequest())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, profile)
}

// DeleteMyPreferences removes the caller from matching
// DELETE /api/tenants/me/preferences
func (h *PreferenceProfileHandler) DeleteMyPreferences(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	h.deletePreferences(w, r, principal.ID)
}

// GetTenantPreferences lets an operator read a managed tenant's profile
// GET /api/tenants/{id}/preferences
func (h *PreferenceProfileHandler) GetTenantPreferences(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.authorizeTenant(w, r)
	if !ok {
		return
	}
	h.getPreferences(w, r, tenantID)
}

// DeleteTenantPreferences lets an operator remove a managed tenant's profile
// DELETE /api/tenants/{id}/preferences
func (h *PreferenceProfileHandler) DeleteTenantPreferences(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.authorizeTenant(w, r)
	if !ok {
		return
	}
	h.deletePreferences(w, r, tenantID)
}

func (h *PreferenceProfileHandler) getPreferences(w http.ResponseWriter, r *http.Request, tenantID uuid.UUID) {
	profile, err := h.service.GetProfile(r.Context(), tenantID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, profile)
}

func (h *PreferenceProfileHandler) deletePreferences(w http.ResponseWriter, r *http.Request, tenantID uuid.UUID) {
	if err := h.service.DeleteProfile(r.Context(), tenantID); err != nil {
		handleError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizeTenant resolves {id} and checks the caller may act for it
func (h *PreferenceProfileHandler) authorizeTenant(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return authorizeTenant(w, r, h.authz, h.logger)
}

func authorizeTenant(w http.ResponseWriter, r *http.Request, authz services.TenantAuthorizer, logger *slog.Logger) (uuid.UUID, bool) {
	principal, ok := requirePrincipal(w, r)
	if !ok {
		return uuid.Nil, false
	}

	tenantID, ok := pathUUID(w, r, "id")
	if !ok {
		return uuid.Nil, false
	}

	if err := authz.CanActForTenant(r.Context(), principal, tenantID); err != nil {
		handleError(w, err, logger)
		return uuid.Nil, false
	}
	return tenantID, true
}
