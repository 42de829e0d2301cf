package services

import (
	"context"

	"coliving/internal/domain/models"

	"github.com/google/uuid"
)

// PreferenceProfileService defines the business logic for tenant preference profiles
type PreferenceProfileService interface {
	// GetProfile returns domain.ErrNotFound if the tenant has not submitted preferences
	GetProfile(ctx context.Context, tenantID uuid.UUID) (*models.PreferenceProfile, error)

	// CreateProfile stores a tenant's first submission.
	// Returns *domain.ConflictError if a profile exists; callers should update instead.
	CreateProfile(ctx context.Context, tenantID uuid.UUID, req *models.CreatePreferenceProfileRequest) (*models.PreferenceProfile, error)

	// UpdateProfile merges the provided fields into the existing profile
	UpdateProfile(ctx context.Context, tenantID uuid.UUID, req *models.UpdatePreferenceProfileRequest) (*models.PreferenceProfile, error)

	// DeleteProfile is idempotent
	DeleteProfile(ctx context.Context, tenantID uuid.UUID) error
}
