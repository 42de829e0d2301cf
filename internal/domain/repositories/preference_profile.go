package repositories

import (
	"context"

	"coliving/internal/domain/models"

	"github.com/google/uuid"
)

// PreferenceProfileRepository defines data access for tenant preference profiles
type PreferenceProfileRepository interface {
	// Create inserts a new profile.
	// Returns *domain.ConflictError if the tenant already has one.
	Create(ctx context.Context, profile *models.PreferenceProfile) error

	// GetByTenantID returns domain.ErrNotFound if the tenant has no profile
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.PreferenceProfile, error)

	// GetByTenantIDForUpdate is GetByTenantID with a row lock.
	// Only meaningful inside TransactionManager.ExecTx.
	GetByTenantIDForUpdate(ctx context.Context, tenantID uuid.UUID) (*models.PreferenceProfile, error)

	// Update overwrites every mutable column
	Update(ctx context.Context, profile *models.PreferenceProfile) error

	// Delete removes the tenant's profile; deleting a missing profile is not an error
	Delete(ctx context.Context, tenantID uuid.UUID) error

	// ListOthers returns every profile except the given tenant's, read in a single statement.
	// Order is unspecified.
	ListOthers(ctx context.Context, tenantID uuid.UUID) ([]models.CandidateProfile, error)
}
