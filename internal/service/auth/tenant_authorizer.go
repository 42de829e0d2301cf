package auth

import (
	"context"
	"fmt"

	"coliving/internal/domain"
	"coliving/internal/domain/repositories"
	"coliving/internal/domain/services"

	"github.com/google/uuid"
)

// DirectoryAuthorizer implements services.TenantAuthorizer using the tenant directory.
// A tenant can act on their own preferences. An operator can act on any tenant
// living in a property they manage.
type DirectoryAuthorizer struct {
	directory repositories.TenantDirectory
}

// NewDirectoryAuthorizer creates a new directory-backed authorizer
func NewDirectoryAuthorizer(directory repositories.TenantDirectory) *DirectoryAuthorizer {
	return &DirectoryAuthorizer{directory: directory}
}

var _ services.TenantAuthorizer = (*DirectoryAuthorizer)(nil)

// CanActForTenant returns nil when principal may read or change tenantID's data
func (a *DirectoryAuthorizer) CanActForTenant(ctx context.Context, principal services.Principal, tenantID uuid.UUID) error {
	if principal.ID == tenantID {
		return nil
	}
	if !principal.IsOperator {
		return fmt.Errorf("access denied to tenant %s: %w", tenantID, domain.ErrForbidden)
	}

	managed, err := a.directory.IsManagedBy(ctx, principal.ID, tenantID)
	if err != nil {
		return fmt.Errorf("check tenant access: %w", err)
	}
	if !managed {
		// Unknown tenants and tenants of other properties look the same to the caller
		return fmt.Errorf("access denied to tenant %s: %w", tenantID, domain.ErrForbidden)
	}
	return nil
}
